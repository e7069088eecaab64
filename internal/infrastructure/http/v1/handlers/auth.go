package handlers

import (
	"github.com/gin-gonic/gin"

	"sellpoint/internal/domain/auth"
	"sellpoint/internal/infrastructure/http/v1/dto"
)

// AuthHandler exposes authentication endpoints.
type AuthHandler struct {
	base    *BaseHandler
	service *auth.Service
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(base *BaseHandler, service *auth.Service) *AuthHandler {
	return &AuthHandler{base: base, service: service}
}

// Login verifies credentials and issues an access token.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.base.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.base.Error(c, err)
		return
	}

	h.base.OK(c, dto.LoginResponse{
		Token: result.Token,
		User:  dto.FromUser(result.User),
	})
}
