package handlers

import (
	"github.com/gin-gonic/gin"

	corenum "sellpoint/internal/core/ordernum"
	"sellpoint/internal/infrastructure/http/v1/dto"
)

// OrderNumberHandler exposes the number generation subsystem: allocation,
// format comparison and structural validation.
type OrderNumberHandler struct {
	base        *BaseHandler
	generator   corenum.Generator
	diagnostics corenum.Diagnostics
}

// NewOrderNumberHandler creates a new order number handler.
func NewOrderNumberHandler(base *BaseHandler, generator corenum.Generator, diagnostics corenum.Diagnostics) *OrderNumberHandler {
	return &OrderNumberHandler{
		base:        base,
		generator:   generator,
		diagnostics: diagnostics,
	}
}

// Generate allocates one order number without creating an order.
// POST /api/v1/order-numbers/generate
//
// Meant for preview and for clients that create the order through a
// separate channel. The returned number is unique at the instant of
// allocation; persist it promptly.
func (h *OrderNumberHandler) Generate(c *gin.Context) {
	var req dto.GenerateNumberRequest
	if !h.base.BindJSON(c, &req) {
		return
	}

	res, err := h.generator.Generate(c.Request.Context(), req.ToConfig())
	if err != nil {
		h.base.Error(c, err)
		return
	}

	h.base.OK(c, dto.FromResult(res))
}

// Compare produces one sample number per format for an outlet.
// GET /api/v1/order-numbers/compare?outletId=7&prefix=ORD
func (h *OrderNumberHandler) Compare(c *gin.Context) {
	var req dto.CompareFormatsRequest
	if !h.base.BindQuery(c, &req) {
		return
	}

	probes, err := h.diagnostics.CompareFormats(c.Request.Context(), req.OutletID, req.Prefix)
	if err != nil {
		h.base.Error(c, err)
		return
	}

	h.base.OK(c, dto.CompareFormatsResponse{
		OutletID: req.OutletID,
		Formats:  probes,
	})
}

// Validate checks structural conformance of an arbitrary identifier.
// POST /api/v1/order-numbers/validate
func (h *OrderNumberHandler) Validate(c *gin.Context) {
	var req dto.ValidateNumberRequest
	if !h.base.BindJSON(c, &req) {
		return
	}

	h.base.OK(c, corenum.ValidateNumber(req.Number, req.Prefix))
}
