package handlers

import (
	"github.com/gin-gonic/gin"

	corenum "sellpoint/internal/core/ordernum"
	"sellpoint/internal/domain/outlet"
	"sellpoint/internal/infrastructure/http/v1/dto"
)

// OutletHandler exposes the outlet directory and per-outlet numbering stats.
type OutletHandler struct {
	base        *BaseHandler
	service     *outlet.Service
	diagnostics corenum.Diagnostics
}

// NewOutletHandler creates a new outlet handler.
func NewOutletHandler(base *BaseHandler, service *outlet.Service, diagnostics corenum.Diagnostics) *OutletHandler {
	return &OutletHandler{
		base:        base,
		service:     service,
		diagnostics: diagnostics,
	}
}

// Create registers a new point of sale.
// POST /api/v1/outlets
func (h *OutletHandler) Create(c *gin.Context) {
	var req dto.CreateOutletRequest
	if !h.base.BindJSON(c, &req) {
		return
	}

	o := outlet.NewOutlet(req.Code, req.Name)
	o.Address = req.Address

	if err := h.service.Create(c.Request.Context(), o); err != nil {
		h.base.Error(c, err)
		return
	}

	h.base.CreatedData(c, dto.FromOutlet(o))
}

// Get retrieves an outlet by id.
// GET /api/v1/outlets/:id
func (h *OutletHandler) Get(c *gin.Context) {
	outletID, ok := h.base.ParseInt64Param(c, "id")
	if !ok {
		return
	}

	o, err := h.service.Get(c.Request.Context(), outletID)
	if err != nil {
		h.base.Error(c, err)
		return
	}

	h.base.OK(c, dto.FromOutlet(o))
}

// List retrieves all outlets.
// GET /api/v1/outlets
func (h *OutletHandler) List(c *gin.Context) {
	outlets, err := h.service.List(c.Request.Context())
	if err != nil {
		h.base.Error(c, err)
		return
	}

	h.base.OK(c, dto.ListResponse{
		Items:      dto.FromOutlets(outlets),
		TotalCount: int64(len(outlets)),
	})
}

// Stats returns numbering statistics for one outlet.
// GET /api/v1/outlets/:id/stats
func (h *OutletHandler) Stats(c *gin.Context) {
	outletID, ok := h.base.ParseInt64Param(c, "id")
	if !ok {
		return
	}

	stats, err := h.diagnostics.OutletStats(c.Request.Context(), outletID)
	if err != nil {
		h.base.Error(c, err)
		return
	}

	h.base.OK(c, stats)
}
