package handlers

import (
	"github.com/gin-gonic/gin"

	"sellpoint/internal/domain/order"
	"sellpoint/internal/infrastructure/http/v1/dto"
)

// OrderHandler exposes order creation and lookup.
type OrderHandler struct {
	base    *BaseHandler
	service *order.Service
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(base *BaseHandler, service *order.Service) *OrderHandler {
	return &OrderHandler{base: base, service: service}
}

// Create creates an order with a freshly allocated number.
// POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !h.base.BindJSON(c, &req) {
		return
	}

	params := order.CreateParams{
		OutletID: req.OutletID,
		Total:    req.Total,
		Currency: req.Currency,
	}
	if req.Numbering != nil {
		params.Numbering = req.Numbering.ToConfig()
	}

	o, err := h.service.Create(c.Request.Context(), params)
	if err != nil {
		h.base.Error(c, err)
		return
	}

	h.base.CreatedData(c, dto.FromOrder(o))
}

// GetByNumber retrieves an order by its exact number.
// GET /api/v1/orders/:number
func (h *OrderHandler) GetByNumber(c *gin.Context) {
	o, err := h.service.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.base.Error(c, err)
		return
	}

	h.base.OK(c, dto.FromOrder(o))
}

// ListByOutlet retrieves recent orders for an outlet.
// GET /api/v1/outlets/:id/orders?limit=50&offset=0
func (h *OrderHandler) ListByOutlet(c *gin.Context) {
	outletID, ok := h.base.ParseInt64Param(c, "id")
	if !ok {
		return
	}

	limit := h.base.ParseIntQuery(c, "limit", 50)
	offset := h.base.ParseIntQuery(c, "offset", 0)

	orders, err := h.service.ListByOutlet(c.Request.Context(), outletID, limit, offset)
	if err != nil {
		h.base.Error(c, err)
		return
	}

	h.base.OK(c, dto.ListResponse{
		Items:      dto.FromOrders(orders),
		TotalCount: int64(len(orders)),
		Limit:      limit,
		Offset:     offset,
	})
}
