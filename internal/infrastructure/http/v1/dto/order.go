package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"sellpoint/internal/domain/order"
)

// CreateOrderRequest creates an order with a freshly allocated number.
type CreateOrderRequest struct {
	OutletID int64           `json:"outletId" binding:"required,min=1"`
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency" binding:"required,len=3"`

	// Numbering is optional: the zero value means sequential with defaults.
	Numbering *GenerateNumberRequest `json:"numbering"`
}

// OrderResponse contains order fields.
type OrderResponse struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	OutletID    int64           `json:"outletId"`
	Total       decimal.Decimal `json:"total"`
	Currency    string          `json:"currency"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	CreatedBy   string          `json:"createdBy,omitempty"`
}

// FromOrder creates OrderResponse from order.Order.
func FromOrder(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID.String(),
		OrderNumber: o.Number,
		OutletID:    o.OutletID,
		Total:       o.Total,
		Currency:    o.Currency,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		CreatedBy:   o.CreatedBy,
	}
}

// FromOrders converts a slice of orders.
func FromOrders(orders []*order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
