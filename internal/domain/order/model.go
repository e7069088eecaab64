// Package order provides the Order document and its creation flow.
// The order number is allocated by the ordernum generator and written
// verbatim and immutably into the order record.
package order

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"sellpoint/internal/core/apperror"
	"sellpoint/internal/core/id"
)

// Status of an order.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Order is a sales document issued by one outlet.
type Order struct {
	ID id.ID `db:"id" json:"id"`

	// Number is the generated identifier. Set exactly once at creation,
	// never regenerated, never mutated.
	Number string `db:"number" json:"orderNumber"`

	// OutletID is the owning outlet.
	OutletID int64 `db:"outlet_id" json:"outletId"`

	Total    decimal.Decimal `db:"total" json:"total"`
	Currency string          `db:"currency" json:"currency"`
	Status   Status          `db:"status" json:"status"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
	CreatedBy string    `db:"created_by" json:"createdBy,omitempty"`
}

// NewOrder creates a pending order. The number is assigned by the
// creation service, not here.
func NewOrder(outletID int64, total decimal.Decimal, currency string) *Order {
	now := time.Now().UTC()
	return &Order{
		ID:        id.New(),
		OutletID:  outletID,
		Total:     total,
		Currency:  currency,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks order invariants.
func (o *Order) Validate(ctx context.Context) error {
	if o.OutletID <= 0 {
		return apperror.NewValidation("outlet id must be positive").
			WithDetail("field", "outletId")
	}
	if o.Total.IsNegative() {
		return apperror.NewValidation("total must not be negative").
			WithDetail("field", "total").
			WithDetail("value", o.Total.String())
	}
	if o.Currency == "" {
		return apperror.NewValidation("currency is required").
			WithDetail("field", "currency")
	}
	switch o.Status {
	case StatusPending, StatusPaid, StatusCompleted, StatusCancelled:
	default:
		return apperror.NewValidation("invalid order status").
			WithDetail("field", "status").
			WithDetail("value", string(o.Status))
	}
	return nil
}
