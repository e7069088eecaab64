// Package outlet provides the Outlet directory: the physical or logical
// points of sale that scope every order number sequence.
package outlet

import (
	"context"
	"time"

	"sellpoint/internal/core/apperror"
	"sellpoint/internal/core/ordernum"
)

// Outlet is a single point of sale. The integer id is stable and embedded
// into every order number issued for this outlet, so it must never be
// reassigned.
type Outlet struct {
	ID        int64     `db:"id" json:"id"`
	Code      string    `db:"code" json:"code"`
	Name      string    `db:"name" json:"name"`
	Address   *string   `db:"address" json:"address,omitempty"`
	IsActive  bool      `db:"is_active" json:"isActive"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewOutlet creates an Outlet with required fields. The id is assigned by
// the store on insert.
func NewOutlet(code, name string) *Outlet {
	now := time.Now().UTC()
	return &Outlet{
		Code:      code,
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks outlet invariants.
func (o *Outlet) Validate(ctx context.Context) error {
	if o.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if o.Code == "" {
		return apperror.NewValidation("code is required").
			WithDetail("field", "code")
	}
	return nil
}

// Segment returns the zero-padded id segment used in order numbers.
func (o *Outlet) Segment() string {
	return ordernum.OutletSegment(o.ID)
}
