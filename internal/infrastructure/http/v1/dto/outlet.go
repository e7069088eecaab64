package dto

import (
	"time"

	"sellpoint/internal/domain/outlet"
)

// CreateOutletRequest registers a new point of sale.
type CreateOutletRequest struct {
	Code    string  `json:"code" binding:"required"`
	Name    string  `json:"name" binding:"required"`
	Address *string `json:"address"`
}

// OutletResponse contains outlet fields.
type OutletResponse struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Address   *string   `json:"address,omitempty"`
	IsActive  bool      `json:"isActive"`
	Segment   string    `json:"segment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromOutlet creates OutletResponse from outlet.Outlet.
func FromOutlet(o *outlet.Outlet) OutletResponse {
	return OutletResponse{
		ID:        o.ID,
		Code:      o.Code,
		Name:      o.Name,
		Address:   o.Address,
		IsActive:  o.IsActive,
		Segment:   o.Segment(),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// FromOutlets converts a slice of outlets.
func FromOutlets(outlets []*outlet.Outlet) []OutletResponse {
	out := make([]OutletResponse, 0, len(outlets))
	for _, o := range outlets {
		out = append(out, FromOutlet(o))
	}
	return out
}
