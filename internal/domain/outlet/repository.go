package outlet

import (
	"context"
)

// Repository defines the interface for Outlet persistence.
type Repository interface {
	// Create inserts a new outlet and assigns its id.
	Create(ctx context.Context, o *Outlet) error

	// GetByID retrieves an outlet by its stable numeric id.
	GetByID(ctx context.Context, id int64) (*Outlet, error)

	// GetByCode retrieves an outlet by code.
	GetByCode(ctx context.Context, code string) (*Outlet, error)

	// List retrieves all outlets ordered by id.
	List(ctx context.Context) ([]*Outlet, error)

	// ExistsByCode checks if an outlet with the given code exists.
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
