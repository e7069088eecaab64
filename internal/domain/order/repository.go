package order

import (
	"context"
	"time"

	"sellpoint/internal/core/id"
)

// Repository defines the interface for Order persistence.
//
// The number-related queries are the contract the collision-safe allocator
// relies on: LastNumberByPrefix and ExistsByNumber must observe the same
// snapshot when executed inside one transaction.
type Repository interface {
	// Create inserts a new order. The unique index on number is the last
	// line of defense against a lost race.
	Create(ctx context.Context, o *Order) error

	// GetByID retrieves an order by id.
	GetByID(ctx context.Context, orderID id.ID) (*Order, error)

	// GetByNumber retrieves an order by its exact number.
	GetByNumber(ctx context.Context, number string) (*Order, error)

	// ExistsByNumber checks exact existence of a candidate number.
	ExistsByNumber(ctx context.Context, number string) (bool, error)

	// LastNumberByPrefix returns the number of the most recently created
	// order whose number starts with prefix, or "" when no such order
	// exists.
	LastNumberByPrefix(ctx context.Context, prefix string) (string, error)

	// LastByOutlet returns the most recently created order for an outlet,
	// or nil when the outlet has no orders.
	LastByOutlet(ctx context.Context, outletID int64) (*Order, error)

	// ListByOutlet retrieves orders for an outlet, newest first.
	ListByOutlet(ctx context.Context, outletID int64, limit, offset int) ([]*Order, error)

	// CountByOutlet returns the total number of orders for an outlet.
	CountByOutlet(ctx context.Context, outletID int64) (int64, error)

	// CountByOutletSince counts orders created at or after since.
	CountByOutletSince(ctx context.Context, outletID int64, since time.Time) (int64, error)
}
