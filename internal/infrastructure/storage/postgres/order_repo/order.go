// Package order_repo provides the PostgreSQL implementation of the order
// repository. The number queries back the collision-safe allocator, so the
// orders table carries a unique index on number.
package order_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"sellpoint/internal/core/apperror"
	"sellpoint/internal/core/id"
	"sellpoint/internal/domain/order"
	"sellpoint/internal/infrastructure/storage/postgres"
)

const orderTable = "orders"

var orderColumns = []string{
	"id", "number", "outlet_id", "total", "currency", "status",
	"created_at", "updated_at", "created_by",
}

// OrderRepo implements order.Repository.
type OrderRepo struct {
	txManager *postgres.TxManager
}

var _ order.Repository = (*OrderRepo)(nil)

// NewOrderRepo creates a new order repository.
func NewOrderRepo(txManager *postgres.TxManager) *OrderRepo {
	return &OrderRepo{txManager: txManager}
}

func (r *OrderRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *OrderRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder().
		Select(orderColumns...).
		From(orderTable)
}

// Create inserts a new order. A unique violation on number means a
// concurrent writer won the race for the same candidate.
func (r *OrderRepo) Create(ctx context.Context, o *order.Order) error {
	q := r.builder().
		Insert(orderTable).
		Columns(orderColumns...).
		Values(
			o.ID, o.Number, o.OutletID, o.Total, o.Currency, o.Status,
			o.CreatedAt, o.UpdatedAt, o.CreatedBy,
		)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewNumberCollision(o.Number).WithCause(err)
		}
		return fmt.Errorf("insert order: %w", err)
	}

	return nil
}

// GetByID retrieves an order by id.
func (r *OrderRepo) GetByID(ctx context.Context, orderID id.ID) (*order.Order, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"id": orderID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var o order.Order
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &o, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("order", orderID.String())
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}

	return &o, nil
}

// GetByNumber retrieves an order by its exact number.
func (r *OrderRepo) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"number": number}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var o order.Order
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &o, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("order", number)
		}
		return nil, fmt.Errorf("get order by number: %w", err)
	}

	return &o, nil
}

// ExistsByNumber checks exact existence of a candidate number.
func (r *OrderRepo) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	q := r.builder().
		Select("1").
		From(orderTable).
		Where(squirrel.Eq{"number": number}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	var exists int
	err = querier.QueryRow(ctx, sql, args...).Scan(&exists)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists by number: %w", err)
	}

	return true, nil
}

// LastNumberByPrefix returns the most recently created number under prefix.
// Ordering is by creation time, not lexicographic: sequence widths can grow
// past the configured padding, and 10000 sorts before 9999 as a string.
func (r *OrderRepo) LastNumberByPrefix(ctx context.Context, prefix string) (string, error) {
	q := r.builder().
		Select("number").
		From(orderTable).
		Where(squirrel.Like{"number": escapeLike(prefix) + "%"}).
		OrderBy("created_at DESC").
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return "", fmt.Errorf("build query: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	var number string
	err = querier.QueryRow(ctx, sql, args...).Scan(&number)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("last number by prefix: %w", err)
	}

	return number, nil
}

// LastByOutlet returns the most recently created order for an outlet.
func (r *OrderRepo) LastByOutlet(ctx context.Context, outletID int64) (*order.Order, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"outlet_id": outletID}).
		OrderBy("created_at DESC").
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var o order.Order
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &o, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("last order by outlet: %w", err)
	}

	return &o, nil
}

// ListByOutlet retrieves orders for an outlet, newest first.
func (r *OrderRepo) ListByOutlet(ctx context.Context, outletID int64, limit, offset int) ([]*order.Order, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"outlet_id": outletID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var orders []*order.Order
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &orders, sql, args...); err != nil {
		return nil, fmt.Errorf("list orders by outlet: %w", err)
	}

	return orders, nil
}

// CountByOutlet returns the total number of orders for an outlet.
func (r *OrderRepo) CountByOutlet(ctx context.Context, outletID int64) (int64, error) {
	return r.count(ctx, squirrel.Eq{"outlet_id": outletID})
}

// CountByOutletSince counts orders created at or after since.
func (r *OrderRepo) CountByOutletSince(ctx context.Context, outletID int64, since time.Time) (int64, error) {
	return r.count(ctx, squirrel.And{
		squirrel.Eq{"outlet_id": outletID},
		squirrel.GtOrEq{"created_at": since},
	})
}

func (r *OrderRepo) count(ctx context.Context, where squirrel.Sqlizer) (int64, error) {
	q := r.builder().
		Select("COUNT(*)").
		From(orderTable).
		Where(where)

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	var count int64
	if err := querier.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}

	return count, nil
}

// escapeLike escapes LIKE metacharacters in a literal prefix.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
