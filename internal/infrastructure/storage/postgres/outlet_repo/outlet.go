// Package outlet_repo provides the PostgreSQL implementation of the outlet
// directory. Outlet ids come from a serial column and are never reused:
// they are baked into issued order numbers.
package outlet_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"sellpoint/internal/core/apperror"
	"sellpoint/internal/domain/outlet"
	"sellpoint/internal/infrastructure/storage/postgres"
)

const outletTable = "outlets"

var outletColumns = []string{
	"id", "code", "name", "address", "is_active", "created_at", "updated_at",
}

// OutletRepo implements outlet.Repository.
type OutletRepo struct {
	txManager *postgres.TxManager
}

var _ outlet.Repository = (*OutletRepo)(nil)

// NewOutletRepo creates a new outlet repository.
func NewOutletRepo(txManager *postgres.TxManager) *OutletRepo {
	return &OutletRepo{txManager: txManager}
}

func (r *OutletRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new outlet and fills in the assigned id.
func (r *OutletRepo) Create(ctx context.Context, o *outlet.Outlet) error {
	q := r.builder().
		Insert(outletTable).
		Columns("code", "name", "address", "is_active", "created_at", "updated_at").
		Values(o.Code, o.Name, o.Address, o.IsActive, o.CreatedAt, o.UpdatedAt).
		Suffix("RETURNING id")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, sql, args...).Scan(&o.ID); err != nil {
		return fmt.Errorf("insert outlet: %w", err)
	}

	return nil
}

// GetByID retrieves an outlet by its stable numeric id.
func (r *OutletRepo) GetByID(ctx context.Context, id int64) (*outlet.Outlet, error) {
	q := r.builder().
		Select(outletColumns...).
		From(outletTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var o outlet.Outlet
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &o, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("outlet", id)
		}
		return nil, fmt.Errorf("get outlet by id: %w", err)
	}

	return &o, nil
}

// GetByCode retrieves an outlet by code.
func (r *OutletRepo) GetByCode(ctx context.Context, code string) (*outlet.Outlet, error) {
	q := r.builder().
		Select(outletColumns...).
		From(outletTable).
		Where(squirrel.Eq{"code": code}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var o outlet.Outlet
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &o, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("outlet", code)
		}
		return nil, fmt.Errorf("get outlet by code: %w", err)
	}

	return &o, nil
}

// List retrieves all outlets ordered by id.
func (r *OutletRepo) List(ctx context.Context) ([]*outlet.Outlet, error) {
	q := r.builder().
		Select(outletColumns...).
		From(outletTable).
		OrderBy("id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var outlets []*outlet.Outlet
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &outlets, sql, args...); err != nil {
		return nil, fmt.Errorf("list outlets: %w", err)
	}

	return outlets, nil
}

// ExistsByCode checks if an outlet with the given code exists.
func (r *OutletRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	q := r.builder().
		Select("1").
		From(outletTable).
		Where(squirrel.Eq{"code": code}).
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
		return false, fmt.Errorf("exists by code: %w", err)
	}

	return true, nil
}
