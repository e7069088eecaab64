package order

import (
	"context"

	"github.com/shopspring/decimal"

	appctx "sellpoint/internal/core/context"
	"sellpoint/internal/core/id"
	"sellpoint/internal/core/ordernum"
	"sellpoint/internal/core/tx"
	"sellpoint/pkg/logger"
)

// Auditor records entity changes. Implemented by the postgres audit store.
type Auditor interface {
	LogChange(ctx context.Context, entityType string, entityID id.ID, action string, changes map[string]any) error
}

// Service provides order creation and lookup.
type Service struct {
	repo      Repository
	generator ordernum.Generator
	txManager tx.Manager
	audit     Auditor
}

// NewService creates a new order service. audit may be nil.
func NewService(repo Repository, generator ordernum.Generator, txManager tx.Manager, audit Auditor) *Service {
	return &Service{
		repo:      repo,
		generator: generator,
		txManager: txManager,
		audit:     audit,
	}
}

// CreateParams describes a new order.
type CreateParams struct {
	OutletID int64
	Total    decimal.Decimal
	Currency string

	// Numbering controls the order number format. Zero value means
	// sequential with defaults.
	Numbering ordernum.Config
}

// Create allocates an order number and inserts the order in one
// transaction. For sequence formats the generator's queries join this
// transaction through the context, so the number cannot leak without
// the order committing alongside it.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Order, error) {
	cfg := params.Numbering
	if cfg.Format == "" {
		cfg.Format = ordernum.FormatSequential
	}
	cfg.OutletID = params.OutletID
	cfg.Normalize()

	o := NewOrder(params.OutletID, params.Total, params.Currency)
	o.CreatedBy = appctx.GetUserID(ctx)
	if err := o.Validate(ctx); err != nil {
		return nil, err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		res, err := s.generator.Generate(ctx, cfg)
		if err != nil {
			return err
		}
		o.Number = res.Number
		o.CreatedAt = res.GeneratedAt
		o.UpdatedAt = res.GeneratedAt

		return s.repo.Create(ctx, o)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "order created",
		"order_id", o.ID,
		"number", o.Number,
		"outlet_id", o.OutletID,
		"format", string(cfg.Format),
	)

	if s.audit != nil {
		// Best-effort: a failed audit write must not undo a committed order.
		if err := s.audit.LogChange(ctx, "order", o.ID, "create", map[string]any{
			"number":    o.Number,
			"outlet_id": o.OutletID,
			"total":     o.Total.String(),
			"currency":  o.Currency,
			"format":    string(cfg.Format),
		}); err != nil {
			logger.Warn(ctx, "order audit write failed", "order_id", o.ID, "error", err)
		}
	}

	return o, nil
}

// GetByNumber retrieves an order by its exact number.
func (s *Service) GetByNumber(ctx context.Context, number string) (*Order, error) {
	return s.repo.GetByNumber(ctx, number)
}

// ListByOutlet retrieves recent orders for an outlet.
func (s *Service) ListByOutlet(ctx context.Context, outletID int64, limit, offset int) ([]*Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByOutlet(ctx, outletID, limit, offset)
}
