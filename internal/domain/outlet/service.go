package outlet

import (
	"context"

	"sellpoint/internal/core/apperror"
	"sellpoint/pkg/logger"
)

// Service provides business logic for the outlet directory.
type Service struct {
	repo Repository
}

// NewService creates a new outlet service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Segment resolves an outlet and returns its zero-padded id segment.
// An unknown outlet is a fatal NotFound: retrying cannot fix it, so the
// allocator must propagate this error without any retry attempt.
func (s *Service) Segment(ctx context.Context, outletID int64) (string, error) {
	if outletID <= 0 {
		return "", apperror.NewValidation("outlet id must be positive").
			WithDetail("field", "outletId").
			WithDetail("value", outletID)
	}

	o, err := s.repo.GetByID(ctx, outletID)
	if err != nil {
		return "", err
	}
	return o.Segment(), nil
}

// Get retrieves an outlet by id.
func (s *Service) Get(ctx context.Context, outletID int64) (*Outlet, error) {
	return s.repo.GetByID(ctx, outletID)
}

// List retrieves all outlets.
func (s *Service) List(ctx context.Context) ([]*Outlet, error) {
	return s.repo.List(ctx)
}

// Create validates and inserts a new outlet.
func (s *Service) Create(ctx context.Context, o *Outlet) error {
	if err := o.Validate(ctx); err != nil {
		return err
	}

	exists, err := s.repo.ExistsByCode(ctx, o.Code)
	if err != nil {
		return err
	}
	if exists {
		return apperror.NewDuplicate("outlet", "code", o.Code)
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return err
	}

	logger.Info(ctx, "outlet created", "outlet_id", o.ID, "code", o.Code)
	return nil
}
