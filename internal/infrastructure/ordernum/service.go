// Package ordernum provides the collision-safe order number allocator.
// It implements the core/ordernum.Generator contract on top of the order
// store and the outlet directory.
package ordernum

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"sellpoint/internal/core/apperror"
	corenum "sellpoint/internal/core/ordernum"
	"sellpoint/internal/core/tx"
	"sellpoint/internal/domain/order"
	"sellpoint/pkg/logger"
	"sellpoint/pkg/randtoken"
)

var tracer = otel.Tracer("sellpoint/ordernum")

// Retry discipline. Sequence formats re-derive the next value inside a
// fresh transaction on every attempt; random formats just roll a new token.
const (
	sequenceMaxAttempts = 5
	randomMaxAttempts   = 10
	backoffBase         = 10 * time.Millisecond
)

// OrderStore is the slice of order persistence the allocator needs.
// order.Repository satisfies it. LastNumberByPrefix and ExistsByNumber must
// observe one snapshot when called inside a single transaction.
type OrderStore interface {
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	LastNumberByPrefix(ctx context.Context, prefix string) (string, error)
	LastByOutlet(ctx context.Context, outletID int64) (*order.Order, error)
	CountByOutlet(ctx context.Context, outletID int64) (int64, error)
	CountByOutletSince(ctx context.Context, outletID int64, since time.Time) (int64, error)
}

// OutletResolver resolves an outlet id to its padded number segment.
// outlet.Service satisfies it.
type OutletResolver interface {
	Segment(ctx context.Context, outletID int64) (string, error)
}

// Service allocates unique order numbers.
type Service struct {
	store     OrderStore
	outlets   OutletResolver
	txManager tx.Manager

	// now is injectable so tests can cross day boundaries.
	now func() time.Time
}

// Compile-time checks against the domain contracts.
var (
	_ corenum.Generator   = (*Service)(nil)
	_ corenum.Diagnostics = (*Service)(nil)
)

// NewService creates a new allocator.
func NewService(store OrderStore, outlets OutletResolver, txManager tx.Manager) *Service {
	return &Service{
		store:     store,
		outlets:   outlets,
		txManager: txManager,
		now:       time.Now,
	}
}

// Generate implements corenum.Generator.
//
// Config errors and unknown outlets fail before any allocation attempt.
// Collisions are absorbed inside the retry loops; the caller sees exactly
// one Result or one terminal error.
func (s *Service) Generate(ctx context.Context, cfg corenum.Config) (*corenum.Result, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "ordernum.generate",
		trace.WithAttributes(
			attribute.String("ordernum.format", string(cfg.Format)),
			attribute.Int64("ordernum.outlet_id", cfg.OutletID),
		))
	defer span.End()

	segment, err := s.outlets.Segment(ctx, cfg.OutletID)
	if err != nil {
		// Unknown outlet is fatal: no retry can make it exist.
		return nil, err
	}

	switch cfg.Format {
	case corenum.FormatSequential, corenum.FormatDateBased:
		return s.allocateSequence(ctx, cfg, segment)
	default:
		return s.allocateOpportunistic(ctx, cfg, segment)
	}
}

// allocateSequence issues the next per-scope counter value inside a
// transaction. The sequence is re-derived from the store on every attempt:
// two writers can observe the same last order before either commits, and
// only re-querying under a fresh transaction converges them. An in-process
// counter would be wrong the moment a second instance runs.
func (s *Service) allocateSequence(ctx context.Context, cfg corenum.Config, segment string) (*corenum.Result, error) {
	for attempt := 1; attempt <= sequenceMaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var res *corenum.Result
		err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
			scope := s.sequenceScope(cfg, segment)

			next, err := s.nextSequence(ctx, scope)
			if err != nil {
				return err
			}

			candidate := s.sequenceCandidate(cfg, segment, next)

			// Exact-existence re-check: defends against a trailing-segment
			// parse miss and against a concurrent transaction that
			// committed between the scope query and this point.
			exists, err := s.store.ExistsByNumber(ctx, candidate)
			if err != nil {
				return err
			}
			if exists {
				return apperror.NewNumberCollision(candidate)
			}

			res = &corenum.Result{
				Number:      candidate,
				Sequence:    next,
				GeneratedAt: s.now().UTC(),
			}
			return nil
		})
		if err == nil {
			return res, nil
		}
		if !apperror.IsNumberCollision(err) {
			return nil, err
		}

		logger.Debug(ctx, "order number collision, retrying",
			"format", string(cfg.Format),
			"outlet_id", cfg.OutletID,
			"attempt", attempt,
		)
		if attempt < sequenceMaxAttempts {
			if err := s.backoff(ctx, attempt); err != nil {
				return nil, err
			}
		}
	}

	return nil, apperror.NewNumberExhausted(sequenceMaxAttempts)
}

// allocateOpportunistic rolls random candidates until one is free.
// No transaction: collisions are astronomically unlikely, and the unique
// index on the order number catches the residual check-then-insert window.
// Hybrid shares the same bounded budget as the pure random formats.
func (s *Service) allocateOpportunistic(ctx context.Context, cfg corenum.Config, segment string) (*corenum.Result, error) {
	for attempt := 1; attempt <= randomMaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidate := s.randomCandidate(cfg, segment)

		exists, err := s.store.ExistsByNumber(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if !exists {
			return &corenum.Result{
				Number:      candidate,
				Sequence:    0,
				GeneratedAt: s.now().UTC(),
			}, nil
		}

		logger.Debug(ctx, "random order number collision, regenerating",
			"format", string(cfg.Format),
			"outlet_id", cfg.OutletID,
			"attempt", attempt,
		)
	}

	return nil, apperror.NewNumberExhausted(randomMaxAttempts)
}

// nextSequence derives the next counter value for a scope prefix:
// last issued + 1, or 1 when the scope has no orders yet. A last number
// with an unparseable tail also restarts at 1; the existence re-check
// keeps that from ever producing a duplicate.
func (s *Service) nextSequence(ctx context.Context, scope string) (int64, error) {
	last, err := s.store.LastNumberByPrefix(ctx, scope)
	if err != nil {
		return 0, err
	}
	if last == "" {
		return 1, nil
	}
	seq, ok := corenum.ParseTrailingSequence(last)
	if !ok {
		return 1, nil
	}
	return seq + 1, nil
}

// sequenceScope returns the prefix that partitions the counter:
// outlet-wide for Sequential, per UTC day for DateBased.
func (s *Service) sequenceScope(cfg corenum.Config, segment string) string {
	if cfg.Format == corenum.FormatDateBased {
		return corenum.DateScopePrefix(cfg.Prefix, segment, corenum.DateSegment(s.now()))
	}
	return corenum.ScopePrefix(cfg.Prefix, segment)
}

func (s *Service) sequenceCandidate(cfg corenum.Config, segment string, seq int64) string {
	if cfg.Format == corenum.FormatDateBased {
		return corenum.CandidateDateBased(cfg.Prefix, segment, corenum.DateSegment(s.now()), seq, cfg.SequenceLength)
	}
	return corenum.CandidateSequential(cfg.Prefix, segment, seq, cfg.SequenceLength)
}

func (s *Service) randomCandidate(cfg corenum.Config, segment string) string {
	switch cfg.Format {
	case corenum.FormatCompactNumeric:
		return corenum.CandidateCompact(cfg.Prefix, segment, randtoken.Numeric(corenum.CompactTokenLength))
	case corenum.FormatHybrid:
		return corenum.CandidateHybrid(cfg.Prefix, segment,
			corenum.DateSegment(s.now()), randtoken.New(corenum.HybridTokenLength, false))
	default: // FormatRandom, FormatRandomNumeric
		return corenum.CandidateRandom(cfg.Prefix, segment,
			randtoken.New(cfg.RandomLength, cfg.NumericOnly))
	}
}

// backoff waits 2^attempt * 10ms or until the context is done.
func (s *Service) backoff(ctx context.Context, attempt int) error {
	delay := time.Duration(1<<attempt) * backoffBase
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
