package ordernum

import (
	"context"
	"time"

	corenum "sellpoint/internal/core/ordernum"
	"sellpoint/pkg/randtoken"
)

// OutletStats implements corenum.Diagnostics. Pure read: it never
// allocates or reserves anything.
func (s *Service) OutletStats(ctx context.Context, outletID int64) (*corenum.OutletStats, error) {
	if _, err := s.outlets.Segment(ctx, outletID); err != nil {
		return nil, err
	}

	total, err := s.store.CountByOutlet(ctx, outletID)
	if err != nil {
		return nil, err
	}

	startOfDay := s.now().UTC().Truncate(24 * time.Hour)
	today, err := s.store.CountByOutletSince(ctx, outletID, startOfDay)
	if err != nil {
		return nil, err
	}

	stats := &corenum.OutletStats{
		OutletID:    outletID,
		TotalOrders: total,
		TodayOrders: today,
	}

	last, err := s.store.LastByOutlet(ctx, outletID)
	if err != nil {
		return nil, err
	}
	if last != nil {
		stats.LastNumber = last.Number
		issued := last.CreatedAt
		stats.LastIssued = &issued
	}

	return stats, nil
}

// CompareFormats generates one candidate per format for operational tuning.
// Sequence candidates are derived from the current store state but nothing
// is persisted, so the reported numbers are samples, not reservations.
func (s *Service) CompareFormats(ctx context.Context, outletID int64, prefix string) ([]corenum.FormatProbe, error) {
	segment, err := s.outlets.Segment(ctx, outletID)
	if err != nil {
		return nil, err
	}
	if prefix == "" {
		prefix = corenum.DefaultPrefix
	}

	formats := []corenum.Format{
		corenum.FormatSequential,
		corenum.FormatDateBased,
		corenum.FormatRandom,
		corenum.FormatRandomNumeric,
		corenum.FormatCompactNumeric,
		corenum.FormatHybrid,
	}

	probes := make([]corenum.FormatProbe, 0, len(formats))
	for _, f := range formats {
		probe := corenum.FormatProbe{Format: f}

		sample, err := s.probeCandidate(ctx, f, prefix, segment)
		if err != nil {
			probe.Error = err.Error()
		} else {
			probe.Sample = sample
			probe.Length = len(sample)
		}
		probes = append(probes, probe)
	}

	return probes, nil
}

// probeCandidate builds a sample candidate for one format.
func (s *Service) probeCandidate(ctx context.Context, format corenum.Format, prefix, segment string) (string, error) {
	switch format {
	case corenum.FormatSequential:
		next, err := s.nextSequence(ctx, corenum.ScopePrefix(prefix, segment))
		if err != nil {
			return "", err
		}
		return corenum.CandidateSequential(prefix, segment, next, corenum.DefaultSequenceLength), nil

	case corenum.FormatDateBased:
		date := corenum.DateSegment(s.now())
		next, err := s.nextSequence(ctx, corenum.DateScopePrefix(prefix, segment, date))
		if err != nil {
			return "", err
		}
		return corenum.CandidateDateBased(prefix, segment, date, next, corenum.DefaultSequenceLength), nil

	case corenum.FormatRandom:
		return corenum.CandidateRandom(prefix, segment,
			randtoken.New(corenum.DefaultRandomLength, false)), nil

	case corenum.FormatRandomNumeric:
		return corenum.CandidateRandom(prefix, segment,
			randtoken.Numeric(corenum.DefaultRandomLength)), nil

	case corenum.FormatCompactNumeric:
		return corenum.CandidateCompact(prefix, segment,
			randtoken.Numeric(corenum.CompactTokenLength)), nil

	case corenum.FormatHybrid:
		return corenum.CandidateHybrid(prefix, segment,
			corenum.DateSegment(s.now()), randtoken.New(corenum.HybridTokenLength, false)), nil
	}

	return "", nil
}
