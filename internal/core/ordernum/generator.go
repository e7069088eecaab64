package ordernum

import (
	"context"
	"time"
)

// Result is the immutable outcome of a successful allocation. It is
// produced once and consumed once by the order-creation path.
type Result struct {
	// Number is unique across committed orders at the instant of the
	// uniqueness check. The caller must persist it promptly, ideally in
	// the same transaction for sequence formats.
	Number string `json:"orderNumber"`

	// Sequence is the issued counter value for Sequential/DateBased,
	// zero for formats without a sequence concept.
	Sequence int64 `json:"sequence"`

	// GeneratedAt is the timestamp of successful allocation.
	GeneratedAt time.Time `json:"generatedAt"`
}

// Generator allocates collision-free order numbers. This is the only entry
// point order-creation logic should call; candidate builders alone do not
// guarantee uniqueness.
type Generator interface {
	// Generate resolves the outlet, dispatches to the strategy for
	// cfg.Format and returns exactly one Result or one terminal error.
	// Transient collisions are absorbed internally.
	Generate(ctx context.Context, cfg Config) (*Result, error)
}

// OutletStats summarizes issued numbers for one outlet. Pure read, no
// allocation side effects.
type OutletStats struct {
	OutletID    int64      `json:"outletId"`
	TotalOrders int64      `json:"totalOrders"`
	TodayOrders int64      `json:"todayOrders"`
	LastNumber  string     `json:"lastNumber,omitempty"`
	LastIssued  *time.Time `json:"lastIssuedAt,omitempty"`
}

// FormatProbe is one row of a format comparison: a sample candidate per
// format, produced without persisting anything.
type FormatProbe struct {
	Format Format `json:"format"`
	Sample string `json:"sample,omitempty"`
	Length int    `json:"length"`
	Error  string `json:"error,omitempty"`
}

// Diagnostics exposes operational read-only helpers next to the generator.
type Diagnostics interface {
	// OutletStats returns counters and the last issued number for outlet.
	OutletStats(ctx context.Context, outletID int64) (*OutletStats, error)

	// CompareFormats generates one unpersisted candidate per format.
	CompareFormats(ctx context.Context, outletID int64, prefix string) ([]FormatProbe, error)
}
