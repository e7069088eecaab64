// Package ordernum provides domain contracts for order number generation.
// Implementations live in the infrastructure layer.
package ordernum

import (
	"sellpoint/internal/core/apperror"
)

// Format selects the encoding strategy for generated order numbers.
type Format string

const (
	// FormatSequential issues monotonically increasing per-outlet numbers:
	// ORD-007-0001. Requires a transactional read-then-write.
	FormatSequential Format = "sequential"

	// FormatDateBased resets the sequence per outlet and UTC calendar day:
	// ORD-007-20250115-0001.
	FormatDateBased Format = "date-based"

	// FormatRandom issues an alphanumeric token: ORD-007-A7B9C2.
	// Cheap to allocate and leaks no order volume.
	FormatRandom Format = "random"

	// FormatRandomNumeric is FormatRandom restricted to digits.
	FormatRandomNumeric Format = "random-numeric"

	// FormatCompactNumeric issues a short separator-free number meant to be
	// typed by hand: ORD00712345.
	FormatCompactNumeric Format = "compact-numeric"

	// FormatHybrid combines the date segment with a short random token:
	// ORD-007-20250115-A7B9. Day-sortable without the sequential
	// read-modify-write race.
	FormatHybrid Format = "hybrid"
)

// Defaults applied by Config.Normalize.
const (
	DefaultPrefix         = "ORD"
	DefaultSequenceLength = 4
	DefaultRandomLength   = 6

	// CompactTokenLength is fixed: compact numbers trade configurability
	// for a stable hand-typeable shape.
	CompactTokenLength = 5

	// HybridTokenLength is the random tail of hybrid numbers.
	HybridTokenLength = 4
)

// Config describes a single generation request. It is constructed per call
// and never persisted.
type Config struct {
	// Format selects the encoding strategy.
	Format Format `json:"format"`

	// OutletID is the owning outlet; must resolve before any candidate
	// is generated.
	OutletID int64 `json:"outletId"`

	// Prefix is the leading identifier segment, default "ORD".
	Prefix string `json:"prefix"`

	// SequenceLength is the zero-padding width for sequence formats.
	SequenceLength int `json:"sequenceLength"`

	// RandomLength is the token length for random formats.
	RandomLength int `json:"randomLength"`

	// NumericOnly restricts random tokens to digits.
	NumericOnly bool `json:"numericOnly"`
}

// Normalize fills zero-valued fields with defaults.
func (c *Config) Normalize() {
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}
	if c.SequenceLength == 0 {
		c.SequenceLength = DefaultSequenceLength
	}
	if c.RandomLength == 0 {
		c.RandomLength = DefaultRandomLength
	}
	if c.Format == FormatRandomNumeric {
		c.NumericOnly = true
	}
}

// Validate checks the configuration contract. It runs before any store
// access: a bad config must never cost a database round trip.
func (c Config) Validate() error {
	switch c.Format {
	case FormatSequential, FormatDateBased, FormatRandom,
		FormatRandomNumeric, FormatCompactNumeric, FormatHybrid:
	default:
		return apperror.NewValidation("unsupported order number format").
			WithDetail("field", "format").
			WithDetail("value", string(c.Format))
	}

	if c.OutletID <= 0 {
		return apperror.NewValidation("outlet id must be positive").
			WithDetail("field", "outletId").
			WithDetail("value", c.OutletID)
	}
	if c.SequenceLength < 0 {
		return apperror.NewValidation("sequence length must not be negative").
			WithDetail("field", "sequenceLength")
	}
	if c.RandomLength < 0 {
		return apperror.NewValidation("random length must not be negative").
			WithDetail("field", "randomLength")
	}
	return nil
}

// DefaultConfig returns a normalized config for format and outlet.
func DefaultConfig(format Format, outletID int64) Config {
	cfg := Config{Format: format, OutletID: outletID}
	cfg.Normalize()
	return cfg
}
