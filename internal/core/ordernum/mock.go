package ordernum

import (
	"context"
	"time"
)

// MockGenerator is a test implementation of Generator.
// Use in unit tests to avoid database dependencies.
type MockGenerator struct {
	GenerateFunc func(ctx context.Context, cfg Config) (*Result, error)
}

// Generate implements Generator.
func (m *MockGenerator) Generate(ctx context.Context, cfg Config) (*Result, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, cfg)
	}
	// Default: predictable mock number
	return &Result{
		Number:      "ORD-001-0001",
		Sequence:    1,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// Ensure compile-time interface compliance.
var _ Generator = (*MockGenerator)(nil)
