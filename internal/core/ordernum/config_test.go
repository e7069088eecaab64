package ordernum

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sellpoint/internal/core/apperror"
)

func TestConfig_Normalize(t *testing.T) {
	cfg := Config{Format: FormatSequential, OutletID: 7}
	cfg.Normalize()

	assert.Equal(t, "ORD", cfg.Prefix)
	assert.Equal(t, 4, cfg.SequenceLength)
	assert.Equal(t, 6, cfg.RandomLength)
}

func TestConfig_Normalize_RandomNumericForcesDigits(t *testing.T) {
	cfg := Config{Format: FormatRandomNumeric, OutletID: 7}
	cfg.Normalize()
	assert.True(t, cfg.NumericOnly)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid sequential", DefaultConfig(FormatSequential, 7), false},
		{"valid hybrid", DefaultConfig(FormatHybrid, 1), false},
		{"unknown format", Config{Format: "snowflake", OutletID: 7}, true},
		{"zero outlet", Config{Format: FormatRandom, OutletID: 0}, true},
		{"negative outlet", Config{Format: FormatRandom, OutletID: -3}, true},
		{"negative sequence length", Config{Format: FormatSequential, OutletID: 7, SequenceLength: -1}, true},
		{"negative random length", Config{Format: FormatRandom, OutletID: 7, RandomLength: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				appErr, ok := apperror.AsAppError(err)
				assert.True(t, ok)
				assert.Equal(t, apperror.CodeValidation, appErr.Code)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
