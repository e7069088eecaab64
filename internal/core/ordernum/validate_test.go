package ordernum

import (
	"testing"
	"time"
)

func TestValidateNumber_RoundTrip(t *testing.T) {
	// Every candidate shape the strategies produce must pass the validator.
	seg := OutletSegment(7)
	date := DateSegment(time.Now())

	numbers := []string{
		CandidateSequential("ORD", seg, 1, 4),
		CandidateDateBased("ORD", seg, date, 1, 4),
		CandidateRandom("ORD", seg, "A7B9C2"),
		CandidateCompact("ORD", seg, "12345"),
		CandidateHybrid("ORD", seg, date, "A7B9"),
	}

	for _, n := range numbers {
		report := ValidateNumber(n, "ORD")
		if !report.Valid {
			t.Errorf("generated number %q failed validation: %v", n, report.Errors)
		}
	}
}

func TestValidateNumber_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		number string
	}{
		{"empty", ""},
		{"wrong prefix", "INV-007-0001"},
		{"too few segments", "ORD-007"},
		{"non-numeric outlet", "ORD-ABC-0001"},
		{"zero outlet", "ORD-000-0001"},
		{"empty segment", "ORD-007--0001"},
		{"compact with letters", "ORD007A2345"},
		{"compact too short", "ORD0071"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := ValidateNumber(tt.number, "ORD")
			if report.Valid {
				t.Errorf("expected %q to fail validation", tt.number)
			}
			if len(report.Errors) == 0 {
				t.Errorf("expected errors for %q", tt.number)
			}
		})
	}
}

func TestValidateNumber_DefaultPrefix(t *testing.T) {
	report := ValidateNumber("ORD-007-0001", "")
	if !report.Valid {
		t.Errorf("empty prefix should default to ORD: %v", report.Errors)
	}
}
