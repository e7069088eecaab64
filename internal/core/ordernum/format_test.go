package ordernum

import (
	"testing"
	"time"
)

func TestCandidateShapes(t *testing.T) {
	seg := OutletSegment(7)
	if seg != "007" {
		t.Fatalf("OutletSegment(7) = %q", seg)
	}
	date := DateSegment(time.Date(2025, 1, 15, 23, 30, 0, 0, time.UTC))

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"sequential", CandidateSequential("ORD", seg, 1, 4), "ORD-007-0001"},
		{"date-based", CandidateDateBased("ORD", seg, date, 1, 4), "ORD-007-20250115-0001"},
		{"random", CandidateRandom("ORD", seg, "A7B9C2"), "ORD-007-A7B9C2"},
		{"compact", CandidateCompact("ORD", seg, "12345"), "ORD00712345"},
		{"hybrid", CandidateHybrid("ORD", seg, date, "A7B9"), "ORD-007-20250115-A7B9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestDateSegment_UTC(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	est := time.FixedZone("EST", -5*3600)
	d := DateSegment(time.Date(2025, 1, 15, 23, 30, 0, 0, est))
	if d != "20250116" {
		t.Errorf("date segment should use the UTC calendar day, got %s", d)
	}
}

func TestParseTrailingSequence(t *testing.T) {
	tests := []struct {
		number  string
		wantSeq int64
		wantOK  bool
	}{
		{"ORD-007-0001", 1, true},
		{"ORD-007-20250115-0042", 42, true},
		{"ORD-007-A7B9C2", 0, false},
		{"ORD00712345", 0, false},
		{"ORD-007-", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		seq, ok := ParseTrailingSequence(tt.number)
		if seq != tt.wantSeq || ok != tt.wantOK {
			t.Errorf("ParseTrailingSequence(%q) = (%d, %v), want (%d, %v)",
				tt.number, seq, ok, tt.wantSeq, tt.wantOK)
		}
	}
}
