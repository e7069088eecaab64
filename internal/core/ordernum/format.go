package ordernum

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// OutletSegment returns the zero-padded outlet segment embedded in every
// order number. Three digits cover the realistic outlet count per merchant;
// larger ids simply widen the segment.
func OutletSegment(outletID int64) string {
	return fmt.Sprintf("%03d", outletID)
}

// DateSegment returns the UTC calendar date segment (YYYYMMDD).
func DateSegment(t time.Time) string {
	return t.UTC().Format("20060102")
}

// ScopePrefix returns the prefix that partitions the identifier space for
// one outlet: "ORD-007-". Sequence queries match on this.
func ScopePrefix(prefix, outletSegment string) string {
	return prefix + "-" + outletSegment + "-"
}

// DateScopePrefix narrows the scope to one calendar day: "ORD-007-20250115-".
func DateScopePrefix(prefix, outletSegment, dateSegment string) string {
	return ScopePrefix(prefix, outletSegment) + dateSegment + "-"
}

// --- Candidate builders ---
// Candidates are not yet verified against the store; the allocator owns
// the uniqueness check.

// CandidateSequential formats ORD-007-0001.
func CandidateSequential(prefix, outletSegment string, seq int64, width int) string {
	return fmt.Sprintf("%s%0*d", ScopePrefix(prefix, outletSegment), width, seq)
}

// CandidateDateBased formats ORD-007-20250115-0001.
func CandidateDateBased(prefix, outletSegment, dateSegment string, seq int64, width int) string {
	return fmt.Sprintf("%s%0*d", DateScopePrefix(prefix, outletSegment, dateSegment), width, seq)
}

// CandidateRandom formats ORD-007-A7B9C2.
func CandidateRandom(prefix, outletSegment, token string) string {
	return ScopePrefix(prefix, outletSegment) + token
}

// CandidateCompact formats ORD00712345 (no separators).
func CandidateCompact(prefix, outletSegment, token string) string {
	return prefix + outletSegment + token
}

// CandidateHybrid formats ORD-007-20250115-A7B9.
func CandidateHybrid(prefix, outletSegment, dateSegment, token string) string {
	return DateScopePrefix(prefix, outletSegment, dateSegment) + token
}

// ParseTrailingSequence extracts the numeric tail of a sequence-format
// number. Returns false for numbers whose tail is not a plain integer,
// e.g. random tokens or hand-entered legacy data.
func ParseTrailingSequence(number string) (int64, bool) {
	idx := strings.LastIndexByte(number, '-')
	if idx < 0 || idx == len(number)-1 {
		return 0, false
	}
	seq, err := strconv.ParseInt(number[idx+1:], 10, 64)
	if err != nil || seq < 0 {
		return 0, false
	}
	return seq, true
}
