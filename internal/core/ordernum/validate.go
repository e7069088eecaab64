package ordernum

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidationReport is the outcome of a structural order number check.
// Used by data-quality audits, never by allocation.
type ValidationReport struct {
	Number      string   `json:"number"`
	Valid       bool     `json:"valid"`
	Errors      []string `json:"errors,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// ValidateNumber checks structural conformance of an arbitrary identifier:
// expected prefix, segment count and a numeric positive outlet segment.
// Separator-free numbers are checked against the compact shape.
func ValidateNumber(number, prefix string) ValidationReport {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	report := ValidationReport{Number: number}

	if number == "" {
		report.Errors = append(report.Errors, "number is empty")
		return report
	}

	if !strings.Contains(number, "-") {
		validateCompact(&report, number, prefix)
	} else {
		validateSegmented(&report, number, prefix)
	}

	report.Valid = len(report.Errors) == 0
	return report
}

func validateSegmented(report *ValidationReport, number, prefix string) {
	segments := strings.Split(number, "-")

	if segments[0] != prefix {
		report.Errors = append(report.Errors,
			fmt.Sprintf("prefix is %q, expected %q", segments[0], prefix))
		report.Suggestions = append(report.Suggestions,
			fmt.Sprintf("numbers issued by this system start with %q", prefix))
	}

	if len(segments) < 3 {
		report.Errors = append(report.Errors,
			fmt.Sprintf("number has %d segments, expected at least 3", len(segments)))
		report.Suggestions = append(report.Suggestions,
			"expected shape PREFIX-OUTLET-SUFFIX, e.g. ORD-007-0001")
		return
	}

	outlet, err := strconv.ParseInt(segments[1], 10, 64)
	if err != nil {
		report.Errors = append(report.Errors,
			fmt.Sprintf("outlet segment %q is not numeric", segments[1]))
	} else if outlet <= 0 {
		report.Errors = append(report.Errors,
			fmt.Sprintf("outlet segment %q is not a positive id", segments[1]))
	}

	for i, seg := range segments {
		if seg == "" {
			report.Errors = append(report.Errors,
				fmt.Sprintf("segment %d is empty", i+1))
		}
	}
}

func validateCompact(report *ValidationReport, number, prefix string) {
	if !strings.HasPrefix(number, prefix) {
		report.Errors = append(report.Errors,
			fmt.Sprintf("number does not start with prefix %q", prefix))
		return
	}

	rest := number[len(prefix):]
	if len(rest) < 3+CompactTokenLength {
		report.Errors = append(report.Errors,
			fmt.Sprintf("compact number body %q is too short", rest))
		report.Suggestions = append(report.Suggestions,
			fmt.Sprintf("compact shape is %s + 3-digit outlet + %d-digit token", prefix, CompactTokenLength))
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			report.Errors = append(report.Errors,
				fmt.Sprintf("compact number body contains non-digit %q", r))
			break
		}
	}
}
