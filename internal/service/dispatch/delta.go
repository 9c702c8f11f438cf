package dispatch

import (
	"fmt"
	"strconv"
	"strings"

	"toyworks-orders/internal/apperr"
)

// ParseDelta normalizes a raw "dispatch today" input. Non-digit characters
// are stripped; empty or unparseable input normalizes to 0. The result is
// never negative.
func ParseDelta(raw string) int64 {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// DeltaError reports a requested dispatch quantity exceeding a line's pending
// quantity. One offending line rejects the whole submission.
type DeltaError struct {
	Line      string
	Requested int64
	Pending   int64
}

func (e *DeltaError) Error() string {
	return fmt.Sprintf("dispatch of %d pcs exceeds pending %d for %q", e.Requested, e.Pending, e.Line)
}

// Unwrap makes the error match apperr.Invalid for transport-level mapping.
func (e *DeltaError) Unwrap() error { return apperr.Invalid }
