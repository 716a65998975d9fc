package errors

import (
	"math"
	"strings"
)

// validSides and validAligns enumerate the components of a placement token.
// A token is a primary side, optionally followed by "-" and an alignment.
var (
	validSides  = []string{"top", "bottom", "left", "right"}
	validAligns = []string{"start", "middle", "end"}
)

// ValidatePlacement validates a placement token.
// Valid tokens are a primary side (top, bottom, left, right) with an
// optional alignment suffix (-start, -middle, -end). A missing suffix
// means centered alignment, so "bottom" and "bottom-middle" are both valid.
func ValidatePlacement(token string) error {
	if token == "" {
		return New(ErrCodeInvalidPlacement, "placement cannot be empty")
	}

	side, align, hasAlign := strings.Cut(token, "-")

	if !contains(validSides, side) {
		return New(ErrCodeInvalidPlacement, "invalid placement side: %q", side)
	}

	if hasAlign && !contains(validAligns, align) {
		return New(ErrCodeInvalidPlacement, "invalid placement alignment: %q", align)
	}

	return nil
}

// ValidateOffset validates an offset distance.
// Offsets may be negative (the popper overlaps the reference) but must
// be finite: NaN and infinities would poison every coordinate computed
// from them.
func ValidateOffset(offset float64) error {
	if math.IsNaN(offset) {
		return New(ErrCodeInvalidOffsetDistance, "offset distance must be a number, got NaN")
	}
	if math.IsInf(offset, 0) {
		return New(ErrCodeInvalidOffsetDistance, "offset distance must be finite, got %v", offset)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
