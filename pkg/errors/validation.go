package errors

import (
	"strings"
	"unicode"
)

// ValidateLane rejects negative lane indices. The renderer folds them onto
// the palette, but a negative lane in a document is always a bug upstream.
func ValidateLane(lane int) error {
	if lane < 0 {
		return New(ErrCodeInvalidLane, "lane must be non-negative, got %d", lane)
	}
	return nil
}

// ValidateSize rejects negative pixel sizes.
func ValidateSize(what string, n int) error {
	if n < 0 {
		return New(ErrCodeInvalidSize, "%s must be non-negative, got %d", what, n)
	}
	return nil
}

// ValidatePositive rejects zero or negative metrics such as radius, density
// and row height.
func ValidatePositive(what string, v float64) error {
	if v <= 0 {
		return New(ErrCodeInvalidSize, "%s must be positive, got %g", what, v)
	}
	return nil
}

// ValidatePath validates an output path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidPath, "path cannot start or end with whitespace")
	}

	return nil
}
