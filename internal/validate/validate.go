package validate

import (
	"strconv"
	"strings"
)

// BookID parses a book id path/form value. Ids are positive integers
// assigned by the store.
func BookID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Page parses a 1-indexed page number, clamping anything invalid to 1.
func Page(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// PageSize parses a page size, falling back to def when missing or invalid.
func PageSize(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Qty parses a cart quantity form value. Zero and negatives are legal (the
// cart treats them as removal); garbage clamps to 0, and large values clamp
// to 50 to avoid abuse.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	if n > 50 {
		return 50
	}
	return n
}
