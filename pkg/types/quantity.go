package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseQuantity parses a user-supplied quantity. Surrounding whitespace is
// ignored; anything else that is not a base-10 integer fails with
// ErrInvalidQuantity. Nothing is coerced to zero.
func ParseQuantity(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidQuantity)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, raw)
	}
	return n, nil
}

// AddQuantity returns a+b, or ErrInvalidQuantity if the sum overflows int64.
func AddQuantity(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: %d + %d overflows", ErrInvalidQuantity, a, b)
	}
	return a + b, nil
}
