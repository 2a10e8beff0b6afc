package transaction

import (
	"math"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var maxAmount = decimal.NewFromInt(math.MaxInt64)

// SanitizeAmount turns free-form amount input into whole won.
// Every non-digit is stripped, so "12,000원" and "-12 000" both give 12000.
// Empty input is zero and values past int64 clamp to math.MaxInt64.
func SanitizeAmount(s string) int64 {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, s)

	if digits == "" {
		return 0
	}

	d, err := decimal.NewFromString(digits)
	if err != nil {
		return 0
	}

	if d.GreaterThan(maxAmount) {
		return math.MaxInt64
	}

	return d.IntPart()
}

// SanitizeTitle trims surrounding whitespace and drops control characters
// other than newlines, which the multi-line title field keeps.
func SanitizeTitle(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || !unicode.IsControl(r) {
			return r
		}

		return -1
	}, s)

	return strings.TrimSpace(s)
}
