package transaction_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/molog/internal/transaction"
)

func TestSanitizeAmount(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"", 0},
		{"abc", 0},
		{"12000", 12000},
		{"12,000원", 12000},
		{"-12 000", 12000},
		{"0012", 12},
		{"1.5", 15},
		{"99999999999999999999999", math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, transaction.SanitizeAmount(tt.input))
		})
	}
}

func TestSanitizeTitle(t *testing.T) {
	assert.Equal(t, "점심", transaction.SanitizeTitle("  점심\t "))
	assert.Equal(t, "a\nb", transaction.SanitizeTitle("a\n\x00b"))
	assert.Equal(t, "", transaction.SanitizeTitle("   "))
}
