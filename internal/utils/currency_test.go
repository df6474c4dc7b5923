package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		// 143.48 sits just below its decimal value in binary; plain
		// truncation would send 14347 pence.
		{143.48, 14348},
		{100, 10000},
		{0.01, 1},
		{0.125, 13},
		{19.99, 1999},
		{0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToMinorUnits(tt.amount), "%.2f", tt.amount)
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "£143.48", FormatCurrency(143.48, "GBP"))
	assert.Equal(t, "€10.00", FormatCurrency(10, "EUR"))
	// Unknown codes fall back to the default currency symbol.
	assert.Equal(t, "£5.50", FormatCurrency(5.5, "XYZ"))
}

func TestValidateCurrencyCode(t *testing.T) {
	assert.True(t, ValidateCurrencyCode("GBP"))
	assert.True(t, ValidateCurrencyCode("USD"))
	assert.False(t, ValidateCurrencyCode("gbp"))
	assert.False(t, ValidateCurrencyCode(""))
}
