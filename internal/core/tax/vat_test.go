package tax_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/taxtrackng/taxtrack_backend/internal/core/tax"
)

func TestCalculateVAT(t *testing.T) {
	testCases := []struct {
		name     string
		base     string
		expected string
	}{
		{"zero base", "0", "0"},
		{"round number", "12000", "900"},
		{"fractional base rounds half away from zero", "5000.50", "375.04"},
		{"small base", "100", "7.5"},
		{"negative base coerces to zero", "-250", "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tax.CalculateVAT(decimal.RequireFromString(tc.base))
			assert.True(t, got.Equal(decimal.RequireFromString(tc.expected)),
				"VAT(%s): got %s, want %s", tc.base, got, tc.expected)
		})
	}
}
