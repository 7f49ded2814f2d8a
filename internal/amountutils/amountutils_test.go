package amountutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name       string
		amountStr  string
		expectedOk bool
		expected   string
	}{
		{"Plain number", "1234.56", true, "1234.56"},
		{"Thousands separators", "1,234.56", true, "1234.56"},
		{"Rupee symbol", "₹1,234.56", true, "1234.56"},
		{"Rs prefix", "Rs. 1,234.56", true, "1234.56"},
		{"INR prefix", "INR 500", true, "500"},
		{"Dollar symbol", "$99.99", true, "99.99"},
		{"Negative", "-150.00", true, "-150"},
		{"Negative with symbol", "-₹150.00", true, "-150"},
		{"Internal spaces", " 1 234.56 ", true, "1234.56"},
		{"Empty", "", false, ""},
		{"Garbage", "abc", false, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := ParseAmount(tc.amountStr)
			if !tc.expectedOk {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			expected, _ := decimal.NewFromString(tc.expected)
			assert.True(t, expected.Equal(amount), "expected %s, got %s", expected, amount)
		})
	}
}

func TestParseMagnitude(t *testing.T) {
	amount, err := ParseMagnitude("-₹1,500.25")
	assert.NoError(t, err)
	assert.Equal(t, "1500.25", amount.StringFixed(2))
}

func TestParseAmountPreservesPrecision(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3 in decimal arithmetic.
	a, err := ParseAmount("0.1")
	assert.NoError(t, err)
	b, err := ParseAmount("0.2")
	assert.NoError(t, err)
	assert.Equal(t, "0.3", a.Add(b).String())
}
