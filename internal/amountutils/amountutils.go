// Package amountutils converts the monetary strings found in statements into
// decimal values.
package amountutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// currencyPattern strips the currency markers seen across supported sources.
var currencyPattern = regexp.MustCompile(`(?i)₹|\$|£|€|rs\.?|inr`)

// ParseAmount strips currency symbols and thousands separators, then parses
// the remainder as a signed decimal. Sign semantics are resolved by the
// caller, not here.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(amountStr)
	cleaned = currencyPattern.ReplaceAllString(cleaned, "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" || cleaned == "-" {
		return decimal.Zero, fmt.Errorf("no numeric value in %q", amountStr)
	}

	dec, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", amountStr, err)
	}
	return dec, nil
}

// ParseMagnitude is ParseAmount with the sign dropped.
func ParseMagnitude(amountStr string) (decimal.Decimal, error) {
	dec, err := ParseAmount(amountStr)
	if err != nil {
		return decimal.Zero, err
	}
	return dec.Abs(), nil
}
