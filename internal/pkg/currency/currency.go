// Package currency converts between human decimal amounts and integer minor
// units for a 6-decimal stablecoin. All arithmetic on minor units stays in
// integer or arbitrary-precision space; binary floating point is never used.
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Decimals is the number of decimal places of the settlement token (USDC).
const Decimals = 6

var unitScale = decimal.New(1, Decimals)

// ToMinorUnits parses a decimal string like "25.00" into minor units
// (25000000). Negative, non-numeric, and over-precise inputs are rejected.
func ToMinorUnits(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("invalid amount %q: must not be negative", s)
	}
	scaled := d.Mul(unitScale)
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("invalid amount %q: more than %d decimal places", s, Decimals)
	}
	if !scaled.BigInt().IsInt64() {
		return 0, fmt.Errorf("invalid amount %q: out of range", s)
	}
	return scaled.IntPart(), nil
}

// ToDecimalString renders minor units as a fixed-point decimal string:
// 1000000 -> "1.000000".
func ToDecimalString(minor int64) string {
	return decimal.New(minor, -Decimals).StringFixed(Decimals)
}

// MustToMinorUnits is ToMinorUnits for operator-supplied configuration values
// that are validated at startup.
func MustToMinorUnits(s string) int64 {
	v, err := ToMinorUnits(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ParsePercent parses a fee percentage like "5" or "2.5" into a decimal.
func ParsePercent(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid percentage %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("invalid percentage %q: must not be negative", s)
	}
	return d, nil
}
