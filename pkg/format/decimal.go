package format

import (
	"math/big"
	"strings"
)

// DefaultDecimals is the scale of FIL and other 18-decimal tokens.
const DefaultDecimals = 18

var bigTen = big.NewInt(10)

// ParseNumber parses a decimal or scientific numeric string. An empty string is zero.
// Fractions ("a/b") are rejected.
func ParseNumber(value string) (*big.Rat, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return new(big.Rat), true
	}
	if strings.Contains(s, "/") {
		return nil, false
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, false
	}
	return r, true
}

// FormatDecimal interprets value as a fixed-point number with the given number of
// fractional digits and renders it with exactly two. Zero and invalid input give "0".
func FormatDecimal(value string, decimals int) string {
	r, ok := ParseNumber(value)
	if !ok || r.Sign() == 0 {
		return "0"
	}
	return scale(r, decimals).FloatString(2)
}

// FormatWei formats an 18-decimal integer amount.
func FormatWei(value string) string {
	return FormatDecimal(value, DefaultDecimals)
}

func FormatDecimalInt(value *big.Int, decimals int) string {
	if value == nil || value.Sign() == 0 {
		return "0"
	}
	return scale(new(big.Rat).SetInt(value), decimals).FloatString(2)
}

func scale(r *big.Rat, decimals int) *big.Rat {
	if decimals == 0 {
		return r
	}
	exp := decimals
	if exp < 0 {
		exp = -exp
	}
	factor := new(big.Rat).SetInt(new(big.Int).Exp(bigTen, big.NewInt(int64(exp)), nil))
	if decimals > 0 {
		return new(big.Rat).Quo(r, factor)
	}
	return new(big.Rat).Mul(r, factor)
}
