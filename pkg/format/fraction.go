package format

import (
	"errors"
	"strconv"
)

var ErrZeroDenominator = errors.New("fraction denominator must not be zero")

// GCD returns the greatest common divisor of a and b using Euclid's algorithm.
// GCD(0, 0) is 0.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// SimplifyFraction reduces numerator/denominator to lowest terms. The sign is
// carried by the numerator, and a denominator of 1 is dropped.
func SimplifyFraction(numerator, denominator int64) (string, error) {
	if denominator == 0 {
		return "", ErrZeroDenominator
	}
	if numerator == 0 {
		return "0", nil
	}

	negative := (numerator < 0) != (denominator < 0)
	n, d := magnitude(numerator), magnitude(denominator)

	g := GCD(n, d)
	n /= g
	d /= g

	sign := ""
	if negative {
		sign = "-"
	}
	if d == 1 {
		return sign + strconv.FormatUint(n, 10), nil
	}
	return sign + strconv.FormatUint(n, 10) + "/" + strconv.FormatUint(d, 10), nil
}

// magnitude handles math.MinInt64, whose absolute value does not fit in an int64.
func magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}
