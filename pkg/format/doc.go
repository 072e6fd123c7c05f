// Package format renders numbers for display.
//
// Every function is pure and never fails on bad input: invalid or zero values render as
// "0". The one exception is SimplifyFraction, which rejects a zero denominator with
// ErrZeroDenominator.
//
// Formatting includes:
//   - Byte quantities: binary units from Bytes up to YiB, two fractional digits
//   - Fixed-point decimals: integer-scaled values such as wei, two fractional digits
//   - Fractions: reduced to lowest terms with the sign carried by the numerator
package format
