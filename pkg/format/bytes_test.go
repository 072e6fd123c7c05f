package format

import (
	"math"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{
			name:  "zero",
			input: 0,
			want:  "0",
		},
		{
			name:  "below one kibibyte",
			input: 512,
			want:  "512.00 Bytes",
		},
		{
			name:  "exactly one kibibyte",
			input: 1024,
			want:  "1.00 KiB",
		},
		{
			name:  "one and a half kibibytes",
			input: 1536,
			want:  "1.50 KiB",
		},
		{
			name:  "just below mebibyte stays in kibibytes",
			input: 1024*1024 - 1,
			want:  "1024.00 KiB",
		},
		{
			name:  "one pebibyte",
			input: 1125899906842624,
			want:  "1.00 PiB",
		},
		{
			name:  "past yobibyte stays in yobibytes",
			input: math.Pow(1024, 9),
			want:  "1024.00 YiB",
		},
		{
			name:  "fractional byte",
			input: 0.5,
			want:  "0.50 Bytes",
		},
		{
			name:  "half rounds away from zero",
			input: 1.125,
			want:  "1.13 Bytes",
		},
		{
			name:  "negative is not scaled",
			input: -2048,
			want:  "-2048.00 Bytes",
		},
		{
			name:  "NaN",
			input: math.NaN(),
			want:  "0",
		},
		{
			name:  "infinity",
			input: math.Inf(1),
			want:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.input)
			if got != tt.want {
				t.Errorf("FormatBytes(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatBytesString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "numeric string",
			input: "1073741824",
			want:  "1.00 GiB",
		},
		{
			name:  "surrounding whitespace",
			input: "  2048 ",
			want:  "2.00 KiB",
		},
		{
			name:  "empty string",
			input: "",
			want:  "0",
		},
		{
			name:  "zero string",
			input: "0",
			want:  "0",
		},
		{
			name:  "not a number",
			input: "lots",
			want:  "0",
		},
		{
			name:  "scientific notation",
			input: "1e3",
			want:  "1000.00 Bytes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytesString(tt.input)
			if got != tt.want {
				t.Errorf("FormatBytesString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
