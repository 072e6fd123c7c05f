package format

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

var byteUnits = []string{"Bytes", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"}

const byteStep = 1024

// FormatBytes renders a byte count with the largest binary unit that keeps the
// magnitude below 1024. Magnitudes past YiB stay in YiB.
func FormatBytes(bytes float64) string {
	if bytes == 0 || math.IsNaN(bytes) || math.IsInf(bytes, 0) {
		return "0"
	}

	unit := 0
	remainder := bytes
	for remainder >= byteStep && unit < len(byteUnits)-1 {
		remainder /= byteStep
		unit++
	}

	return toFixed2(remainder) + " " + byteUnits[unit]
}

func FormatBytesString(bytes string) string {
	s := strings.TrimSpace(bytes)
	if s == "" {
		return "0"
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "0"
	}
	return FormatBytes(f)
}

// toFixed2 rounds half away from zero on the exact binary value of f.
func toFixed2(f float64) string {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		return "0"
	}
	return r.FloatString(2)
}
