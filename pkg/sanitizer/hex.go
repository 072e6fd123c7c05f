package sanitizer

import (
	"regexp"
	"strconv"
	"strings"
)

var reHexPair = regexp.MustCompile(`[0-9A-Fa-f]{2}`)

// DecodeHexText decodes pairs of hex digits into printable ASCII text.
//
// A "0x" prefix is only stripped when it sits at runes 1-2, together with the single
// character before it, which is how quoted values arrive from contract calls
// (e.g. `"0x48690a`). A prefix at position 0 needs no handling since "x" never forms
// part of a pair. Bytes outside 0x20-0x7E are dropped and the result is trimmed.
func DecodeHexText(hex string) string {
	if hex == "" {
		return ""
	}

	s := hex
	if r := []rune(hex); len(r) >= 3 && r[1] == '0' && r[2] == 'x' {
		s = string(r[3:])
	}

	pairs := reHexPair.FindAllString(s, -1)
	if len(pairs) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(len(pairs))
	for _, pair := range pairs {
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			continue
		}
		if isPrintableASCII(byte(v)) {
			b.WriteByte(byte(v))
		}
	}

	return strings.TrimSpace(b.String())
}

func isPrintableASCII(c byte) bool {
	return c >= 0x20 && c <= 0x7e
}
