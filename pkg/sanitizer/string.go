package sanitizer

import (
	"encoding/base64"
	"strings"
)

// ToBase64URL encodes the UTF-8 bytes of s as unpadded URL-safe base64.
func ToBase64URL(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func IsNonEmpty(value string) bool {
	return strings.TrimSpace(value) != ""
}

// IsNonEmptyPtr treats a missing value as empty.
func IsNonEmptyPtr(value *string) bool {
	if value == nil {
		return false
	}
	return IsNonEmpty(*value)
}
