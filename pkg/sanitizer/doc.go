// Package sanitizer provides text normalization functions for content shown in the client.
//
// All functions are pure and safe for concurrent use. They handle malformed input
// gracefully, typically by passing unmatched syntax through or returning an empty
// string, rather than returning errors.
//
// Sanitization includes:
//   - Markdown: Strip formatting syntax with an ordered pipeline of named stages
//   - Hex: Decode hex pairs to printable ASCII, dropping control and high bytes
//   - Strings: URL-safe base64 and blank checks
//   - Slices: Duplicate detection
package sanitizer
