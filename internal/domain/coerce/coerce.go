// Package coerce provides the lenient scalar conversions used by the legacy
// payload decoders. Both helpers are total: they degrade to a fallback value
// instead of returning an error.
package coerce

import (
	"encoding/base64"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DecodeTextSafely decodes a standard base64 string to UTF-8 text. If the
// input is not valid base64, or the decoded bytes are not valid UTF-8, the
// original string is returned unchanged.
func DecodeTextSafely(s string) string {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return s
	}
	if !utf8.Valid(b) {
		return s
	}
	return string(b)
}

// ParseOptionalNumber parses s as a number. It reports false for empty or
// whitespace-only input, for anything strconv rejects, and for NaN or
// infinities. A failed parse yields absence, never zero.
func ParseOptionalNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
