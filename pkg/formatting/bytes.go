// Package formatting converts byte counts to and from human-readable sizes.
package formatting

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Units are base-1024.
var units = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// FormatBytes renders n with the largest unit that keeps the value at or above 1,
// e.g. FormatBytes(1536, 1) == "1.5 KB".
func FormatBytes(n int64, precision int) string {
	if n == 0 {
		return "0 B"
	}
	precision = max(precision, 0)

	v, i := float64(n), 0
	for math.Abs(v) >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}

	return strconv.FormatFloat(v, 'f', precision, 64) + " " + units[i]
}

// ParseBytes reads sizes such as "1MB", "512 kb", "1.5GB", or "4096".
// A bare number is bytes.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty byte size")
	}

	split := strings.IndexFunc(s, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsSpace(r) })
	num, unit := s, ""
	if split >= 0 {
		num, unit = s[:split], strings.ToUpper(strings.TrimSpace(s[split:]))
	}

	value, err := strconv.ParseFloat(num, 64)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid byte size: %q", s)
	}
	if unit == "" {
		return int64(value), nil
	}

	idx := slices.Index(units, unit)
	if idx < 0 {
		return 0, fmt.Errorf("unknown byte size unit: %q", unit)
	}
	return int64(value * math.Pow(1024, float64(idx))), nil
}
