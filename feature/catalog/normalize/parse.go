package normalize

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParsePrice parses a price cell. Empty or unparsable cells yield 0.
func ParsePrice(raw string) float64 {
	v, _ := parsePrice(raw)
	return v
}

// ParseQuantity parses a stock cell into a non-negative whole number.
// Empty or unparsable cells yield 0.
func ParseQuantity(raw string) int {
	v, _ := parseQuantity(raw)
	return v
}

// parsePrice reports degraded when a non-empty cell fell back to 0.
func parsePrice(raw string) (v float64, degraded bool) {
	cleaned := cleanNumber(raw, false)
	if cleaned == "" {
		return 0, strings.TrimSpace(raw) != ""
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, true
	}
	return f, false
}

func parseQuantity(raw string) (v int, degraded bool) {
	cleaned := cleanNumber(raw, true)
	if cleaned == "" || cleaned == "-" {
		return 0, strings.TrimSpace(raw) != ""
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, true
	}
	f = math.Floor(f)
	switch {
	case f < 0:
		return 0, false
	case f > math.MaxInt32:
		return math.MaxInt32, false
	}
	return int(f), false
}

// cleanNumber drops whitespace, turns commas into decimal points and keeps only
// digits and points. A leading minus survives when signed is set.
func cleanNumber(raw string, signed bool) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case unicode.IsSpace(r):
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == ',':
			b.WriteByte('.')
		case r == '-' && signed && b.Len() == 0:
			b.WriteByte('-')
		}
	}
	return b.String()
}
