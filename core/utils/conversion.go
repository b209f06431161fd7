package utils

import (
	"fmt"
	"strconv"
)

// ToString converts a decoded cell value to its text form.
// Nil becomes the empty string and floats never use exponent notation.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToStrings converts a row of decoded cell values.
func ToStrings(vals []any) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = ToString(v)
	}
	return out
}
