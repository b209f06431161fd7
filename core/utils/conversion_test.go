package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want string
	}{
		{"Nil", nil, ""},
		{"String", "A100", "A100"},
		{"Bytes", []byte("x"), "x"},
		{"Integral float", float64(45000), "45000"},
		{"Fractional float", 1234.5, "1234.5"},
		{"Float32", float32(2.5), "2.5"},
		{"Bool", true, "true"},
		{"Int", 42, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.val))
		})
	}
}

func TestToStrings(t *testing.T) {
	assert.Equal(t, []string{"A1", "3", ""}, ToStrings([]any{"A1", float64(3), nil}))
	assert.Empty(t, ToStrings(nil))
}
