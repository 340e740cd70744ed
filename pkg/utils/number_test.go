package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected float64
		ok       bool
	}{
		{name: "float64", input: 123.45, expected: 123.45, ok: true},
		{name: "float32", input: float32(2.5), expected: 2.5, ok: true},
		{name: "int", input: 100, expected: 100, ok: true},
		{name: "int32", input: int32(7), expected: 7, ok: true},
		{name: "int64", input: int64(900), expected: 900, ok: true},
		{name: "string numérica", input: "350.75", expected: 350.75, ok: true},
		{name: "string inválida", input: "n/a", expected: 0, ok: false},
		{name: "nulo", input: nil, expected: 0, ok: false},
		{name: "tipo inesperado", input: map[string]string{"value": "10"}, expected: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CoerceFloat(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTruncateToInt(t *testing.T) {
	assert.Equal(t, int64(350), TruncateToInt(350.0))
	assert.Equal(t, int64(350), TruncateToInt(350.99))
	assert.Equal(t, int64(0), TruncateToInt(0.4))
	assert.Equal(t, int64(-12), TruncateToInt(-12.7)) // truncamento, não floor
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 10.57, RoundWithTwoDecimalPlace(10.566))
	assert.Equal(t, 10.56, RoundWithTwoDecimalPlace(10.564))
	assert.Equal(t, float64(0), RoundWithTwoDecimalPlace(0))
}
