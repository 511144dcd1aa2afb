package cli

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    uint64
		expected string
	}{
		{name: "zero", input: 0, expected: "0"},
		{name: "thousands", input: 1234567, expected: "1,234,567"},
		{name: "max int64", input: math.MaxInt64, expected: "9,223,372,036,854,775,807"},
		{name: "above int64", input: math.MaxInt64 + 1, expected: "9,223,372,036,854,775,808"},
		{name: "max uint64", input: math.MaxUint64, expected: "18,446,744,073,709,551,615"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, amount(tt.input))
		})
	}
}
