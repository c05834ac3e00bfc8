package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const delta = 0.0001

func TestSqrt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{name: "zero", x: 0, expected: 0},
		{name: "unit", x: 1, expected: 1},
		{name: "perfect_square", x: 144, expected: 12},
		{name: "irrational", x: 2, expected: math.Sqrt2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.expected, Sqrt(tt.x), delta)
		})
	}
}

func TestSqrtFloat32(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, float32(1.5), Sqrt(float32(2.25)), delta)
}

func TestAbs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{name: "negative", x: -3.5, expected: 3.5},
		{name: "positive", x: 3.5, expected: 3.5},
		{name: "zero", x: 0, expected: 0},
		{name: "negative_zero", x: math.Copysign(0, -1), expected: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.expected, Abs(tt.x), delta)
		})
	}
}

func TestPow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		x        float64
		y        float64
		expected float64
	}{
		{name: "square", x: 3, y: 2, expected: 9},
		{name: "fourth_root", x: 16, y: 0.25, expected: 2},
		{name: "identity", x: 7.25, y: 1, expected: 7.25},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.expected, Pow(tt.x, tt.y), delta)
		})
	}
}

func TestPowInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		x        float64
		r        int
		expected float64
	}{
		{name: "zeroth_power", x: 5.5, r: 0, expected: 1},
		{name: "first_power", x: 5.5, r: 1, expected: 5.5},
		{name: "cube", x: -2, r: 3, expected: -8},
		{name: "fourth", x: 1.5, r: 4, expected: 5.0625},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.expected, PowInt(tt.x, tt.r), delta)
		})
	}
}
