package deseason

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotate(t *testing.T) {
	cycle := []float64{1, 2, 3, 4}

	tests := []struct {
		name  string
		shift int
		want  []float64
	}{
		{"zero", 0, []float64{1, 2, 3, 4}},
		{"one", 1, []float64{4, 1, 2, 3}},
		{"two", 2, []float64{3, 4, 1, 2}},
		{"three", 3, []float64{2, 3, 4, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rotate(cycle, tt.shift))
		})
	}

	// Input must never be mutated.
	assert.Equal(t, []float64{1, 2, 3, 4}, cycle)
}

func TestTileToLength(t *testing.T) {
	cycle := []float64{1, 2, 3}

	assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, tileToLength(cycle, 6))
	assert.Equal(t, []float64{1, 2, 3, 1}, tileToLength(cycle, 4))
	assert.Equal(t, []float64{1, 2}, tileToLength(cycle, 2))
	assert.Empty(t, tileToLength(cycle, 0))
}

func TestPosMod(t *testing.T) {
	tests := []struct {
		a, m, want int
	}{
		{0, 4, 0},
		{3, 4, 3},
		{4, 4, 0},
		{9, 4, 1},
		{-1, 4, 3},
		{-4, 4, 0},
		{-9, 4, 3},
		{5, 1, 0},
		{-5, 1, 0},
	}

	for _, tt := range tests {
		got := posMod(tt.a, tt.m)
		assert.Equal(t, tt.want, got, "posMod(%d, %d)", tt.a, tt.m)
		assert.GreaterOrEqual(t, got, 0)
		assert.Less(t, got, tt.m)
	}
}
