package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in     float64
		places int
		want   float64
	}{
		{2.45, 1, 2.5},
		{2.44, 1, 2.4},
		{2.25, 1, 2.3},
		{0.15, 1, 0.2},
		{-0.25, 1, -0.3},
		{-0.04, 1, 0},
		{3.4666666, 1, 3.5},
		{0.4333333, 1, 0.4},
		{4, 1, 4},
		{1.005, 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.in, tt.places), "Round(%v, %d)", tt.in, tt.places)
	}
}

func TestRoundNeverReturnsNegativeZero(t *testing.T) {
	r := Round(-0.01, 1)
	assert.False(t, math.Signbit(r))
}
