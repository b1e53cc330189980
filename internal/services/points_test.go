package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAwardPoints(t *testing.T) {
	tests := []struct {
		streak int
		want   int
	}{
		{streak: 0, want: 0},
		{streak: -3, want: 0},
		{streak: 1, want: 10},
		{streak: 2, want: 11},
		{streak: 6, want: 15},
		{streak: 7, want: 36},
		{streak: 11, want: 40},
		{streak: 12, want: 40},
		{streak: 29, want: 40},
		{streak: 30, want: 90},
		{streak: 99, want: 90},
		{streak: 100, want: 190},
		{streak: 365, want: 190},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AwardPoints(tt.streak), "streak %d", tt.streak)
	}
}

func TestAwardPointsMonotonicOverThresholds(t *testing.T) {
	previous := 0
	for streak := 1; streak <= 120; streak++ {
		points := AwardPoints(streak)
		assert.GreaterOrEqual(t, points, previous, "streak %d", streak)
		previous = points
	}
}
