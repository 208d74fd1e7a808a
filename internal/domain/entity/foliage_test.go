package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeasonalFoliageDensity(t *testing.T) {
	tests := []struct {
		month time.Month
		want  float64
	}{
		{time.January, 0.15},
		{time.February, 0.15},
		{time.March, 0.3},
		{time.April, 0.6},
		{time.May, 0.85},
		{time.June, 1.0},
		{time.July, 1.0},
		{time.August, 1.0},
		{time.September, 0.85},
		{time.October, 0.6},
		{time.November, 0.3},
		{time.December, 0.15},
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			date := time.Date(2024, tt.month, 15, 12, 0, 0, 0, time.UTC)
			assert.InDelta(t, tt.want, SeasonalFoliageDensity(date), 1e-9)
		})
	}
}
