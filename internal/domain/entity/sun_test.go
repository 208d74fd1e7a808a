package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSunPosition_Bearings(t *testing.T) {
	tests := []struct {
		name        string
		azimuthDeg  float64
		wantCompass float64
		wantShadow  float64
	}{
		{name: "sun due south", azimuthDeg: 0, wantCompass: 180, wantShadow: 0},
		{name: "sun due west", azimuthDeg: 90, wantCompass: 270, wantShadow: 90},
		{name: "sun due north", azimuthDeg: 180, wantCompass: 0, wantShadow: 180},
		{name: "sun due east", azimuthDeg: -90, wantCompass: 90, wantShadow: 270},
		{name: "sun southwest", azimuthDeg: 45, wantCompass: 225, wantShadow: 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := NewSunPosition(tt.azimuthDeg*math.Pi/180, 0.5)
			assert.InDelta(t, tt.wantCompass, pos.CompassBearingDeg(), 1e-9)
			assert.InDelta(t, tt.wantShadow, pos.ShadowBearingDeg(), 1e-9)
		})
	}
}

func TestSunPosition_BelowHorizon(t *testing.T) {
	assert.True(t, NewSunPosition(0, -0.01).BelowHorizon())
	assert.True(t, NewSunPosition(0, 0).BelowHorizon())
	assert.False(t, NewSunPosition(0, 0.01).BelowHorizon())
}
