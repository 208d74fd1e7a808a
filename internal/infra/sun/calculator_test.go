package sun

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPosition_ReferenceValues(t *testing.T) {
	// Reference values from the suncalc.js test suite:
	// 2013-03-05T00:00:00Z at 50.5N 30.5E.
	at := time.Date(2013, 3, 5, 0, 0, 0, 0, time.UTC)
	calc := Calculator{}

	pos := calc.Position(50.5, 30.5, at)

	assert.InDelta(t, -2.5003175907168385, pos.AzimuthRad, 1e-6)
	assert.InDelta(t, -0.7000406838781611, pos.AltitudeRad, 1e-6)

	// Degree forms are derived from the radian forms.
	assert.InDelta(t, pos.AzimuthRad*180/3.141592653589793, pos.AzimuthDeg, 1e-9)
	assert.True(t, pos.BelowHorizon())
}

func TestPosition_SolarNoonIsSouthish(t *testing.T) {
	// Around solar noon in central Europe the sun is close to due
	// south (azimuth near 0 in the 0-is-south convention) and well
	// above the horizon in summer.
	at := time.Date(2022, 6, 21, 11, 0, 0, 0, time.UTC)
	calc := Calculator{}

	pos := calc.Position(48.85, 2.35, at) // Paris

	assert.InDelta(t, 0, pos.AzimuthDeg, 15)
	assert.Greater(t, pos.AltitudeDeg, 55.0)
	assert.False(t, pos.BelowHorizon())

	// The shadow points away from the sun: roughly north.
	bearing := pos.ShadowBearingDeg()
	if bearing > 180 {
		bearing -= 360
	}
	assert.InDelta(t, 0, bearing, 15)
}

func TestPosition_PolarNight(t *testing.T) {
	// Midwinter above the Arctic circle: the sun never rises but the
	// calculator still returns a valid position.
	at := time.Date(2022, 12, 21, 12, 0, 0, 0, time.UTC)
	calc := Calculator{}

	pos := calc.Position(78.22, 15.64, at) // Svalbard

	assert.True(t, pos.BelowHorizon())
	assert.Less(t, pos.AltitudeDeg, 0.0)
}
