package shadow

import (
	"math"
	"testing"

	"github.com/andreineculai/shadewalker/internal/domain/entity"
	"github.com/andreineculai/shadewalker/internal/infra/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildingAt(lat, lng, height float64) entity.ObstructionFeature {
	return entity.ObstructionFeature{
		ID:             1,
		Kind:           entity.KindBuilding,
		Footprint:      geometry.SquareAround(entity.Coordinate{Lat: lat, Lng: lng}, 10),
		HeightM:        height,
		FoliageDensity: 1.0,
	}
}

// sunAt builds a sun position from degrees in the 0-is-south azimuth
// convention.
func sunAt(azimuthDeg, altitudeDeg float64) entity.SunPosition {
	const deg2rad = math.Pi / 180

	return entity.NewSunPosition(azimuthDeg*deg2rad, altitudeDeg*deg2rad)
}

func TestProject_ShadowLengthAndBearing(t *testing.T) {
	const height = 20.0
	const altitude = 20.0

	feature := buildingAt(48.2, 16.37, height)
	// Sun due south: the shadow points due north.
	sun := sunAt(0, altitude)

	shadow, ok := Projector{}.Project(feature, sun)
	require.True(t, ok)
	assert.Equal(t, feature.ID, shadow.FeatureID)
	assert.Equal(t, 1.0, shadow.Opacity)
	require.GreaterOrEqual(t, len(shadow.Polygon), 3)

	wantLength := height / math.Tan(altitude*math.Pi/180)

	// The hull must contain vertices at the projected distance from the
	// footprint, at the shadow bearing. The two north-edge tips are
	// always hull vertices; the south-edge tips fall inside the hull.
	assert.InDelta(t, 0, sun.ShadowBearingDeg(), 1e-9)
	foundTips := 0
	for _, v := range feature.Footprint {
		tip := geometry.DestinationPoint(v, wantLength, 0)
		assert.InDelta(t, wantLength, geometry.HaversineMeters(v, tip), 1e-6)

		for _, h := range shadow.Polygon {
			if geometry.HaversineMeters(h, tip) < 0.01 {
				foundTips++

				break
			}
		}
	}
	assert.GreaterOrEqual(t, foundTips, 2)

	// The far edge lies north of the footprint.
	var maxHullLat, maxFootLat float64
	for _, h := range shadow.Polygon {
		maxHullLat = math.Max(maxHullLat, h.Lat)
	}
	for _, v := range feature.Footprint {
		maxFootLat = math.Max(maxFootLat, v.Lat)
	}
	assert.Greater(t, maxHullLat, maxFootLat)
}

func TestProject_NightReturnsNone(t *testing.T) {
	feature := buildingAt(48.2, 16.37, 20)

	_, ok := Projector{}.Project(feature, sunAt(0, 0))
	assert.False(t, ok)

	_, ok = Projector{}.Project(feature, sunAt(90, -10))
	assert.False(t, ok)
}

func TestProject_DegenerateFeature(t *testing.T) {
	noHeight := buildingAt(48.2, 16.37, 0)
	_, ok := Projector{}.Project(noHeight, sunAt(0, 45))
	assert.False(t, ok)

	thin := buildingAt(48.2, 16.37, 10)
	thin.Footprint = thin.Footprint[:2]
	_, ok = Projector{}.Project(thin, sunAt(0, 45))
	assert.False(t, ok)
}

func TestProject_LowSunClampsLength(t *testing.T) {
	feature := buildingAt(48.2, 16.37, 100)
	// 0.001° altitude: the raw length would be thousands of kilometers.
	shadow, ok := Projector{}.Project(feature, sunAt(0, 0.001))
	require.True(t, ok)

	for _, v := range feature.Footprint {
		for _, h := range shadow.Polygon {
			assert.LessOrEqual(t, geometry.HaversineMeters(v, h), maxShadowLengthM*1.01)
		}
	}
}

func TestProject_OpacityFollowsDensity(t *testing.T) {
	tree := entity.ObstructionFeature{
		ID:             7,
		Kind:           entity.KindTree,
		Footprint:      geometry.SquareAround(entity.Coordinate{Lat: 51.5, Lng: -0.12}, 3.5),
		HeightM:        8,
		FoliageDensity: 0.6,
	}

	shadow, ok := Projector{}.Project(tree, sunAt(45, 30))
	require.True(t, ok)
	assert.Equal(t, 0.6, shadow.Opacity)
}
