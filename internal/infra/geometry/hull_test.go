package geometry

import (
	"testing"

	"github.com/andreineculai/shadewalker/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvexHull_SquareWithSpike(t *testing.T) {
	// Unit square plus a spike sticking out east, plus a point on the
	// spike's flank that ends up inside the hull.
	points := []entity.Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 1},
		{Lat: 1, Lng: 1},
		{Lat: 1, Lng: 0},
		{Lat: 0.5, Lng: 2},   // spike extreme
		{Lat: 0.5, Lng: 0.9}, // interior
	}

	hull := ConvexHull(points)
	require.GreaterOrEqual(t, len(hull), 3)

	assert.Contains(t, hull, entity.Coordinate{Lat: 0.5, Lng: 2})
	assert.NotContains(t, hull, entity.Coordinate{Lat: 0.5, Lng: 0.9})

	// Every input point must be inside or on the hull. Nudge points
	// toward the centroid so boundary vertices test as inside under the
	// parity rule.
	var cLat, cLng float64
	for _, p := range hull {
		cLat += p.Lat
		cLng += p.Lng
	}
	cLat /= float64(len(hull))
	cLng /= float64(len(hull))

	for _, p := range points {
		nudged := entity.Coordinate{
			Lat: p.Lat + (cLat-p.Lat)*1e-9,
			Lng: p.Lng + (cLng-p.Lng)*1e-9,
		}
		assert.True(t, PointInRing(nudged, hull), "point %+v should be within hull", p)
	}
}

func TestConvexHull_Degenerate(t *testing.T) {
	two := []entity.Coordinate{{Lat: 1, Lng: 2}, {Lat: 3, Lng: 4}}
	assert.Equal(t, entity.Ring(two), ConvexHull(two))

	one := []entity.Coordinate{{Lat: 1, Lng: 2}}
	assert.Equal(t, entity.Ring(one), ConvexHull(one))

	assert.Empty(t, ConvexHull(nil))
}

func TestConvexHull_CollinearExcluded(t *testing.T) {
	points := []entity.Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 1},
		{Lat: 0, Lng: 2},
		{Lat: 1, Lng: 1},
	}

	hull := ConvexHull(points)

	// The midpoint of the bottom edge is collinear and must be dropped.
	assert.Len(t, hull, 3)
	assert.NotContains(t, hull, entity.Coordinate{Lat: 0, Lng: 1})
}

func TestConvexHull_PivotSelection(t *testing.T) {
	// Two points share the lowest latitude; the westmost one is the pivot.
	points := []entity.Coordinate{
		{Lat: 0, Lng: 5},
		{Lat: 0, Lng: 1},
		{Lat: 2, Lng: 3},
		{Lat: 1, Lng: 0},
	}

	hull := ConvexHull(points)
	require.NotEmpty(t, hull)
	assert.Equal(t, entity.Coordinate{Lat: 0, Lng: 1}, hull[0])
}
