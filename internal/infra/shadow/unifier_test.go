package shadow

import (
	"testing"

	"github.com/andreineculai/shadewalker/internal/domain/entity"
	"github.com/andreineculai/shadewalker/internal/infra/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareShadow(id int64, centerLat, centerLng, halfWidthM float64) entity.Shadow {
	return entity.Shadow{
		FeatureID: id,
		Polygon:   geometry.SquareAround(entity.Coordinate{Lat: centerLat, Lng: centerLng}, halfWidthM),
		Opacity:   1,
	}
}

func TestUnify_Empty(t *testing.T) {
	assert.Empty(t, Unify(nil))
	assert.Empty(t, Unify([]entity.Shadow{}))
}

func TestUnify_DegenerateFiltered(t *testing.T) {
	degenerate := entity.Shadow{Polygon: entity.Ring{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}}}

	assert.Empty(t, Unify([]entity.Shadow{degenerate, {}}))
}

func TestUnify_SingleUnchanged(t *testing.T) {
	s := squareShadow(1, 52.52, 13.4, 20)

	rings := Unify([]entity.Shadow{s, {}})
	require.Len(t, rings, 1)
	assert.Equal(t, s.Polygon, rings[0])
}

func TestUnify_OverlappingMergeToOne(t *testing.T) {
	// Two 40m squares whose centers are 20m apart overlap heavily.
	a := squareShadow(1, 52.52, 13.4, 20)
	b := squareShadow(2, 52.52018, 13.4, 20)

	rings := Unify([]entity.Shadow{a, b})
	require.Len(t, rings, 1)

	ring := rings[0]
	require.GreaterOrEqual(t, len(ring), 4)
	assert.Equal(t, ring[0], ring[len(ring)-1], "output ring must be closed")

	// Both original centers sit inside the merged ring.
	assert.True(t, geometry.PointInRing(entity.Coordinate{Lat: 52.52, Lng: 13.4}, ring))
	assert.True(t, geometry.PointInRing(entity.Coordinate{Lat: 52.52018, Lng: 13.4}, ring))

	// Output vertices come back at degree scale, near the inputs.
	for _, p := range ring {
		assert.InDelta(t, 52.52, p.Lat, 0.001)
		assert.InDelta(t, 13.4, p.Lng, 0.001)
	}
}

func TestUnify_DisjointStaySeparate(t *testing.T) {
	// Two 20m squares roughly a kilometer apart.
	a := squareShadow(1, 52.52, 13.4, 10)
	b := squareShadow(2, 52.53, 13.42, 10)

	rings := Unify([]entity.Shadow{a, b})
	require.Len(t, rings, 2)

	for _, ring := range rings {
		assert.Equal(t, ring[0], ring[len(ring)-1], "output ring must be closed")
	}
}
