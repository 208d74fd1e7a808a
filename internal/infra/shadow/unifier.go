package shadow

import (
	"github.com/andreineculai/shadewalker/internal/domain/entity"

	"zappem.net/pub/math/polygon"
)

// unionScale maps degree coordinates into the polygon library's
// working range before the union and back out after. The library's
// epsilon comparisons assume roughly unit-scale geometry; city-scale
// shadow polygons span 1e-4 to 1e-2 degrees, which the library would
// merge away as slop. At 1e4 one unit is about 11 m of longitude.
const unionScale = 1e4

// Unify merges a set of per-feature shadow polygons into a minimal set
// of non-overlapping rings for presentation and containment checks.
// Null and degenerate shadows (fewer than 3 vertices) are filtered out.
// Zero valid shadows yield an empty result; exactly one yields that
// polygon unchanged. With more inputs the polygons are boolean-unioned
// and each output ring is explicitly closed.
//
// Unification is a display optimization, not required for shade
// scoring, so any geometric failure degrades to an empty result instead
// of propagating.
func Unify(shadows []entity.Shadow) (result []entity.Ring) {
	valid := make([]entity.Shadow, 0, len(shadows))
	for _, s := range shadows {
		if len(s.Polygon) > 2 {
			valid = append(valid, s)
		}
	}

	switch len(valid) {
	case 0:
		return nil
	case 1:
		return []entity.Ring{valid[0].Polygon}
	}

	// The polygon library panics on inputs it cannot reconcile;
	// degrade to an empty result rather than failing the analysis.
	defer func() {
		if r := recover(); r != nil {
			result = nil
		}
	}()

	var shapes *polygon.Shapes
	for _, s := range valid {
		pts := make([]polygon.Point, 0, len(s.Polygon))
		for _, c := range s.Polygon {
			pts = append(pts, polygon.Point{X: c.Lng * unionScale, Y: c.Lat * unionScale})
		}

		merged, err := shapes.Append(pts...)
		if err != nil {
			return nil
		}
		shapes = merged
	}

	shapes.Union()

	for _, shape := range shapes.P {
		if shape.Hole || len(shape.PS) < 3 {
			continue
		}

		ring := make(entity.Ring, 0, len(shape.PS)+1)
		for _, p := range shape.PS {
			ring = append(ring, entity.Coordinate{Lat: p.Y / unionScale, Lng: p.X / unionScale})
		}
		ring = append(ring, ring[0])

		result = append(result, ring)
	}

	return result
}
