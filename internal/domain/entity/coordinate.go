// Package entity contains the core business objects of the project.
package entity

// Coordinate is a geographic point in decimal degrees. It is the
// fundamental geometric unit of the engine; there is no altitude.
type Coordinate struct {
	Lat float64 `json:"lat"` // Latitude, positive north.
	Lng float64 `json:"lng"` // Longitude, positive east.
}

// Ring is an ordered sequence of coordinates forming a polygon
// boundary. Rings may be implicitly closed; consumers that require an
// explicitly closed ring repeat the first vertex at the end.
type Ring []Coordinate

// BoundingBox is an axis-aligned geographic rectangle in degrees.
type BoundingBox struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

// BoundsOf computes the minimal bounding box of the given points.
// A zero-value box is returned for an empty input.
func BoundsOf(points []Coordinate) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}

	box := BoundingBox{
		North: points[0].Lat,
		South: points[0].Lat,
		East:  points[0].Lng,
		West:  points[0].Lng,
	}
	for _, p := range points[1:] {
		if p.Lat > box.North {
			box.North = p.Lat
		}
		if p.Lat < box.South {
			box.South = p.Lat
		}
		if p.Lng > box.East {
			box.East = p.Lng
		}
		if p.Lng < box.West {
			box.West = p.Lng
		}
	}

	return box
}

// Expand grows the box by margin degrees on every side. Off-route
// obstructions inside the margin can still cast shadows onto the route,
// so the analyzer always fetches with a margin.
func (b BoundingBox) Expand(margin float64) BoundingBox {
	return BoundingBox{
		North: b.North + margin,
		South: b.South - margin,
		East:  b.East + margin,
		West:  b.West - margin,
	}
}

// IsZero reports whether the box is the zero value.
func (b BoundingBox) IsZero() bool {
	return b == BoundingBox{}
}
