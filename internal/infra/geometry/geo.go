// Package geometry implements the geographic and planar math used by
// the shade engine: great-circle distance and destination points,
// convex hulls, approximate line buffering and point-in-polygon tests.
//
// Containment and buffering treat (lat,lng) as planar coordinates,
// which is acceptable at city scale; distance and projection use
// spherical math so shadow lengths stay correct.
package geometry

import (
	"math"

	"github.com/andreineculai/shadewalker/internal/domain/entity"
)

const (
	earthRadiusM = 6371000.0

	// metersPerDegreeLat is the length of one degree of latitude.
	// Longitude degrees shrink with cos(lat).
	metersPerDegreeLat = 111320.0

	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// HaversineMeters returns the great-circle distance between two points
// in meters.
func HaversineMeters(a, b entity.Coordinate) float64 {
	lat1 := a.Lat * deg2rad
	lat2 := b.Lat * deg2rad
	dLat := (b.Lat - a.Lat) * deg2rad
	dLng := (b.Lng - a.Lng) * deg2rad

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusM * c
}

// DestinationPoint returns the point reached by traveling distanceM
// meters from origin along the given compass bearing (degrees, 0 =
// north), using the great-circle destination formula.
func DestinationPoint(origin entity.Coordinate, distanceM, bearingDeg float64) entity.Coordinate {
	delta := distanceM / earthRadiusM
	theta := bearingDeg * deg2rad
	lat1 := origin.Lat * deg2rad
	lng1 := origin.Lng * deg2rad

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(delta) +
		math.Cos(lat1)*math.Sin(delta)*math.Cos(theta))
	lng2 := lng1 + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2),
	)

	return entity.Coordinate{Lat: lat2 * rad2deg, Lng: lng2 * rad2deg}
}

// BearingDeg returns the initial compass bearing from a to b in
// degrees, normalized to [0,360).
func BearingDeg(a, b entity.Coordinate) float64 {
	lat1 := a.Lat * deg2rad
	lat2 := b.Lat * deg2rad
	dLng := (b.Lng - a.Lng) * deg2rad

	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)

	return math.Mod(math.Atan2(y, x)*rad2deg+360, 360)
}

// PointInRing reports whether p lies inside the polygon ring using the
// standard ray-casting edge-crossing parity rule. The ring may be open
// or explicitly closed. Fewer than 3 vertices never contain anything.
func PointInRing(p entity.Coordinate, ring entity.Ring) bool {
	n := len(ring)
	if n < 3 {
		return false
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := ring[i], ring[j]
		if (vi.Lng > p.Lng) != (vj.Lng > p.Lng) &&
			p.Lat < (vj.Lat-vi.Lat)*(p.Lng-vi.Lng)/(vj.Lng-vi.Lng)+vi.Lat {
			inside = !inside
		}
	}

	return inside
}

// BufferLine widens a polyline into a polygon ring by offsetting every
// vertex halfWidthM meters to each side of the local direction. The
// direction at a vertex is taken between its neighbors, with the vertex
// itself standing in at the ends of the line. The two offset chains are
// joined into a single ring (left chain forward, right chain reversed).
//
// There is no miter or bevel correction at sharp turns. That is
// acceptable for shade estimation, not for cartographic buffering.
func BufferLine(line []entity.Coordinate, halfWidthM float64) entity.Ring {
	if len(line) < 2 {
		return nil
	}

	left := make([]entity.Coordinate, 0, len(line))
	right := make([]entity.Coordinate, 0, len(line))

	for i, v := range line {
		prev := line[maxInt(i-1, 0)]
		next := line[minInt(i+1, len(line)-1)]

		dLat := next.Lat - prev.Lat
		dLng := next.Lng - prev.Lng
		norm := math.Hypot(dLat, dLng)
		if norm == 0 {
			continue
		}

		// Unit normal, left of the direction of travel.
		nLat := dLng / norm
		nLng := -dLat / norm

		offLat := nLat * halfWidthM / metersPerDegreeLat
		offLng := nLng * halfWidthM / (metersPerDegreeLat * math.Cos(v.Lat*deg2rad))

		left = append(left, entity.Coordinate{Lat: v.Lat + offLat, Lng: v.Lng + offLng})
		right = append(right, entity.Coordinate{Lat: v.Lat - offLat, Lng: v.Lng - offLng})
	}

	ring := make(entity.Ring, 0, len(left)+len(right))
	ring = append(ring, left...)
	for i := len(right) - 1; i >= 0; i-- {
		ring = append(ring, right[i])
	}

	return ring
}

// SquareAround returns a square ring of halfWidthM meters half-width
// centered on p. Used to give point features a synthetic footprint.
func SquareAround(p entity.Coordinate, halfWidthM float64) entity.Ring {
	dLat := halfWidthM / metersPerDegreeLat
	dLng := halfWidthM / (metersPerDegreeLat * math.Cos(p.Lat*deg2rad))

	return entity.Ring{
		{Lat: p.Lat - dLat, Lng: p.Lng - dLng},
		{Lat: p.Lat - dLat, Lng: p.Lng + dLng},
		{Lat: p.Lat + dLat, Lng: p.Lng + dLng},
		{Lat: p.Lat + dLat, Lng: p.Lng - dLng},
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
