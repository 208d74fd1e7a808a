package geometry

import (
	"math"
	"sort"

	"github.com/andreineculai/shadewalker/internal/domain/entity"
)

// ConvexHull computes the convex hull of the given points with a Graham
// scan. The pivot is the point with the lowest latitude, ties broken by
// lowest longitude; the remaining points are sorted by polar angle
// around the pivot, angle ties broken by ascending squared distance.
// Collinear points are excluded from the hull boundary. Degenerate
// input (fewer than 3 points) is returned unchanged.
func ConvexHull(points []entity.Coordinate) entity.Ring {
	if len(points) < 3 {
		return entity.Ring(points)
	}

	pivot := points[0]
	for _, p := range points[1:] {
		if p.Lat < pivot.Lat || (p.Lat == pivot.Lat && p.Lng < pivot.Lng) {
			pivot = p
		}
	}

	rest := make([]entity.Coordinate, 0, len(points)-1)
	for _, p := range points {
		if p != pivot {
			rest = append(rest, p)
		}
	}

	sort.Slice(rest, func(i, j int) bool {
		ai := math.Atan2(rest[i].Lat-pivot.Lat, rest[i].Lng-pivot.Lng)
		aj := math.Atan2(rest[j].Lat-pivot.Lat, rest[j].Lng-pivot.Lng)
		if ai != aj {
			return ai < aj
		}

		return squaredDegDistance(pivot, rest[i]) < squaredDegDistance(pivot, rest[j])
	})

	hull := entity.Ring{pivot}
	for _, p := range rest {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return hull
}

// cross is the z component of (a-o)×(b-o) with longitude as x and
// latitude as y. Positive means the turn o→a→b bends left.
func cross(o, a, b entity.Coordinate) float64 {
	return (a.Lng-o.Lng)*(b.Lat-o.Lat) - (a.Lat-o.Lat)*(b.Lng-o.Lng)
}

func squaredDegDistance(a, b entity.Coordinate) float64 {
	dLat := b.Lat - a.Lat
	dLng := b.Lng - a.Lng

	return dLat*dLat + dLng*dLng
}
