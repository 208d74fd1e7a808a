// Package shadow turns obstruction features into ground shadow
// geometry and merges overlapping shadow polygons.
package shadow

import (
	"math"

	"github.com/andreineculai/shadewalker/internal/domain/entity"
	"github.com/andreineculai/shadewalker/internal/domain/service"
	"github.com/andreineculai/shadewalker/internal/infra/geometry"
)

// maxShadowLengthM caps projected shadow length. Near sunrise and
// sunset height/tan(altitude) diverges; beyond a few kilometers the
// exact tip position no longer matters for a pedestrian route.
const maxShadowLengthM = 5000.0

// Projector implements service.ShadowProjector with trigonometric
// projection and a convex-hull merge of footprint and projected points.
type Projector struct{}

// NewProjector returns the default shadow projector.
func NewProjector() service.ShadowProjector {
	return Projector{}
}

// Project computes the shadow cast by a feature under the given sun
// position. It returns ok=false when the sun is at or below the
// horizon, the feature has no positive height, or the footprint is
// degenerate.
//
// Every footprint vertex is displaced by length = height/tan(altitude)
// meters along the shadow bearing using great-circle destination math;
// the resulting shadow is the convex hull of the original and projected
// vertices. For concave footprints the hull over-includes area, which
// is an accepted simplification for shade estimation.
func (Projector) Project(feature entity.ObstructionFeature, sun entity.SunPosition) (entity.Shadow, bool) {
	if sun.BelowHorizon() || feature.HeightM <= 0 || len(feature.Footprint) < 3 {
		return entity.Shadow{}, false
	}

	length := feature.HeightM / math.Tan(sun.AltitudeRad)
	if length > maxShadowLengthM || math.IsInf(length, 0) || math.IsNaN(length) {
		length = maxShadowLengthM
	}

	bearing := sun.ShadowBearingDeg()

	points := make([]entity.Coordinate, 0, 2*len(feature.Footprint))
	points = append(points, feature.Footprint...)
	for _, v := range feature.Footprint {
		points = append(points, geometry.DestinationPoint(v, length, bearing))
	}

	return entity.Shadow{
		FeatureID: feature.ID,
		Polygon:   geometry.ConvexHull(points),
		Opacity:   feature.FoliageDensity,
	}, true
}
