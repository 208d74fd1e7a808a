package service

import (
	"github.com/andreineculai/shadewalker/internal/domain/entity"
)

// ShadowProjector computes the ground shadow of a single feature under
// a single sun position. The interface exists so the analyzer's
// shadow-bucket behavior can be observed and substituted in tests.
type ShadowProjector interface {
	// Project returns the feature's shadow, or ok=false when the
	// feature casts no directional shadow (sun at or below the
	// horizon, non-positive height, or a degenerate footprint).
	Project(feature entity.ObstructionFeature, sun entity.SunPosition) (entity.Shadow, bool)
}
