// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"time"

	"github.com/andreineculai/shadewalker/internal/domain/entity"
)

// SunCalculator computes the sun's horizontal position for a location
// and instant. Implementations are pure functions of their inputs:
// any latitude, longitude and instant yields a mathematically valid
// (possibly below-horizon) position, with no error cases.
type SunCalculator interface {
	// Position returns the solar azimuth and altitude at the given
	// location and time.
	Position(lat, lng float64, at time.Time) entity.SunPosition
}
