// Package sun computes solar positions from an astronomical ephemeris.
package sun

import (
	"time"

	"github.com/andreineculai/shadewalker/internal/domain/entity"
	"github.com/andreineculai/shadewalker/internal/domain/service"

	"github.com/sixdouglas/suncalc"
)

// Calculator implements service.SunCalculator on top of the suncalc
// ephemeris library.
type Calculator struct{}

// NewCalculator returns the suncalc-backed sun position calculator.
func NewCalculator() service.SunCalculator {
	return Calculator{}
}

// Position returns the solar azimuth and altitude for the given
// location and instant. suncalc returns both angles in radians and uses
// the 0-is-south, clockwise-positive azimuth convention the rest of the
// engine assumes. The result is valid for any input, including polar
// locations and below-horizon instants.
func (Calculator) Position(lat, lng float64, at time.Time) entity.SunPosition {
	p := suncalc.GetPosition(at, lat, lng)

	return entity.NewSunPosition(p.Azimuth, p.Altitude)
}
