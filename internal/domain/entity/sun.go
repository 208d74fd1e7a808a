package entity

import "math"

// SunPosition is the sun's horizontal position at an instant and
// location. The azimuth convention follows the ephemeris library:
// 0 is due south, increasing clockwise, so due west is +90° and due
// north is ±180°. Altitude at or below zero means the sun is under
// the horizon.
type SunPosition struct {
	AzimuthRad  float64 `json:"azimuthRad"`
	AltitudeRad float64 `json:"altitudeRad"`
	AzimuthDeg  float64 `json:"azimuthDeg"`
	AltitudeDeg float64 `json:"altitudeDeg"`
}

// NewSunPosition builds a SunPosition from azimuth and altitude in
// radians, deriving the degree forms.
func NewSunPosition(azimuthRad, altitudeRad float64) SunPosition {
	const rad2deg = 180 / math.Pi

	return SunPosition{
		AzimuthRad:  azimuthRad,
		AltitudeRad: altitudeRad,
		AzimuthDeg:  azimuthRad * rad2deg,
		AltitudeDeg: altitudeRad * rad2deg,
	}
}

// BelowHorizon reports whether the sun is at or under the horizon.
func (s SunPosition) BelowHorizon() bool {
	return s.AltitudeDeg <= 0
}

// CompassBearingDeg converts the azimuth to a compass bearing in
// [0,360) where 0 is north and 90 is east.
func (s SunPosition) CompassBearingDeg() float64 {
	return math.Mod(s.AzimuthDeg+180+360, 360)
}

// ShadowBearingDeg is the compass bearing along which shadows are cast:
// directly away from the sun.
func (s SunPosition) ShadowBearingDeg() float64 {
	return math.Mod(s.CompassBearingDeg()+180, 360)
}
