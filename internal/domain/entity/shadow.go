package entity

// Shadow is the ground projection of one obstruction feature under one
// sun position. Shadows are recomputed whenever the governing sun
// position is refreshed and are never persisted.
type Shadow struct {
	FeatureID int64   `json:"featureId"` // The feature that cast this shadow.
	Polygon   Ring    `json:"polygon"`   // Convex hull of footprint and projected vertices.
	Opacity   float64 `json:"opacity"`   // Equal to the feature's foliage density.
}
