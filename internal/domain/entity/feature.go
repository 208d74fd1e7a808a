// Package entity contains the core business objects of the project.
package entity

// FeatureKind classifies an obstruction feature. The set is closed:
// unknown kinds are rejected at ingestion instead of flowing through
// the geometry pipeline.
type FeatureKind string

const (
	// KindBuilding is any mapped building footprint.
	KindBuilding FeatureKind = "building"
	// KindTree is an individual tree mapped as a point.
	KindTree FeatureKind = "tree"
	// KindTreeRow is a linear row of trees along a way.
	KindTreeRow FeatureKind = "tree_row"
	// KindPark is a park or garden area with partial canopy.
	KindPark FeatureKind = "park"
	// KindForest is a forest or wood area.
	KindForest FeatureKind = "forest"
	// KindCovered is a covered walkway or similar roofed passage.
	KindCovered FeatureKind = "covered"
)

// String returns the string representation of the FeatureKind.
func (k FeatureKind) String() string {
	return string(k)
}

// Vegetative reports whether the kind's opacity follows the seasonal
// foliage cycle. Buildings and covered structures are opaque year round.
func (k FeatureKind) Vegetative() bool {
	switch k {
	case KindTree, KindTreeRow, KindPark, KindForest:
		return true
	default:
		return false
	}
}

// ObstructionFeature is a real-world object capable of casting shade.
// Point features such as individual trees carry a small synthetic
// square footprint; linear features are buffered to a polygon at
// ingestion.
type ObstructionFeature struct {
	ID             int64       `json:"id"`             // Stable identifier from the data source.
	Kind           FeatureKind `json:"kind"`           // One of the six known kinds.
	Footprint      Ring        `json:"footprint"`      // Polygon ring with at least 3 vertices.
	HeightM        float64     `json:"heightM"`        // Height in meters; must be > 0 to cast a shadow.
	FoliageDensity float64     `json:"foliageDensity"` // Opacity proxy in [0,1]; 1.0 is fully opaque.
	Name           string      `json:"name,omitempty"` // Optional display name.
}
