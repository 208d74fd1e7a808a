package entity

// ShadeProfileEntry is one sampled point along a route: the point's
// index used as a time offset, and its shade level in percent. Entries
// are emitted in route order, which is also time order.
type ShadeProfileEntry struct {
	TimeOffset int `json:"timeOffset"`
	ShadeLevel int `json:"shadeLevel"` // 0 = full sun, 100 = full shade.
}

// DebugSnapshot is the optional diagnostic attachment of an analysis.
// It is read-only output for inspection tooling and never feeds back
// into the computation.
type DebugSnapshot struct {
	Features       []ObstructionFeature `json:"features"`
	Shadows        []Shadow             `json:"shadows"`
	UnifiedShadows []Ring               `json:"unifiedShadows"`
	Sun            SunPosition          `json:"sun"`
	Bounds         BoundingBox          `json:"bounds"`
}

// ShadeAnalysisResult is the outcome of analyzing one route.
type ShadeAnalysisResult struct {
	AverageShade int                 `json:"averageShade"` // Rounded mean of the profile, 0-100.
	Profile      []ShadeProfileEntry `json:"profile"`
	Debug        *DebugSnapshot      `json:"debug,omitempty"`
}
