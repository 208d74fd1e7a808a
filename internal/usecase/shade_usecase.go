package usecase

import (
	"context"
	"time"

	"github.com/andreineculai/shadewalker/internal/domain/entity"
)

// AnalyzeRouteInput carries one route shade analysis request.
type AnalyzeRouteInput struct {
	// Route is the ordered walking path. Empty routes analyze to an
	// empty, zero-shade result.
	Route []entity.Coordinate

	// StartTime is when the walk begins; per-point arrival times are
	// derived from it.
	StartTime time.Time

	// CloudCoverage is the cloud cover percentage (0-100). Above the
	// configured cutoff the sky is treated as fully diffuse and every
	// point scores full shade.
	CloudCoverage float64

	// IncludeDebug attaches the diagnostic snapshot to the result.
	IncludeDebug bool

	// DurationSeconds is the caller-supplied total traversal time.
	// Zero means estimate from route length at walking speed.
	DurationSeconds float64

	// CachedFeatures, when non-nil, is a caller-managed feature set
	// reused instead of fetching. Callers key their cache by bounding
	// box and date, which makes time-of-day re-analysis cheap. A
	// non-nil empty slice means "analyze with zero obstructions".
	CachedFeatures []entity.ObstructionFeature
}

// ShadeUsecase analyzes how shaded a pedestrian route is over time.
type ShadeUsecase interface {
	// AnalyzeRoute scores every route point for shade and aggregates
	// the profile. It is best-effort by design: data-source and
	// geometry failures degrade the precision of the estimate but the
	// returned error is always nil for a well-formed input; the error
	// return exists for interface symmetry and future use.
	AnalyzeRoute(ctx context.Context, input AnalyzeRouteInput) (*entity.ShadeAnalysisResult, error)
}
