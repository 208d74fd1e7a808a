package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/andreineculai/shadewalker/config"
	deliverycontext "github.com/andreineculai/shadewalker/internal/delivery/context"
	"github.com/andreineculai/shadewalker/internal/domain/entity"
	"github.com/andreineculai/shadewalker/internal/domain/repository"
	"github.com/andreineculai/shadewalker/internal/domain/service"
	"github.com/andreineculai/shadewalker/internal/infra/geometry"
	"github.com/andreineculai/shadewalker/internal/infra/shadow"
	"github.com/andreineculai/shadewalker/internal/usecase"

	"go.uber.org/fx"
)

// Fallback defaults when the shade configuration is missing or invalid.
// The cutoff, margin and threshold are tuned values, not derived
// physical constants, which is why they live in config.
const (
	defaultCloudCutoff           = 70.0  // percent
	defaultBBoxMarginDeg         = 0.003 // ~300m, catches off-route casters
	defaultRecomputeThresholdDeg = 2.0   // sun drift before re-projection
	defaultWalkingSpeedMps       = 1.4   // ~5 km/h
)

// ShadeServiceParams holds dependencies for the shade service, injected by Fx.
type ShadeServiceParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Features  repository.FeatureRepository
	Sun       service.SunCalculator
	Projector service.ShadowProjector
}

type shadeService struct {
	cloudCutoff  float64
	bboxMargin   float64
	recomputeDeg float64
	walkingSpeed float64
	logger       *slog.Logger
	features     repository.FeatureRepository
	sun          service.SunCalculator
	projector    service.ShadowProjector
}

// NewShadeService creates the route shade analyzer.
func NewShadeService(params ShadeServiceParams) usecase.ShadeUsecase {
	cutoff := defaultCloudCutoff
	margin := defaultBBoxMarginDeg
	threshold := defaultRecomputeThresholdDeg
	speed := defaultWalkingSpeedMps

	if params.Config != nil && params.Config.Shade != nil {
		shadeCfg := params.Config.Shade
		if shadeCfg.CloudCoverageCutoff > 0 {
			cutoff = shadeCfg.CloudCoverageCutoff
		}
		if shadeCfg.BBoxMarginDeg > 0 {
			margin = shadeCfg.BBoxMarginDeg
		}
		if shadeCfg.RecomputeThresholdDeg > 0 {
			threshold = shadeCfg.RecomputeThresholdDeg
		}
		if shadeCfg.WalkingSpeedMps > 0 {
			speed = shadeCfg.WalkingSpeedMps
		}
	}

	return &shadeService{
		cloudCutoff:  cutoff,
		bboxMargin:   margin,
		recomputeDeg: threshold,
		walkingSpeed: speed,
		logger:       params.Logger,
		features:     params.Features,
		sun:          params.Sun,
		projector:    params.Projector,
	}
}

// AnalyzeRoute scores every route point and aggregates the shade
// profile. No failure inside is fatal: a failed feature fetch degrades
// to an open-sky estimate and geometry failures degrade the debug
// snapshot only.
func (s *shadeService) AnalyzeRoute(ctx context.Context, input usecase.AnalyzeRouteInput) (*entity.ShadeAnalysisResult, error) {
	// Heavy overcast washes out directional shadows entirely; no
	// feature work is needed.
	if input.CloudCoverage > s.cloudCutoff {
		return uniformResult(len(input.Route), 100), nil
	}

	if len(input.Route) == 0 {
		return &entity.ShadeAnalysisResult{AverageShade: 0, Profile: []entity.ShadeProfileEntry{}}, nil
	}

	midpoint := input.Route[len(input.Route)/2]
	startSun := s.sun.Position(midpoint.Lat, midpoint.Lng, input.StartTime)

	// Night at the start counts as full shade by darkness.
	if startSun.BelowHorizon() {
		result := uniformResult(len(input.Route), 100)
		if input.IncludeDebug {
			result.Debug = &entity.DebugSnapshot{
				Features: []entity.ObstructionFeature{},
				Shadows:  []entity.Shadow{},
				Sun:      startSun,
			}
		}

		return result, nil
	}

	bounds := entity.BoundsOf(input.Route).Expand(s.bboxMargin)
	features := s.obtainFeatures(ctx, input, bounds)

	elapsed, _ := s.pointTimes(input.Route, input.DurationSeconds)

	// Shadow bucket: project all features once at the initial sun
	// position and reuse it until the sun drifts past the threshold.
	// Bounded directional error in exchange for avoiding
	// O(points x features) re-projection.
	bucketSun := startSun
	bucket := s.projectAll(features, bucketSun)
	initialBucket := bucket

	scores := make([]int, len(input.Route))
	for i, point := range input.Route {
		pointSun := s.sun.Position(point.Lat, point.Lng, input.StartTime.Add(elapsed[i]))

		// Nightfall reached partway along a long route.
		if pointSun.BelowHorizon() {
			scores[i] = 100

			continue
		}

		if math.Abs(pointSun.AzimuthDeg-bucketSun.AzimuthDeg) > s.recomputeDeg ||
			math.Abs(pointSun.AltitudeDeg-bucketSun.AltitudeDeg) > s.recomputeDeg {
			bucketSun = pointSun
			bucket = s.projectAll(features, bucketSun)
		}

		scores[i] = scorePoint(point, features, bucket)
	}

	total := 0
	profile := make([]entity.ShadeProfileEntry, len(scores))
	for i, score := range scores {
		total += score
		profile[i] = entity.ShadeProfileEntry{TimeOffset: i, ShadeLevel: score}
	}

	result := &entity.ShadeAnalysisResult{
		AverageShade: int(math.Round(float64(total) / float64(len(scores)))),
		Profile:      profile,
	}

	if input.IncludeDebug {
		// The snapshot deliberately reflects the initial sun bucket
		// even when the scan refreshed shadows later along the route.
		shadows := make([]entity.Shadow, 0, len(initialBucket))
		for _, sh := range initialBucket {
			if sh != nil {
				shadows = append(shadows, *sh)
			}
		}
		result.Debug = &entity.DebugSnapshot{
			Features:       features,
			Shadows:        shadows,
			UnifiedShadows: shadow.Unify(shadows),
			Sun:            startSun,
			Bounds:         bounds,
		}
	}

	return result, nil
}

// obtainFeatures reuses the caller's cached feature set when supplied,
// otherwise fetches fresh. A fetch failure degrades to zero
// obstructions: shade estimation is best-effort, not
// correctness-critical.
func (s *shadeService) obtainFeatures(ctx context.Context, input usecase.AnalyzeRouteInput, bounds entity.BoundingBox) []entity.ObstructionFeature {
	if input.CachedFeatures != nil {
		return input.CachedFeatures
	}

	features, err := s.features.FetchObstructions(ctx, bounds, input.StartTime)
	if err != nil {
		if logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger); logger != nil {
			logger.Warn("feature fetch failed, assuming open sky", slog.Any("error", err))
		}

		return nil
	}

	return features
}

// pointTimes derives each point's estimated arrival offset from the
// cumulative great-circle distance along the route. When the caller
// supplies no duration the walk is assumed to proceed at walking speed.
func (s *shadeService) pointTimes(route []entity.Coordinate, durationSeconds float64) ([]time.Duration, float64) {
	cumulative := make([]float64, len(route))
	totalDistance := 0.0
	for i := 1; i < len(route); i++ {
		totalDistance += geometry.HaversineMeters(route[i-1], route[i])
		cumulative[i] = totalDistance
	}

	totalSeconds := durationSeconds
	if totalSeconds <= 0 {
		totalSeconds = totalDistance / s.walkingSpeed
	}

	offsets := make([]time.Duration, len(route))
	for i := range route {
		if totalDistance > 0 {
			offsets[i] = time.Duration(cumulative[i] / totalDistance * totalSeconds * float64(time.Second))
		}
	}

	return offsets, totalSeconds
}

// projectAll computes the shadow bucket for one sun position. The
// result is index-aligned with features; a nil entry means the feature
// casts no shadow under this sun.
func (s *shadeService) projectAll(features []entity.ObstructionFeature, sun entity.SunPosition) []*entity.Shadow {
	bucket := make([]*entity.Shadow, len(features))
	for i, feature := range features {
		if sh, ok := s.projector.Project(feature, sun); ok {
			bucket[i] = &sh
		}
	}

	return bucket
}

// scorePoint takes the maximum shade any feature provides at the point:
// standing inside a footprint counts at the feature's full density, and
// so does standing inside its current shadow polygon. Short-circuits at
// full shade.
func scorePoint(point entity.Coordinate, features []entity.ObstructionFeature, bucket []*entity.Shadow) int {
	best := 0
	for i, feature := range features {
		level := int(math.Round(feature.FoliageDensity * 100))
		if level <= best {
			continue
		}

		if geometry.PointInRing(point, feature.Footprint) {
			best = level
		} else if bucket[i] != nil && geometry.PointInRing(point, bucket[i].Polygon) {
			best = level
		}

		if best >= 100 {
			return 100
		}
	}

	return best
}

func uniformResult(points, level int) *entity.ShadeAnalysisResult {
	profile := make([]entity.ShadeProfileEntry, points)
	for i := range profile {
		profile[i] = entity.ShadeProfileEntry{TimeOffset: i, ShadeLevel: level}
	}

	return &entity.ShadeAnalysisResult{AverageShade: level, Profile: profile}
}
