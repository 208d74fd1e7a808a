package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/andreineculai/shadewalker/internal/delivery/http/response"
	"github.com/andreineculai/shadewalker/internal/domain/entity"
	"github.com/andreineculai/shadewalker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

// ShadeHandlerParams holds dependencies for ShadeHandler, injected by Fx.
type ShadeHandlerParams struct {
	fx.In

	ShadeUC usecase.ShadeUsecase
	Logger  *slog.Logger
}

// ShadeHandler holds dependencies for shade analysis handlers
type ShadeHandler struct {
	shadeUC usecase.ShadeUsecase
	logger  *slog.Logger
}

// NewShadeHandler is the constructor for ShadeHandler
func NewShadeHandler(params ShadeHandlerParams) *ShadeHandler {
	return &ShadeHandler{
		shadeUC: params.ShadeUC,
		logger:  params.Logger,
	}
}

// RoutePoint is one coordinate of the submitted route
type RoutePoint struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// AnalyzeShadeRequest represents the request body for route shade analysis
type AnalyzeShadeRequest struct {
	Route []RoutePoint `json:"route" validate:"required,dive"`

	// StartTime is RFC 3339; empty means "now"
	StartTime string `json:"startTime"`

	CloudCoverage   float64 `json:"cloudCoverage" validate:"min=0,max=100"`
	DurationSeconds float64 `json:"durationSeconds" validate:"min=0"`
	Debug           bool    `json:"debug"`
}

// AnalyzeShadeResponse is the analysis result returned to the client
type AnalyzeShadeResponse struct {
	AverageShade int                        `json:"averageShade"`
	Profile      []entity.ShadeProfileEntry `json:"profile"`
	Debug        *DebugPayload              `json:"debug,omitempty"`
}

// DebugPayload carries the diagnostic snapshot as GeoJSON so it can be
// dropped straight onto a map
type DebugPayload struct {
	Features       *geojson.FeatureCollection `json:"features"`
	Shadows        *geojson.FeatureCollection `json:"shadows"`
	UnifiedShadows *geojson.FeatureCollection `json:"unifiedShadows"`
	Sun            entity.SunPosition         `json:"sun"`
	Bounds         entity.BoundingBox         `json:"bounds"`
}

// AnalyzeRoute handles route shade analysis requests
func (h *ShadeHandler) AnalyzeRoute(c echo.Context) error {
	var req AnalyzeShadeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid analysis input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	startTime := time.Now().UTC()
	if req.StartTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			return response.BadRequest(c, "INVALID_START_TIME", "startTime must be RFC 3339")
		}
		startTime = parsed
	}

	route := make([]entity.Coordinate, len(req.Route))
	for i, p := range req.Route {
		route[i] = entity.Coordinate{Lat: p.Lat, Lng: p.Lng}
	}

	result, err := h.shadeUC.AnalyzeRoute(c.Request().Context(), usecase.AnalyzeRouteInput{
		Route:           route,
		StartTime:       startTime,
		CloudCoverage:   req.CloudCoverage,
		IncludeDebug:    req.Debug,
		DurationSeconds: req.DurationSeconds,
	})
	if err != nil {
		h.logger.Error("route shade analysis failed", slog.Any("error", err))

		return response.InternalServerError(c, "ANALYSIS_FAILED", "Failed to analyze route")
	}

	resp := AnalyzeShadeResponse{
		AverageShade: result.AverageShade,
		Profile:      result.Profile,
	}
	if result.Debug != nil {
		resp.Debug = &DebugPayload{
			Features:       featureCollection(result.Debug.Features),
			Shadows:        shadowCollection(result.Debug.Shadows),
			UnifiedShadows: ringCollection(result.Debug.UnifiedShadows),
			Sun:            result.Debug.Sun,
			Bounds:         result.Debug.Bounds,
		}
	}

	return response.Success(c, http.StatusOK, resp, "Route analyzed successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
