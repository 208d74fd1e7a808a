package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andreineculai/shadewalker/internal/delivery/http/validator"
	"github.com/andreineculai/shadewalker/internal/domain/entity"
	"github.com/andreineculai/shadewalker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubShadeUsecase records the last input and returns a fixed result.
type stubShadeUsecase struct {
	lastInput usecase.AnalyzeRouteInput
	result    *entity.ShadeAnalysisResult
}

func (s *stubShadeUsecase) AnalyzeRoute(_ context.Context, input usecase.AnalyzeRouteInput) (*entity.ShadeAnalysisResult, error) {
	s.lastInput = input

	return s.result, nil
}

func newShadeContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/api/shade/analyze", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestShadeHandler_AnalyzeRoute(t *testing.T) {
	stub := &stubShadeUsecase{result: &entity.ShadeAnalysisResult{
		AverageShade: 42,
		Profile: []entity.ShadeProfileEntry{
			{TimeOffset: 0, ShadeLevel: 30},
			{TimeOffset: 1, ShadeLevel: 54},
		},
	}}
	h := &ShadeHandler{shadeUC: stub, logger: slog.Default()}

	body := `{
		"route": [{"lat": 48.2, "lng": 16.37}, {"lat": 48.201, "lng": 16.37}],
		"startTime": "2024-07-10T09:00:00Z",
		"cloudCoverage": 20,
		"durationSeconds": 600
	}`
	c, rec := newShadeContext(t, body)

	require.NoError(t, h.AnalyzeRoute(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"averageShade":42`)

	require.Len(t, stub.lastInput.Route, 2)
	assert.Equal(t, 48.2, stub.lastInput.Route[0].Lat)
	assert.Equal(t, 20.0, stub.lastInput.CloudCoverage)
	assert.Equal(t, 600.0, stub.lastInput.DurationSeconds)
	assert.Equal(t, "2024-07-10T09:00:00Z", stub.lastInput.StartTime.Format("2006-01-02T15:04:05Z07:00"))
	assert.False(t, stub.lastInput.IncludeDebug)
}

func TestShadeHandler_AnalyzeRoute_DebugAsGeoJSON(t *testing.T) {
	point := entity.Coordinate{Lat: 48.2, Lng: 16.37}
	stub := &stubShadeUsecase{result: &entity.ShadeAnalysisResult{
		AverageShade: 100,
		Profile:      []entity.ShadeProfileEntry{{TimeOffset: 0, ShadeLevel: 100}},
		Debug: &entity.DebugSnapshot{
			Features: []entity.ObstructionFeature{{
				ID:             7,
				Kind:           entity.KindBuilding,
				Footprint:      entity.Ring{{Lat: 48.2, Lng: 16.37}, {Lat: 48.2, Lng: 16.371}, {Lat: 48.201, Lng: 16.371}},
				HeightM:        10,
				FoliageDensity: 1,
			}},
			Shadows:        []entity.Shadow{{FeatureID: 7, Polygon: entity.Ring{point, {Lat: 48.201, Lng: 16.37}, {Lat: 48.201, Lng: 16.371}}, Opacity: 1}},
			UnifiedShadows: []entity.Ring{{point, {Lat: 48.201, Lng: 16.37}, {Lat: 48.201, Lng: 16.371}, point}},
		},
	}}
	h := &ShadeHandler{shadeUC: stub, logger: slog.Default()}

	c, rec := newShadeContext(t, `{"route": [{"lat": 48.2, "lng": 16.37}], "debug": true}`)

	require.NoError(t, h.AnalyzeRoute(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"type":"FeatureCollection"`)
	assert.Contains(t, responseBody, `"kind":"building"`)
	assert.Contains(t, responseBody, `"opacity":1`)
	assert.True(t, stub.lastInput.IncludeDebug)
}

func TestShadeHandler_AnalyzeRoute_InvalidBody(t *testing.T) {
	h := &ShadeHandler{shadeUC: &stubShadeUsecase{}, logger: slog.Default()}

	c, rec := newShadeContext(t, `{"route": "not an array"}`)

	require.NoError(t, h.AnalyzeRoute(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestShadeHandler_AnalyzeRoute_ValidationError(t *testing.T) {
	h := &ShadeHandler{shadeUC: &stubShadeUsecase{}, logger: slog.Default()}

	c, rec := newShadeContext(t, `{"route": [{"lat": 200, "lng": 16.37}]}`)

	require.NoError(t, h.AnalyzeRoute(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestShadeHandler_AnalyzeRoute_InvalidStartTime(t *testing.T) {
	h := &ShadeHandler{shadeUC: &stubShadeUsecase{}, logger: slog.Default()}

	c, rec := newShadeContext(t, `{"route": [{"lat": 48.2, "lng": 16.37}], "startTime": "yesterday"}`)

	require.NoError(t, h.AnalyzeRoute(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_START_TIME")
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, HealthCheck(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
