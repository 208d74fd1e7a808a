// Package overpass retrieves obstruction features from an Overpass API
// endpoint and normalizes the heterogeneous tagged elements into the
// engine's uniform feature model.
package overpass

import (
	"strconv"
	"strings"
	"time"

	"github.com/andreineculai/shadewalker/internal/domain/entity"
	"github.com/andreineculai/shadewalker/internal/infra/geometry"
)

// Heights and footprint sizes used when the source data carries no
// usable tag. Meters.
const (
	defaultBuildingHeight = 10.0
	defaultTreeHeight     = 8.0
	defaultTreeRowHeight  = 10.0
	parkHeight            = 8.0
	forestHeight          = 15.0
	coveredHeight         = 4.0

	metersPerLevel = 3.5

	treeHalfWidth    = 3.5  // synthetic square around a tree point
	treeRowHalfWidth = 2.25 // ~4.5m buffered corridor
	coveredHalfWidth = 1.5  // ~3m buffered corridor
)

// Element is one structured record from the geographic data source:
// an identity, its tags, and either a point location or an ordered way
// geometry. It is deliberately transport-agnostic so the builder can be
// exercised without the Overpass wire format.
type Element struct {
	ID     int64
	Tags   map[string]string
	Center entity.Coordinate   // point location, for node elements
	Points []entity.Coordinate // ordered geometry, for way elements
	IsNode bool
}

// classify maps the element's tags onto one of the six known feature
// kinds. Unknown tag combinations are rejected.
func classify(el Element) (entity.FeatureKind, bool) {
	tags := el.Tags

	switch {
	case tags["building"] != "" && tags["building"] != "no":
		return entity.KindBuilding, true
	case el.IsNode && tags["natural"] == "tree":
		return entity.KindTree, true
	case tags["natural"] == "tree_row":
		return entity.KindTreeRow, true
	case tags["leisure"] == "park" || tags["leisure"] == "garden":
		return entity.KindPark, true
	case tags["landuse"] == "forest" || tags["natural"] == "wood":
		return entity.KindForest, true
	case tags["covered"] == "yes":
		return entity.KindCovered, true
	default:
		return "", false
	}
}

// BuildFeature normalizes one tagged element into an ObstructionFeature
// for the given analysis date. It returns ok=false when the element's
// tags match no known kind or its derived footprint has fewer than 3
// vertices.
func BuildFeature(el Element, date time.Time) (entity.ObstructionFeature, bool) {
	kind, ok := classify(el)
	if !ok {
		return entity.ObstructionFeature{}, false
	}

	feature := entity.ObstructionFeature{
		ID:   el.ID,
		Kind: kind,
		Name: el.Tags["name"],
	}

	// density ends up multiplied by the seasonal cycle for vegetative
	// kinds; opaque structures keep it as-is.
	density := 1.0

	switch kind {
	case entity.KindBuilding:
		feature.Footprint = entity.Ring(el.Points)
		feature.HeightM = buildingHeight(el.Tags)

	case entity.KindTree:
		feature.Footprint = geometry.SquareAround(el.Center, treeHalfWidth)
		feature.HeightM = taggedHeight(el.Tags, defaultTreeHeight)

	case entity.KindTreeRow:
		feature.Footprint = geometry.BufferLine(el.Points, treeRowHalfWidth)
		feature.HeightM = taggedHeight(el.Tags, defaultTreeRowHeight)
		density = 0.9

	case entity.KindPark:
		feature.Footprint = entity.Ring(el.Points)
		feature.HeightM = parkHeight
		// Parks have gaps in their canopy; scale well below forests.
		density = 0.4

	case entity.KindForest:
		feature.Footprint = entity.Ring(el.Points)
		feature.HeightM = forestHeight
		density = 0.85

	case entity.KindCovered:
		feature.Footprint = geometry.BufferLine(el.Points, coveredHalfWidth)
		feature.HeightM = coveredHeight
	}

	if kind.Vegetative() {
		density *= entity.SeasonalFoliageDensity(date)
	}
	feature.FoliageDensity = density

	if len(feature.Footprint) < 3 {
		return entity.ObstructionFeature{}, false
	}

	return feature, true
}

// buildingHeight derives a building's height from its height tag, then
// its level count, then the default.
func buildingHeight(tags map[string]string) float64 {
	if h, ok := parseMeters(tags["height"]); ok {
		return h
	}
	if levels, ok := parseMeters(tags["building:levels"]); ok && levels > 0 {
		return levels * metersPerLevel
	}

	return defaultBuildingHeight
}

// taggedHeight reads the height tag, falling back to def.
func taggedHeight(tags map[string]string, def float64) float64 {
	if h, ok := parseMeters(tags["height"]); ok {
		return h
	}

	return def
}

// parseMeters parses a numeric tag value, tolerating a trailing unit
// such as "12 m". Unparseable or non-positive values are rejected; the
// feature then falls back to its default rather than being dropped.
func parseMeters(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	s = strings.TrimSuffix(s, "meters")
	s = strings.TrimSuffix(s, "m")
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}

	return v, true
}
