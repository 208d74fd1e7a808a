package handler

import (
	"github.com/andreineculai/shadewalker/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// orbRing converts a coordinate ring to an orb ring, closing it when
// the source is open. GeoJSON consumers expect closed linear rings.
func orbRing(ring entity.Ring) orb.Ring {
	out := make(orb.Ring, 0, len(ring)+1)
	for _, p := range ring {
		out = append(out, orb.Point{p.Lng, p.Lat})
	}
	if len(out) > 0 && out[0] != out[len(out)-1] {
		out = append(out, out[0])
	}

	return out
}

func featureCollection(features []entity.ObstructionFeature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, feature := range features {
		f := geojson.NewFeature(orb.Polygon{orbRing(feature.Footprint)})
		f.ID = feature.ID
		f.Properties["kind"] = feature.Kind.String()
		f.Properties["heightM"] = feature.HeightM
		f.Properties["foliageDensity"] = feature.FoliageDensity
		if feature.Name != "" {
			f.Properties["name"] = feature.Name
		}
		fc.Append(f)
	}

	return fc
}

func shadowCollection(shadows []entity.Shadow) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, shadow := range shadows {
		f := geojson.NewFeature(orb.Polygon{orbRing(shadow.Polygon)})
		f.ID = shadow.FeatureID
		f.Properties["featureId"] = shadow.FeatureID
		f.Properties["opacity"] = shadow.Opacity
		fc.Append(f)
	}

	return fc
}

func ringCollection(rings []entity.Ring) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, ring := range rings {
		fc.Append(geojson.NewFeature(orb.Polygon{orbRing(ring)}))
	}

	return fc
}
