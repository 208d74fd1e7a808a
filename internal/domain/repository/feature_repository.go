// Package repository defines the interfaces for external data sources.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"github.com/andreineculai/shadewalker/internal/domain/entity"
)

// FeatureRepository defines the interface for retrieving obstruction
// features from a geographic data source. The engine is agnostic to the
// underlying query language and transport.
type FeatureRepository interface {
	// FetchObstructions returns all shade-casting features inside the
	// bounding box. The date drives the seasonal foliage adjustment of
	// vegetative features. Malformed source records are dropped, not
	// surfaced as errors; an error means the whole fetch failed.
	FetchObstructions(ctx context.Context, bbox entity.BoundingBox, date time.Time) ([]entity.ObstructionFeature, error)
}
