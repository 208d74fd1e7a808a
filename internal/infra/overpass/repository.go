package overpass

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/andreineculai/shadewalker/config"
	"github.com/andreineculai/shadewalker/internal/domain/entity"
	"github.com/andreineculai/shadewalker/internal/domain/repository"
	"github.com/andreineculai/shadewalker/internal/errors"

	overpass "github.com/serjvanilla/go-overpass"
)

// FeatureRepository implements repository.FeatureRepository against an
// Overpass API endpoint.
type FeatureRepository struct {
	client  overpass.Client
	logger  *slog.Logger
	timeout time.Duration
}

const defaultEndpoint = "https://overpass-api.de/api/interpreter"

// NewFeatureRepository creates the Overpass-backed feature source.
func NewFeatureRepository(cfg *config.Config, logger *slog.Logger) repository.FeatureRepository {
	endpoint := defaultEndpoint
	timeout := 25 * time.Second
	if cfg.Overpass != nil {
		if cfg.Overpass.Endpoint != "" {
			endpoint = cfg.Overpass.Endpoint
		}
		if cfg.Overpass.Timeout > 0 {
			timeout = cfg.Overpass.Timeout
		}
	}

	httpClient := &http.Client{Timeout: timeout}
	client := overpass.NewWithSettings(endpoint, 2, httpClient)

	return &FeatureRepository{
		client:  client,
		logger:  logger,
		timeout: timeout,
	}
}

// FetchObstructions queries all shade-casting elements in the bounding
// box and normalizes them through the feature model. Elements whose
// tags match no known kind or whose footprint degenerates are dropped
// individually and logged, never failing the batch.
func (r *FeatureRepository) FetchObstructions(ctx context.Context, bbox entity.BoundingBox, date time.Time) ([]entity.ObstructionFeature, error) {
	queryCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.query(queryCtx, buildQuery(bbox))
	if err != nil {
		return nil, errors.Wrap(err, "overpass query failed")
	}

	elements := make([]Element, 0, len(result.Nodes)+len(result.Ways))

	for _, node := range result.Nodes {
		if len(node.Tags) == 0 {
			// Untagged nodes are way geometry, not features.
			continue
		}
		elements = append(elements, Element{
			ID:     node.ID,
			Tags:   node.Tags,
			Center: entity.Coordinate{Lat: node.Lat, Lng: node.Lon},
			IsNode: true,
		})
	}

	for _, way := range result.Ways {
		points := make([]entity.Coordinate, 0, len(way.Nodes))
		for _, n := range way.Nodes {
			if n == nil {
				continue
			}
			points = append(points, entity.Coordinate{Lat: n.Lat, Lng: n.Lon})
		}
		elements = append(elements, Element{
			ID:     way.ID,
			Tags:   way.Tags,
			Points: points,
		})
	}

	features := make([]entity.ObstructionFeature, 0, len(elements))
	dropped := 0
	for _, el := range elements {
		feature, ok := BuildFeature(el, date)
		if !ok {
			dropped++

			continue
		}
		features = append(features, feature)
	}

	// Result maps iterate in random order; sort for reproducibility.
	sort.Slice(features, func(i, j int) bool { return features[i].ID < features[j].ID })

	if dropped > 0 && r.logger != nil {
		r.logger.Debug("dropped unusable overpass elements",
			slog.Int("dropped", dropped),
			slog.Int("kept", len(features)))
	}

	return features, nil
}

// query runs the Overpass call under the context's deadline. The
// underlying client takes no context, so the call runs in a goroutine
// and a cancelled context abandons it; the HTTP client's own timeout
// bounds how long the abandoned call lingers.
func (r *FeatureRepository) query(ctx context.Context, q string) (overpass.Result, error) {
	type outcome struct {
		result overpass.Result
		err    error
	}

	done := make(chan outcome, 1)
	go func() {
		result, err := r.client.Query(q)
		done <- outcome{result: result, err: err}
	}()

	select {
	case <-ctx.Done():
		return overpass.Result{}, errors.WithStack(ctx.Err())
	case out := <-done:
		return out.result, out.err
	}
}

// buildQuery assembles the Overpass QL query for every feature kind the
// engine understands, bounded to the given box.
func buildQuery(bbox entity.BoundingBox) string {
	// Overpass bbox order: south,west,north,east.
	b := fmt.Sprintf("%f,%f,%f,%f", bbox.South, bbox.West, bbox.North, bbox.East)

	return fmt.Sprintf(`
		[out:json];
		(
			way["building"](%[1]s);
			node["natural"="tree"](%[1]s);
			way["natural"="tree_row"](%[1]s);
			way["leisure"~"^(park|garden)$"](%[1]s);
			way["landuse"="forest"](%[1]s);
			way["natural"="wood"](%[1]s);
			way["covered"="yes"](%[1]s);
		);
		out body;
		>;
		out skel qt;
	`, b)
}
