package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/WriteYourMP/WYM-Backend/internal/mplookup/geometry"
	"github.com/WriteYourMP/WYM-Backend/internal/mplookup/opennorth"
)

func init() {
	register(StrategyGeometry, func(cfg Config) (RidingResolver, error) {
		return &geometricResolver{districts: cfg.Districts, client: cfg.Client}, nil
	})
}

// geometricResolver geocodes the postal code to its centroid via the
// Represent API, then finds the containing district in the local boundary
// dataset. The local dataset is authoritative for district names: it is
// refreshed together with the roster after redistributions, while the
// upstream's district labels lag.
type geometricResolver struct {
	districts *geometry.Collection
	client    *opennorth.Client
}

func (g *geometricResolver) Name() string { return string(StrategyGeometry) }

func (g *geometricResolver) Resolve(ctx context.Context, postal string) (Resolution, error) {
	resp, err := g.client.Postcode(ctx, postal)
	if err != nil {
		if errors.Is(err, opennorth.ErrNotFound) {
			// The upstream simply has no record of this postal code,
			// which is a miss, not an outage.
			return Resolution{}, fmt.Errorf("%w: postal code unknown upstream", ErrNoMatch)
		}
		return Resolution{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if !resp.HasCentroid() {
		return Resolution{}, fmt.Errorf("%w: no centroid in postcode response", ErrUpstream)
	}

	p := geometry.Point{
		Lng: resp.Centroid.Coordinates[0],
		Lat: resp.Centroid.Coordinates[1],
	}

	district, ok := g.districts.Locate(p)
	if !ok {
		return Resolution{}, fmt.Errorf("%w: no district contains centroid (%.4f, %.4f)",
			ErrNoMatch, p.Lng, p.Lat)
	}

	name := strings.TrimSpace(district.Name)
	if name == "" {
		return Resolution{}, fmt.Errorf("%w: matched district has no recognized name property", ErrData)
	}

	return Resolution{RidingName: name}, nil
}
