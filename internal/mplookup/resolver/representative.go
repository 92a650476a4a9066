package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/WriteYourMP/WYM-Backend/internal/mplookup/opennorth"
)

// mpOffice is the Represent API's vocabulary for a federal Member of
// Parliament. The match is case-sensitive on purpose: "mp" and "MPP" are
// different offices upstream.
const mpOffice = "MP"

func init() {
	register(StrategyRepresentative, func(cfg Config) (RidingResolver, error) {
		return &representativeResolver{client: cfg.Client}, nil
	})
}

// representativeResolver asks the Represent API directly for the
// representatives at a postal code and extracts the MP record, skipping
// local polygon math entirely. The MP name/email it returns are fallback
// data only; the roster reconciler overrides them on a match.
type representativeResolver struct {
	client *opennorth.Client
}

func (r *representativeResolver) Name() string { return string(StrategyRepresentative) }

func (r *representativeResolver) Resolve(ctx context.Context, postal string) (Resolution, error) {
	resp, err := r.client.Postcode(ctx, postal)
	if err != nil {
		if errors.Is(err, opennorth.ErrNotFound) {
			return Resolution{}, fmt.Errorf("%w: postal code unknown upstream", ErrNoMatch)
		}
		return Resolution{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	for _, rep := range resp.Representatives() {
		if rep.ElectedOffice != mpOffice {
			continue
		}
		district := strings.TrimSpace(rep.DistrictName)
		if district == "" {
			continue
		}
		return Resolution{
			RidingName:  district,
			MPName:      strings.TrimSpace(rep.Name),
			MPEmail:     strings.TrimSpace(rep.Email),
			HasFallback: true,
		}, nil
	}

	return Resolution{}, fmt.Errorf("%w: no MP record for postal code", ErrNoMatch)
}
