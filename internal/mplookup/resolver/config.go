package resolver

import (
	"errors"

	"github.com/WriteYourMP/WYM-Backend/internal/mplookup/geometry"
	"github.com/WriteYourMP/WYM-Backend/internal/mplookup/opennorth"
)

// Config carries the reference data and upstream client the strategies
// share. Both fields are constructed once at startup and never mutated.
type Config struct {
	Strategy Strategy
	Fallback bool

	// Districts is required by the geometry strategy (and by fallback
	// chains that include it).
	Districts *geometry.Collection

	// Client is required by both strategies: geometry uses it for the
	// postcode centroid, representative for the MP records.
	Client *opennorth.Client
}

var (
	errMissingClient    = errors.New("represent client is required")
	errMissingDistricts = errors.New("district collection is required for the geometry strategy")
)

// Validate checks the configuration against the selected strategy.
func (c Config) Validate() error {
	if c.Client == nil {
		return errMissingClient
	}
	needsGeometry := c.Strategy == StrategyGeometry || c.Fallback
	if needsGeometry && c.Districts == nil {
		return errMissingDistricts
	}
	return nil
}
