package mplookup

import (
	"log"

	"github.com/WriteYourMP/WYM-Backend/internal/config"
	"github.com/WriteYourMP/WYM-Backend/internal/mplookup/geometry"
	"github.com/WriteYourMP/WYM-Backend/internal/mplookup/opennorth"
	"github.com/WriteYourMP/WYM-Backend/internal/mplookup/resolver"
	"github.com/WriteYourMP/WYM-Backend/internal/mplookup/roster"
)

// Reference data and the active resolver, built once in Init and read-only
// for the life of the process.
var (
	ridingResolver resolver.RidingResolver
	mpRoster       *roster.Roster
)

func Init(cfg config.Config) {
	ros, err := roster.Load(cfg.RosterCSV)
	if err != nil {
		log.Fatal("Failed to load MP roster: ", err)
	}
	mpRoster = ros

	strategy := resolver.Strategy(cfg.Strategy)

	// The boundary dataset is only read when some strategy will use it.
	var districts *geometry.Collection
	if strategy == resolver.StrategyGeometry || cfg.Fallback {
		districts, err = geometry.Load(cfg.RidingsGeoJSON)
		if err != nil {
			log.Fatal("Failed to load riding boundaries: ", err)
		}
	}

	client := opennorth.NewClient(cfg.RepresentBaseURL, cfg.UpstreamTimeout)

	ridingResolver, err = resolver.New(resolver.Config{
		Strategy:  strategy,
		Fallback:  cfg.Fallback,
		Districts: districts,
		Client:    client,
	})
	if err != nil {
		log.Fatal("Failed to build riding resolver: ", err)
	}

	log.Printf("[mplookup] initialized %s resolver, %d roster entries", ridingResolver.Name(), mpRoster.Len())
}
