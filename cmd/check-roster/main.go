// check-roster audits the two reference datasets against each other: it
// lists boundary districts with no roster entry and roster rows matching
// no boundary, using the same normalization the lookup endpoint uses.
// Run it after refreshing either dataset, before deploying.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/WriteYourMP/WYM-Backend/internal/config"
	"github.com/WriteYourMP/WYM-Backend/internal/mplookup/geometry"
	"github.com/WriteYourMP/WYM-Backend/internal/mplookup/roster"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	boundaries, err := geometry.Load(cfg.RidingsGeoJSON)
	if err != nil {
		log.Fatalf("Boundary load error: %v", err)
	}
	districts := boundaries.Names()

	ros, err := roster.Load(cfg.RosterCSV)
	if err != nil {
		log.Fatalf("Roster load error: %v", err)
	}

	rosterKeys := map[string]string{}
	for _, name := range ros.RidingNames() {
		rosterKeys[roster.Normalize(name)] = name
	}

	boundaryKeys := map[string]string{}
	var unrostered []string
	for _, name := range districts {
		if name == "" {
			unrostered = append(unrostered, "(district with unrecognized name property)")
			continue
		}
		key := roster.Normalize(name)
		boundaryKeys[key] = name
		if _, ok := rosterKeys[key]; !ok {
			unrostered = append(unrostered, name)
		}
	}

	var unbounded []string
	for key, name := range rosterKeys {
		if _, ok := boundaryKeys[key]; !ok {
			unbounded = append(unbounded, name)
		}
	}

	fmt.Printf("Boundary districts: %d\nRoster entries:     %d\n\n", len(districts), ros.Len())

	if len(unrostered) > 0 {
		fmt.Printf("Districts with no roster entry (%d):\n", len(unrostered))
		for _, name := range unrostered {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println()
	}

	if len(unbounded) > 0 {
		fmt.Printf("Roster rows matching no boundary (%d):\n", len(unbounded))
		for _, name := range unbounded {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println()
	}

	if len(unrostered) == 0 && len(unbounded) == 0 {
		fmt.Println("Datasets agree.")
		return
	}
	os.Exit(1)
}
