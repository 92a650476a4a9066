package geometry

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// Point is a WGS84 coordinate.
type Point struct {
	Lng float64
	Lat float64
}

// Ring is a closed linear ring of a polygon boundary. The first and last
// coordinates may or may not repeat; containment does not require closure.
type Ring []Point

// Polygon is one outer ring followed by zero or more hole rings, per the
// GeoJSON Polygon layout.
type Polygon []Ring

// District is one electoral district boundary with its display name.
// Name may be empty when the dataset revision carries the name under a
// property key we do not know; the resolver reports that as a data error
// only if the district actually matches a lookup.
type District struct {
	Name     string
	Polygons []Polygon

	bbox [4]float64 // minLng, minLat, maxLng, maxLat
}

// nameKeys are the property keys that have carried the English district
// name across boundary dataset revisions, in priority order.
var nameKeys = []string{"ED_NAMEE", "ED_NAME", "ENNAME", "FEDENAME", "NAME"}

type rawFeatureCollection struct {
	Type     string       `json:"type"`
	Features []rawFeature `json:"features"`
}

type rawFeature struct {
	Properties map[string]any `json:"properties"`
	Geometry   rawGeometry    `json:"geometry"`
}

type rawGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Load reads a GeoJSON FeatureCollection of district boundaries and builds
// the in-memory collection with its spatial index. Called once at startup;
// the result is immutable afterwards.
func Load(path string) (*Collection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read boundary geojson: %w", err)
	}

	var fc rawFeatureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("parse boundary geojson: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("boundary geojson: expected FeatureCollection, got %q", fc.Type)
	}

	var districts []*District
	skipped := 0
	for i, f := range fc.Features {
		polys, err := parseGeometry(f.Geometry)
		if err != nil {
			return nil, fmt.Errorf("boundary geojson feature %d: %w", i, err)
		}
		if polys == nil {
			skipped++
			continue
		}

		d := &District{
			Name:     nameFromProperties(f.Properties),
			Polygons: polys,
		}
		d.bbox = boundingBox(polys)
		districts = append(districts, d)
	}

	if len(districts) == 0 {
		return nil, fmt.Errorf("boundary geojson %s contains no polygon features", path)
	}

	c, err := newCollection(districts)
	if err != nil {
		return nil, err
	}

	log.Printf("[geometry] loaded %d district boundaries from %s (%d non-polygon features skipped)",
		len(districts), path, skipped)
	return c, nil
}

func parseGeometry(g rawGeometry) ([]Polygon, error) {
	switch g.Type {
	case "Polygon":
		var coords [][][]float64
		if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
			return nil, fmt.Errorf("polygon coordinates: %w", err)
		}
		p, err := toPolygon(coords)
		if err != nil {
			return nil, err
		}
		return []Polygon{p}, nil
	case "MultiPolygon":
		var coords [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
			return nil, fmt.Errorf("multipolygon coordinates: %w", err)
		}
		polys := make([]Polygon, 0, len(coords))
		for _, pc := range coords {
			p, err := toPolygon(pc)
			if err != nil {
				return nil, err
			}
			polys = append(polys, p)
		}
		return polys, nil
	default:
		// Point/LineString features occasionally ride along in exports.
		return nil, nil
	}
}

func toPolygon(coords [][][]float64) (Polygon, error) {
	poly := make(Polygon, 0, len(coords))
	for _, rc := range coords {
		ring := make(Ring, 0, len(rc))
		for _, pos := range rc {
			if len(pos) < 2 {
				return nil, fmt.Errorf("coordinate with %d values", len(pos))
			}
			ring = append(ring, Point{Lng: pos[0], Lat: pos[1]})
		}
		if len(ring) < 3 {
			return nil, fmt.Errorf("ring with %d points", len(ring))
		}
		poly = append(poly, ring)
	}
	if len(poly) == 0 {
		return nil, fmt.Errorf("polygon with no rings")
	}
	return poly, nil
}

func nameFromProperties(props map[string]any) string {
	for _, key := range nameKeys {
		if v, ok := props[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func boundingBox(polys []Polygon) [4]float64 {
	first := polys[0][0][0]
	bb := [4]float64{first.Lng, first.Lat, first.Lng, first.Lat}
	for _, poly := range polys {
		for _, ring := range poly {
			for _, p := range ring {
				if p.Lng < bb[0] {
					bb[0] = p.Lng
				}
				if p.Lat < bb[1] {
					bb[1] = p.Lat
				}
				if p.Lng > bb[2] {
					bb[2] = p.Lng
				}
				if p.Lat > bb[3] {
					bb[3] = p.Lat
				}
			}
		}
	}
	return bb
}
