package geometry

import (
	"path/filepath"
	"testing"
)

func loadTestCollection(t *testing.T) *Collection {
	t.Helper()
	c, err := Load(filepath.Join("testdata", "districts.geojson"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return c
}

func TestLoad_SkipsNonPolygonFeatures(t *testing.T) {
	c := loadTestCollection(t)

	// 6 features in the fixture; the Point feature is skipped.
	if c.Len() != 5 {
		t.Errorf("expected 5 districts, got %d", c.Len())
	}
}

func TestLocate_Inside(t *testing.T) {
	c := loadTestCollection(t)

	d, ok := c.Locate(Point{Lng: -78.5, Lat: 43.5})
	if !ok {
		t.Fatal("expected a match")
	}
	if d.Name != "Brampton East" {
		t.Errorf("expected Brampton East, got %q", d.Name)
	}
}

func TestLocate_NameKeyVariant(t *testing.T) {
	c := loadTestCollection(t)

	// Brampton East carries its name under ED_NAME, not ED_NAMEE.
	d, ok := c.Locate(Point{Lng: -78.2, Lat: 43.1})
	if !ok || d.Name != "Brampton East" {
		t.Errorf("expected Brampton East via ED_NAME key, got %v %v", d, ok)
	}
}

func TestLocate_Outside(t *testing.T) {
	c := loadTestCollection(t)

	if _, ok := c.Locate(Point{Lng: -60.0, Lat: 50.0}); ok {
		t.Error("expected no match far outside all boundaries")
	}
}

func TestLocate_MultiPolygonSecondPart(t *testing.T) {
	c := loadTestCollection(t)

	d, ok := c.Locate(Point{Lng: -75.7, Lat: 43.5})
	if !ok || d.Name != "Lakeshore" {
		t.Errorf("expected Lakeshore's second polygon to match, got %v %v", d, ok)
	}
}

func TestLocate_HoleExcluded(t *testing.T) {
	c := loadTestCollection(t)

	// Dead centre of Lakeshore's hole ring.
	if d, ok := c.Locate(Point{Lng: -77.5, Lat: 43.5}); ok {
		t.Errorf("expected no match inside hole, got %q", d.Name)
	}
}

func TestLocate_OverlapResolvesToDatasetOrder(t *testing.T) {
	c := loadTestCollection(t)

	// "Overlap Claim" duplicates Oakville North—Burlington's square later
	// in the file; the earlier feature must win every time.
	for i := 0; i < 10; i++ {
		d, ok := c.Locate(Point{Lng: -79.5, Lat: 43.5})
		if !ok || d.Name != "Oakville North—Burlington" {
			t.Fatalf("expected first-in-dataset district, got %v %v", d, ok)
		}
	}
}

func TestLocate_NamelessDistrictStillMatches(t *testing.T) {
	c := loadTestCollection(t)

	d, ok := c.Locate(Point{Lng: -74.5, Lat: 43.5})
	if !ok {
		t.Fatal("expected a geometric match")
	}
	if d.Name != "" {
		t.Errorf("expected empty name for unknown property keys, got %q", d.Name)
	}
}

func TestPolygonContains_EdgeRuleIsConsistent(t *testing.T) {
	left := Polygon{Ring{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}
	right := Polygon{Ring{{1, 0}, {2, 0}, {2, 1}, {1, 1}}}

	// A point exactly on the shared border belongs to exactly one side.
	p := Point{Lng: 1, Lat: 0.5}
	inLeft := left.Contains(p)
	inRight := right.Contains(p)
	if inLeft == inRight {
		t.Errorf("shared-edge point in both or neither: left=%v right=%v", inLeft, inRight)
	}
}

func TestPolygonContains_Basic(t *testing.T) {
	square := Polygon{Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}

	cases := []struct {
		name string
		p    Point
		want bool
	}{
		{"centre", Point{5, 5}, true},
		{"outside", Point{15, 5}, false},
		{"near corner inside", Point{0.001, 0.001}, true},
		{"negative coords outside", Point{-1, -1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := square.Contains(tc.p); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}
