package opennorth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/postcodes/L6R0S4/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPostcode_ParsesCentroid(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{
		"code": "L6R0S4",
		"centroid": {"type": "Point", "coordinates": [-79.77, 43.75]},
		"representatives_centroid": [
			{"name": "Anna Tran", "elected_office": "MP", "district_name": "Oakville North—Burlington", "email": "anna.tran@parl.gc.ca"}
		]
	}`)

	c := NewClient(srv.URL, 2*time.Second)
	resp, err := c.Postcode(context.Background(), "L6R0S4")
	if err != nil {
		t.Fatalf("Postcode failed: %v", err)
	}

	if !resp.HasCentroid() {
		t.Fatal("expected centroid")
	}
	if lng := resp.Centroid.Coordinates[0]; lng != -79.77 {
		t.Errorf("expected lng -79.77, got %v", lng)
	}
	if lat := resp.Centroid.Coordinates[1]; lat != 43.75 {
		t.Errorf("expected lat 43.75, got %v", lat)
	}
}

func TestPostcode_NotFound(t *testing.T) {
	srv := newTestServer(t, http.StatusNotFound, `{"detail": "Not found."}`)

	c := NewClient(srv.URL, 2*time.Second)
	_, err := c.Postcode(context.Background(), "L6R0S4")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPostcode_UpstreamError(t *testing.T) {
	srv := newTestServer(t, http.StatusInternalServerError, `oops`)

	c := NewClient(srv.URL, 2*time.Second)
	_, err := c.Postcode(context.Background(), "L6R0S4")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("expected a non-ErrNotFound error, got %v", err)
	}
}

func TestRepresentatives_FieldPriority(t *testing.T) {
	mp := Representative{Name: "A", ElectedOffice: "MP"}
	mla := Representative{Name: "B", ElectedOffice: "MLA"}

	cases := []struct {
		name string
		resp PostcodeResponse
		want string
	}{
		{
			"centroid wins over concordance",
			PostcodeResponse{
				RepresentativesCentroid:    []Representative{mp},
				RepresentativesConcordance: []Representative{mla},
			},
			"A",
		},
		{
			"concordance when centroid empty",
			PostcodeResponse{RepresentativesConcordance: []Representative{mla}},
			"B",
		},
		{
			"objects as last resort",
			PostcodeResponse{Objects: []Representative{mp}},
			"A",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reps := tc.resp.Representatives()
			if len(reps) == 0 || reps[0].Name != tc.want {
				t.Errorf("expected first rep %q, got %v", tc.want, reps)
			}
		})
	}
}

func TestRepresentatives_AllEmpty(t *testing.T) {
	var resp PostcodeResponse
	if reps := resp.Representatives(); reps != nil {
		t.Errorf("expected nil, got %v", reps)
	}
}
