package roster

import (
	"os"
	"path/filepath"
	"testing"
)

func loadTestRoster(t *testing.T) *Roster {
	t.Helper()
	r, err := Load(filepath.Join("testdata", "mp_list.csv"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return r
}

func TestLoad_DropsIncompleteRows(t *testing.T) {
	r := loadTestRoster(t)

	// Fixture has 5 data rows; one lacks an email, one lacks a name.
	if r.Len() != 3 {
		t.Errorf("expected 3 usable rows, got %d", r.Len())
	}
}

func TestLoad_HandlesBOMHeader(t *testing.T) {
	r := loadTestRoster(t)

	// "Name" is the first header cell and carries the BOM in the fixture.
	m := r.Reconcile("Winnipeg South Centre", nil)
	if m.MPName != "Jordan Marsh" {
		t.Errorf("expected Jordan Marsh, got %q", m.MPName)
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(path, []byte("Name,Email\nA,a@b.c\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for missing riding column")
	}
}

func TestReconcile_ExactMatchIsAuthoritative(t *testing.T) {
	r := loadTestRoster(t)

	// Upstream fallback data must be ignored when the roster has the riding.
	fb := &Fallback{MPName: "Stale Upstream", MPEmail: "stale@example.com"}
	m := r.Reconcile("oakville north–burlington", fb)

	if m.MPName != "Anna Tran" || m.MPEmail != "anna.tran@parl.gc.ca" {
		t.Errorf("expected roster entry to win, got %+v", m)
	}
	// Canonical display form comes from the roster, not the caller.
	if m.RidingName != "Oakville North—Burlington" {
		t.Errorf("expected canonical riding name, got %q", m.RidingName)
	}
}

func TestReconcile_AccentInsensitive(t *testing.T) {
	r := loadTestRoster(t)

	m := r.Reconcile("Quebec Centre", nil)
	if m.MPName != "Pierre Côté" {
		t.Errorf("expected accent-folded match, got %+v", m)
	}
}

func TestReconcile_FallbackUsedWhenNoMatch(t *testing.T) {
	r := loadTestRoster(t)

	fb := &Fallback{MPName: "Casey Upstream", MPEmail: "casey@parl.gc.ca"}
	m := r.Reconcile("Somewhere Nonexistent", fb)

	if m.MPName != "Casey Upstream" || m.MPEmail != "casey@parl.gc.ca" {
		t.Errorf("expected fallback data, got %+v", m)
	}
	if m.RidingName != "Somewhere Nonexistent" {
		t.Errorf("expected input riding name, got %q", m.RidingName)
	}
}

func TestReconcile_UnknownMPSentinel(t *testing.T) {
	r := loadTestRoster(t)

	m := r.Reconcile("Somewhere Nonexistent", nil)
	if m.MPName != UnknownMP {
		t.Errorf("expected %q, got %q", UnknownMP, m.MPName)
	}
	if m.MPEmail != "" {
		t.Errorf("expected empty email, got %q", m.MPEmail)
	}
}
