package roster

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
)

// UnknownMP is the sentinel name returned when neither the roster nor the
// upstream service knows who represents a riding.
const UnknownMP = "Unknown MP"

// Entry is one roster row: the incumbent MP for a single riding.
type Entry struct {
	RidingName string
	MPName     string
	MPEmail    string
}

// Fallback carries upstream-supplied MP data used when the roster has no
// entry for a riding. The roster always wins when it has a match, since it
// is updated by hand after elections and by-elections while third-party
// data lags.
type Fallback struct {
	MPName  string
	MPEmail string
}

// Match is the reconciler's answer for a riding.
type Match struct {
	RidingName string
	MPName     string
	MPEmail    string
}

// Roster is the in-memory MP roster, loaded once at startup and read-only
// afterwards.
type Roster struct {
	entries []Entry
	byNorm  map[string]int
}

// headerAliases maps the column concept to the header spellings seen
// across roster exports (including a BOM-prefixed first header).
var headerAliases = map[string][]string{
	"riding": {"Riding", "riding", "Riding Name", "Constituency"},
	"name":   {"Name", "name", "MP Name", "MP"},
	"email":  {"Email", "email", "MP Email"},
}

// Load reads the roster CSV. Rows missing any of riding, name or email
// after trimming are dropped, not errored: the export routinely carries
// vacant seats and half-filled rows.
func Load(path string) (*Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse roster csv: %w", err)
	}
	if len(records) < 2 {
		return nil, errors.New("roster csv has no data rows")
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	col := map[string]int{}
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}

	idx := map[string]int{}
	for concept, aliases := range headerAliases {
		found := -1
		for _, a := range aliases {
			if i, ok := col[a]; ok {
				found = i
				break
			}
		}
		if found == -1 {
			return nil, fmt.Errorf("roster csv missing %s column (tried %v)", concept, aliases)
		}
		idx[concept] = found
	}

	ros := &Roster{byNorm: map[string]int{}}
	dropped := 0

	for _, rec := range records[1:] {
		get := func(concept string) string {
			i := idx[concept]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		e := Entry{
			RidingName: get("riding"),
			MPName:     get("name"),
			MPEmail:    get("email"),
		}
		if e.RidingName == "" || e.MPName == "" || e.MPEmail == "" {
			dropped++
			continue
		}

		key := Normalize(e.RidingName)
		if _, dup := ros.byNorm[key]; dup {
			// First row wins; later duplicates are stale export artifacts.
			dropped++
			continue
		}
		ros.entries = append(ros.entries, e)
		ros.byNorm[key] = len(ros.entries) - 1
	}

	log.Printf("[roster] loaded %d MP rows from %s (%d dropped)", len(ros.entries), path, dropped)
	return ros, nil
}

// Len reports how many usable entries the roster holds.
func (r *Roster) Len() int { return len(r.entries) }

// RidingNames returns the stored riding names in load order, for dataset
// audit tooling.
func (r *Roster) RidingNames() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.RidingName
	}
	return names
}

// Reconcile resolves a riding name against the roster. On an exact match
// (after Normalize on both sides) the roster entry is authoritative and
// its stored riding spelling is returned as the canonical display form.
// Otherwise the fallback MP data is used if supplied, and failing that the
// UnknownMP sentinel with an empty email. No substring matching: partial
// matches collide across similarly named ridings.
func (r *Roster) Reconcile(ridingName string, fb *Fallback) Match {
	key := Normalize(ridingName)
	if i, ok := r.byNorm[key]; ok {
		e := r.entries[i]
		return Match{
			RidingName: e.RidingName,
			MPName:     e.MPName,
			MPEmail:    e.MPEmail,
		}
	}

	m := Match{RidingName: strings.TrimSpace(ridingName), MPName: UnknownMP}
	if fb != nil && strings.TrimSpace(fb.MPName) != "" {
		m.MPName = strings.TrimSpace(fb.MPName)
		m.MPEmail = strings.TrimSpace(fb.MPEmail)
	}
	return m
}
