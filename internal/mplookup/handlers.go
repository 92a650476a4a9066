package mplookup

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/WriteYourMP/WYM-Backend/internal/mplookup/resolver"
	"github.com/WriteYourMP/WYM-Backend/internal/mplookup/roster"
)

// Canadian postal code shape after normalization: letter-digit alternating,
// six characters. Validated before any network or file I/O happens.
var postalRe = regexp.MustCompile(`^[A-Z]\d[A-Z]\d[A-Z]\d$`)

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizePostal uppercases a raw postal code and strips all whitespace.
// It does not validate; callers check the result against the format rule.
func NormalizePostal(raw string) string {
	return whitespaceRe.ReplaceAllString(strings.ToUpper(raw), "")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// GetMP handles GET /mp?postal=X and POST /mp with {"postal": "X"}: it
// validates the postal code, resolves it to a riding, reconciles against
// the roster and returns the riding + MP payload.
func GetMP(w http.ResponseWriter, r *http.Request) {
	var raw string
	switch r.Method {
	case http.MethodGet:
		raw = r.URL.Query().Get("postal")
	case http.MethodPost:
		var req lookupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		raw = req.Postal
	}

	postal := NormalizePostal(raw)
	if !postalRe.MatchString(postal) {
		writeError(w, http.StatusBadRequest, "Invalid postal code format")
		return
	}

	res, err := ridingResolver.Resolve(r.Context(), postal)
	if err != nil {
		switch {
		case errors.Is(err, resolver.ErrNoMatch):
			writeError(w, http.StatusNotFound, "No riding found for that postal code")
		case errors.Is(err, resolver.ErrData):
			log.Printf("[mplookup] data error for %s: %v", postal, err)
			writeError(w, http.StatusInternalServerError, "Could not read riding name from boundary data")
		default:
			log.Printf("[mplookup] upstream error for %s: %v", postal, err)
			writeError(w, http.StatusInternalServerError, "Lookup service unavailable, try again later")
		}
		return
	}

	var fb *roster.Fallback
	if res.HasFallback {
		fb = &roster.Fallback{MPName: res.MPName, MPEmail: res.MPEmail}
	}

	m := mpRoster.Reconcile(res.RidingName, fb)

	writeJSON(w, http.StatusOK, LookupResult{
		RidingName: m.RidingName,
		MPName:     m.MPName,
		MPEmail:    m.MPEmail,
	})
}
