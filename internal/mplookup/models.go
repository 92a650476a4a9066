package mplookup

// LookupResult is the endpoint's success payload. Field names match what
// the campaign frontend has always consumed.
type LookupResult struct {
	RidingName string `json:"riding_name"`
	MPName     string `json:"mp_name"`
	MPEmail    string `json:"mp_email"`
}

// ErrorResponse is the endpoint's failure payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// lookupRequest is the POST body shape.
type lookupRequest struct {
	Postal string `json:"postal"`
}
