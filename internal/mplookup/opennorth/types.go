package opennorth

// PostcodeResponse is the Represent API postcode resource. Only the fields
// the lookup needs are decoded; the API is unversioned and grows fields
// over time, so everything else is ignored.
type PostcodeResponse struct {
	Code     string    `json:"code"`
	Centroid *Geometry `json:"centroid"`

	// Representative arrays have moved between fields across API
	// revisions. Representatives() picks the first populated one.
	RepresentativesCentroid    []Representative `json:"representatives_centroid"`
	RepresentativesConcordance []Representative `json:"representatives_concordance"`
	Objects                    []Representative `json:"objects"`
}

// Geometry is a GeoJSON-style geometry; for postcode centroids the
// coordinates are [longitude, latitude].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Representative is one elected-official record from the Represent API.
type Representative struct {
	Name          string `json:"name"`
	ElectedOffice string `json:"elected_office"`
	DistrictName  string `json:"district_name"`
	Email         string `json:"email"`
	Party         string `json:"party_name"`
	URL           string `json:"url"`
}

// Representatives returns the first populated representative array, in the
// priority order the campaign frontend historically consumed them:
// centroid-derived, then postcode-concordance, then plain object lists.
func (r *PostcodeResponse) Representatives() []Representative {
	for _, reps := range [][]Representative{
		r.RepresentativesCentroid,
		r.RepresentativesConcordance,
		r.Objects,
	} {
		if len(reps) > 0 {
			return reps
		}
	}
	return nil
}

// HasCentroid reports whether the response carries a usable centroid pair.
func (r *PostcodeResponse) HasCentroid() bool {
	return r.Centroid != nil && len(r.Centroid.Coordinates) >= 2
}
