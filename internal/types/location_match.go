package types

// LocationMatchType classifies the hierarchical relationship between a job
// location and a contact location.
type LocationMatchType string

// Location match classifications, ordered roughly by specificity.
const (
	LocationExact          LocationMatchType = "exact"
	LocationCityInState    LocationMatchType = "city_in_state"
	LocationCityInCountry  LocationMatchType = "city_in_country"
	LocationStateInCountry LocationMatchType = "state_in_country"
	LocationCountryMatch   LocationMatchType = "country_match"
	LocationRemote         LocationMatchType = "remote"
	LocationRemoteNoData   LocationMatchType = "remote_no_data"
	LocationNoMatch        LocationMatchType = "no_match"
)

// LocationMatch is the result of matching two location strings.
type LocationMatch struct {
	MatchType  LocationMatchType `json:"match_type"`
	Confidence float64           `json:"confidence"`
	Score      float64           `json:"score"`
	Details    string            `json:"details"`
}
