// Package location classifies the relationship between a job location and a
// contact location using a country/state/city hierarchy with aliases.
//
// Naive string equality under-matches ("Austin" vs "Austin, Texas, USA") and
// naive substring matching over-matches across unrelated places sharing a
// word; the hierarchy disambiguates containment while staying explainable.
package location

import (
	"fmt"
	"strings"

	"github.com/jonathan/referral-matcher/internal/lexicon"
	"github.com/jonathan/referral-matcher/internal/types"
)

// entityKind distinguishes the hierarchy level an input string resolved to.
type entityKind string

const (
	kindCountry entityKind = "country"
	kindState   entityKind = "state"
	kindCity    entityKind = "city"
)

// entity is a resolved location: a city carries its state (US model) or just
// its country (rest-of-world model).
type entity struct {
	kind    entityKind
	name    string
	state   string
	country string
}

// countryName is the country this entity belongs to; for a country entity,
// itself.
func (e entity) countryName() string {
	if e.kind == kindCountry {
		return e.name
	}
	return e.country
}

// Hierarchy holds normalized lookup tables built once from the lexicon's
// location data. It is immutable after construction and safe for concurrent
// use.
type Hierarchy struct {
	countries map[string]string // normalized name -> canonical
	states    map[string]entity // normalized name -> state entity
	cities    map[string]entity // normalized name -> city entity
	aliases   map[string]string // normalized alias -> canonical name
}

// New builds a Hierarchy from the lexicon's location tables. Cities keyed by
// a state name inherit that state's country; cities keyed directly by a
// country belong to it with no state.
func New(data lexicon.LocationData) *Hierarchy {
	h := &Hierarchy{
		countries: make(map[string]string),
		states:    make(map[string]entity),
		cities:    make(map[string]entity),
		aliases:   make(map[string]string),
	}

	for _, country := range data.Countries {
		h.countries[normalize(country)] = country
	}

	for country, states := range data.States {
		for _, state := range states {
			h.states[normalize(state)] = entity{kind: kindState, name: state, country: country}
		}
	}

	for parent, cities := range data.Cities {
		state, isState := h.states[normalize(parent)]
		for _, city := range cities {
			if isState {
				h.cities[normalize(city)] = entity{kind: kindCity, name: city, state: state.name, country: state.country}
			} else {
				h.cities[normalize(city)] = entity{kind: kindCity, name: city, country: parent}
			}
		}
	}

	// Alias resolution must be order-independent, so index every alias both
	// ways: alias -> canonical and canonical -> canonical.
	for canonical, aliases := range data.Aliases {
		h.aliases[normalize(canonical)] = canonical
		for _, alias := range aliases {
			h.aliases[normalize(alias)] = canonical
		}
	}

	return h
}

// Match classifies the relationship between a job location and a contact
// location. It never fails: unknown strings simply land in no-match. Pure
// function, safe to call per contact at scoring time.
func (h *Hierarchy) Match(jobLocation, contactLocation string) types.LocationMatch {
	if strings.TrimSpace(jobLocation) == "" || strings.TrimSpace(contactLocation) == "" {
		return types.LocationMatch{
			MatchType: types.LocationNoMatch,
			Details:   "No location data",
		}
	}

	job, jobOK := h.resolve(jobLocation)
	contact, contactOK := h.resolve(contactLocation)
	if !jobOK || !contactOK {
		return h.simpleMatch(jobLocation, contactLocation)
	}

	// Exact same entity at the same hierarchy level.
	if job.kind == contact.kind && job.name == contact.name {
		return types.LocationMatch{
			MatchType:  types.LocationExact,
			Confidence: 1.0,
			Score:      4.0,
			Details:    fmt.Sprintf("Exact %s match: %s", job.kind, job.name),
		}
	}

	switch {
	case job.kind == kindCountry && contact.kind == kindCity:
		if h.sameCountry(contact.country, job.name) {
			return types.LocationMatch{
				MatchType:  types.LocationCityInCountry,
				Confidence: 0.9,
				Score:      3.0,
				Details:    fmt.Sprintf("Contact in %s, %s", contact.name, job.name),
			}
		}

	case job.kind == kindState && contact.kind == kindCity:
		if contact.state == job.name {
			return types.LocationMatch{
				MatchType:  types.LocationCityInState,
				Confidence: 0.95,
				Score:      3.5,
				Details:    fmt.Sprintf("Contact in %s, %s", contact.name, job.name),
			}
		}

	case job.kind == kindCountry && contact.kind == kindState:
		if h.sameCountry(contact.country, job.name) {
			return types.LocationMatch{
				MatchType:  types.LocationStateInCountry,
				Confidence: 0.8,
				Score:      2.5,
				Details:    fmt.Sprintf("Contact in %s, %s", contact.name, job.name),
			}
		}

	}

	// Different entities sharing a country still beat no match: a Dublin job
	// and a Cork contact are the same hiring market at a coarse level.
	if jobCountry, contactCountry := job.countryName(), contact.countryName(); jobCountry != "" && contactCountry != "" &&
		h.sameCountry(jobCountry, contactCountry) {
		return types.LocationMatch{
			MatchType:  types.LocationCountryMatch,
			Confidence: 0.7,
			Score:      2.0,
			Details:    fmt.Sprintf("Same country: %s", jobCountry),
		}
	}

	return types.LocationMatch{
		MatchType: types.LocationNoMatch,
		Details:   "No hierarchical match found",
	}
}

// resolve maps an input string to a hierarchy entity. Compound strings like
// "Austin, Texas, USA" resolve via their first comma segment, which is the
// most specific one in the conventional city-first ordering.
func (h *Hierarchy) resolve(raw string) (entity, bool) {
	if ent, ok := h.lookup(raw); ok {
		return ent, true
	}
	if idx := strings.Index(raw, ","); idx >= 0 {
		if ent, ok := h.lookup(raw[:idx]); ok {
			return ent, true
		}
	}
	return entity{}, false
}

// lookup maps a single name through the alias table and checks each hierarchy
// level, most general first.
func (h *Hierarchy) lookup(raw string) (entity, bool) {
	normalized := normalize(h.resolveAlias(raw))

	if canonical, ok := h.countries[normalized]; ok {
		return entity{kind: kindCountry, name: canonical}, true
	}
	if state, ok := h.states[normalized]; ok {
		return state, true
	}
	if city, ok := h.cities[normalized]; ok {
		return city, true
	}
	return entity{}, false
}

// resolveAlias returns the canonical name for an alias, or the input
// unchanged when no alias entry exists.
func (h *Hierarchy) resolveAlias(raw string) string {
	if canonical, ok := h.aliases[normalize(raw)]; ok {
		return canonical
	}
	return raw
}

// sameCountry reports whether two country names refer to the same country
// after alias resolution in either direction.
func (h *Hierarchy) sameCountry(a, b string) bool {
	na := normalize(h.resolveAlias(a))
	nb := normalize(h.resolveAlias(b))
	return na != "" && na == nb
}

// simpleMatch is the fallback when one side is unknown to the hierarchy:
// literal equality or substring containment on normalized strings, with a
// lower confidence ceiling than any hierarchy match.
func (h *Hierarchy) simpleMatch(jobLocation, contactLocation string) types.LocationMatch {
	jobNorm := normalize(jobLocation)
	contactNorm := normalize(contactLocation)

	if jobNorm != "" && jobNorm == contactNorm {
		return types.LocationMatch{
			MatchType:  types.LocationExact,
			Confidence: 0.8,
			Score:      3.0,
			Details:    fmt.Sprintf("Simple exact match: %s", jobLocation),
		}
	}

	if jobNorm != "" && contactNorm != "" &&
		(strings.Contains(contactNorm, jobNorm) || strings.Contains(jobNorm, contactNorm)) {
		return types.LocationMatch{
			MatchType:  types.LocationCityInCountry,
			Confidence: 0.6,
			Score:      2.0,
			Details:    fmt.Sprintf("Contains match: %s in %s", jobLocation, contactLocation),
		}
	}

	return types.LocationMatch{
		MatchType: types.LocationNoMatch,
		Details:   "No simple match found",
	}
}

// locationSuffixes are trimmed before comparison; "Dublin City" and "Dublin"
// name the same place.
var locationSuffixes = []string{" city", " town", " county", " state", " country", " region"}

func normalize(raw string) string {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	for _, suffix := range locationSuffixes {
		if strings.HasSuffix(normalized, suffix) {
			normalized = strings.TrimSpace(normalized[:len(normalized)-len(suffix)])
		}
	}
	return normalized
}
