package venue

import (
	"fmt"
	"math/rand"
	"strings"
)

// Resolver infers the event location from structured form input or free
// text and produces both prompt guidance and a concrete venue.
type Resolver struct {
	corpus *Corpus
}

func NewResolver(corpus *Corpus) *Resolver {
	return &Resolver{corpus: corpus}
}

// Resolve applies the location rules in priority order:
//
//  1. province + city given: the venue must sit in that exact pair
//  2. a known city mentioned in free text: require the city only
//  3. a barangay given or mentioned: prefer it, with an explicit
//     fallback when it is unknown
//  4. otherwise pick freely from the service area
//
// Curated provinces draw from the corpus; every other served province
// gets a synthesized venue, never a curated one.
func (r *Resolver) Resolve(
	province, city, barangay, freeText string,
	rng *rand.Rand,
) *Resolution {

	province = canonicalProvince(province)

	if province != "" && city != "" {
		return r.resolveExact(province, city, rng)
	}

	if mentioned, prov := findCityMention(freeText); mentioned != "" {
		return r.resolveExact(prov, mentioned, rng)
	}

	if barangay = strings.TrimSpace(barangay); barangay != "" {
		return r.resolveBarangay(barangay, rng)
	}
	if mentioned := r.findBarangayMention(freeText); mentioned != "" {
		return r.resolveBarangay(mentioned, rng)
	}

	if province != "" {
		cities := ProvinceCities[province]
		return r.resolveExact(province, cities[rng.Intn(len(cities))], rng)
	}

	// Free pick from the service area.
	prov := ServedProvinces[rng.Intn(len(ServedProvinces))]
	cities := ProvinceCities[prov]
	return r.resolveExact(prov, cities[rng.Intn(len(cities))], rng)
}

func (r *Resolver) resolveExact(province, city string, rng *rand.Rand) *Resolution {
	res := &Resolution{
		Province: province,
		City:     city,
		Guidance: fmt.Sprintf(
			"The recommended venue must be located in %s, %s.",
			city, province,
		),
	}

	if CuratedProvinces[province] {
		if curated := r.corpus.ByCity(city); len(curated) > 0 {
			v := curated[rng.Intn(len(curated))]
			v.Reasoning = fmt.Sprintf(
				"%s is a venue we regularly cater in %s, %s.",
				v.VenueName, v.City, v.Province,
			)
			res.Venue = &v
			return res
		}
		// City not covered by the corpus: fall back to any curated
		// venue of the province and say so.
		var provinceVenues []Recommendation
		for _, v := range r.corpus.Venues() {
			if strings.EqualFold(v.Province, province) {
				provinceVenues = append(provinceVenues, v)
			}
		}
		if len(provinceVenues) == 0 {
			// An override corpus may cover only one curated province;
			// synthesize rather than crash or misplace the venue.
			res.Venue = synthesizeVenue(province, city, rng)
			return res
		}
		v := provinceVenues[rng.Intn(len(provinceVenues))]
		v.Reasoning = fmt.Sprintf(
			"We have no partner venue in %s yet, so we chose %s in nearby %s.",
			city, v.VenueName, v.City,
		)
		res.Venue = &v
		return res
	}

	res.Venue = synthesizeVenue(province, city, rng)
	return res
}

func (r *Resolver) resolveBarangay(barangay string, rng *rand.Rand) *Resolution {
	matches := r.corpus.ByBarangay(barangay)
	if len(matches) > 0 {
		v := matches[rng.Intn(len(matches))]
		v.Reasoning = fmt.Sprintf(
			"%s sits right in %s as requested.",
			v.VenueName, v.Barangay,
		)
		return &Resolution{
			Province: v.Province,
			City:     v.City,
			Barangay: v.Barangay,
			Guidance: fmt.Sprintf(
				"Prefer a venue in %s; it is a known barangay in our service area.",
				barangay,
			),
			Venue: &v,
		}
	}

	// Unknown barangay: state the fallback explicitly instead of
	// pretending the match succeeded.
	all := r.corpus.Venues()
	v := all[rng.Intn(len(all))]
	v.Reasoning = fmt.Sprintf(
		"We couldn't find %s among our venue locations, so we chose the closest option in %s, %s.",
		barangay, v.Barangay, v.City,
	)
	return &Resolution{
		Province: v.Province,
		City:     v.City,
		Guidance: fmt.Sprintf(
			"The requested barangay %s is not in our venue list; recommend the closest covered location and say so.",
			barangay,
		),
		Venue: &v,
	}
}

// synthesizeVenue makes up a plausible venue for provinces without a
// curated corpus. Reusing curated-province venues here would produce
// geographically incoherent results.
func synthesizeVenue(province, city string, rng *rand.Rand) *Recommendation {
	nameTemplates := []string{
		"%s Garden Pavilion",
		"Villa %s Events Place",
		"The %s Grand Pavilion",
		"%s Heritage Events Hall",
		"Casa %s Garden Venue",
	}
	streetTemplates := []string{
		"National Highway",
		"Provincial Road",
		"Rizal Street",
		"Mabini Avenue",
		"Poblacion Road",
	}

	postal := provincePostal[province]
	if postal == "" {
		postal = "0000"
	}

	return &Recommendation{
		VenueName:     fmt.Sprintf(nameTemplates[rng.Intn(len(nameTemplates))], city),
		Barangay:      "Barangay Poblacion",
		StreetAddress: fmt.Sprintf("%d %s", 10+rng.Intn(180), streetTemplates[rng.Intn(len(streetTemplates))]),
		City:          city,
		Province:      province,
		PostalCode:    postal,
		Reasoning: fmt.Sprintf(
			"We serve %s on an on-site basis; this is a representative events venue in %s.",
			province, city,
		),
		Synthesized: true,
	}
}

// canonicalProvince normalizes user input against the served-province
// list. Unknown provinces resolve to empty and fall through to the
// free-pick rule.
func canonicalProvince(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	for _, p := range ServedProvinces {
		if strings.EqualFold(p, input) {
			return p
		}
	}
	// Common aliases for the capital region.
	switch strings.ToLower(input) {
	case "ncr", "manila metro", "metro-manila":
		return ProvinceMetroManila
	}
	return ""
}

// findCityMention scans free text for any served city and returns the
// city with its province.
func findCityMention(text string) (city, province string) {
	if strings.TrimSpace(text) == "" {
		return "", ""
	}
	lower := strings.ToLower(text)
	for _, prov := range ServedProvinces {
		for _, c := range ProvinceCities[prov] {
			if strings.Contains(lower, strings.ToLower(c)) {
				return c, prov
			}
		}
	}
	return "", ""
}

// findBarangayMention scans free text for a barangay known to the
// curated corpus.
func (r *Resolver) findBarangayMention(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	lower := strings.ToLower(text)

	for _, b := range r.corpus.Barangays() {
		// Corpus barangays carry the "Barangay " prefix; customers
		// usually type just the name.
		name := strings.TrimPrefix(strings.ToLower(b), "barangay ")
		if strings.Contains(lower, name) {
			return b
		}
	}

	// A bare "barangay X" mention not in the corpus still counts as a
	// barangay request so the resolver can state its fallback.
	if idx := strings.Index(lower, "barangay "); idx >= 0 {
		rest := strings.Fields(lower[idx+len("barangay "):])
		if len(rest) > 0 {
			return capitalize(strings.Trim(rest[0], ".,!?"))
		}
	}
	return ""
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
