package venue

import (
	"math/rand"
	"strings"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(3))
}

func TestResolveExactCuratedCity(t *testing.T) {
	r := NewResolver(DefaultCorpus())

	res := r.Resolve("Metro Manila", "Quezon City", "", "", testRNG())

	if res.Venue == nil {
		t.Fatal("no venue resolved")
	}
	if res.Venue.Synthesized {
		t.Error("curated province must never get a synthesized venue")
	}
	if res.Venue.City != "Quezon City" {
		t.Errorf("venue city = %q, want Quezon City", res.Venue.City)
	}
	if !strings.Contains(res.Guidance, "Quezon City, Metro Manila") {
		t.Errorf("guidance %q should pin the city and province", res.Guidance)
	}
}

func TestResolveCuratedProvinceUncoveredCity(t *testing.T) {
	r := NewResolver(DefaultCorpus())

	// Valenzuela is served but has no corpus record.
	res := r.Resolve("Metro Manila", "Valenzuela", "", "", testRNG())

	if res.Venue == nil {
		t.Fatal("no venue resolved")
	}
	if res.Venue.Synthesized {
		t.Error("fallback within a curated province must stay curated")
	}
	if res.Venue.Province != "Metro Manila" {
		t.Errorf("fallback venue left the province: %q", res.Venue.Province)
	}
	if !strings.Contains(res.Venue.Reasoning, "no partner venue in Valenzuela") {
		t.Errorf("reasoning %q should admit the fallback", res.Venue.Reasoning)
	}
}

func TestResolveCuratedProvinceAbsentFromCorpus(t *testing.T) {
	// An override corpus may legally cover only one curated province.
	corpus, err := ParseCorpus(
		"Solo Venue | Barangay Uno | 1 Road | Manila | Metro Manila | 1000",
	)
	if err != nil {
		t.Fatal(err)
	}
	r := NewResolver(corpus)

	res := r.Resolve("Bulacan", "Malolos", "", "", testRNG())

	if res.Venue == nil {
		t.Fatal("no venue resolved")
	}
	if !res.Venue.Synthesized {
		t.Error("a province with no corpus coverage must get a synthesized venue")
	}
	if res.Venue.Province != "Bulacan" || res.Venue.City != "Malolos" {
		t.Errorf("venue placed in %s, %s; want Malolos, Bulacan", res.Venue.City, res.Venue.Province)
	}
	if res.Venue.VenueName == "Solo Venue" {
		t.Error("the other province's curated venue leaked in")
	}
}

func TestResolveNonCuratedProvinceSynthesizes(t *testing.T) {
	r := NewResolver(DefaultCorpus())

	for i := 0; i < 10; i++ {
		res := r.Resolve("Batangas", "Lipa", "", "", testRNG())

		if res.Venue == nil {
			t.Fatal("no venue resolved")
		}
		if !res.Venue.Synthesized {
			t.Fatal("non-curated province must get a synthesized venue")
		}
		if res.Venue.Province != "Batangas" || res.Venue.City != "Lipa" {
			t.Errorf("synthesized venue placed in %s, %s", res.Venue.City, res.Venue.Province)
		}
		// No curated venue name may leak into a synthesized result.
		for _, curated := range DefaultCorpus().Venues() {
			if res.Venue.VenueName == curated.VenueName {
				t.Errorf("curated venue %q leaked into %s", curated.VenueName, res.Venue.Province)
			}
		}
	}
}

func TestResolveCityMentionInFreeText(t *testing.T) {
	r := NewResolver(DefaultCorpus())

	res := r.Resolve("", "", "", "somewhere in Malolos would be lovely", testRNG())

	if res.City != "Malolos" || res.Province != "Bulacan" {
		t.Fatalf("resolved %s, %s; want Malolos, Bulacan", res.City, res.Province)
	}
	if res.Venue == nil || !strings.EqualFold(res.Venue.City, "Malolos") {
		t.Errorf("venue should be in Malolos, got %+v", res.Venue)
	}
}

func TestResolveKnownBarangay(t *testing.T) {
	r := NewResolver(DefaultCorpus())

	res := r.Resolve("", "", "Barangay Ugong", "", testRNG())

	if res.Venue == nil {
		t.Fatal("no venue resolved")
	}
	if !strings.EqualFold(res.Venue.Barangay, "Barangay Ugong") {
		t.Errorf("venue barangay = %q, want Barangay Ugong", res.Venue.Barangay)
	}
}

func TestResolveUnknownBarangayStatesFallback(t *testing.T) {
	r := NewResolver(DefaultCorpus())

	res := r.Resolve("", "", "Barangay Malawak", "", testRNG())

	if res.Venue == nil {
		t.Fatal("no venue resolved")
	}
	if !strings.Contains(res.Venue.Reasoning, "couldn't find Barangay Malawak") {
		t.Errorf("reasoning %q should state the failed match", res.Venue.Reasoning)
	}
	if !strings.Contains(res.Guidance, "not in our venue list") {
		t.Errorf("guidance %q should tell the model about the fallback", res.Guidance)
	}
}

func TestResolveBarangayMentionInFreeText(t *testing.T) {
	r := NewResolver(DefaultCorpus())

	res := r.Resolve("", "", "", "our family lives near Intramuros", testRNG())

	if res.Venue == nil {
		t.Fatal("no venue resolved")
	}
	if !strings.EqualFold(res.Venue.Barangay, "Barangay Intramuros") {
		t.Errorf("venue barangay = %q, want Barangay Intramuros", res.Venue.Barangay)
	}
}

func TestResolveProvinceOnlyStaysInProvince(t *testing.T) {
	r := NewResolver(DefaultCorpus())

	for i := 0; i < 10; i++ {
		res := r.Resolve("Bulacan", "", "", "", testRNG())
		if res.Province != "Bulacan" {
			t.Fatalf("province-only input resolved to %q", res.Province)
		}
		if res.Venue == nil || res.Venue.Province != "Bulacan" {
			t.Errorf("venue outside Bulacan: %+v", res.Venue)
		}
	}
}

func TestResolveFreePickStaysInServiceArea(t *testing.T) {
	r := NewResolver(DefaultCorpus())
	rng := testRNG()

	served := make(map[string]bool)
	for _, p := range ServedProvinces {
		served[p] = true
	}

	for i := 0; i < 30; i++ {
		res := r.Resolve("", "", "", "", rng)
		if res.Venue == nil {
			t.Fatal("no venue resolved")
		}
		if !served[res.Venue.Province] {
			t.Fatalf("venue outside service area: %q", res.Venue.Province)
		}
	}
}

func TestCanonicalProvinceAliases(t *testing.T) {
	if got := canonicalProvince("ncr"); got != ProvinceMetroManila {
		t.Errorf("ncr = %q", got)
	}
	if got := canonicalProvince("metro manila"); got != ProvinceMetroManila {
		t.Errorf("metro manila = %q", got)
	}
	if got := canonicalProvince("Cebu"); got != "" {
		t.Errorf("unserved province = %q, want empty", got)
	}
}

func TestParseCorpusRejectsBadRecords(t *testing.T) {
	if _, err := ParseCorpus("A | B | C | D"); err == nil {
		t.Error("short record accepted")
	}
	if _, err := ParseCorpus("V | Barangay X | 1 Road | Cebu City | Cebu | 6000"); err == nil {
		t.Error("non-curated province accepted")
	}
	if _, err := ParseCorpus("# just a comment\n\n"); err == nil {
		t.Error("empty corpus accepted")
	}
}
