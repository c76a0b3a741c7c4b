package venue

import (
	"fmt"
	"strings"
)

// Served provinces. The first two carry a curated venue corpus; venues
// anywhere else must be synthesized, never copied from the corpus.
const (
	ProvinceMetroManila = "Metro Manila"
	ProvinceBulacan     = "Bulacan"
)

var ServedProvinces = []string{
	ProvinceMetroManila,
	ProvinceBulacan,
	"Pampanga",
	"Zambales",
	"Rizal",
	"Cavite",
	"Laguna",
	"Batangas",
	"Quezon",
}

// CuratedProvinces have venue records in the corpus.
var CuratedProvinces = map[string]bool{
	ProvinceMetroManila: true,
	ProvinceBulacan:     true,
}

// ProvinceCities lists the cities/municipalities we serve per province.
var ProvinceCities = map[string][]string{
	ProvinceMetroManila: {
		"Quezon City", "Manila", "Makati", "Taguig", "Pasig",
		"Caloocan", "Marikina", "Mandaluyong", "Parañaque", "Valenzuela",
	},
	ProvinceBulacan: {
		"Malolos", "Meycauayan", "San Jose del Monte", "Santa Maria",
		"Baliuag", "Plaridel", "Marilao", "Bocaue", "Pulilan", "Calumpit",
	},
	"Pampanga": {"San Fernando", "Angeles", "Mabalacat", "Guagua", "Apalit"},
	"Zambales": {"Olongapo", "Iba", "Subic", "San Antonio"},
	"Rizal":    {"Antipolo", "Cainta", "Taytay", "Binangonan", "San Mateo"},
	"Cavite":   {"Bacoor", "Imus", "Dasmariñas", "Tagaytay", "General Trias"},
	"Laguna":   {"Calamba", "Santa Rosa", "San Pablo", "Biñan", "Los Baños"},
	"Batangas": {"Batangas City", "Lipa", "Tanauan", "Santo Tomas", "Nasugbu"},
	"Quezon":   {"Lucena", "Tayabas", "Candelaria", "Sariaya", "Gumaca"},
}

// provincePostal is the default postal code used for synthesized venues.
var provincePostal = map[string]string{
	ProvinceMetroManila: "1000",
	ProvinceBulacan:     "3000",
	"Pampanga":          "2000",
	"Zambales":          "2200",
	"Rizal":             "1870",
	"Cavite":            "4102",
	"Laguna":            "4027",
	"Batangas":          "4200",
	"Quezon":            "4301",
}

// Corpus is the curated venue list, grouped by city for lookup.
type Corpus struct {
	venues []Recommendation
}

func (c *Corpus) Venues() []Recommendation {
	return c.venues
}

// ByCity returns curated venues located in the given city.
func (c *Corpus) ByCity(city string) []Recommendation {
	var out []Recommendation
	for _, v := range c.venues {
		if strings.EqualFold(v.City, city) {
			out = append(out, v)
		}
	}
	return out
}

// ByBarangay returns curated venues located in the given barangay.
func (c *Corpus) ByBarangay(barangay string) []Recommendation {
	var out []Recommendation
	for _, v := range c.venues {
		if strings.EqualFold(v.Barangay, barangay) {
			out = append(out, v)
		}
	}
	return out
}

// Barangays lists every distinct barangay in the corpus.
func (c *Corpus) Barangays() []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range c.venues {
		key := strings.ToLower(v.Barangay)
		if !seen[key] {
			seen[key] = true
			out = append(out, v.Barangay)
		}
	}
	return out
}

// ParseCorpus reads the curated venue text corpus. One venue per line:
//
//	name | barangay | street | city | province | postal
//
// Blank lines and lines starting with # are skipped. A record outside
// the curated provinces is rejected.
func ParseCorpus(text string) (*Corpus, error) {
	var venues []Recommendation
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) != 6 {
			return nil, fmt.Errorf("corpus line %d: expected 6 fields, got %d", i+1, len(parts))
		}
		for j := range parts {
			parts[j] = strings.TrimSpace(parts[j])
		}
		if !CuratedProvinces[parts[4]] {
			return nil, fmt.Errorf("corpus line %d: province %q is not curated", i+1, parts[4])
		}
		venues = append(venues, Recommendation{
			VenueName:     parts[0],
			Barangay:      parts[1],
			StreetAddress: parts[2],
			City:          parts[3],
			Province:      parts[4],
			PostalCode:    parts[5],
		})
	}
	if len(venues) == 0 {
		return nil, fmt.Errorf("corpus is empty")
	}
	return &Corpus{venues: venues}, nil
}

// DefaultCorpus is the embedded curated venue list, used unless an
// override corpus is fetched from object storage at startup.
func DefaultCorpus() *Corpus {
	c, err := ParseCorpus(embeddedCorpus)
	if err != nil {
		// The embedded corpus is compiled in; a parse failure here is a
		// programmer error.
		panic(err)
	}
	return c
}

const embeddedCorpus = `
# Curated venues: Metro Manila
Blue Gardens Events Venue | Barangay Balingasa | 503 Quirino Highway | Quezon City | Metro Manila | 1115
Light of Love Events Place | Barangay Kalusugan | 632 E Rodriguez Sr. Avenue | Quezon City | Metro Manila | 1113
Oasis Manila | Barangay Santa Ana | 169 Aurora Boulevard | Manila | Metro Manila | 1006
Patio Victoria | Barangay Intramuros | 1300 A. Soriano Avenue | Manila | Metro Manila | 1002
Blissful Gardens Pavilion | Barangay San Antonio | 88 Kalayaan Avenue | Makati | Metro Manila | 1203
The Glass Garden | Barangay Ugong | 6 Swallow Drive, Green Meadows | Pasig | Metro Manila | 1604
Hanging Gardens Events Venue | Barangay Bagumbayan | 55 C5 Service Road | Taguig | Metro Manila | 1630
La Castellana Events Hall | Barangay Concepcion Uno | 27 Bayan-Bayanan Avenue | Marikina | Metro Manila | 1807

# Curated venues: Bulacan
Villa Crisanta Garden Resort | Barangay Look 1st | 142 MacArthur Highway | Malolos | Bulacan | 3000
Hacienda Paraiso Pavilion | Barangay Bulihan | 7 Paseo del Congreso | Malolos | Bulacan | 3000
Grotto Vista Events Garden | Barangay Graceville | 23 Quirino Highway | San Jose del Monte | Bulacan | 3023
Casa Esperanza Events Place | Barangay Poblacion | 51 Gov. Fortunato Halili Avenue | Santa Maria | Bulacan | 3022
The Ruins Event Center | Barangay Bagbaguin | 19 Camalig Road | Meycauayan | Bulacan | 3020
Villa Herencia Resort | Barangay Sabang | 10 Benigno S. Aquino Avenue | Baliuag | Bulacan | 3006
`
