package distance

import "strings"

// DefaultFallbackKm is returned when no tier can produce a better figure.
const DefaultFallbackKm = 45.0

type staticEntry struct {
	locality string
	km       float64
}

// StaticTable is the last-resort distance source: road distances from the
// workshop to known localities, precomputed offline. Matching is a
// lower-cased substring scan in declaration order; the first hit wins, which
// keeps lookups deterministic.
type StaticTable struct {
	entries   []staticEntry
	defaultKm float64
}

func NewStaticTable() *StaticTable {
	return &StaticTable{
		defaultKm: DefaultFallbackKm,
		entries: []staticEntry{
			// Granby
			{"granby", 96.2}, {"94 rue paré", 96.2}, {"rue paré granby", 96.2},

			// Montréal and boroughs
			{"montréal-nord", 0.5}, {"montréal", 18.5}, {"montreal", 18.5},
			{"ville-marie", 22.3}, {"plateau", 20.1}, {"rosemont", 8.2},
			{"verdun", 28.7}, {"lachine", 32.4}, {"lasalle", 35.8},
			{"ahuntsic", 4.2}, {"villeray", 12.8}, {"mercier", 14.6},
			{"anjou", 9.7}, {"saint-léonard", 7.3}, {"rivière-des-prairies", 12.4},

			// Laval
			{"laval", 16.8}, {"chomedey", 19.2}, {"sainte-rose", 24.7}, {"vimont", 21.3},

			// South shore, via the bridges
			{"longueuil", 32.6}, {"brossard", 35.1}, {"saint-lambert", 30.8},
			{"boucherville", 38.4}, {"saint-bruno", 42.7}, {"saint-hubert", 37.9},
			{"greenfield park", 33.2},

			// North shore
			{"terrebonne", 23.8}, {"mascouche", 28.4}, {"repentigny", 19.6},
			{"charlemagne", 21.2}, {"saint-eustache", 43.2}, {"boisbriand", 38.7},
			{"sainte-thérèse", 40.9},

			// West island
			{"dollard-des-ormeaux", 42.3}, {"pointe-claire", 39.8}, {"kirkland", 37.5},

			// Farther regions
			{"sherbrooke", 178.5}, {"trois-rivières", 168.2}, {"quebec", 295.7},
		},
	}
}

// Lookup returns the first matching locality's distance, or false when the
// address matches nothing in the table.
func (t *StaticTable) Lookup(address string) (float64, bool) {
	addr := strings.ToLower(address)
	for _, e := range t.entries {
		if strings.Contains(addr, e.locality) {
			return e.km, true
		}
	}
	return 0, false
}

func (t *StaticTable) DefaultKm() float64 {
	return t.defaultKm
}
