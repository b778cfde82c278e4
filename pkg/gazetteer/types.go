// Package gazetteer builds and queries the canonical database of Maine
// minor civil divisions: every town, city, plantation, reservation,
// unorganized township, and island group, with the alias index used to
// resolve the name variants found in election results and other state
// files.
package gazetteer

import (
	"strings"

	"github.com/lkesich/maine-geography/pkg/entities"
)

// TownRecord is one minor civil division. Aliases holds every name variant
// that unambiguously resolves to this record, including the upper-cased
// canonical name.
type TownRecord struct {
	Name     string            `json:"name" yaml:"name"`
	Geocode  string            `json:"geocode" yaml:"geocode"`
	TownType entities.TownType `json:"town_type" yaml:"town_type"`
	GNISID   string            `json:"gnis_id,omitempty" yaml:"gnis_id,omitempty"`
	County   entities.County   `json:"county" yaml:"county"`
	Cousub   entities.Cousub   `json:"cousub" yaml:"cousub"`
	Aliases  []string          `json:"aliases" yaml:"aliases"`
}

// TownAlias is an index key: a case/accent-folded name scoped to a county.
// CountyFIPS 0 means statewide.
type TownAlias struct {
	Name       string
	CountyFIPS int
}

// SourceRow is one row of the merged reference extract (census cousubs
// joined with GNIS, MaineGIS, and Secretary of State data). List-valued
// columns arrive as bracketed strings.
type SourceRow struct {
	Town            string `json:"town"`
	TownGeocode     string `json:"town_geocode"`
	CountyFIPS      int    `json:"county_fips"`
	SOSCounty       string `json:"sos_county"`
	CountyName      string `json:"county_name"`
	CousubGeocode   string `json:"cousub_geocode"`
	CousubName      string `json:"cousub_name"`
	CousubBasename  string `json:"cousub_basename"`
	Class           string `json:"class"`
	GNISID          string `json:"gnis_id"`
	Geotype         string `json:"geotype"`
	GNISName        string `json:"gnis_name"`
	MaineGISName    string `json:"maine_gis_name"`
	VotingName      string `json:"voting_name"`
	TribalName      string `json:"tribal_name"`
	GNISVariants    string `json:"gnis_variants"`
	HistoricalNames string `json:"historical_names"`
	Islands         string `json:"islands"`
}

// ParseBracketedList splits a bracketed list column like
// "[BALLSTOWN, NEW MILFORD]" into its elements. Quotes around elements are
// tolerated. An empty or missing list yields nil.
func ParseBracketedList(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `'"`)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
