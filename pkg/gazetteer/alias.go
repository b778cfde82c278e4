package gazetteer

import (
	"sort"
	"strings"

	"github.com/lkesich/maine-geography/pkg/entities"
	"github.com/lkesich/maine-geography/pkg/township"
)

// formerNames are official renames that still appear in older files, keyed
// by geocode.
var formerNames = map[string]string{
	"25866": "RAYTOWN TWP",
	"25861": "SPRING LAKE TWP",
	"03897": "T17 R3 WELS",
}

// tribalDistricts are the Secretary of State names for the tribal voting
// districts, which no federal source carries.
var tribalDistricts = map[string]string{
	"19630": "PENOBSCOT NATION VOTING DISTRICT",
	"29480": "PLEASANT POINT VOTING DISTRICT",
}

// spellingVariants are interchangeable spellings. Any member found in a
// name produces a variant with each of the others substituted.
var spellingVariants = [][]string{
	{"ST. ", "SAINT ", "ST "},
	{" AND ", " & "},
}

// rawAliases collects every name a source records for the row, unfiltered.
func rawAliases(row SourceRow) []string {
	names := []string{
		strings.ToUpper(row.Town),
		row.GNISName,
		row.MaineGISName,
		row.VotingName,
		row.TribalName,
	}
	names = append(names, ParseBracketedList(row.GNISVariants)...)
	names = append(names, ParseBracketedList(row.HistoricalNames)...)
	names = append(names, ParseBracketedList(row.Islands)...)
	if former, ok := formerNames[row.TownGeocode]; ok {
		names = append(names, former)
	}
	if district, ok := tribalDistricts[row.TownGeocode]; ok {
		names = append(names, district)
	}
	names = append(names, spellVariants(strings.ToUpper(row.Town))...)
	return names
}

func spellVariants(name string) []string {
	var out []string
	for _, group := range spellingVariants {
		for _, have := range group {
			if !strings.Contains(name, have) {
				continue
			}
			for _, want := range group {
				if want != have {
					out = append(out, strings.ReplaceAll(name, have, want))
				}
			}
		}
	}
	return out
}

// generateAliases produces the full alias set for one row: the raw source
// names plus every normalized form each cleaning operation derives from
// them. Townships and island groups additionally toggle the TWP suffix,
// since sources record them both ways.
func generateAliases(row SourceRow, townType entities.TownType, cleaner *township.Cleaner) []string {
	set := make(map[string]struct{})
	add := func(names ...string) {
		for _, n := range names {
			n = strings.ToUpper(strings.TrimSpace(n))
			if n != "" {
				set[n] = struct{}{}
			}
		}
	}
	add(rawAliases(row)...)

	ops := []func(string) string{
		township.CleanCode,
		cleaner.CleanTown,
		township.StripSuffix,
		township.StripRegion,
		township.StripRegion,
	}
	if townType == entities.TypeUnorganized || townType == entities.TypeIslandGroup {
		ops = append(ops, township.ToggleSuffix)
	}
	for _, op := range ops {
		for _, n := range keys(set) {
			add(op(n))
		}
	}

	out := keys(set)
	sort.Strings(out)
	return out
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
