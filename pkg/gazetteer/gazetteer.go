package gazetteer

import (
	"fmt"
	"sort"

	"github.com/lkesich/maine-geography/pkg/entities"
	"github.com/lkesich/maine-geography/pkg/strutil"
	"github.com/lkesich/maine-geography/pkg/township"
)

// Gazetteer is the canonical town database plus the alias index used to
// resolve name variants. Build one from source rows with Build, or restore
// a saved one with LoadSnapshot or LoadGob.
type Gazetteer struct {
	towns     []*TownRecord
	byGeocode map[string]*TownRecord
	index     map[TownAlias]*TownRecord
	cleaner   *township.Cleaner
	counties  *entities.CountyTable
}

// Build assembles a Gazetteer from reference rows. Every row must carry a
// unique geocode; a missing or duplicated geocode fails the whole build,
// since a bad reference extract should never produce a working database.
func Build(rows []SourceRow, counties *entities.CountyTable) (*Gazetteer, error) {
	seen := make(map[string]string, len(rows))
	names := make([]string, 0, len(rows))
	for i, row := range rows {
		if row.TownGeocode == "" {
			return nil, fmt.Errorf("row %d (%s): missing geocode", i, row.Town)
		}
		if prev, ok := seen[row.TownGeocode]; ok {
			return nil, fmt.Errorf("duplicate geocode %s (%s, %s)", row.TownGeocode, prev, row.Town)
		}
		seen[row.TownGeocode] = row.Town
		names = append(names, row.Town)
	}

	cleaner := township.NewCleaner(names)
	towns := make([]*TownRecord, 0, len(rows))
	for i, row := range rows {
		townType, err := entities.ParseTownType(row.Geotype)
		if err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", i, row.Town, err)
		}
		county := counties.Complete(entities.County{
			FIPS: row.CountyFIPS,
			Code: row.SOSCounty,
			Name: row.CountyName,
		})
		towns = append(towns, &TownRecord{
			Name:     row.Town,
			Geocode:  row.TownGeocode,
			TownType: townType,
			GNISID:   row.GNISID,
			County:   county,
			Cousub: entities.Cousub{
				Geocode:  row.CousubGeocode,
				Name:     row.CousubName,
				Basename: row.CousubBasename,
				Geoclass: row.Class,
			},
			Aliases: generateAliases(row, townType, cleaner),
		})
	}
	sort.Slice(towns, func(i, j int) bool { return towns[i].Name < towns[j].Name })

	g := &Gazetteer{towns: towns, cleaner: cleaner, counties: counties}
	g.buildIndex()
	return g, nil
}

// fromRecords restores a Gazetteer from previously built records, as found
// in a snapshot or gob cache.
func fromRecords(towns []*TownRecord, counties *entities.CountyTable) *Gazetteer {
	names := make([]string, len(towns))
	for i, t := range towns {
		names[i] = t.Name
	}
	sort.Slice(towns, func(i, j int) bool { return towns[i].Name < towns[j].Name })
	g := &Gazetteer{
		towns:    towns,
		cleaner:  township.NewCleaner(names),
		counties: counties,
	}
	g.buildIndex()
	return g
}

// buildIndex constructs the alias index and prunes each record's alias list
// to the names that actually resolve. A key shared by two records is
// dropped statewide, but the record whose canonical name matches keeps it.
func (g *Gazetteer) buildIndex() {
	g.byGeocode = make(map[string]*TownRecord, len(g.towns))
	counts := make(map[TownAlias]int)
	recKeys := make([][]TownAlias, len(g.towns))

	for i, rec := range g.towns {
		g.byGeocode[rec.Geocode] = rec
		perRec := make(map[TownAlias]struct{})
		for _, alias := range rec.Aliases {
			folded := strutil.FoldKey(alias)
			perRec[TownAlias{folded, 0}] = struct{}{}
			perRec[TownAlias{folded, rec.County.FIPS}] = struct{}{}
		}
		for k := range perRec {
			counts[k]++
			recKeys[i] = append(recKeys[i], k)
		}
	}

	g.index = make(map[TownAlias]*TownRecord)
	for i, rec := range g.towns {
		canonical := strutil.FoldKey(rec.Name)
		for _, k := range recKeys[i] {
			if counts[k] == 1 || k.Name == canonical {
				g.index[k] = rec
			}
		}
	}

	for _, rec := range g.towns {
		kept := rec.Aliases[:0]
		for _, alias := range rec.Aliases {
			folded := strutil.FoldKey(alias)
			switch {
			case folded == strutil.FoldKey(rec.Name),
				g.index[TownAlias{folded, 0}] == rec,
				g.index[TownAlias{folded, rec.County.FIPS}] == rec:
				kept = append(kept, alias)
			}
		}
		rec.Aliases = kept
	}
}

// Match resolves a normalized town name to its record. Statewide lookups
// are always tried first; the county scope is a fallback for names that are
// only unambiguous within their county, never a filter. A nil return means
// no unambiguous match exists.
func (g *Gazetteer) Match(name string, countyFIPS int) *TownRecord {
	if name == "" {
		return nil
	}
	folded := strutil.FoldKey(name)
	if rec := g.index[TownAlias{folded, 0}]; rec != nil {
		return rec
	}
	if code := township.CleanCode(name); code != name {
		if rec := g.lookup(code, countyFIPS); rec != nil {
			return rec
		}
	}
	if alias := township.ExtractAlias(name); alias != "" {
		if rec := g.lookup(alias, countyFIPS); rec != nil {
			return rec
		}
	}
	if countyFIPS != 0 {
		return g.index[TownAlias{folded, countyFIPS}]
	}
	return nil
}

func (g *Gazetteer) lookup(name string, countyFIPS int) *TownRecord {
	folded := strutil.FoldKey(name)
	if rec := g.index[TownAlias{folded, 0}]; rec != nil {
		return rec
	}
	if countyFIPS != 0 {
		return g.index[TownAlias{folded, countyFIPS}]
	}
	return nil
}

// CanonicalName resolves a name variant to the canonical town name.
func (g *Gazetteer) CanonicalName(name string, countyFIPS int) (string, bool) {
	rec := g.Match(name, countyFIPS)
	if rec == nil {
		return "", false
	}
	return rec.Name, true
}

// Towns returns all records, sorted by canonical name. The slice is shared;
// callers must not modify it.
func (g *Gazetteer) Towns() []*TownRecord {
	return g.towns
}

// ByGeocode returns the record with the given geocode, or nil.
func (g *Gazetteer) ByGeocode(geocode string) *TownRecord {
	return g.byGeocode[geocode]
}

// Cleaner returns the punctuation cleaner derived from the canonical names.
func (g *Gazetteer) Cleaner() *township.Cleaner {
	return g.cleaner
}

// Counties returns the county table the gazetteer was built with.
func (g *Gazetteer) Counties() *entities.CountyTable {
	return g.counties
}

// Len returns the number of town records.
func (g *Gazetteer) Len() int {
	return len(g.towns)
}
