package gazetteer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/lkesich/maine-geography/pkg/entities"
)

// testRows is a small but representative slice of the reference extract:
// ordinary towns, a renamed plantation, and the two Prentiss records whose
// shared variant name is only resolvable by county.
func testRows() []SourceRow {
	return []SourceRow{
		{
			Town: "Caribou", TownGeocode: "10565", CountyFIPS: 3,
			SOSCounty: "ARO", CountyName: "Aroostook",
			CousubGeocode: "2300310565", CousubName: "Caribou city",
			CousubBasename: "Caribou", Class: "C5",
			GNISID: "582378", Geotype: "City",
			GNISName: "City of Caribou",
		},
		{
			Town: "Dover-Foxcroft", TownGeocode: "18790", CountyFIPS: 21,
			SOSCounty: "PIS", CountyName: "Piscataquis",
			CousubGeocode: "2302118790", CousubName: "Dover-Foxcroft town",
			CousubBasename: "Dover-Foxcroft", Class: "T1",
			GNISID: "582442", Geotype: "Town",
			GNISName: "Town of Dover-Foxcroft",
		},
		{
			Town: "Magalloway Plt", TownGeocode: "43850", CountyFIPS: 17,
			SOSCounty: "OXF", CountyName: "Oxford",
			CousubGeocode: "2301743850", CousubName: "Magalloway plantation",
			CousubBasename: "Magalloway", Class: "T1",
			GNISID: "582551", Geotype: "Plantation",
			GNISName: "Plantation of Magalloway",
		},
		{
			Town: "Cross Lake Twp", TownGeocode: "15698", CountyFIPS: 3,
			SOSCounty: "ARO", CountyName: "Aroostook",
			CousubGeocode: "2300315698", CousubName: "Cross Lake township",
			CousubBasename: "Cross Lake", Class: "T9",
			Geotype: "Unorganized Township",
			MaineGISName: "Cross Lake Twp (T17 R5)",
		},
		{
			Town: "Prentiss Twp T7 R3 NBPP", TownGeocode: "60825", CountyFIPS: 19,
			SOSCounty: "PEN", CountyName: "Penobscot",
			CousubGeocode: "2301960825", CousubName: "Prentiss township",
			CousubBasename: "Prentiss", Class: "T9",
			Geotype: "Unorganized Township",
			MaineGISName: "Prentiss Twp",
		},
		{
			Town: "Prentiss", TownGeocode: "60860", CountyFIPS: 25,
			SOSCounty: "SOM", CountyName: "Somerset",
			CousubGeocode: "2302560860", CousubName: "Prentiss township",
			CousubBasename: "Prentiss", Class: "T9",
			Geotype: "Unorganized Township",
			HistoricalNames: "[Prentiss Twp]",
		},
	}
}

func testGazetteer(t *testing.T) *Gazetteer {
	t.Helper()
	g, err := Build(testRows(), entities.DefaultCounties())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return g
}

func TestBuildValidatesGeocodes(t *testing.T) {
	counties := entities.DefaultCounties()

	rows := testRows()
	rows[1].TownGeocode = ""
	if _, err := Build(rows, counties); err == nil {
		t.Error("Build accepted a row with no geocode")
	} else if !strings.Contains(err.Error(), "Dover-Foxcroft") {
		t.Errorf("missing-geocode error does not name the row: %v", err)
	}

	rows = testRows()
	rows[2].TownGeocode = rows[0].TownGeocode
	if _, err := Build(rows, counties); err == nil {
		t.Error("Build accepted a duplicate geocode")
	} else if !strings.Contains(err.Error(), rows[0].TownGeocode) {
		t.Errorf("duplicate-geocode error does not name the geocode: %v", err)
	}
}

func TestMatchCanonicalAndVariants(t *testing.T) {
	g := testGazetteer(t)
	cases := []struct {
		name   string
		fips   int
		wantGC string
	}{
		{"CARIBOU", 0, "10565"},
		{"City of Caribou", 0, "10565"},
		{"DOVER-FOXCROFT", 0, "18790"},
		{"Plantation of Magalloway", 0, "43850"},
		{"MAGALLOWAY PLT", 0, "43850"},
		{"MAGALLOWAY", 0, "43850"},
		{"CROSS LAKE TWP T17 R5", 0, "15698"},
		{"T17 R5", 0, "15698"},
	}
	for _, c := range cases {
		rec := g.Match(c.name, c.fips)
		if rec == nil {
			t.Errorf("Match(%q, %d) = nil, want %s", c.name, c.fips, c.wantGC)
			continue
		}
		if rec.Geocode != c.wantGC {
			t.Errorf("Match(%q, %d) = %s, want %s", c.name, c.fips, rec.Geocode, c.wantGC)
		}
	}
}

func TestCanonicalName(t *testing.T) {
	g := testGazetteer(t)
	cases := []struct {
		name   string
		fips   int
		want   string
		wantOK bool
	}{
		{"T17 R5", 0, "Cross Lake Twp", true},
		{"MAGALLOWAY PLT", 0, "Magalloway Plt", true},
		{"PRENTISS TWP", 19, "Prentiss Twp T7 R3 NBPP", true},
		{"NOWHERE", 0, "", false},
	}
	for _, c := range cases {
		got, ok := g.CanonicalName(c.name, c.fips)
		if ok != c.wantOK || got != c.want {
			t.Errorf("CanonicalName(%q, %d) = %q, %v, want %q, %v",
				c.name, c.fips, got, ok, c.want, c.wantOK)
		}
	}
}

func TestMatchCountyFallback(t *testing.T) {
	g := testGazetteer(t)

	// PRENTISS TWP is a variant of both Prentiss records, so it must not
	// resolve statewide.
	if rec := g.Match("PRENTISS TWP", 0); rec != nil {
		t.Errorf("Match(PRENTISS TWP, statewide) = %s, want nil", rec.Geocode)
	}

	// Within each county the name is unambiguous.
	if rec := g.Match("PRENTISS TWP", 19); rec == nil || rec.Geocode != "60825" {
		t.Errorf("Match(PRENTISS TWP, 19) = %v, want 60825", rec)
	}
	if rec := g.Match("PRENTISS TWP", 25); rec == nil || rec.Geocode != "60860" {
		t.Errorf("Match(PRENTISS TWP, 25) = %v, want 60860", rec)
	}

	// Canonical names always win statewide, even when another record
	// carries the same string as a variant.
	if rec := g.Match("PRENTISS", 0); rec == nil || rec.Geocode != "60860" {
		t.Errorf("Match(PRENTISS, statewide) = %v, want 60860", rec)
	}

	// County scope is a fallback, never a filter: a statewide-unique name
	// resolves even with the wrong county supplied.
	if rec := g.Match("CARIBOU", 21); rec == nil || rec.Geocode != "10565" {
		t.Errorf("Match(CARIBOU, 21) = %v, want 10565", rec)
	}
}

func TestAliasUniqueness(t *testing.T) {
	g := testGazetteer(t)
	seen := make(map[TownAlias]string)
	for _, rec := range g.Towns() {
		for _, alias := range rec.Aliases {
			if strings.EqualFold(alias, rec.Name) {
				continue
			}
			key := TownAlias{alias, rec.County.FIPS}
			if prev, ok := seen[key]; ok && prev != rec.Geocode {
				t.Errorf("alias %q kept by both %s and %s", alias, prev, rec.Geocode)
			}
			seen[key] = rec.Geocode
		}
	}
}

func TestToggleSuffixAliases(t *testing.T) {
	g := testGazetteer(t)
	rec := g.ByGeocode("15698")
	if rec == nil {
		t.Fatal("ByGeocode(15698) = nil")
	}
	for _, want := range []string{"CROSS LAKE", "CROSS LAKE TWP"} {
		found := false
		for _, a := range rec.Aliases {
			if a == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Cross Lake aliases missing %q: %v", want, rec.Aliases)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	g := testGazetteer(t)
	path := filepath.Join(t.TempDir(), "towns.yaml")
	if err := g.SaveSnapshot(path); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	loaded, err := LoadSnapshot(path, entities.DefaultCounties())
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	assertSameIndex(t, g, loaded)
}

func TestGobRoundTrip(t *testing.T) {
	g := testGazetteer(t)
	path := filepath.Join(t.TempDir(), "towns.gob")
	if err := g.SaveGob(path); err != nil {
		t.Fatalf("SaveGob: %v", err)
	}
	loaded, err := LoadGob(path, entities.DefaultCounties())
	if err != nil {
		t.Fatalf("LoadGob: %v", err)
	}
	assertSameIndex(t, g, loaded)
}

func assertSameIndex(t *testing.T, want, got *Gazetteer) {
	t.Helper()
	if got.Len() != want.Len() {
		t.Fatalf("restored %d towns, want %d", got.Len(), want.Len())
	}
	for _, rec := range want.Towns() {
		other := got.ByGeocode(rec.Geocode)
		if other == nil {
			t.Errorf("restored gazetteer missing geocode %s", rec.Geocode)
			continue
		}
		if other.Name != rec.Name || other.TownType != rec.TownType {
			t.Errorf("geocode %s restored as %q/%s, want %q/%s",
				rec.Geocode, other.Name, other.TownType, rec.Name, rec.TownType)
		}
		if len(other.Aliases) != len(rec.Aliases) {
			t.Errorf("geocode %s restored with %d aliases, want %d",
				rec.Geocode, len(other.Aliases), len(rec.Aliases))
		}
		for _, alias := range rec.Aliases {
			if got.Match(alias, rec.County.FIPS) == nil {
				t.Errorf("alias %q of %s does not resolve after restore", alias, rec.Geocode)
			}
		}
	}
}
