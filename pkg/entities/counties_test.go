package entities

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCompleteFromFIPS(t *testing.T) {
	table := DefaultCounties()

	got := table.Complete(County{FIPS: 19})
	want := County{Name: "Penobscot", Code: "PEN", FIPS: 19}
	if got != want {
		t.Errorf("Complete(FIPS=19) = %+v, want %+v", got, want)
	}
}

func TestCompleteFromCode(t *testing.T) {
	table := DefaultCounties()

	got := table.Complete(County{Code: "PIS"})
	if got.FIPS != 21 || got.Name != "Piscataquis" {
		t.Errorf("Complete(Code=PIS) = %+v", got)
	}
}

func TestCompleteFromName(t *testing.T) {
	table := DefaultCounties()

	got := table.Complete(County{Name: "Aroostook"})
	if got.Code != "ARO" || got.FIPS != 3 {
		t.Errorf("Complete(Name=Aroostook) = %+v", got)
	}
}

func TestCompleteEmpty(t *testing.T) {
	table := DefaultCounties()

	got := table.Complete(County{})
	if !got.IsZero() {
		t.Errorf("Complete(zero) = %+v, want zero", got)
	}
}

func TestCompleteUnknownLeftAlone(t *testing.T) {
	table := DefaultCounties()

	got := table.Complete(County{Code: "ZZZ"})
	if got.Name != "" || got.FIPS != 0 {
		t.Errorf("Complete(unknown) = %+v, want untouched", got)
	}
}

func TestCodesOrder(t *testing.T) {
	codes := DefaultCounties().Codes()
	if len(codes) != 16 {
		t.Fatalf("Codes() returned %d entries, want 16", len(codes))
	}
	if codes[0] != "AND" || codes[9] != "PEN" || codes[15] != "YOR" {
		t.Errorf("unexpected code order: %v", codes)
	}
}

func TestLoadCountyTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "counties.csv")
	csv := "county_fips,county_name,sos_county\n19,Penobscot,PEN\n21,Piscataquis,PIS\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadCountyTable(path)
	if err != nil {
		t.Fatalf("LoadCountyTable: %v", err)
	}
	if got := table.ByCode("pen"); got.FIPS != 19 {
		t.Errorf("ByCode(pen) = %+v", got)
	}
	if got := table.ByFIPS(21); got.Name != "Piscataquis" {
		t.Errorf("ByFIPS(21) = %+v", got)
	}
}

func TestParseTownType(t *testing.T) {
	if _, err := ParseTownType("Island Group"); err != nil {
		t.Errorf("ParseTownType(Island Group): %v", err)
	}
	if _, err := ParseTownType("Borough"); err == nil {
		t.Error("ParseTownType(Borough): expected error")
	}
}
