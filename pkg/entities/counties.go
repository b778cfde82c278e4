package entities

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CountyRow is one row of the county reference table.
type CountyRow struct {
	FIPS int
	Name string
	Code string // three-letter Secretary of State abbreviation
}

// CountyTable resolves any one county identifier (name, SoS code, fips) to
// the full County. It is built once and read-only afterward.
type CountyTable struct {
	rows   []CountyRow
	byFIPS map[int]CountyRow
	byCode map[string]CountyRow
	byName map[string]CountyRow
}

// NewCountyTable builds a lookup table from rows.
func NewCountyTable(rows []CountyRow) *CountyTable {
	t := &CountyTable{
		rows:   rows,
		byFIPS: make(map[int]CountyRow, len(rows)),
		byCode: make(map[string]CountyRow, len(rows)),
		byName: make(map[string]CountyRow, len(rows)),
	}
	for _, r := range rows {
		t.byFIPS[r.FIPS] = r
		t.byCode[strings.ToUpper(r.Code)] = r
		t.byName[strings.ToUpper(r.Name)] = r
	}
	return t
}

// defaultCounties is the 16-county Maine reference table. A CSV with the
// same columns can be loaded instead via LoadCountyTable.
var defaultCounties = []CountyRow{
	{1, "Androscoggin", "AND"},
	{3, "Aroostook", "ARO"},
	{5, "Cumberland", "CUM"},
	{7, "Franklin", "FRA"},
	{9, "Hancock", "HAN"},
	{11, "Kennebec", "KEN"},
	{13, "Knox", "KNO"},
	{15, "Lincoln", "LIN"},
	{17, "Oxford", "OXF"},
	{19, "Penobscot", "PEN"},
	{21, "Piscataquis", "PIS"},
	{23, "Sagadahoc", "SAG"},
	{25, "Somerset", "SOM"},
	{27, "Waldo", "WAL"},
	{29, "Washington", "WAS"},
	{31, "York", "YOR"},
}

// DefaultCounties returns a table backed by the embedded Maine county list.
func DefaultCounties() *CountyTable {
	return NewCountyTable(defaultCounties)
}

// LoadCountyTable reads a county reference CSV with a header row containing
// county_fips, county_name and sos_county columns.
func LoadCountyTable(path string) (*CountyTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open county table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read county header: %w", err)
	}
	fipsIdx, nameIdx, codeIdx := -1, -1, -1
	for i, h := range header {
		switch strings.TrimSpace(strings.ToLower(h)) {
		case "county_fips":
			fipsIdx = i
		case "county_name":
			nameIdx = i
		case "sos_county":
			codeIdx = i
		}
	}
	if fipsIdx < 0 || nameIdx < 0 || codeIdx < 0 {
		return nil, fmt.Errorf("county table missing required columns in header %v", header)
	}

	var rows []CountyRow
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read county row: %w", err)
		}
		fips, err := strconv.Atoi(strings.TrimSpace(record[fipsIdx]))
		if err != nil {
			return nil, fmt.Errorf("county fips %q: %w", record[fipsIdx], err)
		}
		rows = append(rows, CountyRow{
			FIPS: fips,
			Name: strings.TrimSpace(record[nameIdx]),
			Code: strings.ToUpper(strings.TrimSpace(record[codeIdx])),
		})
	}
	return NewCountyTable(rows), nil
}

// Codes returns the SoS county abbreviations in table order.
func (t *CountyTable) Codes() []string {
	codes := make([]string, 0, len(t.rows))
	for _, r := range t.rows {
		codes = append(codes, r.Code)
	}
	return codes
}

// ByFIPS returns the county with the given fips code, or a zero County.
func (t *CountyTable) ByFIPS(fips int) County {
	if r, ok := t.byFIPS[fips]; ok {
		return County{Name: r.Name, Code: r.Code, FIPS: r.FIPS}
	}
	return County{}
}

// ByCode returns the county with the given SoS abbreviation, or a zero County.
func (t *CountyTable) ByCode(code string) County {
	if r, ok := t.byCode[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return County{Name: r.Name, Code: r.Code, FIPS: r.FIPS}
	}
	return County{}
}

// ByName returns the county with the given name, or a zero County.
func (t *CountyTable) ByName(name string) County {
	if r, ok := t.byName[strings.ToUpper(strings.TrimSpace(name))]; ok {
		return County{Name: r.Name, Code: r.Code, FIPS: r.FIPS}
	}
	return County{}
}

// Complete fills the missing fields of c from whichever field is set.
// An entirely empty county is returned unchanged; fields that cannot be
// resolved stay empty.
func (t *CountyTable) Complete(c County) County {
	if c.IsZero() {
		return c
	}
	var full County
	switch {
	case c.FIPS != 0:
		full = t.ByFIPS(c.FIPS)
	case c.Code != "":
		full = t.ByCode(c.Code)
	default:
		full = t.ByName(c.Name)
	}
	if full.IsZero() {
		return c
	}
	if c.Name == "" {
		c.Name = full.Name
	}
	if c.Code == "" {
		c.Code = full.Code
	}
	if c.FIPS == 0 {
		c.FIPS = full.FIPS
	}
	return c
}
