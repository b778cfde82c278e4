// Package importer loads the reference extracts the gazetteer is built
// from, and caches them in a local SQLite database with provenance for
// each import.
package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lkesich/maine-geography/pkg/gazetteer"
)

// LoadTownships reads a JSON reference extract: an array of merged rows
// with one element per minor civil division.
func LoadTownships(path string) ([]gazetteer.SourceRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read townships %s: %w", path, err)
	}
	var rows []gazetteer.SourceRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse townships %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("townships %s: no rows", path)
	}
	for i, row := range rows {
		if row.Town == "" {
			return nil, fmt.Errorf("townships %s: row %d has no town name", path, i)
		}
		if row.CountyFIPS == 0 {
			return nil, fmt.Errorf("townships %s: row %d (%s) has no county fips", path, i, row.Town)
		}
	}
	return rows, nil
}
