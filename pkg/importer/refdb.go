package importer

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lkesich/maine-geography/pkg/gazetteer"
)

// Import records one load of a reference extract into the cache.
type Import struct {
	Source     string
	SourcePath string
	RowCount   int
	ImportedAt int64
}

// RefDB caches reference rows in SQLite so rebuilds do not depend on the
// original extract files being around.
type RefDB struct {
	db *sql.DB
}

// OpenRefDB opens (or creates) the SQLite cache at path and ensures the
// schema exists.
func OpenRefDB(path string) (*RefDB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open ref db: %w", err)
	}

	const ddl = `
	CREATE TABLE IF NOT EXISTS reference_towns (
		town_geocode     TEXT PRIMARY KEY,
		town             TEXT NOT NULL,
		county_fips      INTEGER NOT NULL,
		sos_county       TEXT NOT NULL,
		county_name      TEXT NOT NULL,
		cousub_geocode   TEXT NOT NULL DEFAULT '',
		cousub_name      TEXT NOT NULL DEFAULT '',
		cousub_basename  TEXT NOT NULL DEFAULT '',
		class            TEXT NOT NULL DEFAULT '',
		gnis_id          TEXT NOT NULL DEFAULT '',
		geotype          TEXT NOT NULL,
		gnis_name        TEXT NOT NULL DEFAULT '',
		maine_gis_name   TEXT NOT NULL DEFAULT '',
		voting_name      TEXT NOT NULL DEFAULT '',
		tribal_name      TEXT NOT NULL DEFAULT '',
		gnis_variants    TEXT NOT NULL DEFAULT '',
		historical_names TEXT NOT NULL DEFAULT '',
		islands          TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS imports (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		source      TEXT NOT NULL,
		source_path TEXT NOT NULL,
		row_count   INTEGER NOT NULL,
		imported_at INTEGER NOT NULL
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("create ref db schema: %w", err)
	}

	return &RefDB{db: db}, nil
}

// Close closes the SQLite connection.
func (r *RefDB) Close() error {
	return r.db.Close()
}

// SaveRows replaces the cached reference rows and records the import. The
// replacement is transactional; a failed import leaves the previous cache
// intact.
func (r *RefDB) SaveRows(source, sourcePath string, rows []gazetteer.SourceRow) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM reference_towns`); err != nil {
		return fmt.Errorf("clear reference_towns: %w", err)
	}

	const q = `INSERT INTO reference_towns
		(town_geocode, town, county_fips, sos_county, county_name,
		 cousub_geocode, cousub_name, cousub_basename, class, gnis_id,
		 geotype, gnis_name, maine_gis_name, voting_name, tribal_name,
		 gnis_variants, historical_names, islands)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := tx.Prepare(q)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err := stmt.Exec(
			row.TownGeocode, row.Town, row.CountyFIPS, row.SOSCounty, row.CountyName,
			row.CousubGeocode, row.CousubName, row.CousubBasename, row.Class, row.GNISID,
			row.Geotype, row.GNISName, row.MaineGISName, row.VotingName, row.TribalName,
			row.GNISVariants, row.HistoricalNames, row.Islands,
		)
		if err != nil {
			return fmt.Errorf("insert %s: %w", row.TownGeocode, err)
		}
	}

	_, err = tx.Exec(
		`INSERT INTO imports (source, source_path, row_count, imported_at) VALUES (?, ?, ?, ?)`,
		source, sourcePath, len(rows), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("record import: %w", err)
	}
	return tx.Commit()
}

// LoadRows returns the cached reference rows ordered by geocode.
func (r *RefDB) LoadRows() ([]gazetteer.SourceRow, error) {
	rows, err := r.db.Query(`SELECT
		town_geocode, town, county_fips, sos_county, county_name,
		cousub_geocode, cousub_name, cousub_basename, class, gnis_id,
		geotype, gnis_name, maine_gis_name, voting_name, tribal_name,
		gnis_variants, historical_names, islands
		FROM reference_towns ORDER BY town_geocode`)
	if err != nil {
		return nil, fmt.Errorf("query reference_towns: %w", err)
	}
	defer rows.Close()

	var out []gazetteer.SourceRow
	for rows.Next() {
		var row gazetteer.SourceRow
		err := rows.Scan(
			&row.TownGeocode, &row.Town, &row.CountyFIPS, &row.SOSCounty, &row.CountyName,
			&row.CousubGeocode, &row.CousubName, &row.CousubBasename, &row.Class, &row.GNISID,
			&row.Geotype, &row.GNISName, &row.MaineGISName, &row.VotingName, &row.TribalName,
			&row.GNISVariants, &row.HistoricalNames, &row.Islands,
		)
		if err != nil {
			return nil, fmt.Errorf("scan reference row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reference_towns: %w", err)
	}
	return out, nil
}

// LastImport returns the most recent import record, or nil when the cache
// has never been filled.
func (r *RefDB) LastImport() (*Import, error) {
	var imp Import
	err := r.db.QueryRow(
		`SELECT source, source_path, row_count, imported_at FROM imports
		 ORDER BY imported_at DESC, id DESC LIMIT 1`,
	).Scan(&imp.Source, &imp.SourcePath, &imp.RowCount, &imp.ImportedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query last import: %w", err)
	}
	return &imp, nil
}
