package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lkesich/maine-geography/pkg/gazetteer"
	"github.com/lkesich/maine-geography/pkg/importer"
)

func cmdBuild(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	townships := fs.String("townships", "", "path to the townships JSON extract")
	counties := fs.String("counties", "", "path to a county CSV (default: built-in Maine counties)")
	refdb := fs.String("refdb", "", "optional SQLite cache; reads from it when no --townships is given")
	snapshot := fs.String("snapshot", "towns.yaml", "output path for the YAML snapshot")
	cache := fs.String("cache", "towns.gob", "output path for the gob cache")
	fs.Parse(args)

	if *townships == "" && *refdb == "" {
		fmt.Fprintln(os.Stderr, "build: need --townships or --refdb")
		fs.Usage()
		os.Exit(1)
	}

	rows, err := loadRows(*townships, *refdb)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build: %v\n", err)
		os.Exit(1)
	}

	countyTable, err := loadCounties(config{Counties: *counties})
	if err != nil {
		fmt.Fprintf(os.Stderr, "build: %v\n", err)
		os.Exit(1)
	}

	db, err := gazetteer.Build(rows, countyTable)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build: %v\n", err)
		os.Exit(1)
	}

	if err := db.SaveSnapshot(*snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "build: %v\n", err)
		os.Exit(1)
	}
	if *cache != "" {
		if err := db.SaveGob(*cache); err != nil {
			fmt.Fprintf(os.Stderr, "build: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("built %d towns -> %s\n", db.Len(), *snapshot)
}

// loadRows reads the reference extract from the JSON file, caching it in
// the SQLite ref db when one is configured, or falls back to the cache
// when no extract is given.
func loadRows(townships, refdb string) ([]gazetteer.SourceRow, error) {
	if townships == "" {
		db, err := importer.OpenRefDB(refdb)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		rows, err := db.LoadRows()
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, fmt.Errorf("ref db %s is empty; run build with --townships first", refdb)
		}
		return rows, nil
	}

	rows, err := importer.LoadTownships(townships)
	if err != nil {
		return nil, err
	}
	if refdb != "" {
		db, err := importer.OpenRefDB(refdb)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		if err := db.SaveRows("townships", townships, rows); err != nil {
			return nil, err
		}
	}
	return rows, nil
}
