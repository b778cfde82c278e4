package gazetteer

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/lkesich/maine-geography/pkg/entities"
)

// SaveGob serializes the town records to a gob-encoded cache at path.
func (g *Gazetteer) SaveGob(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gob file: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(g.towns); err != nil {
		return fmt.Errorf("encode gob: %w", err)
	}
	return nil
}

// LoadGob restores a gazetteer from a gob cache written by SaveGob.
func LoadGob(path string, counties *entities.CountyTable) (*Gazetteer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gob file: %w", err)
	}
	defer f.Close()

	var towns []*TownRecord
	if err := gob.NewDecoder(f).Decode(&towns); err != nil {
		return nil, fmt.Errorf("decode gob: %w", err)
	}
	return fromRecords(towns, counties), nil
}
