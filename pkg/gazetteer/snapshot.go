package gazetteer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lkesich/maine-geography/pkg/entities"
)

// snapshotDoc is the YAML layout of a saved gazetteer. Only the records are
// stored; the alias index is rebuilt on load.
type snapshotDoc struct {
	Towns []*TownRecord `yaml:"towns"`
}

// SaveSnapshot writes the gazetteer as a YAML document at path. The
// snapshot is the reviewable, diffable form of the database; use SaveGob
// for a fast-loading cache.
func (g *Gazetteer) SaveSnapshot(path string) error {
	data, err := yaml.Marshal(snapshotDoc{Towns: g.towns})
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}

// LoadSnapshot restores a gazetteer from a YAML snapshot. The rebuilt alias
// index is identical to the one the snapshot was saved from.
func LoadSnapshot(path string, counties *entities.CountyTable) (*Gazetteer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	var doc snapshotDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}
	if len(doc.Towns) == 0 {
		return nil, fmt.Errorf("snapshot %s: no towns", path)
	}
	return fromRecords(doc.Towns, counties), nil
}
