package elections

import (
	"sync"

	"github.com/lkesich/maine-geography/pkg/entities"
	"github.com/lkesich/maine-geography/pkg/gazetteer"
	"github.com/lkesich/maine-geography/pkg/township"
)

// ResultGeo is one geography named by a reporting unit: a named town, an
// unnamed township, or an unspecified township group.
type ResultGeo interface {
	// Name is the cleaned fragment text.
	Name() string
	// County is the county the result was filed under.
	County() entities.County
	// ConsensusName is the canonical name when the fragment resolves, and
	// the cleaned fragment text when it does not.
	ConsensusName() string
}

// Town is a named town fragment.
type Town struct {
	name   string
	county entities.County
	db     *gazetteer.Gazetteer

	once    sync.Once
	matched *gazetteer.TownRecord
}

func (p *Parser) newTown(name string, county entities.County) *Town {
	return &Town{name: name, county: county, db: p.db}
}

func (t *Town) Name() string            { return t.name }
func (t *Town) County() entities.County { return t.county }

// Matched resolves the town against the gazetteer. The lookup runs once;
// repeated calls return the cached record.
func (t *Town) Matched() *gazetteer.TownRecord {
	t.once.Do(func() {
		t.matched = t.db.Match(t.name, t.county.FIPS)
	})
	return t.matched
}

// CanonicalName returns the matched canonical name, or "" and false when
// the town did not resolve.
func (t *Town) CanonicalName() (string, bool) {
	if m := t.Matched(); m != nil {
		return m.Name, true
	}
	return "", false
}

func (t *Town) ConsensusName() string {
	if m := t.Matched(); m != nil {
		return m.Name
	}
	return t.name
}

// Township is an unnamed-township fragment, like "EBEEMEE TWP T5 R9 NWP".
type Township struct {
	name   string
	county entities.County
	db     *gazetteer.Gazetteer

	once    sync.Once
	matched *gazetteer.TownRecord
}

func (p *Parser) newTownship(name string, county entities.County) *Township {
	return &Township{name: name, county: county, db: p.db}
}

func (t *Township) Name() string            { return t.name }
func (t *Township) County() entities.County { return t.county }

// HasAlias reports whether the fragment carries a local name alongside the
// township code.
func (t *Township) HasAlias() bool { return township.HasAlias(t.name) }

// Alias returns the local name, or "".
func (t *Township) Alias() string { return township.ExtractAlias(t.name) }

// Code returns the standardized township code.
func (t *Township) Code() string { return township.CleanCode(t.name) }

// Matched resolves the township, trying the full fragment, then the code,
// then the alias.
func (t *Township) Matched() *gazetteer.TownRecord {
	t.once.Do(func() {
		for _, name := range []string{t.name, t.Code(), t.Alias()} {
			if m := t.db.Match(name, t.county.FIPS); m != nil {
				t.matched = m
				return
			}
		}
	})
	return t.matched
}

func (t *Township) CanonicalName() (string, bool) {
	if m := t.Matched(); m != nil {
		return m.Name, true
	}
	return "", false
}

func (t *Township) ConsensusName() string {
	if m := t.Matched(); m != nil {
		return m.Name
	}
	return t.name
}

// UnspecifiedGroup is a catch-all group fragment, like
// "UNSPECIFIED MILLINOCKET TWPS [PEN]".
type UnspecifiedGroup struct {
	name   string
	county entities.County
	parser *Parser
}

func (p *Parser) newGroup(name string, county entities.County) *UnspecifiedGroup {
	return &UnspecifiedGroup{name: name, county: county, parser: p}
}

func (g *UnspecifiedGroup) Name() string            { return g.name }
func (g *UnspecifiedGroup) County() entities.County { return g.county }
func (g *UnspecifiedGroup) ConsensusName() string   { return g.name }

// GroupCounty is the county the group's townships sit in: the bracketed
// qualifier when present, otherwise the filing county.
func (g *UnspecifiedGroup) GroupCounty() entities.County {
	code := g.county.Code
	if m := g.parser.formattedGroup.FindStringSubmatch(g.name); m != nil && m[2] != "" {
		code = m[2]
	}
	return g.parser.counties.ByCode(code)
}

// GroupRegistrationTown is the town the group's voters register at.
func (g *UnspecifiedGroup) GroupRegistrationTown() *Town {
	name := g.county.Code
	if m := g.parser.formattedGroup.FindStringSubmatch(g.name); m != nil && m[1] != "" {
		name = m[1]
	}
	return g.parser.newTown(name, g.county)
}
