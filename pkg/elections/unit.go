package elections

import (
	"strings"

	"github.com/lkesich/maine-geography/pkg/entities"
)

// ReportingUnit is one parsed line of election results: the geographies
// that reported together, plus the towns their voters register at when
// those differ.
type ReportingUnit struct {
	RawString           string
	County              entities.County
	ReportingTowns      []ResultGeo
	RegistrationTowns   []*Town
	HasUnspecifiedGroup bool
}

// FormattedString renders the unit as a comma-delimited list of its
// reporting geographies.
func (u *ReportingUnit) FormattedString() string {
	parts := make([]string, len(u.ReportingTowns))
	for i, geo := range u.ReportingTowns {
		parts[i] = geo.Name()
	}
	return strings.Join(parts, ", ")
}

// Group returns the unspecified group fragment, or nil when the unit has
// none.
func (u *ReportingUnit) Group() *UnspecifiedGroup {
	for _, geo := range u.ReportingTowns {
		if g, ok := geo.(*UnspecifiedGroup); ok {
			return g
		}
	}
	return nil
}

// ConsensusNames returns the best available name for every reporting
// geography, canonical where resolved.
func (u *ReportingUnit) ConsensusNames() []string {
	out := make([]string, len(u.ReportingTowns))
	for i, geo := range u.ReportingTowns {
		out[i] = geo.ConsensusName()
	}
	return out
}
