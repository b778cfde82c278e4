package elections

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/lkesich/maine-geography/pkg/entities"
	"github.com/lkesich/maine-geography/pkg/gazetteer"
	"github.com/lkesich/maine-geography/pkg/strutil"
	"github.com/lkesich/maine-geography/pkg/township"
)

// AmbiguousRegistrationError reports a result string with more than one
// registration-town marker, which cannot be parsed without guessing.
type AmbiguousRegistrationError struct {
	Raw string
}

func (e *AmbiguousRegistrationError) Error() string {
	return "multiple registration town substrings in result string: " + e.Raw
}

// A Parser turns raw reporting-unit strings into ReportingUnits resolved
// against a gazetteer. It is safe for concurrent use.
type Parser struct {
	db       *gazetteer.Gazetteer
	counties *entities.CountyTable
	cleaner  *township.Cleaner
	logger   *slog.Logger

	multiCountyMatch *regexp.Regexp
	multiCountySub   *regexp.Regexp
	formattedGroup   *regexp.Regexp
}

// NewParser builds a Parser over db. The county-qualified group patterns
// are derived from the county table, so a non-Maine table would need its
// own codes.
func NewParser(db *gazetteer.Gazetteer, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	counties := db.Counties()
	countyAlt := strings.Join(counties.Codes(), "|")
	regtownAlt := strings.Join(multiCountyRegistrationTowns, "|")
	multiCounty := `(` + regtownAlt + `) (` + countyAlt + `)\w* (` + unspecifiedFlag + `)`
	return &Parser{
		db:               db,
		counties:         counties,
		cleaner:          db.Cleaner(),
		logger:           logger,
		multiCountyMatch: regexp.MustCompile(`(?i)^` + multiCounty),
		multiCountySub:   regexp.MustCompile(`(?i)` + multiCounty),
		formattedGroup: regexp.MustCompile(
			`(?i)^` + standardFlag + ` (.+) ` + unspecifiedFlag + `(?: \[(` + countyAlt + `)\])?`),
	}
}

// Normalize standardizes a raw result string: casing, known typos,
// ambiguous group names, junk characters, township codes, and delimiters.
// The output is a comma-delimited list of towns with registration markers
// still in place.
func (p *Parser) Normalize(raw string) string {
	return strutil.Chain(raw,
		strings.ToUpper,
		fixKnownTypos,
		renameAmbiguousGroups,
		p.dropNonMeaningfulChars,
		township.CleanCodes,
		normalizeDelimiters,
		strutil.NormalizeWhitespace,
		dropOrphanParenthesis,
	)
}

func fixKnownTypos(s string) string {
	return strutil.ReplaceAll(knownTypos, s)
}

// renameAmbiguousGroups applies the group rewrites until the string is
// stable. A bare "PENOBSCOT TWP" needs two rounds: first the plural fix,
// then the whole-string Millinocket rename. Iterating keeps Normalize
// idempotent.
func renameAmbiguousGroups(s string) string {
	for {
		next := strutil.RewriteAll(ambiguousGroupNames, s)
		if next == s {
			return s
		}
		s = next
	}
}

// dropNonMeaningfulChars removes every character that carries no meaning
// in a result string. Valid ampersands are spelled out first so they
// survive delimiter normalization.
func (p *Parser) dropNonMeaningfulChars(s string) string {
	s = p.cleaner.ReplaceValidAmps(strutil.Squish(s), "AND")
	return meaningfulCharsRe.ReplaceAllString(s, "")
}

func normalizeDelimiters(s string) string {
	return strutil.ReplaceAll(nonstandardDelimiters, s)
}

// dropOrphanParenthesis removes a trailing close paren whose opener was
// consumed by delimiter normalization, as in "BBH (AND KTAADN)".
func dropOrphanParenthesis(s string) string {
	return orphanParenRe.ReplaceAllString(s, "$1")
}

// Parse resolves one raw reporting-unit string. countyCode is the
// Secretary of State county the result was filed under; it scopes fallback
// lookups and catch-all groups but never filters a statewide match.
func (p *Parser) Parse(raw string, countyCode string) (*ReportingUnit, error) {
	county := p.counties.ByCode(strings.ToUpper(countyCode))
	normalized := p.Normalize(raw)

	regSubstr, err := p.findRegistrationSubstring(normalized)
	if err != nil {
		return nil, err
	}
	registration := p.splitClean(regSubstr)
	reporting := p.splitClean(reportingSubstring(normalized, regSubstr))

	hasGroup := hasUnspecifiedGroup(reporting, registration, p.multiCountyMatch)
	if hasGroup != hasUnspecifiedGroupSimple(reporting, registration) {
		p.logger.Warn("unspecified group heuristics disagree",
			"raw", raw,
			"reporting", reporting,
			"registration", registration,
			"has_group", hasGroup)
	}
	reporting = p.formatReportingTowns(reporting, registration, hasGroup)

	unit := &ReportingUnit{
		RawString:           raw,
		County:              county,
		HasUnspecifiedGroup: hasGroup,
	}
	for _, name := range registration {
		if name == "" {
			continue
		}
		unit.RegistrationTowns = append(unit.RegistrationTowns, p.newTown(name, county))
	}
	for _, name := range reporting {
		if geo := p.classify(name, county); geo != nil {
			unit.ReportingTowns = append(unit.ReportingTowns, geo)
		}
	}
	return unit, nil
}

// findRegistrationSubstring locates the registration-town marker: a
// parenthetical that is not a township code, or a prefix before a double
// dash. More than one marker is an error.
func (p *Parser) findRegistrationSubstring(s string) (string, error) {
	var candidates []string
	for _, m := range registrationMarkers(s) {
		if !township.IsUnnamedTownship(m) {
			candidates = append(candidates, m)
		}
	}
	switch len(candidates) {
	case 0:
		return "", nil
	case 1:
		return candidates[0], nil
	}
	return "", &AmbiguousRegistrationError{Raw: s}
}

var anchoredParenRe = regexp.MustCompile(`^\([^(]+\)`)

// registrationMarkers scans left to right for parentheticals and (at the
// start only) a double-dash prefix. Parentheticals opening with AND or &
// are reporting towns, not markers.
func registrationMarkers(s string) []string {
	var out []string
	i := 0
	for i < len(s) {
		if m := anchoredParenRe.FindString(s[i:]); m != "" && !isReportingParen(m) {
			out = append(out, m)
			i += len(m)
			continue
		}
		if i == 0 {
			if m := dashPrefixRe.FindString(s); m != "" {
				out = append(out, m)
				i = len(m)
				continue
			}
		}
		i++
	}
	return out
}

func isReportingParen(m string) bool {
	inner := m[1:]
	return strings.HasPrefix(inner, "AND") || strings.HasPrefix(inner, "&")
}

func reportingSubstring(s, regSubstr string) string {
	if regSubstr == "" {
		return s
	}
	return strings.ReplaceAll(s, regSubstr, "")
}

// splitClean splits a substring on the standard delimiter and fully cleans
// each fragment. Empty fragments are kept; classification drops them after
// the group heuristics have seen the fragment count.
func (p *Parser) splitClean(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, standardDelimiter)
	out := make([]string, len(parts))
	for i, part := range parts {
		out[i] = p.cleaner.CleanTown(part)
	}
	return out
}

// hasUnspecifiedGroup decides whether the unit contains a catch-all
// township group. The cascade leans on fragment counts: a lone TWPS
// fragment or a bare plural with no other towns signals a group, while
// multi-town units treat plurals as pluralization errors.
func hasUnspecifiedGroup(reporting, registration []string, multiCounty *regexp.Regexp) bool {
	joined := strings.Join(compact(append(append([]string{}, registration...), reporting...)), " ")
	switch {
	case len(registration) > 1 || len(reporting) > 2:
		return false
	case len(registration) > 0 && len(reporting) > 1:
		return false
	case contains(reporting, unspecifiedFlag):
		return true
	case multiCounty.MatchString(joined):
		return true
	case len(reporting) > 1 || len(registration) > 0:
		return false
	default:
		return containsSubstring(reporting, unspecifiedFlag)
	}
}

// hasUnspecifiedGroupSimple is a cruder version of the same decision, kept
// as a cross-check. Disagreements are logged for manual review.
func hasUnspecifiedGroupSimple(reporting, registration []string) bool {
	switch {
	case len(reporting) > 2 || len(registration) > 1:
		return false
	case contains(reporting, unspecifiedFlag):
		return true
	case len(reporting) > 1:
		return false
	default:
		return containsSubstring(reporting, unspecifiedFlag)
	}
}

// formatReportingTowns fixes pluralization so that TWPS reliably marks a
// group, then replaces group fragments with the standardized group name.
func (p *Parser) formatReportingTowns(reporting, registration []string, hasGroup bool) []string {
	out := make([]string, len(reporting))
	for i, town := range reporting {
		if hasGroup {
			out[i] = singularFlagRe.ReplaceAllString(town, unspecifiedFlag)
		} else {
			out[i] = pluralFlagRe.ReplaceAllString(town, "TWP")
		}
	}
	if !hasGroup {
		return out
	}
	return p.nameUnspecifiedGroup(out, registration)
}

// nameUnspecifiedGroup labels group fragments with the registration town
// and the standard flag, qualifying multi-county groups with their county:
// "UNSPECIFIED MILLINOCKET TWPS [PEN]".
func (p *Parser) nameUnspecifiedGroup(reporting, registration []string) []string {
	elems := append([]string{standardFlag}, append(append([]string{}, registration...), reporting...)...)
	groupName := p.multiCountySub.ReplaceAllString(strings.Join(compact(elems), " "), "${1} ${3} [${2}]")
	out := make([]string, len(reporting))
	for i, town := range reporting {
		if strings.Contains(town, unspecifiedFlag) {
			out[i] = groupName
		} else {
			out[i] = town
		}
	}
	return out
}

func (p *Parser) classify(name string, county entities.County) ResultGeo {
	switch {
	case name == "":
		return nil
	case township.IsUnnamedTownship(name):
		return p.newTownship(name, county)
	case strings.Contains(name, unspecifiedFlag):
		return p.newGroup(name, county)
	default:
		return p.newTown(name, county)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsSubstring(list []string, sub string) bool {
	for _, v := range list {
		if strings.Contains(v, sub) {
			return true
		}
	}
	return false
}

func compact(list []string) []string {
	out := list[:0]
	for _, v := range list {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
