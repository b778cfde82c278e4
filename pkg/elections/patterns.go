// Package elections parses the reporting-unit strings used in Maine
// election result files. A reporting unit is one line of results: a single
// town, or a town reporting for a list of townships, or a catch-all group
// like "UNSPECIFIED MILLINOCKET TWPS [PIS]".
package elections

import (
	"regexp"

	"github.com/lkesich/maine-geography/pkg/strutil"
)

const (
	// standardDelimiter separates towns within one reporting unit after
	// normalization.
	standardDelimiter = ","

	// unspecifiedFlag marks a fragment as a catch-all township group, and
	// standardFlag prefixes the standardized group name.
	unspecifiedFlag = "TWPS"
	standardFlag    = "UNSPECIFIED"
)

// multiCountyRegistrationTowns register voters for township groups in more
// than one county. Their group names need a county qualifier to be unique.
var multiCountyRegistrationTowns = []string{"MILLINOCKET"}

// knownTypos are one-off misspellings observed in published result files.
// Recurring misspellings belong in the gazetteer as aliases, not here.
var knownTypos = []strutil.Replacement{
	{Find: "MARIONTWP", Replace: "MARION TWP"},
	{Find: "PISCATAQUS", Replace: "PISCATAQUIS"},
	{Find: "ORNVEILLE", Replace: "ORNEVILLE"},
	{Find: "EDUMUNDS", Replace: "EDMUNDS"},
	{Find: "SILIVER RIDGE", Replace: "SILVER RIDGE"},
	{Find: "FRANKLIN/T9 T10 SD", Replace: "FRANKLIN/T9 SD/T10 SD"},
	{Find: "PLEASANT POINT VOTING DISTRICT RICT", Replace: "PLEASANT POINT VOTING DISTRICT"},
}

// ambiguousGroupNames rewrites the short forms the Secretary of State uses
// for the Millinocket township groups into their full names. Order matters:
// the whole-string forms must win before the suffix forms fire.
var ambiguousGroupNames = []strutil.Rewrite{
	{Pattern: regexp.MustCompile(`^PENOBSCOT TWPS$`), Replace: "MILLINOCKET PENOBSCOT TWPS"},
	{Pattern: regexp.MustCompile(`^PISCATAQUIS TWPS$`), Replace: "MILLINOCKET PISCATAQUIS TWPS"},
	{Pattern: regexp.MustCompile(`PEN(?:OBSCOT)? TWP$`), Replace: "PENOBSCOT TWPS"},
	{Pattern: regexp.MustCompile(`PIS(?:CATAQUIS)? TWP$`), Replace: "PISCATAQUIS TWPS"},
}

// nonstandardDelimiters are the other ways result files separate towns.
var nonstandardDelimiters = []strutil.Replacement{
	{Find: "&", Replace: standardDelimiter},
	{Find: "/", Replace: standardDelimiter},
	{Find: "(AND ", Replace: standardDelimiter},
}

var (
	// meaningfulCharsRe matches every character with no meaning in a
	// reporting unit; everything else is dropped during normalization.
	meaningfulCharsRe = regexp.MustCompile(`[^\w\s()\-&/,]`)

	// Registration towns appear as a prefix before a double dash, or as an
	// anchored parenthetical found during the marker scan.
	dashPrefixRe = regexp.MustCompile(`^[^-]+--`)

	// orphanParenRe matches a trailing close paren whose opener was lost
	// to truncation.
	orphanParenRe = regexp.MustCompile(`^([^(]+)\)$`)

	singularFlagRe = regexp.MustCompile(`\bTWP\b`)
	pluralFlagRe   = regexp.MustCompile(`\bTWPS\b`)
)
