package township

import (
	"regexp"
	"strings"

	"github.com/lkesich/maine-geography/pkg/strutil"
)

// Abbreviations maps the geotype suffixes that appear in full in GNIS and
// other sources to the abbreviated forms used in canonical names.
var Abbreviations = []strutil.Replacement{
	{Find: "PLANTATION", Replace: "PLT"},
	{Find: "TOWNSHIP", Replace: "TWP"},
	{Find: "VOTING DISTRICT", Replace: "VOTING DIST"},
	{Find: "RESERVATION", Replace: "RES"},
}

// falseSuffixes are words that look like a geotype suffix follows them but
// where the suffix is part of the name. INDIAN TOWNSHIP is a town, not a
// township named INDIAN.
var falseSuffixes = []string{"INDIAN"}

var suffixAlternation = func() string {
	var forms []string
	for _, a := range Abbreviations {
		forms = append(forms, a.Find)
	}
	for _, a := range Abbreviations {
		forms = append(forms, a.Replace)
	}
	return strings.Join(forms, "|")
}()

var (
	stripSuffixRe = regexp.MustCompile(`(?i) (?:` + suffixAlternation + `)S?$`)
	stripRegionRe = regexp.MustCompile(`(?i) (?:` + strings.Join(Regions, "|") + `)$`)
	gnisNameRe    = regexp.MustCompile(`(?i)^(CITY|PLANTATION|TOWNSHIP|TOWN) OF (.+)$`)
)

// suffixEndRes match each full-form suffix (with optional plural S) at the
// end of a string, for abbreviation in NormalizeSuffix.
var suffixEndRes = func() []struct {
	re     *regexp.Regexp
	abbrev string
} {
	out := make([]struct {
		re     *regexp.Regexp
		abbrev string
	}, len(Abbreviations))
	for i, a := range Abbreviations {
		out[i].re = regexp.MustCompile(`(?i)` + a.Find + `(S?)$`)
		out[i].abbrev = a.Replace
	}
	return out
}()

var gnisSuffixes = map[string]string{
	"CITY":       "",
	"TOWN":       "",
	"PLANTATION": "PLT",
	"TOWNSHIP":   "TWP",
}

// StripSuffix removes a trailing geotype suffix, in full or abbreviated
// form, singular or plural. Names on the false-suffix list are returned
// unchanged.
func StripSuffix(s string) string {
	loc := stripSuffixRe.FindStringIndex(s)
	if loc == nil {
		return s
	}
	prefix := strings.ToUpper(s[:loc[0]])
	for _, f := range falseSuffixes {
		if strings.HasSuffix(prefix, f) {
			return s
		}
	}
	return s[:loc[0]]
}

// StripRegion removes one trailing survey region code.
func StripRegion(s string) string {
	return stripRegionRe.ReplaceAllString(s, "")
}

// ToggleSuffix strips the geotype suffix if one is present, and appends
// " TWP" otherwise. Used to fan out alias forms for townships and island
// groups, which sources record both with and without a suffix.
func ToggleSuffix(s string) string {
	if stripped := StripSuffix(s); stripped != s {
		return stripped
	}
	return s + " TWP"
}

// NormalizeSuffix rewrites "<Geotype> of <Name>" constructions to the
// canonical "<Name> <abbrev>" order and abbreviates any trailing full-form
// suffix, preserving the case pattern of the input.
//
//	NormalizeSuffix("Township of Cross Lake") == "Cross Lake Twp"
//	NormalizeSuffix("City of Bangor")         == "Bangor"
//	NormalizeSuffix("MAGALLOWAY PLANTATION")  == "MAGALLOWAY PLT"
func NormalizeSuffix(town string) string {
	name := town
	if m := gnisNameRe.FindStringSubmatch(town); m != nil {
		name = m[2]
		if suffix := gnisSuffixes[strings.ToUpper(m[1])]; suffix != "" {
			name = name + " " + suffix
		}
	}
	for _, se := range suffixEndRes {
		loc := se.re.FindStringSubmatchIndex(name)
		if loc == nil {
			continue
		}
		if loc[0] > 0 && isLetterByte(name[loc[0]-1]) {
			continue
		}
		plural := name[loc[2]:loc[3]]
		name = name[:loc[0]] + se.abbrev + plural
	}
	return strutil.MatchCase(name, town)
}
