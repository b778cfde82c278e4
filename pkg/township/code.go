package township

import (
	"regexp"
	"strings"

	"github.com/lkesich/maine-geography/pkg/strutil"
)

var (
	twpWordRe     = regexp.MustCompile(`(?i)TWPS?`)
	nonAlnumRe    = regexp.MustCompile(`[^0-9A-Za-z_]`)
	nonAliasRe    = regexp.MustCompile(`[^\s0-9A-Za-z_]`)
	trailingTwpRe = regexp.MustCompile(`(?i)^ TWPS?`)
)

// formatElement strips punctuation and leading zeros from a single token,
// so R-08 and R8 normalize to the same code.
func formatElement(elem string) string {
	elem = nonAlnumRe.ReplaceAllString(elem, "")
	var b strings.Builder
	for i := 0; i < len(elem); i++ {
		c := elem[i]
		if c == '0' && i > 0 && !isDigitByte(elem[i-1]) && i+1 < len(elem) && isDigitByte(elem[i+1]) {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// CleanCode extracts and standardizes the township designator tokens in s.
// If s contains no designator it is returned unchanged.
//
//	CleanCode("T4/R3 TWP")  == "T4 R3"
//	CleanCode("T10SD")      == "T10 SD"
//	CleanCode("CARIBOU")    == "CARIBOU"
func CleanCode(s string) string {
	if !IsUnnamedTownship(s) {
		return s
	}
	elems := findElements(s)
	for i, e := range elems {
		elems[i] = formatElement(e)
	}
	return strings.Join(elems, " ")
}

// CleanCodes standardizes every township designator in s in place, leaving
// the surrounding text untouched. Unlike CleanCode it only rewrites text
// inside designator spans, so town names and delimiters survive.
func CleanCodes(s string) string {
	spans := FindUnnamed(s)
	if len(spans) == 0 {
		return s
	}
	var b strings.Builder
	prev := 0
	for _, sp := range spans {
		b.WriteString(s[prev:sp.Start])
		b.WriteString(CleanCode(s[sp.Start:sp.End]))
		prev = sp.End
	}
	b.WriteString(s[prev:])
	return b.String()
}

// HasAlias reports whether an unnamed township string also carries a local
// name, like EBEEMEE TWP in "EBEEMEE TWP T5 R9 NWP". Always false for
// strings with no township designator.
func HasAlias(s string) bool {
	if !IsUnnamedTownship(s) {
		return false
	}
	rest := removeSpans(s, FindUnnamed(s))
	rest = twpWordRe.ReplaceAllString(rest, "")
	rest = nonAlnumRe.ReplaceAllString(rest, "")
	return rest != ""
}

// ExtractAlias returns the local name of an unnamed township, or "" when
// the string is nothing but the designator.
//
//	ExtractAlias("EBEEMEE TWP T5 R9 NWP") == "EBEEMEE TWP"
//	ExtractAlias("T7 R3 NBPP TWP")        == ""
func ExtractAlias(s string) string {
	if !HasAlias(s) {
		return ""
	}
	spans := FindUnnamed(s)
	for i, sp := range spans {
		if m := trailingTwpRe.FindString(s[sp.End:]); m != "" {
			spans[i].End = sp.End + len(m)
		}
	}
	alias := removeSpans(s, spans)
	alias = nonAliasRe.ReplaceAllString(alias, "")
	return strutil.Squish(alias)
}

// CleanTownship rewrites an unnamed township as its alias (if any) followed
// by its standardized code. Named towns pass through unchanged.
//
//	CleanTownship("EBEEMEE TWP (T5 R9 NWP)") == "EBEEMEE TWP T5 R9 NWP"
func CleanTownship(s string) string {
	if !IsUnnamedTownship(s) {
		return s
	}
	code := CleanCode(s)
	if alias := ExtractAlias(s); alias != "" {
		return alias + " " + code
	}
	return code
}
