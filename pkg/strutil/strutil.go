// Package strutil holds the small string transforms shared by the name
// normalization and reporting-unit parsing pipelines.
package strutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRe       = regexp.MustCompile(`\s+`)
	spaceBeforeCommaRe = regexp.MustCompile(` +,`)
	commaNoSpaceRe     = regexp.MustCompile(`,(\S)`)

	titleCaser = cases.Title(language.AmericanEnglish)

	stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Replacement is one find/replace rule applied in order by ReplaceAll.
type Replacement struct {
	Find    string
	Replace string
}

// Rewrite is one regex rewrite rule applied in order by RewriteAll.
type Rewrite struct {
	Pattern *regexp.Regexp
	Replace string
}

// ReplaceAll applies every literal replacement to s, in slice order.
func ReplaceAll(rules []Replacement, s string) string {
	for _, r := range rules {
		s = strings.ReplaceAll(s, r.Find, r.Replace)
	}
	return s
}

// RewriteAll applies every regex rewrite to s, in slice order.
func RewriteAll(rules []Rewrite, s string) string {
	for _, r := range rules {
		s = r.Pattern.ReplaceAllString(s, r.Replace)
	}
	return s
}

// Chain threads s through ops left to right.
func Chain(s string, ops ...func(string) string) string {
	for _, op := range ops {
		s = op(s)
	}
	return s
}

// Squish collapses internal whitespace runs to single spaces and trims.
func Squish(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// NormalizeWhitespace squishes whitespace and canonicalizes spacing around
// the comma delimiter: no space before, exactly one space after.
func NormalizeWhitespace(s string) string {
	s = Squish(s)
	s = spaceBeforeCommaRe.ReplaceAllString(s, ",")
	return commaNoSpaceRe.ReplaceAllString(s, ", $1")
}

// FoldKey uppercases s and strips diacritics, producing the canonical form
// used for alias index keys and lookups.
func FoldKey(s string) string {
	folded, _, _ := transform.String(stripAccents, strings.ToUpper(s))
	return strings.TrimSpace(folded)
}

// MatchCase copies the case pattern of ref onto s.
//
// A uniformly upper or lower ref is copied wholesale. Otherwise, when s and
// ref have the same number of space-separated words, case is copied word by
// word; when they do not line up (a word was added or removed by cleaning),
// s is title-cased.
func MatchCase(s, ref string) string {
	if !hasLetter(ref) {
		return s
	}
	if ref == strings.ToUpper(ref) {
		return strings.ToUpper(s)
	}
	if ref == strings.ToLower(ref) {
		return strings.ToLower(s)
	}

	words := strings.Fields(s)
	refWords := strings.Fields(ref)
	if len(words) != len(refWords) {
		return titleCaser.String(strings.ToLower(s))
	}
	for i, w := range words {
		words[i] = matchWordCase(w, refWords[i])
	}
	return strings.Join(words, " ")
}

func matchWordCase(w, ref string) string {
	switch {
	case !hasLetter(ref):
		return w
	case ref == strings.ToUpper(ref):
		return strings.ToUpper(w)
	case ref == strings.ToLower(ref):
		return strings.ToLower(w)
	case isTitleWord(ref):
		return titleCaser.String(strings.ToLower(w))
	default:
		return w
	}
}

func hasLetter(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLetter)
}

func isTitleWord(w string) bool {
	runes := []rune(w)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
