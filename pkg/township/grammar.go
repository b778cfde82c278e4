// Package township parses and normalizes Maine town and township names.
//
// Unnamed townships are designated by a township token (T1-T19, or the
// letter codes TA/TB/TC/TD/TX), an optional range token (R1-R19), and up to
// two survey region codes (WELS, BKP, ...). Historical election files
// punctuate these designators inconsistently, so the grammar tolerates a
// few filler characters between tokens.
//
// Functions in this package operate on a string containing a single town or
// township unless noted otherwise; see the elections package for splitting
// multi-town reporting units.
package township

import (
	"regexp"
	"strings"
)

// Regions are the survey region codes that can appear in township names,
// like WELS (West of the Easterly Line of the State) or BPP (Bingham's
// Penobscot Purchase). A township name carries zero, one, or two of them.
var Regions = []string{
	"ED", "MD", "ND", "SD", "TS",
	"BKP", "BPP", "EKR", "NWP", "WKR",
	"NBKP", "NBPP", "WBKP", "WELS",
}

// fuzzyMax is how many filler characters (punctuation, stray spaces) are
// tolerated between the tokens of one township designator.
const fuzzyMax = 3

var (
	townshipStdAtRe = regexp.MustCompile(`(?i)^T.?[0-9]{1,2}`)
	townshipAltAtRe = regexp.MustCompile(`(?i)^T[ABCDX]`)
	rangeAtRe       = regexp.MustCompile(`(?i)^R.?[0-9]{1,2}`)
	regionAtRe      = regexp.MustCompile(`(?i)^(?:` + strings.Join(Regions, "|") + `)`)
)

// Span is a half-open byte range [Start, End) within an input string.
type Span struct {
	Start, End int
}

func isWordByte(b byte) bool {
	return b == '_' ||
		('0' <= b && b <= '9') ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z')
}

func isLetterByte(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isDigitByte(b byte) bool {
	return '0' <= b && b <= '9'
}

// matchTownshipAt reports a township token anchored at s[i:]. The letter
// codes require a non-word character (or string edge) on the left and a
// non-letter on the right, so TA never fires inside TAUNTON.
func matchTownshipAt(s string, i int) (end int, ok bool) {
	if m := townshipStdAtRe.FindString(s[i:]); m != "" {
		return i + len(m), true
	}
	if m := townshipAltAtRe.FindString(s[i:]); m != "" {
		if i > 0 && isWordByte(s[i-1]) {
			return 0, false
		}
		e := i + len(m)
		if e < len(s) && isLetterByte(s[e]) {
			return 0, false
		}
		return e, true
	}
	return 0, false
}

func matchRangeAt(s string, i int) (end int, ok bool) {
	if m := rangeAtRe.FindString(s[i:]); m != "" {
		return i + len(m), true
	}
	return 0, false
}

// matchRegionAt reports a region code anchored at s[i:]. Region codes must
// not touch letters on either side, but digits are fine: T10SD parses as
// township T10 plus region SD.
func matchRegionAt(s string, i int) (end int, ok bool) {
	m := regionAtRe.FindString(s[i:])
	if m == "" {
		return 0, false
	}
	if i > 0 && isLetterByte(s[i-1]) {
		return 0, false
	}
	e := i + len(m)
	if e < len(s) && isLetterByte(s[e]) {
		return 0, false
	}
	return e, true
}

// fuzzyThen tries match at pos, then after up to fuzzyMax filler characters
// (anything that is not a word character or a comma).
func fuzzyThen(s string, pos int, match func(string, int) (int, bool)) (int, bool) {
	for skip := 0; skip <= fuzzyMax; skip++ {
		j := pos + skip
		if j > len(s) {
			break
		}
		if skip > 0 {
			b := s[j-1]
			if isWordByte(b) || b == ',' {
				break
			}
		}
		if end, ok := match(s, j); ok {
			return end, true
		}
	}
	return 0, false
}

// FindUnnamed returns the non-overlapping spans of every unnamed-township
// designator in s, left to right.
func FindUnnamed(s string) []Span {
	var spans []Span
	i := 0
	for i < len(s) {
		end, ok := matchTownshipAt(s, i)
		if !ok {
			i++
			continue
		}
		if e, ok := fuzzyThen(s, end, matchRangeAt); ok {
			end = e
		}
		for n := 0; n < 2; n++ {
			e, ok := fuzzyThen(s, end, matchRegionAt)
			if !ok {
				break
			}
			end = e
		}
		spans = append(spans, Span{i, end})
		i = end
	}
	return spans
}

// IsUnnamedTownship reports whether s contains an unnamed township
// designator.
//
//	IsUnnamedTownship("T5 R7")                  == true
//	IsUnnamedTownship("CROSS LAKE TWP (T17 R5)") == true
//	IsUnnamedTownship("CROSS LAKE TWP")          == false
func IsUnnamedTownship(s string) bool {
	return len(FindUnnamed(s)) > 0
}

// findElements returns every individual township, range, or region token in
// s, in order, regardless of whether it sits inside a full designator.
func findElements(s string) []string {
	var elems []string
	i := 0
	for i < len(s) {
		if end, ok := matchTownshipAt(s, i); ok {
			elems = append(elems, s[i:end])
			i = end
			continue
		}
		if end, ok := matchRangeAt(s, i); ok {
			elems = append(elems, s[i:end])
			i = end
			continue
		}
		if end, ok := matchRegionAt(s, i); ok {
			elems = append(elems, s[i:end])
			i = end
			continue
		}
		i++
	}
	return elems
}

// removeSpans deletes the given spans from s. Spans must be sorted and
// non-overlapping, as returned by FindUnnamed.
func removeSpans(s string, spans []Span) string {
	var b strings.Builder
	prev := 0
	for _, sp := range spans {
		b.WriteString(s[prev:sp.Start])
		prev = sp.End
	}
	b.WriteString(s[prev:])
	return b.String()
}
