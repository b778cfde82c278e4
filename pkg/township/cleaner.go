package township

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/lkesich/maine-geography/pkg/strutil"
)

// pairContext is the upper-cased text surrounding a punctuation mark in a
// canonical name, like {"DOVER", "FOXCROFT"} for the hyphen in
// Dover-Foxcroft.
type pairContext struct {
	leading  string
	trailing string
}

var punctContextRe = regexp.MustCompile(`^(\w+ ?)([&-])( ?\w+)`)

// A Cleaner strips punctuation from town names while protecting the
// ampersands and hyphens that belong to canonical names. Build one with
// NewCleaner from the canonical name list; a zero Cleaner treats all
// punctuation as invalid.
type Cleaner struct {
	amps    []pairContext
	hyphens []pairContext
}

// NewCleaner derives the valid punctuation contexts from a list of
// canonical town names.
func NewCleaner(canonicalNames []string) *Cleaner {
	c := &Cleaner{}
	for _, name := range canonicalNames {
		m := punctContextRe.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		pc := pairContext{
			leading:  strings.ToUpper(m[1]),
			trailing: strings.ToUpper(m[3]),
		}
		switch m[2] {
		case "&":
			c.amps = append(c.amps, pc)
		case "-":
			c.hyphens = append(c.hyphens, pc)
		}
	}
	return c
}

func validAt(ctxs []pairContext, upper string, i int) bool {
	for _, pc := range ctxs {
		if strings.HasSuffix(upper[:i], pc.leading) && strings.HasPrefix(upper[i+1:], pc.trailing) {
			return true
		}
	}
	return false
}

// ReplaceValidAmps rewrites ampersands in valid contexts with repl, leaving
// all other ampersands alone.
func (c *Cleaner) ReplaceValidAmps(s, repl string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	upper := strings.ToUpper(s)
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '&' && validAt(c.amps, upper, i) {
			b.WriteString(repl)
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// stripInvalidPunct drops every character that is not a word character or
// whitespace, except hyphens in valid contexts.
func (c *Cleaner) stripInvalidPunct(s string) string {
	upper := strings.ToUpper(s)
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		case r == '-' && validAt(c.hyphens, upper, i):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// StripTown removes invalid punctuation from a single town name, spelling
// out valid ampersands, and preserves the case pattern of the input.
//
//	StripTown("Loud's Island")       == "Louds Island"
//	StripTown("Dover-Foxcroft")      == "Dover-Foxcroft"
//	StripTown("KING & BARTLETT TWP") == "KING AND BARTLETT TWP"
func (c *Cleaner) StripTown(town string) string {
	s := strutil.Squish(town)
	s = c.ReplaceValidAmps(s, "and")
	s = c.stripInvalidPunct(s)
	return strutil.MatchCase(s, town)
}

// CleanTown fully normalizes a single town or township name: punctuation,
// geotype suffix, and township designator.
func (c *Cleaner) CleanTown(town string) string {
	return strutil.Chain(town,
		c.StripTown,
		NormalizeSuffix,
		CleanTownship,
		strutil.NormalizeWhitespace,
	)
}
