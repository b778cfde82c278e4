package township

import (
	"testing"
)

func TestIsUnnamedTownship(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"T5 R7", true},
		{"T4/R3", true},
		{"T10SD", true},
		{"TA R2", true},
		{"TX R14 WELS", true},
		{"T7 R3 NBPP", true},
		{"EBEEMEE TWP T5 R9 NWP", true},
		{"CROSS LAKE TWP (T17 R5)", true},
		{"CARIBOU", false},
		{"CROSS LAKE TWP", false},
		{"TAUNTON", false},          // TA inside a word
		{"MATTAWAMKEAG", false},     // same
		{"EAST MILLINOCKET", false}, // no designator tokens
		{"", false},
	}
	for _, c := range cases {
		if got := IsUnnamedTownship(c.in); got != c.want {
			t.Errorf("IsUnnamedTownship(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFindUnnamedSpans(t *testing.T) {
	s := "MOUNT CHASE -- T5 R7 TWP"
	spans := FindUnnamed(s)
	if len(spans) != 1 {
		t.Fatalf("FindUnnamed(%q) returned %d spans, want 1", s, len(spans))
	}
	if got := s[spans[0].Start:spans[0].End]; got != "T5 R7" {
		t.Errorf("span text = %q, want %q", got, "T5 R7")
	}
}

func TestFindUnnamedFuzzyLimit(t *testing.T) {
	// Up to three filler characters between tokens, none of them commas.
	cases := []struct {
		in   string
		want string
	}{
		{"T17 - R5", "T17 - R5"},
		{"T17 -- R5", "T17"}, // four filler characters, range dropped
		{"T17, R5", "T17"},   // comma never joins tokens
	}
	for _, c := range cases {
		spans := FindUnnamed(c.in)
		if len(spans) == 0 {
			t.Fatalf("FindUnnamed(%q) found nothing", c.in)
		}
		if got := c.in[spans[0].Start:spans[0].End]; got != c.want {
			t.Errorf("FindUnnamed(%q) first span = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCleanCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"T4/R3 TWP", "T4 R3"},
		{"T10SD", "T10 SD"},
		{"T.5 R.7", "T5 R7"},
		{"T08 R09", "T8 R9"},
		{"TX R14 WELS", "TX R14 WELS"},
		{"EBEEMEE TWP (T5 R9 NWP)", "T5 R9 NWP"},
		{"CARIBOU", "CARIBOU"},
	}
	for _, c := range cases {
		if got := CleanCode(c.in); got != c.want {
			t.Errorf("CleanCode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCleanCodes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"PRENTISS TWP T7 R3 NBPP", "PRENTISS TWP T7 R3 NBPP"},
		{"T4/R3, T5/R7", "T4 R3, T5 R7"},
		{"MOUNT CHASE -- T5-R7 TWP", "MOUNT CHASE -- T5 R7 TWP"},
		{"NO CODES HERE", "NO CODES HERE"},
	}
	for _, c := range cases {
		if got := CleanCodes(c.in); got != c.want {
			t.Errorf("CleanCodes(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestHasAlias(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"EBEEMEE TWP T5 R9 NWP", true},
		{"CROSS LAKE TWP (T17 R5)", true},
		{"T7 R3 NBPP TWP", false},
		{"T4 R9 NWP", false},
		{"CARIBOU", false},
	}
	for _, c := range cases {
		if got := HasAlias(c.in); got != c.want {
			t.Errorf("HasAlias(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestExtractAlias(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"EBEEMEE TWP T5 R9 NWP", "EBEEMEE TWP"},
		{"CROSS LAKE TWP (T17 R5)", "CROSS LAKE TWP"},
		{"T7 R3 NBPP TWP", ""},
		{"T4 R9 NWP", ""},
	}
	for _, c := range cases {
		if got := ExtractAlias(c.in); got != c.want {
			t.Errorf("ExtractAlias(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCleanTownship(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"EBEEMEE TWP (T5 R9 NWP)", "EBEEMEE TWP T5 R9 NWP"},
		{"T4/R3 TWP", "T4 R3"},
		{"CARIBOU", "CARIBOU"},
	}
	for _, c := range cases {
		if got := CleanTownship(c.in); got != c.want {
			t.Errorf("CleanTownship(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
