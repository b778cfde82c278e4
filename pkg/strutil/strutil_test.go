package strutil

import "testing"

func TestSquish(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"  FORT   KENT ", "FORT KENT"},
		{"T5\tR7", "T5 R7"},
		{"", ""},
		{"ONE", "ONE"},
	}
	for _, tt := range tests {
		if got := Squish(tt.input); got != tt.want {
			t.Errorf("Squish(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"FRANKLIN , MILBRIDGE", "FRANKLIN, MILBRIDGE"},
		{"HERSEYTOWN TWP ,SOLDIERTOWN TWP", "HERSEYTOWN TWP, SOLDIERTOWN TWP"},
		{"  A,B ", "A, B"},
	}
	for _, tt := range tests {
		got := NormalizeWhitespace(tt.input)
		if got != tt.want {
			t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
		}
		// Idempotence.
		if again := NormalizeWhitespace(got); again != got {
			t.Errorf("NormalizeWhitespace not idempotent: %q -> %q", got, again)
		}
	}
}

func TestMatchCase(t *testing.T) {
	tests := []struct {
		s, ref, want string
	}{
		{"portland", "MATINICUS ISLE PLANTATION", "PORTLAND"},
		{"PORTLAND", "city of portland", "portland"},
		{"PORTLAND", "City of Portland", "Portland"},
		{"King and Bartlett TWP", "King and Bartlett Township", "King and Bartlett Twp"},
		{"Taunton and Raynham", "Taunton & Raynham", "Taunton and Raynham"},
	}
	for _, tt := range tests {
		if got := MatchCase(tt.s, tt.ref); got != tt.want {
			t.Errorf("MatchCase(%q, %q) = %q, want %q", tt.s, tt.ref, got, tt.want)
		}
	}
}

func TestFoldKey(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Presque Isle", "PRESQUE ISLE"},
		{"Méduxnekeag", "MEDUXNEKEAG"},
		{" t5 r7 ", "T5 R7"},
	}
	for _, tt := range tests {
		if got := FoldKey(tt.input); got != tt.want {
			t.Errorf("FoldKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestReplaceAllOrder(t *testing.T) {
	rules := []Replacement{
		{"PISCATAQUS", "PISCATAQUIS"},
		{"MARIONTWP", "MARION TWP"},
	}
	got := ReplaceAll(rules, "MARIONTWP, PISCATAQUS")
	if got != "MARION TWP, PISCATAQUIS" {
		t.Errorf("ReplaceAll = %q", got)
	}
}
