package township

import (
	"testing"
)

func TestStripSuffix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"MAGALLOWAY PLT", "MAGALLOWAY"},
		{"MAGALLOWAY PLANTATION", "MAGALLOWAY"},
		{"EBEEMEE TWP", "EBEEMEE"},
		{"BARNARD TWPS", "BARNARD"},
		{"PLEASANT POINT VOTING DISTRICT", "PLEASANT POINT"},
		{"INDIAN TOWNSHIP", "INDIAN TOWNSHIP"},
		{"CARIBOU", "CARIBOU"},
	}
	for _, c := range cases {
		if got := StripSuffix(c.in); got != c.want {
			t.Errorf("StripSuffix(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStripRegion(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"T4 R9 NWP", "T4 R9"},
		{"TX R14 WELS", "TX R14"},
		{"T7 SD", "T7"},
		{"CARIBOU", "CARIBOU"},
	}
	for _, c := range cases {
		if got := StripRegion(c.in); got != c.want {
			t.Errorf("StripRegion(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestToggleSuffix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"EBEEMEE TWP", "EBEEMEE"},
		{"EBEEMEE", "EBEEMEE TWP"},
		{"MAGALLOWAY PLT", "MAGALLOWAY"},
	}
	for _, c := range cases {
		if got := ToggleSuffix(c.in); got != c.want {
			t.Errorf("ToggleSuffix(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeSuffix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Township of Cross Lake", "Cross Lake Twp"},
		{"Plantation of Magalloway", "Magalloway Plt"},
		{"City of Bangor", "Bangor"},
		{"Town of Caribou", "Caribou"},
		{"MAGALLOWAY PLANTATION", "MAGALLOWAY PLT"},
		{"PASSAMAQUODDY PLEASANT POINT VOTING DISTRICT", "PASSAMAQUODDY PLEASANT POINT VOTING DIST"},
		{"PENOBSCOT INDIAN ISLAND RESERVATION", "PENOBSCOT INDIAN ISLAND RES"},
		{"HERSEYTOWN TWP", "HERSEYTOWN TWP"},
		{"CARIBOU", "CARIBOU"},
	}
	for _, c := range cases {
		if got := NormalizeSuffix(c.in); got != c.want {
			t.Errorf("NormalizeSuffix(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCleanerStripTown(t *testing.T) {
	c := NewCleaner([]string{"Dover-Foxcroft", "King & Bartlett Twp"})
	cases := []struct {
		in   string
		want string
	}{
		{"Loud's Island", "Louds Island"},
		{"Dover-Foxcroft", "Dover-Foxcroft"},
		{"DOVER-FOXCROFT", "DOVER-FOXCROFT"},
		{"KING & BARTLETT TWP", "KING AND BARTLETT TWP"},
		{"VERONA-ISLAND", "VERONAISLAND"},
		{"SMITH & JONES", "SMITH  JONES"},
	}
	for _, tc := range cases {
		if got := c.StripTown(tc.in); got != tc.want {
			t.Errorf("StripTown(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanerCleanTown(t *testing.T) {
	c := NewCleaner([]string{"Dover-Foxcroft", "King & Bartlett Twp"})
	cases := []struct {
		in   string
		want string
	}{
		{"TOWNSHIP OF CROSS LAKE", "CROSS LAKE TWP"},
		{"EBEEMEE TWP (T5 R9 NWP)", "EBEEMEE TWP T5 R9 NWP"},
		{"MAGALLOWAY PLANTATION", "MAGALLOWAY PLT"},
		{"DOVER-FOXCROFT", "DOVER-FOXCROFT"},
		{"CARIBOU", "CARIBOU"},
	}
	for _, tc := range cases {
		if got := c.CleanTown(tc.in); got != tc.want {
			t.Errorf("CleanTown(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
