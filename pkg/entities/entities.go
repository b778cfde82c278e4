// Package entities defines the small value types shared across the
// gazetteer and reporting-unit parser: counties, county subdivisions, and
// the town/alias classification enums.
package entities

import "fmt"

// TownType classifies a canonical place record.
type TownType string

const (
	TypeTown         TownType = "Town"
	TypeCity         TownType = "City"
	TypePlantation   TownType = "Plantation"
	TypeReservation  TownType = "Reservation"
	TypeUnorganized  TownType = "Unorganized Township"
	TypeIslandGroup  TownType = "Island Group"
)

// ParseTownType maps a reference-data geotype string to its TownType.
func ParseTownType(s string) (TownType, error) {
	switch TownType(s) {
	case TypeTown, TypeCity, TypePlantation, TypeReservation, TypeUnorganized, TypeIslandGroup:
		return TownType(s), nil
	}
	return "", fmt.Errorf("unknown town type %q", s)
}

// County identifies a Maine county. The three fields are mutually
// derivable through a CountyTable; a zero County is valid and means
// "county unknown".
type County struct {
	Name string `json:"name" yaml:"name"`
	Code string `json:"code" yaml:"code"`
	FIPS int    `json:"fips" yaml:"fips"`
}

// IsZero reports whether no field of the county is set.
func (c County) IsZero() bool {
	return c.Name == "" && c.Code == "" && c.FIPS == 0
}

// Cousub is a census county-subdivision record. It is purely descriptive;
// no derivation logic hangs off it.
type Cousub struct {
	Geocode  string `json:"geocode" yaml:"geocode"`
	Name     string `json:"name" yaml:"name"`
	Basename string `json:"basename" yaml:"basename"`
	Geoclass string `json:"geoclass" yaml:"geoclass"`
}
