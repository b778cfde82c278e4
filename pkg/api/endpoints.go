package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/lkesich/maine-geography/pkg/elections"
	"github.com/lkesich/maine-geography/pkg/gazetteer"
	"github.com/lkesich/maine-geography/pkg/kit"
)

// Shared request/response types used by both HTTP and MCP transports.

type matchReq struct {
	Name   string
	County string
}

type matchResponse struct {
	Input   string                `json:"input"`
	Matched bool                  `json:"matched"`
	Town    *gazetteer.TownRecord `json:"town,omitempty"`
}

type canonicalReq struct {
	Name   string
	County string
}

type canonicalResponse struct {
	Input         string `json:"input"`
	Matched       bool   `json:"matched"`
	CanonicalName string `json:"canonical_name,omitempty"`
}

type parseReq struct {
	Raw    string
	County string
}

// geoResult is the wire form of one parsed reporting geography.
type geoResult struct {
	Name          string `json:"name"`
	Kind          string `json:"kind"`
	CanonicalName string `json:"canonical_name,omitempty"`
	Geocode       string `json:"geocode,omitempty"`
}

type parseResponse struct {
	Raw                 string      `json:"raw"`
	County              string      `json:"county,omitempty"`
	ReportingTowns      []geoResult `json:"reporting_towns"`
	RegistrationTowns   []geoResult `json:"registration_towns,omitempty"`
	HasUnspecifiedGroup bool        `json:"has_unspecified_group"`
	GroupCounty         string      `json:"group_county,omitempty"`
	GroupRegistration   string      `json:"group_registration_town,omitempty"`
	FormattedString     string      `json:"formatted_string"`
}

type townsReq struct {
	County string
	Type   string
}

type townsResponse struct {
	Towns []*gazetteer.TownRecord `json:"towns"`
}

func matchTownEndpoint(db *gazetteer.Gazetteer) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*matchReq)
		if req.Name == "" {
			return nil, fmt.Errorf("name is empty")
		}
		county := db.Counties().ByCode(strings.ToUpper(req.County))
		rec := db.Match(strings.ToUpper(req.Name), county.FIPS)
		return matchResponse{Input: req.Name, Matched: rec != nil, Town: rec}, nil
	}
}

func canonicalNameEndpoint(db *gazetteer.Gazetteer) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*canonicalReq)
		if req.Name == "" {
			return nil, fmt.Errorf("name is empty")
		}
		county := db.Counties().ByCode(strings.ToUpper(req.County))
		name, ok := db.CanonicalName(strings.ToUpper(req.Name), county.FIPS)
		return canonicalResponse{Input: req.Name, Matched: ok, CanonicalName: name}, nil
	}
}

func parseUnitEndpoint(parser *elections.Parser) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*parseReq)
		if req.Raw == "" {
			return nil, fmt.Errorf("result string is empty")
		}
		unit, err := parser.Parse(req.Raw, req.County)
		if err != nil {
			return nil, err
		}
		resp := parseResponse{
			Raw:                 unit.RawString,
			County:              unit.County.Code,
			HasUnspecifiedGroup: unit.HasUnspecifiedGroup,
			FormattedString:     unit.FormattedString(),
			ReportingTowns:      make([]geoResult, 0, len(unit.ReportingTowns)),
		}
		for _, geo := range unit.ReportingTowns {
			resp.ReportingTowns = append(resp.ReportingTowns, newGeoResult(geo))
		}
		for _, town := range unit.RegistrationTowns {
			resp.RegistrationTowns = append(resp.RegistrationTowns, newGeoResult(town))
		}
		if group := unit.Group(); group != nil {
			resp.GroupCounty = group.GroupCounty().Code
			resp.GroupRegistration = group.GroupRegistrationTown().Name()
		}
		return resp, nil
	}
}

func newGeoResult(geo elections.ResultGeo) geoResult {
	out := geoResult{Name: geo.Name()}
	var matched interface {
		Matched() *gazetteer.TownRecord
	}
	switch g := geo.(type) {
	case *elections.Town:
		out.Kind = "town"
		matched = g
	case *elections.Township:
		out.Kind = "township"
		matched = g
	case *elections.UnspecifiedGroup:
		out.Kind = "unspecified_group"
	}
	if matched != nil {
		if rec := matched.Matched(); rec != nil {
			out.CanonicalName = rec.Name
			out.Geocode = rec.Geocode
		}
	}
	return out
}

func listTownsEndpoint(db *gazetteer.Gazetteer) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*townsReq)
		county := strings.ToUpper(req.County)
		townType := strings.ToLower(req.Type)
		var out []*gazetteer.TownRecord
		for _, rec := range db.Towns() {
			if county != "" && rec.County.Code != county {
				continue
			}
			if townType != "" && strings.ToLower(string(rec.TownType)) != townType {
				continue
			}
			out = append(out, rec)
		}
		return townsResponse{Towns: out}, nil
	}
}
