package api

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lkesich/maine-geography/pkg/elections"
	"github.com/lkesich/maine-geography/pkg/gazetteer"
	"github.com/lkesich/maine-geography/pkg/kit"
)

// RegisterMCPTools registers the four gazetteer MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, db *gazetteer.Gazetteer, parser *elections.Parser) {
	registerMatchTown(srv, db)
	registerCanonicalName(srv, db)
	registerParseUnit(srv, parser)
	registerListTowns(srv, db)
}

func registerMatchTown(srv *server.MCPServer, db *gazetteer.Gazetteer) {
	tool := mcp.NewTool("match_town",
		mcp.WithDescription("Resolve a Maine town or township name variant to its canonical record (geocode, county, cousub)."),
		mcp.WithString("name", mcp.Required(), mcp.Description("The town name to resolve")),
		mcp.WithString("county", mcp.Description("Secretary of State county code for fallback disambiguation (e.g. PEN)")),
	)

	kit.RegisterMCPTool(srv, tool, matchTownEndpoint(db), func(req mcp.CallToolRequest) (any, error) {
		args := req.GetArguments()
		name, _ := args["name"].(string)
		county, _ := args["county"].(string)
		return &matchReq{Name: name, County: county}, nil
	})
}

func registerCanonicalName(srv *server.MCPServer, db *gazetteer.Gazetteer) {
	tool := mcp.NewTool("canonical_name",
		mcp.WithDescription("Resolve a Maine town name variant to its canonical spelling."),
		mcp.WithString("name", mcp.Required(), mcp.Description("The name variant to resolve")),
		mcp.WithString("county", mcp.Description("Secretary of State county code for fallback disambiguation (e.g. PEN)")),
	)

	kit.RegisterMCPTool(srv, tool, canonicalNameEndpoint(db), func(req mcp.CallToolRequest) (any, error) {
		args := req.GetArguments()
		name, _ := args["name"].(string)
		county, _ := args["county"].(string)
		return &canonicalReq{Name: name, County: county}, nil
	})
}

func registerParseUnit(srv *server.MCPServer, parser *elections.Parser) {
	tool := mcp.NewTool("parse_reporting_unit",
		mcp.WithDescription("Parse a raw election reporting-unit string into its reporting and registration geographies."),
		mcp.WithString("result_string", mcp.Required(), mcp.Description("The raw reporting unit, e.g. 'MOUNT CHASE -- T5 R7 TWP'")),
		mcp.WithString("county", mcp.Description("Secretary of State county code the result was filed under")),
	)

	kit.RegisterMCPTool(srv, tool, parseUnitEndpoint(parser), func(req mcp.CallToolRequest) (any, error) {
		args := req.GetArguments()
		raw, _ := args["result_string"].(string)
		county, _ := args["county"].(string)
		return &parseReq{Raw: raw, County: county}, nil
	})
}

func registerListTowns(srv *server.MCPServer, db *gazetteer.Gazetteer) {
	tool := mcp.NewTool("list_towns",
		mcp.WithDescription("List canonical Maine minor civil divisions, optionally filtered by county or type."),
		mcp.WithString("county", mcp.Description("Secretary of State county code filter (e.g. ARO)")),
		mcp.WithString("type", mcp.Description("Town type filter (e.g. Town, City, Plantation, Unorganized Township)")),
	)

	kit.RegisterMCPTool(srv, tool, listTownsEndpoint(db), func(req mcp.CallToolRequest) (any, error) {
		args := req.GetArguments()
		county, _ := args["county"].(string)
		townType, _ := args["type"].(string)
		return &townsReq{County: county, Type: townType}, nil
	})
}
