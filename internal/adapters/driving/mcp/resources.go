package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Unital resources.
	uriScheme = "unital://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing families.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "families",
		Name:        "families",
		Description: "List of all registered unit families",
		MIMEType:    "application/json",
	}, s.handleFamiliesResource)

	// Template for the units of a family.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "families/{family}/units",
		Name:        "family-units",
		Description: "Unit names of a specific family, including SI-prefixed variants",
		MIMEType:    "application/json",
	}, s.handleUnitsResource)
}

// handleFamiliesResource returns a list of all registered families.
func (s *Server) handleFamiliesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Families == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	// Build simplified family list.
	type familyInfo struct {
		Name         string `json:"name"`
		StandardUnit string `json:"standard_unit"`
		UnitCount    int    `json:"unit_count"`
	}

	families := s.ports.Families.GetFamilies()
	infos := make([]familyInfo, len(families))
	for i, family := range families {
		infos[i] = familyInfo{
			Name:         family.Name,
			StandardUnit: family.StandardUnit,
			UnitCount:    len(family.ExpandedUnits()),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling families: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleUnitsResource returns the unit names of a specific family.
func (s *Server) handleUnitsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Families == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract family from URI: unital://families/{family}/units
	family := extractFamilyName(req.Params.URI)
	if family == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	units, err := s.ports.Families.GetUnits(family)
	if err != nil {
		return nil, fmt.Errorf("listing units: %w", err)
	}

	data, err := json.MarshalIndent(units, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling units: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractFamilyName extracts the family from a URI like unital://families/{family}/units.
func extractFamilyName(uri string) string {
	const prefix = uriScheme + "families/"
	const suffix = "/units"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
