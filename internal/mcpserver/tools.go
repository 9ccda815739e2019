package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"fdalabel-api/internal/adapter"
	"fdalabel-api/internal/api"
	"fdalabel-api/internal/config"
	"fdalabel-api/internal/domain/labelModel"
	"fdalabel-api/internal/pipeline"
)

// SearchLabelsInput is the input schema for the search_drug_labels tool.
type SearchLabelsInput struct {
	Query string `json:"query,omitempty" jsonschema:"free-text search over the full label"`
	Drug  string `json:"drug,omitempty" jsonschema:"drug name, matched against brand, generic and substance names"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum labels to return (1-100, default 10)"`
}

// SectionsInput is the input schema for the get_label_sections tool.
type SectionsInput struct {
	Drug     string   `json:"drug" jsonschema:"drug name, matched against brand, generic and substance names"`
	Sections []string `json:"sections,omitempty" jsonschema:"section names to return; every populated section when omitted"`
}

// SummarizeInput is the input schema for the summarize_drug_safety tool.
type SummarizeInput struct {
	Query     string        `json:"query,omitempty" jsonschema:"free-text question to rank label excerpts against"`
	Drug      string        `json:"drug,omitempty" jsonschema:"drug name to search labels for"`
	Condition string        `json:"condition,omitempty" jsonschema:"condition matched against the indications section"`
	TopK      int           `json:"top_k,omitempty" jsonschema:"number of excerpts to surface (1-10, default 5)"`
	Filters   *FiltersInput `json:"filters,omitempty"`
}

type FiltersInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum labels to fetch upstream (1-100, default 10)"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_drug_labels",
		Description: "Search FDA drug labels and return compact label records",
	}, s.handleSearchLabels)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_label_sections",
		Description: "Return named sections of one drug's FDA label verbatim",
	}, s.handleGetSections)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "summarize_drug_safety",
		Description: "Search FDA drug labels and build a bounded, cited safety summary for a query",
	}, s.handleSummarize)
}

func (s *Server) handleSearchLabels(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchLabelsInput,
) (*mcp.CallToolResult, api.SearchLabelsResponse, error) {
	searchExpr := pipeline.BuildSearchExpression(input.Query, input.Drug, "")
	if searchExpr == "" {
		return nil, api.SearchLabelsResponse{}, fmt.Errorf("provide query or drug")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = config.DefaultFetchLim
	}
	if limit > config.MaxFetchLim {
		limit = config.MaxFetchLim
	}

	result, err := s.fetcher.Fetch(ctx, searchExpr, 0, limit)
	if err != nil {
		return nil, api.SearchLabelsResponse{}, err
	}
	return nil, adapter.ToSearchResponse(result), nil
}

func (s *Server) handleGetSections(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SectionsInput,
) (*mcp.CallToolResult, api.LabelSectionsResponse, error) {
	if strings.TrimSpace(input.Drug) == "" {
		return nil, api.LabelSectionsResponse{}, fmt.Errorf("drug is required")
	}

	searchExpr := pipeline.BuildSearchExpression("", input.Drug, "")
	result, err := s.fetcher.Fetch(ctx, searchExpr, 0, 1)
	if err != nil {
		return nil, api.LabelSectionsResponse{}, err
	}
	if len(result.Labels) == 0 {
		return nil, api.LabelSectionsResponse{}, fmt.Errorf("no label found for %s", input.Drug)
	}

	return nil, adapter.ToSectionsResponse(&result.Labels[0], input.Sections), nil
}

func (s *Server) handleSummarize(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SummarizeInput,
) (*mcp.CallToolResult, labelModel.ResultBundle, error) {
	params := pipeline.SummarizeParams{
		Query:     input.Query,
		Drug:      input.Drug,
		Condition: input.Condition,
		TopK:      input.TopK,
	}
	if input.Filters != nil {
		params.Limit = input.Filters.Limit
	}

	bundle, err := s.pipeline.Run(ctx, params)
	if err != nil {
		return nil, labelModel.ResultBundle{}, err
	}
	return nil, bundle, nil
}
