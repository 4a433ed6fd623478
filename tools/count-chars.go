package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/athar-lab/corpus-mcp/internal/arabic"
	"github.com/athar-lab/corpus-mcp/internal/logger"
)

type CountCharsQuery struct {
	Path                  string `json:"path"`
	IncludeEditorSections bool   `json:"include_editor_sections,omitempty"`
}

type CountCharsResponse struct {
	Path      string `json:"path"`
	CharCount int    `json:"char_count"`
}

func CountCharsTool() *mcp.Tool {
	inputschema, err := jsonschema.For[CountCharsQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "count-chars",
		Description: "Count the significant (Arabic-script) characters in a corpus file. This is the same count the splitter reports as its lossless-split sanity check. Editorial sections can be included or excluded.",
		InputSchema: inputschema,
	}
}

func CountCharsToolHandler(ctx context.Context, req *mcp.CallToolRequest, query CountCharsQuery, log logger.Logger) (*mcp.CallToolResult, *CountCharsResponse, error) {
	log.Info("count-chars tool called for %s", query.Path)

	count, err := arabic.CountFile(query.Path, query.IncludeEditorSections)
	if err != nil {
		log.Error("count-chars tool failed: %v", err)
		return nil, nil, err
	}
	return nil, &CountCharsResponse{Path: query.Path, CharCount: count}, nil
}
