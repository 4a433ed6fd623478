package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/athar-lab/corpus-mcp/internal/cleaner"
	"github.com/athar-lab/corpus-mcp/internal/logger"
)

type CleanTextQuery struct {
	Text string `json:"text"`
}

type CleanTextResponse struct {
	Text string `json:"text"`
}

func CleanTextTool() *mcp.Tool {
	inputschema, err := jsonschema.For[CleanTextQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "clean-text",
		Description: "Apply the corpus cleaning transform to raw text: strip markup tags, collapse redundant NO_PAGE_NUMBER sentinels, remove empty paragraph stubs and blank commentary pages, tag bracketed subheadings, and drop leftover commentary-start tags. The same transform the splitter applies to its outputs when cleaning is enabled.",
		InputSchema: inputschema,
	}
}

func CleanTextToolHandler(ctx context.Context, req *mcp.CallToolRequest, query CleanTextQuery, log logger.Logger) (*mcp.CallToolResult, *CleanTextResponse, error) {
	log.Info("clean-text tool called (%d bytes)", len(query.Text))
	return nil, &CleanTextResponse{Text: cleaner.New().Clean(query.Text)}, nil
}
