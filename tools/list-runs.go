package tools

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/athar-lab/corpus-mcp/internal/logger"
	"github.com/athar-lab/corpus-mcp/internal/storage"
	"github.com/athar-lab/corpus-mcp/models"
)

type ListRunsQuery struct{}

type ListRunsResponse struct {
	Runs []models.RunInfo `json:"runs"`
}

func ListRunsTool() *mcp.Tool {
	inputschema, err := jsonschema.For[ListRunsQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "list-runs",
		Description: "List all recorded split runs with their source file, output directory, page count and character counts, newest first.",
		InputSchema: inputschema,
	}
}

func ListRunsToolHandler(ctx context.Context, req *mcp.CallToolRequest, query ListRunsQuery, store storage.Store, log logger.Logger) (*mcp.CallToolResult, *ListRunsResponse, error) {
	log.Info("list-runs tool called")

	runs, err := store.ListRuns(ctx)
	if err != nil {
		log.Error("list-runs tool failed: %v", err)
		return nil, nil, err
	}
	return nil, &ListRunsResponse{Runs: runs}, nil
}
