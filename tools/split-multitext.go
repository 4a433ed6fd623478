package tools

import (
	"context"
	"io"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/athar-lab/corpus-mcp/internal/logger"
	"github.com/athar-lab/corpus-mcp/internal/operations"
	"github.com/athar-lab/corpus-mcp/internal/storage"
	"github.com/athar-lab/corpus-mcp/models"
)

type SplitMultitextQuery struct {
	Source string              `json:"source"`
	OutDir string              `json:"outdir"`
	Works  []models.WorkConfig `json:"works"`
	Clean  bool                `json:"clean,omitempty"`
}

type SplitMultitextResponse struct {
	RunID         string              `json:"run_id,omitempty"`
	ResourcePaths []string            `json:"resource_paths,omitempty"`
	Report        *models.SplitReport `json:"report"`
}

func SplitMultitextTool() *mcp.Tool {
	inputschema, err := jsonschema.For[SplitMultitextQuery](nil)
	if err != nil {
		panic(err)
	}
	return &mcp.Tool{
		Name:        "split-multitext",
		Description: "Split a corpus file that interleaves several works (a base text plus commentaries) on the same page into one output file per work. Each work is described by an extraction regex and an output filename; page markers and the metadata sidecar are preserved per work. Reports an advisory Arabic character-count consistency check and optionally cleans the outputs.",
		InputSchema: inputschema,
	}
}

func SplitMultitextToolHandler(ctx context.Context, req *mcp.CallToolRequest, query SplitMultitextQuery, store storage.Store, log logger.Logger) (*mcp.CallToolResult, *SplitMultitextResponse, error) {
	log.Info("split-multitext tool called for %s", query.Source)

	job := models.SplitJob{
		Source: query.Source,
		OutDir: query.OutDir,
		Works:  query.Works,
		Clean:  query.Clean,
	}
	runID, report, err := operations.RunSplit(ctx, job, store, log, io.Discard)
	if err != nil {
		log.Error("split-multitext tool failed: %v", err)
		return nil, nil, err
	}

	resp := &SplitMultitextResponse{
		RunID:  runID,
		Report: report,
	}
	if runID != "" {
		resp.ResourcePaths = storage.CalculateResourcePaths(runID)
	}
	return nil, resp, nil
}
