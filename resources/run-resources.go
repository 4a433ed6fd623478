package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/athar-lab/corpus-mcp/internal/storage"
)

// RunResourceHandler handles resource requests for recorded split runs
type RunResourceHandler struct {
	store storage.Store
}

// NewRunResourceHandler creates a new run resource handler
func NewRunResourceHandler(store storage.Store) *RunResourceHandler {
	return &RunResourceHandler{store: store}
}

// ListResources returns a list of available resources
func (h *RunResourceHandler) ListResources(ctx context.Context) ([]mcp.Resource, error) {
	runs, err := h.store.ListRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	var resources []mcp.Resource
	for _, run := range runs {
		resources = append(resources, mcp.Resource{
			URI:         fmt.Sprintf("run://%s", run.RunID),
			Name:        fmt.Sprintf("%s (Split run)", run.Source),
			Description: fmt.Sprintf("Split run of %s into %s", run.Source, run.OutDir),
			MIMEType:    "application/json",
		})
		resources = append(resources, mcp.Resource{
			URI:         fmt.Sprintf("run://%s/works", run.RunID),
			Name:        fmt.Sprintf("%s (Works)", run.Source),
			Description: "Per-work output files with fragment and character counts",
			MIMEType:    "application/json",
		})
	}

	return resources, nil
}

// ReadResource reads a specific resource by URI
func (h *RunResourceHandler) ReadResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error) {
	// Parse URI: run://run_id/optional_resource_type
	if !strings.HasPrefix(uri, "run://") {
		return nil, fmt.Errorf("invalid URI scheme, expected run://")
	}

	path := strings.TrimPrefix(uri, "run://")
	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] == "" {
		return nil, fmt.Errorf("invalid URI, missing run ID")
	}

	runID := parts[0]
	resourceType := ""
	if len(parts) > 1 {
		resourceType = parts[1]
	}

	var content string
	var err error
	switch resourceType {
	case "":
		content, err = h.getRunSummary(ctx, runID)
	case "works":
		content, err = h.getWorks(ctx, runID)
	default:
		return nil, fmt.Errorf("unknown resource type: %s", resourceType)
	}
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     content,
			},
		},
	}, nil
}

func (h *RunResourceHandler) getRunSummary(ctx context.Context, runID string) (string, error) {
	info, err := h.store.GetRun(ctx, runID)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal run info: %w", err)
	}
	return string(data), nil
}

func (h *RunResourceHandler) getWorks(ctx context.Context, runID string) (string, error) {
	works, err := h.store.GetWorks(ctx, runID)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(works, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal works: %w", err)
	}
	return string(data), nil
}
