package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/athar-lab/corpus-mcp/internal/logger"
	"github.com/athar-lab/corpus-mcp/internal/storage"
	"github.com/athar-lab/corpus-mcp/resources"
	"github.com/athar-lab/corpus-mcp/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func CreateServer(log logger.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "corpus-mcp", Version: "v0.1.0"}, nil)

	store, err := initializeStorage(log)
	if err != nil {
		log.Fatal("Failed to initialize storage: %v", err)
	}

	runResourceHandler := resources.NewRunResourceHandler(store)

	// Register tools with storage and logger dependencies
	mcp.AddTool(server, tools.SplitMultitextTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.SplitMultitextQuery) (*mcp.CallToolResult, *tools.SplitMultitextResponse, error) {
		return tools.SplitMultitextToolHandler(ctx, req, query, store, log)
	})

	mcp.AddTool(server, tools.CountCharsTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.CountCharsQuery) (*mcp.CallToolResult, *tools.CountCharsResponse, error) {
		return tools.CountCharsToolHandler(ctx, req, query, log)
	})

	mcp.AddTool(server, tools.CleanTextTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.CleanTextQuery) (*mcp.CallToolResult, *tools.CleanTextResponse, error) {
		return tools.CleanTextToolHandler(ctx, req, query, log)
	})

	mcp.AddTool(server, tools.ListRunsTool(), func(ctx context.Context, req *mcp.CallToolRequest, query tools.ListRunsQuery) (*mcp.CallToolResult, *tools.ListRunsResponse, error) {
		return tools.ListRunsToolHandler(ctx, req, query, store, log)
	})

	// Template for a recorded run
	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "run://{runID}",
		Name:        "split-run",
		Description: "Recorded split run with page and character counts",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return runResourceHandler.ReadResource(ctx, req.Params.URI)
	})

	// Template for a run's per-work reports
	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "run://{runID}/works",
		Name:        "split-run-works",
		Description: "Output files of a split run with fragment and character counts",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return runResourceHandler.ReadResource(ctx, req.Params.URI)
	})

	return server
}

// initializeStorage creates and initializes the storage backend
func initializeStorage(log logger.Logger) (storage.Store, error) {
	dbPath := os.Getenv("CORPUS_MCP_DB_PATH")
	if dbPath == "" {
		// Default to ~/.corpus-mcp/corpus.db
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		dbDir := filepath.Join(homeDir, ".corpus-mcp")
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dbPath = filepath.Join(dbDir, "corpus.db")
	}

	log.Info("Initializing SQLite database at: %s", dbPath)

	store, err := storage.NewSQLiteStore(dbPath, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQLite store: %w", err)
	}

	return store, nil
}
