package main

import (
	"context"

	"github.com/athar-lab/corpus-mcp/internal/logger"
	"github.com/athar-lab/corpus-mcp/server"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	// Initialize logger with default configuration
	log, err := logger.NewLogger(logger.LogConfig{})
	if err != nil {
		panic(err)
	}

	log.Info("Starting corpus-mcp server")

	srv := server.CreateServer(log)
	err = srv.Run(context.Background(), &mcp.StdioTransport{})
	if err != nil {
		log.Fatal("Server failed: %v", err)
	}
}
