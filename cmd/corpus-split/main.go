// Command corpus-split runs one split job from a YAML job file and prints
// the advisory character-count diagnostics to stdout.
//
// Job file format:
//
//	source: path/to/0974Author.Title.Ed1-ara1
//	outdir: split
//	clean: true
//	works:
//	  - pattern: '\A.*?(?=### \| \[حاشية|\z)'
//	    filename: 0974Author.Title.Ed1BK1-ara1
//	  - pattern: '(### \| \[حاشية الشرواني.+?)(?=### \| \[حاشية|\z)'
//	    filename: 1118Other.Hashiya.Ed1BK2-ara1
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/athar-lab/corpus-mcp/internal/logger"
	"github.com/athar-lab/corpus-mcp/internal/operations"
	"github.com/athar-lab/corpus-mcp/internal/storage"
	"github.com/athar-lab/corpus-mcp/models"
)

func main() {
	jobPath := flag.String("job", "", "path to the YAML job file (required)")
	noStore := flag.Bool("no-store", false, "do not record the run in the run-history database")
	flag.Parse()

	if *jobPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	log, err := logger.NewLogger(logger.LogConfig{})
	if err != nil {
		panic(err)
	}

	job, err := loadJob(*jobPath)
	if err != nil {
		log.Fatal("Failed to load job file: %v", err)
	}

	var store storage.Store
	if !*noStore {
		store, err = openStore(log)
		if err != nil {
			log.Fatal("Failed to open run-history database: %v", err)
		}
		defer store.Close()
	}

	runID, _, err := operations.RunSplit(context.Background(), job, store, log, os.Stdout)
	if err != nil {
		log.Fatal("Split failed: %v", err)
	}
	if runID != "" {
		fmt.Println("recorded run:", runID)
	}
}

func loadJob(path string) (models.SplitJob, error) {
	var job models.SplitJob
	data, err := os.ReadFile(path)
	if err != nil {
		return job, err
	}
	if err := yaml.Unmarshal(data, &job); err != nil {
		return job, fmt.Errorf("parse %s: %w", path, err)
	}
	return job, nil
}

func openStore(log logger.Logger) (storage.Store, error) {
	dbPath := os.Getenv("CORPUS_MCP_DB_PATH")
	if dbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dbDir := filepath.Join(homeDir, ".corpus-mcp")
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, err
		}
		dbPath = filepath.Join(dbDir, "corpus.db")
	}
	return storage.NewSQLiteStore(dbPath, log)
}
