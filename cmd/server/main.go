// ABOUTME: Main entry point for the memkeeper MCP server with stdio transport
// ABOUTME: Initializes storage and the MCP server with all four tools
package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/keeperhq/memkeeper/internal/config"
	"github.com/keeperhq/memkeeper/internal/mcp"
	"github.com/keeperhq/memkeeper/internal/metrics"
	"github.com/keeperhq/memkeeper/internal/storage"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Schema is applied inside Open, before the transport starts
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer func() { _ = store.Close() }()

	var collector metrics.Collector = metrics.NewNoopCollector()
	if cfg.MetricsAddr != "" {
		prom := metrics.NewPrometheusCollector()
		collector = prom
		go func() {
			log.Printf("Metrics listening on %s", cfg.MetricsAddr)
			if err := http.ListenAndServe(cfg.MetricsAddr, prom.Handler()); err != nil {
				log.Printf("Metrics listener error: %v", err)
			}
		}()
	}

	server := mcpserver.NewMCPServer(
		"memkeeper",
		"0.1.0",
	)

	mcp.RegisterTools(server, store, collector, cfg.DefaultLimit)

	log.Printf("memkeeper MCP server starting on stdio (db: %s)...", cfg.DBPath)
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
