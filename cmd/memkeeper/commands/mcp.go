// ABOUTME: MCP command starts the Model Context Protocol server
// ABOUTME: Enables LLM agents like Claude to use memkeeper via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/joho/godotenv"
	"github.com/keeperhq/memkeeper/internal/config"
	"github.com/keeperhq/memkeeper/internal/mcp"
	"github.com/keeperhq/memkeeper/internal/metrics"
	"github.com/keeperhq/memkeeper/internal/storage"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs memkeeper as an MCP (Model Context Protocol) server, exposing the
add_memory, list_memories, add_research_memory, and list_research_memories
tools over stdio.

Configure in Claude Desktop's config file to enable memory tools.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by Claude Desktop)
  memkeeper mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "memkeeper": {
  #       "command": "memkeeper",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load(dbPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open blocks until the schema is applied, so no tool call can race it
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	var collector metrics.Collector = metrics.NewNoopCollector()
	if cfg.MetricsAddr != "" {
		prom := metrics.NewPrometheusCollector()
		collector = prom
		go func() {
			if !quiet {
				log.Printf("Metrics listening on %s", cfg.MetricsAddr)
			}
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

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Printf("memkeeper MCP server starting on stdio (db: %s)...", cfg.DBPath)
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	// Wait for shutdown signal or server error
	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, gracefully shutting down...")
		}

		if err := store.Close(); err != nil {
			log.Printf("Warning: Error closing storage: %v", err)
		}

		if !quiet {
			log.Println("Shutdown complete")
		}

	case err := <-serverErr:
		_ = store.Close()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
