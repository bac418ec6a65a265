// ABOUTME: MCP tool definitions and registration for the memkeeper server
// ABOUTME: Defines JSON schemas for the four memory tools
package mcp

import (
	"github.com/keeperhq/memkeeper/internal/metrics"
	"github.com/keeperhq/memkeeper/internal/storage"
	"github.com/keeperhq/memkeeper/internal/storage/sqlite"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, store *storage.Storage, collector metrics.Collector, defaultLimit int) *Handlers {
	if collector == nil {
		collector = metrics.NewNoopCollector()
	}
	if defaultLimit <= 0 {
		defaultLimit = sqlite.DefaultListLimit
	}

	handlers := &Handlers{
		storage:      store,
		collector:    collector,
		defaultLimit: defaultLimit,
	}

	// 1. add_memory - store a memory under an app namespace
	server.AddTool(mcp.Tool{
		Name:        "add_memory",
		Description: "Store a memory. Creates the app namespace on first use and links the memory to it.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"content": map[string]interface{}{
					"type":        "string",
					"description": "Free-text content to remember",
				},
				"app_name": map[string]interface{}{
					"type":        "string",
					"description": "App or agent name the memory belongs to (normalized to lowercase with underscores)",
				},
				"categories": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Optional category tags to attach",
				},
			},
			Required: []string{"content", "app_name"},
		},
	}, handlers.AddMemory)

	// 2. list_memories - filtered, paginated retrieval
	server.AddTool(mcp.Tool{
		Name:        "list_memories",
		Description: "List stored memories, newest first, optionally filtered by app or category.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"app_name": map[string]interface{}{
					"type":        "string",
					"description": "Only return memories under this app",
				},
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Only return memories tagged with this category",
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of results to return (default: 10)",
					"default":     10,
				},
			},
		},
	}, handlers.ListMemories)

	// 3. add_research_memory - memory with typed research attributes
	server.AddTool(mcp.Tool{
		Name:        "add_research_memory",
		Description: "Store a research memory with topic and typed attributes. Defaults to the deep_research app when no app name is given.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"content": map[string]interface{}{
					"type":        "string",
					"description": "Free-text content to remember",
				},
				"research_topic": map[string]interface{}{
					"type":        "string",
					"description": "Research topic this memory belongs to",
				},
				"memory_type": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"finding", "hypothesis", "question", "insight"},
					"description": "Kind of research memory",
				},
				"source_reliability": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"high", "medium", "low"},
					"description": "Optional reliability grade of the source",
				},
				"source_type": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"web", "academic", "documentation", "conversation"},
					"description": "Optional kind of source",
				},
				"loop_number": map[string]interface{}{
					"type":        "number",
					"description": "Optional research loop counter",
				},
				"metadata": map[string]interface{}{
					"type":        "string",
					"description": "Optional free-form metadata string",
				},
				"categories": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Optional category tags to attach",
				},
				"app_name": map[string]interface{}{
					"type":        "string",
					"description": "App name override (default: deep_research)",
				},
			},
			Required: []string{"content", "research_topic", "memory_type"},
		},
	}, handlers.AddResearchMemory)

	// 4. list_research_memories - filtered retrieval over research attributes
	server.AddTool(mcp.Tool{
		Name:        "list_research_memories",
		Description: "List research memories, newest first, filtered by partial topic match and exact type/source filters.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"research_topic": map[string]interface{}{
					"type":        "string",
					"description": "Substring to match against research topics",
				},
				"memory_type": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"finding", "hypothesis", "question", "insight"},
					"description": "Only return memories of this kind",
				},
				"source_type": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"web", "academic", "documentation", "conversation"},
					"description": "Only return memories from this source kind",
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of results to return (default: 10)",
					"default":     10,
				},
			},
		},
	}, handlers.ListResearchMemories)

	return handlers
}
