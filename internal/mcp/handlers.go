// ABOUTME: MCP tool handler implementations for the memkeeper server
// ABOUTME: Each handler validates arguments, performs the database calls, and returns JSON text
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/keeperhq/memkeeper/internal/metrics"
	"github.com/keeperhq/memkeeper/internal/models"
	"github.com/keeperhq/memkeeper/internal/storage"
	"github.com/keeperhq/memkeeper/internal/storage/sqlite"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	storage      *storage.Storage
	collector    metrics.Collector
	defaultLimit int
}

// AddMemory handles the add_memory tool
func (h *Handlers) AddMemory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	content, err := request.RequireString("content")
	if err != nil {
		return h.errorResult("add_memory", start, fmt.Errorf("content argument is required and must be a string")), nil
	}
	appName, err := request.RequireString("app_name")
	if err != nil {
		return h.errorResult("add_memory", start, fmt.Errorf("app_name argument is required and must be a string")), nil
	}

	memory, err := h.storage.CreateMemory(storage.CreateMemoryInput{
		Content:    content,
		AppName:    appName,
		Categories: stringArrayArg(request, "categories"),
	})
	if err != nil {
		return h.errorResult("add_memory", start, fmt.Errorf("failed to create memory: %w", err)), nil
	}

	return h.jsonResult("add_memory", start, map[string]interface{}{
		"memory_id": memory.ID,
		"app_name":  memory.AppName,
	})
}

// ListMemories handles the list_memories tool
func (h *Handlers) ListMemories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	filter := sqlite.MemoryFilter{
		AppName:  request.GetString("app_name", ""),
		Category: request.GetString("category", ""),
		Limit:    request.GetInt("limit", h.defaultLimit),
	}

	memories, err := h.storage.ListMemories(filter)
	if err != nil {
		return h.errorResult("list_memories", start, fmt.Errorf("failed to list memories: %w", err)), nil
	}

	return h.jsonResult("list_memories", start, map[string]interface{}{
		"count":    len(memories),
		"memories": memoriesOrEmpty(memories),
	})
}

// AddResearchMemory handles the add_research_memory tool
func (h *Handlers) AddResearchMemory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	content, err := request.RequireString("content")
	if err != nil {
		return h.errorResult("add_research_memory", start, fmt.Errorf("content argument is required and must be a string")), nil
	}
	topic, err := request.RequireString("research_topic")
	if err != nil {
		return h.errorResult("add_research_memory", start, fmt.Errorf("research_topic argument is required and must be a string")), nil
	}
	memoryType, err := request.RequireString("memory_type")
	if err != nil {
		return h.errorResult("add_research_memory", start, fmt.Errorf("memory_type argument is required and must be a string")), nil
	}

	input := storage.CreateMemoryInput{
		Content:           content,
		AppName:           request.GetString("app_name", ""),
		Categories:        stringArrayArg(request, "categories"),
		ResearchTopic:     topic,
		MemoryType:        memoryType,
		SourceReliability: request.GetString("source_reliability", ""),
		SourceType:        request.GetString("source_type", ""),
		Metadata:          request.GetString("metadata", ""),
	}
	if loop := request.GetInt("loop_number", -1); loop >= 0 {
		input.LoopNumber = &loop
	}

	memory, err := h.storage.CreateResearchMemory(input)
	if err != nil {
		return h.errorResult("add_research_memory", start, fmt.Errorf("failed to create research memory: %w", err)), nil
	}

	return h.jsonResult("add_research_memory", start, map[string]interface{}{
		"memory_id":      memory.ID,
		"app_name":       memory.AppName,
		"research_topic": memory.ResearchTopic,
	})
}

// ListResearchMemories handles the list_research_memories tool
func (h *Handlers) ListResearchMemories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	filter := sqlite.MemoryFilter{
		Topic:      request.GetString("research_topic", ""),
		MemoryType: request.GetString("memory_type", ""),
		SourceType: request.GetString("source_type", ""),
		Limit:      request.GetInt("limit", h.defaultLimit),
	}

	memories, err := h.storage.ListResearchMemories(filter)
	if err != nil {
		return h.errorResult("list_research_memories", start, fmt.Errorf("failed to list research memories: %w", err)), nil
	}

	return h.jsonResult("list_research_memories", start, map[string]interface{}{
		"count":    len(memories),
		"memories": memoriesOrEmpty(memories),
	})
}

// jsonResult marshals the response and records a success metric
func (h *Handlers) jsonResult(tool string, start time.Time, response map[string]interface{}) (*mcp.CallToolResult, error) {
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return h.errorResult(tool, start, fmt.Errorf("failed to marshal response: %w", err)), nil
	}

	h.collector.RecordToolCall(tool, "success", time.Since(start).Milliseconds())
	if count, err := h.storage.MemoryCount(); err == nil {
		h.collector.SetMemoryCount(count)
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// errorResult turns a per-operation failure into a textual error response.
// The envelope is always well-formed; failures never propagate as protocol
// errors.
func (h *Handlers) errorResult(tool string, start time.Time, err error) *mcp.CallToolResult {
	h.collector.RecordToolCall(tool, "error", time.Since(start).Milliseconds())
	h.collector.RecordError(tool, storage.ClassifyError(err))
	return mcp.NewToolResultError(err.Error())
}

// memoriesOrEmpty keeps the JSON field an array rather than null
func memoriesOrEmpty(memories []models.Memory) []models.Memory {
	if memories == nil {
		return []models.Memory{}
	}
	return memories
}

// stringArrayArg extracts an optional string array argument
func stringArrayArg(request mcp.CallToolRequest, key string) []string {
	args, ok := request.Params.Arguments.(map[string]any)
	if !ok {
		return nil
	}
	raw, exists := args[key]
	if !exists {
		return nil
	}
	arr, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	result := make([]string, 0, len(arr))
	for _, item := range arr {
		if str, ok := item.(string); ok {
			result = append(result, str)
		}
	}
	return result
}
