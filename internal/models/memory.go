// ABOUTME: Memory record type and research attribute enums
// ABOUTME: Stored in SQLite, serialized as JSON in tool responses
package models

import (
	"fmt"
	"time"
)

// StateActive is the lifecycle state memories are created with.
// The field is stored but no operation reads or filters on it.
const StateActive = "active"

// MemoryType classifies a research memory
type MemoryType string

const (
	MemoryTypeFinding    MemoryType = "finding"
	MemoryTypeHypothesis MemoryType = "hypothesis"
	MemoryTypeQuestion   MemoryType = "question"
	MemoryTypeInsight    MemoryType = "insight"
)

// Valid reports whether the memory type is one of the known values
func (t MemoryType) Valid() bool {
	switch t {
	case MemoryTypeFinding, MemoryTypeHypothesis, MemoryTypeQuestion, MemoryTypeInsight:
		return true
	}
	return false
}

// SourceReliability grades how trustworthy a research source is
type SourceReliability string

const (
	ReliabilityHigh   SourceReliability = "high"
	ReliabilityMedium SourceReliability = "medium"
	ReliabilityLow    SourceReliability = "low"
)

// Valid reports whether the reliability is one of the known values
func (r SourceReliability) Valid() bool {
	switch r {
	case ReliabilityHigh, ReliabilityMedium, ReliabilityLow:
		return true
	}
	return false
}

// SourceType classifies where a research memory came from
type SourceType string

const (
	SourceWeb           SourceType = "web"
	SourceAcademic      SourceType = "academic"
	SourceDocumentation SourceType = "documentation"
	SourceConversation  SourceType = "conversation"
)

// Valid reports whether the source type is one of the known values
func (s SourceType) Valid() bool {
	switch s {
	case SourceWeb, SourceAcademic, SourceDocumentation, SourceConversation:
		return true
	}
	return false
}

// Memory is a single stored content record. The research fields are empty
// for plain memories and populated for research memories.
type Memory struct {
	ID                string    `json:"id"`
	Content           string    `json:"content"`
	State             string    `json:"state"`
	UserID            string    `json:"user_id"`
	AppID             string    `json:"app_id"`
	AppName           string    `json:"app_name,omitempty"`
	Categories        []string  `json:"categories,omitempty"`
	ResearchTopic     string    `json:"research_topic,omitempty"`
	MemoryType        string    `json:"memory_type,omitempty"`
	SourceReliability string    `json:"source_reliability,omitempty"`
	SourceType        string    `json:"source_type,omitempty"`
	LoopNumber        *int      `json:"loop_number,omitempty"`
	Metadata          string    `json:"metadata,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ValidateResearch checks the research attribute enums on a memory.
// MemoryType is required for research memories; reliability and source
// type are optional but must be known values when present.
func (m *Memory) ValidateResearch() error {
	if !MemoryType(m.MemoryType).Valid() {
		return fmt.Errorf("memory_type must be one of finding, hypothesis, question, insight; got %q", m.MemoryType)
	}
	if m.SourceReliability != "" && !SourceReliability(m.SourceReliability).Valid() {
		return fmt.Errorf("source_reliability must be one of high, medium, low; got %q", m.SourceReliability)
	}
	if m.SourceType != "" && !SourceType(m.SourceType).Valid() {
		return fmt.Errorf("source_type must be one of web, academic, documentation, conversation; got %q", m.SourceType)
	}
	return nil
}
