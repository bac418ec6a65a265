// ABOUTME: Storage facade for the memkeeper persistence service
// ABOUTME: Owns the database, the default user, and the per-entity stores
package storage

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/keeperhq/memkeeper/internal/models"
	"github.com/keeperhq/memkeeper/internal/storage/sqlite"
)

// CreateMemoryInput carries the arguments for a memory insert. AppName is
// raw; normalization happens here so every entry point shares one rule.
type CreateMemoryInput struct {
	Content           string
	AppName           string
	Categories        []string
	ResearchTopic     string
	MemoryType        string
	SourceReliability string
	SourceType        string
	LoopNumber        *int
	Metadata          string
}

// Storage manages all persistent data for memkeeper
type Storage struct {
	db          *sqlite.DB
	users       *sqlite.UserStore
	apps        *sqlite.AppStore
	categories  *sqlite.CategoryStore
	memories    *sqlite.MemoryStore
	defaultUser *models.User
}

// Open opens the database at path and prepares the storage facade. The
// default user row is ensured here, before any tool call can arrive.
func Open(path string) (*Storage, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}
	return New(db)
}

// New builds a Storage over an already-open database (used by tests with
// in-memory databases)
func New(db *sqlite.DB) (*Storage, error) {
	s := &Storage{
		db:         db,
		users:      sqlite.NewUserStore(db),
		apps:       sqlite.NewAppStore(db),
		categories: sqlite.NewCategoryStore(db),
		memories:   sqlite.NewMemoryStore(db),
	}

	user, err := s.users.GetOrCreate(models.DefaultUserName)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure default user: %w", err)
	}
	s.defaultUser = user

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// DB returns the underlying database handle
func (s *Storage) DB() *sqlite.DB {
	return s.db
}

// DefaultUser returns the implicit user every memory belongs to
func (s *Storage) DefaultUser() *models.User {
	return s.defaultUser
}

// CreateMemory upserts the app by normalized name, inserts a memory under it
// and the default user, and attaches any categories. Returns the stored record.
func (s *Storage) CreateMemory(input CreateMemoryInput) (*models.Memory, error) {
	if input.Content == "" {
		return nil, fmt.Errorf("content must not be empty")
	}
	appName := models.NormalizeAppName(input.AppName)
	if appName == "" {
		return nil, fmt.Errorf("app name must not be empty")
	}

	app, err := s.apps.GetOrCreate(appName, s.defaultUser.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert app %q: %w", appName, err)
	}

	memory := &models.Memory{
		ID:                uuid.New().String(),
		Content:           input.Content,
		State:             models.StateActive,
		UserID:            s.defaultUser.ID,
		AppID:             app.ID,
		AppName:           app.Name,
		ResearchTopic:     input.ResearchTopic,
		MemoryType:        input.MemoryType,
		SourceReliability: input.SourceReliability,
		SourceType:        input.SourceType,
		LoopNumber:        input.LoopNumber,
		Metadata:          input.Metadata,
	}

	if err := s.memories.Insert(memory); err != nil {
		return nil, fmt.Errorf("failed to insert memory: %w", err)
	}

	for _, name := range input.Categories {
		cat, err := s.categories.GetOrCreate(name)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert category %q: %w", name, err)
		}
		if err := s.categories.Attach(memory.ID, cat.ID); err != nil {
			return nil, fmt.Errorf("failed to attach category %q: %w", name, err)
		}
		memory.Categories = append(memory.Categories, cat.Name)
	}

	return memory, nil
}

// CreateResearchMemory validates the research enums, defaults the app to the
// fixed research identifier, and stores the memory
func (s *Storage) CreateResearchMemory(input CreateMemoryInput) (*models.Memory, error) {
	if input.ResearchTopic == "" {
		return nil, fmt.Errorf("research_topic must not be empty")
	}
	if input.AppName == "" {
		input.AppName = models.DefaultResearchApp
	}

	probe := &models.Memory{
		MemoryType:        input.MemoryType,
		SourceReliability: input.SourceReliability,
		SourceType:        input.SourceType,
	}
	if err := probe.ValidateResearch(); err != nil {
		return nil, err
	}

	return s.CreateMemory(input)
}

// ListMemories returns memories matching the filter, newest first
func (s *Storage) ListMemories(filter sqlite.MemoryFilter) ([]models.Memory, error) {
	if filter.AppName != "" {
		filter.AppName = models.NormalizeAppName(filter.AppName)
	}
	return s.memories.List(filter)
}

// ListResearchMemories narrows the list to rows with a research topic
func (s *Storage) ListResearchMemories(filter sqlite.MemoryFilter) ([]models.Memory, error) {
	filter.ResearchOnly = true
	return s.ListMemories(filter)
}

// MemoryCount returns the total number of stored memories
func (s *Storage) MemoryCount() (int64, error) {
	return s.memories.Count()
}
