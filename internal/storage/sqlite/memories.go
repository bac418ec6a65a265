// ABOUTME: Memory storage operations for SQLite
// ABOUTME: Parameterized inserts and filtered, paginated list queries
package sqlite

import (
	"database/sql"
	"time"

	"github.com/keeperhq/memkeeper/internal/models"
)

// DefaultListLimit caps result sets when the caller gives no limit
const DefaultListLimit = 10

// MemoryFilter narrows a list query. Zero values mean "no filter";
// Limit <= 0 falls back to DefaultListLimit.
type MemoryFilter struct {
	AppName      string
	Category     string
	Topic        string // substring match on research_topic
	MemoryType   string // exact match
	SourceType   string // exact match
	ResearchOnly bool
	Limit        int
}

// MemoryStore handles memory persistence
type MemoryStore struct {
	db *DB
}

// NewMemoryStore creates a new MemoryStore
func NewMemoryStore(db *DB) *MemoryStore {
	return &MemoryStore{db: db}
}

// Insert stores a memory row. Timestamps default to now when unset.
func (s *MemoryStore) Insert(m *models.Memory) error {
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}
	if m.State == "" {
		m.State = models.StateActive
	}

	_, err := s.db.Exec(`
		INSERT INTO memories (
			id, content, state, user_id, app_id,
			research_topic, memory_type, source_reliability, source_type,
			loop_number, metadata, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Content, m.State, m.UserID, m.AppID,
		nullString(m.ResearchTopic), nullString(m.MemoryType),
		nullString(m.SourceReliability), nullString(m.SourceType),
		nullInt(m.LoopNumber), nullString(m.Metadata),
		m.CreatedAt, m.UpdatedAt)

	return err
}

// List returns memories matching the filter, newest first, capped by the
// limit. Category names are included eagerly on each row.
func (s *MemoryStore) List(filter MemoryFilter) ([]models.Memory, error) {
	query := `
		SELECT m.id, m.content, m.state, m.user_id, m.app_id, a.name,
		       m.research_topic, m.memory_type, m.source_reliability, m.source_type,
		       m.loop_number, m.metadata, m.created_at, m.updated_at
		FROM memories m
		JOIN apps a ON a.id = m.app_id
		WHERE 1=1`
	var args []interface{}

	if filter.AppName != "" {
		query += " AND a.name = ?"
		args = append(args, filter.AppName)
	}
	if filter.Category != "" {
		query += ` AND m.id IN (
			SELECT mc.memory_id
			FROM memory_categories mc
			JOIN categories c ON c.id = mc.category_id
			WHERE c.name = ?)`
		args = append(args, filter.Category)
	}
	if filter.ResearchOnly {
		query += " AND m.research_topic IS NOT NULL"
	}
	if filter.Topic != "" {
		query += " AND m.research_topic LIKE ?"
		args = append(args, "%"+filter.Topic+"%")
	}
	if filter.MemoryType != "" {
		query += " AND m.memory_type = ?"
		args = append(args, filter.MemoryType)
	}
	if filter.SourceType != "" {
		query += " AND m.source_type = ?"
		args = append(args, filter.SourceType)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	query += " ORDER BY m.created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	memories, err := s.scanMemories(rows)
	if err != nil {
		return nil, err
	}

	// Eager include of joined category names
	categories := NewCategoryStore(s.db)
	for i := range memories {
		names, err := categories.NamesForMemory(memories[i].ID)
		if err != nil {
			return nil, err
		}
		memories[i].Categories = names
	}

	return memories, nil
}

// GetByID retrieves a memory by its ID
func (s *MemoryStore) GetByID(id string) (*models.Memory, error) {
	rows, err := s.db.Query(`
		SELECT m.id, m.content, m.state, m.user_id, m.app_id, a.name,
		       m.research_topic, m.memory_type, m.source_reliability, m.source_type,
		       m.loop_number, m.metadata, m.created_at, m.updated_at
		FROM memories m
		JOIN apps a ON a.id = m.app_id
		WHERE m.id = ?
	`, id)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	memories, err := s.scanMemories(rows)
	if err != nil {
		return nil, err
	}
	if len(memories) == 0 {
		return nil, nil
	}

	return &memories[0], nil
}

// Count returns the number of memory rows
func (s *MemoryStore) Count() (int64, error) {
	var n int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM memories").Scan(&n)
	return n, err
}

// scanMemories scans rows into a slice of Memory
func (s *MemoryStore) scanMemories(rows *sql.Rows) ([]models.Memory, error) {
	var memories []models.Memory

	for rows.Next() {
		var (
			m           models.Memory
			topic       sql.NullString
			memType     sql.NullString
			reliability sql.NullString
			sourceType  sql.NullString
			loopNumber  sql.NullInt64
			metadata    sql.NullString
		)

		err := rows.Scan(&m.ID, &m.Content, &m.State, &m.UserID, &m.AppID, &m.AppName,
			&topic, &memType, &reliability, &sourceType,
			&loopNumber, &metadata, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, err
		}

		if topic.Valid {
			m.ResearchTopic = topic.String
		}
		if memType.Valid {
			m.MemoryType = memType.String
		}
		if reliability.Valid {
			m.SourceReliability = reliability.String
		}
		if sourceType.Valid {
			m.SourceType = sourceType.String
		}
		if loopNumber.Valid {
			n := int(loopNumber.Int64)
			m.LoopNumber = &n
		}
		if metadata.Valid {
			m.Metadata = metadata.String
		}

		memories = append(memories, m)
	}

	return memories, rows.Err()
}

// nullString converts an empty string to sql.NullString
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

// nullInt converts a nil pointer to sql.NullInt64
func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}
