// ABOUTME: SQLite database schema for memory storage
// ABOUTME: Creates all tables and indexes for users, apps, memories, and categories
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Users table (one implicit default user is created at startup)
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Apps table (named namespaces of memories, owned by one user)
CREATE TABLE IF NOT EXISTS apps (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    user_id TEXT NOT NULL REFERENCES users(id),
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Memories table (content records, research columns nullable)
CREATE TABLE IF NOT EXISTS memories (
    id TEXT PRIMARY KEY,
    content TEXT NOT NULL,
    state TEXT NOT NULL DEFAULT 'active',
    user_id TEXT NOT NULL REFERENCES users(id),
    app_id TEXT NOT NULL REFERENCES apps(id),
    research_topic TEXT,
    memory_type TEXT,
    source_reliability TEXT,
    source_type TEXT,
    loop_number INTEGER,
    metadata TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Categories table (reusable tags, unique by name)
CREATE TABLE IF NOT EXISTS categories (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

-- Memory-category join table, keyed by the pair
CREATE TABLE IF NOT EXISTS memory_categories (
    memory_id TEXT NOT NULL REFERENCES memories(id) ON DELETE CASCADE,
    category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
    PRIMARY KEY (memory_id, category_id)
);

-- Indexes for efficient querying
CREATE INDEX IF NOT EXISTS idx_memories_app ON memories(app_id);
CREATE INDEX IF NOT EXISTS idx_memories_created ON memories(created_at);
CREATE INDEX IF NOT EXISTS idx_memories_topic ON memories(research_topic);
CREATE INDEX IF NOT EXISTS idx_memory_categories_category ON memory_categories(category_id);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
