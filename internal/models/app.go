// ABOUTME: User, App, and Category identity types
// ABOUTME: Includes the app-name normalization rule shared by storage and handlers
package models

import (
	"regexp"
	"strings"
	"time"
)

// DefaultUserName is the single implicit user every memory belongs to
const DefaultUserName = "default-user"

// DefaultResearchApp is the app research memories fall under when no
// app name is given.
const DefaultResearchApp = "deep_research"

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeAppName lowercases a raw app/agent name and replaces each
// whitespace run with a single underscore. "My App" and "my_app"
// normalize to the same identity.
func NormalizeAppName(name string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
}

// User owns apps and memories
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// App is a named namespace of memories owned by one user
type App struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Category is a reusable tag attachable to memories
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
