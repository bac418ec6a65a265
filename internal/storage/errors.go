// ABOUTME: Coarse error classification for metric labels
// ABOUTME: Groups failures into validation, constraint, and database buckets
package storage

import "strings"

// Error type constants for classification
const (
	ErrTypeValidation = "validation"
	ErrTypeConstraint = "constraint"
	ErrTypeDatabase   = "database"
	ErrTypeUnknown    = "unknown"
)

// ClassifyError inspects an error and returns its type classification.
// Used to label error metrics; it never changes handling behavior.
func ClassifyError(err error) string {
	if err == nil {
		return ""
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "must not be empty"),
		strings.Contains(msg, "must be one of"):
		return ErrTypeValidation
	case strings.Contains(msg, "unique constraint"),
		strings.Contains(msg, "foreign key constraint"),
		strings.Contains(msg, "constraint failed"):
		return ErrTypeConstraint
	case strings.Contains(msg, "sql"),
		strings.Contains(msg, "database"),
		strings.Contains(msg, "no such table"):
		return ErrTypeDatabase
	}

	return ErrTypeUnknown
}
