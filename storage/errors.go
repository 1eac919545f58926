package storage

import "strings"

// IsUniqueViolation reports whether err comes from a unique constraint, e.g.
// a duplicate article slug or username. Matches the Postgres and sqlite
// driver messages; GORM exposes no portable sentinel for this.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint")
}
