package database

import (
	"database/sql"
	"time"
)

// Import records one replacement of the stored catalog
type Import struct {
	ID         string    `json:"id"`
	Source     *string   `json:"source,omitempty"`
	WineCount  int       `json:"wine_count"`
	ImportedAt time.Time `json:"imported_at"`
}

// NullString is a helper to convert *string to sql.NullString
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// StringPtr converts sql.NullString to *string
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
