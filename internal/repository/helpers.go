package repository

import (
	"database/sql"
	"time"
)

// nullableString maps a stored NULL or blank value to nil.
func nullableString(s sql.NullString) *string {
	if !s.Valid || s.String == "" {
		return nil
	}
	v := s.String
	return &v
}

func nullableFloat(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

// stringPtrToValue converts a *string to a value suitable for SQLite storage.
func stringPtrToValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func floatPtrToValue(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// parseTime parses an RFC3339 column, falling back to the zero time.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
