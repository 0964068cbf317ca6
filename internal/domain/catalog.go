package domain

import "strings"

// CatalogEntry is one elective course offered to students.
type CatalogEntry struct {
	Title  string `json:"title" yaml:"title" validate:"required"`
	Module string `json:"module" yaml:"module" validate:"required"`
}

// Key returns the normalized comparison key of the entry's title.
func (e CatalogEntry) Key() string {
	return NormalizeKey(e.Title)
}

// InModule reports whether the module label contains sub, ignoring case.
func (e CatalogEntry) InModule(sub string) bool {
	return strings.Contains(strings.ToLower(e.Module), strings.ToLower(sub))
}

// NormalizeKey is the comparison form used for names and course titles:
// surrounding whitespace trimmed, lowercased.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
