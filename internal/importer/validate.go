package importer

import (
	"fmt"
	"strings"
)

// SchemaError reports required columns missing from a history table.
type SchemaError struct {
	Source  string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required columns: %s", e.Source, strings.Join(e.Missing, ", "))
}

// ValidateHeader returns a *SchemaError naming every required column absent
// from h, or nil.
func ValidateHeader(source string, h header) error {
	var missing []string
	for _, col := range RequiredColumns {
		if !h.has(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Source: source, Missing: missing}
	}
	return nil
}
