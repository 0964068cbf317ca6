// Package importer reads the merged academic-history table from CSV or XLSX
// files into domain records.
package importer

import (
	"strings"

	"github.com/alexanderramin/advisor/internal/domain"
)

// Column names of the academic-history table.
const (
	ColName     = "name_display"
	ColID       = "emplid"
	ColProgram  = "acad_prog"
	ColGPA      = "cum_gpa"
	ColTitle    = "course_title_long"
	ColSubject  = "subject_x"
	ColGrade    = "crse_grade_off"
	ColMtgStart = "mtg_start"
	ColMtgEnd   = "mtg_end"
)

// RequiredColumns must all be present in the header row.
var RequiredColumns = []string{ColName, ColID, ColProgram, ColTitle, ColSubject, ColGrade}

// Table is a loaded academic-history table.
type Table struct {
	Records []domain.HistoryRecord
	Schema  domain.HistorySchema
}

// header maps normalized column names to their first position.
type header map[string]int

func newHeader(cells []string) header {
	h := make(header, len(cells))
	for i, c := range cells {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(c, "\ufeff")))
		if name == "" {
			continue
		}
		if _, dup := h[name]; !dup {
			h[name] = i
		}
	}
	return h
}

func (h header) has(col string) bool {
	_, ok := h[col]
	return ok
}

// cell returns the trimmed value of col in row and whether it is present and
// non-blank.
func (h header) cell(row []string, col string) (string, bool) {
	i, ok := h[col]
	if !ok || i >= len(row) {
		return "", false
	}
	v := strings.TrimSpace(row[i])
	return v, v != ""
}
