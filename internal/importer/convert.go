package importer

import (
	"strconv"

	"github.com/alexanderramin/advisor/internal/domain"
)

// Convert turns raw rows into a Table. The first row is the header; rows
// with no non-blank cell are skipped. Call sites validate the header first.
func Convert(h header, rows [][]string) *Table {
	t := &Table{
		Records: make([]domain.HistoryRecord, 0, len(rows)),
		Schema:  domain.HistorySchema{HasGPA: h.has(ColGPA)},
	}
	for _, row := range rows {
		if blankRow(row) {
			continue
		}
		t.Records = append(t.Records, convertRow(h, row))
	}
	return t
}

func convertRow(h header, row []string) domain.HistoryRecord {
	str := func(col string) string {
		v, _ := h.cell(row, col)
		return v
	}
	ptr := func(col string) *string {
		if v, ok := h.cell(row, col); ok {
			return &v
		}
		return nil
	}

	rec := domain.HistoryRecord{
		StudentName:     str(ColName),
		StudentID:       str(ColID),
		AcademicProgram: str(ColProgram),
		CourseTitle:     str(ColTitle),
		SubjectCode:     str(ColSubject),
		Grade:           str(ColGrade),
		MeetingStart:    ptr(ColMtgStart),
		MeetingEnd:      ptr(ColMtgEnd),
	}

	if v, ok := h.cell(row, ColGPA); ok {
		if gpa, err := strconv.ParseFloat(v, 64); err == nil {
			rec.CumulativeGPA = &gpa
		}
	}

	for _, d := range domain.Weekdays {
		if v, ok := h.cell(row, string(d)); ok {
			if rec.DayFlags == nil {
				rec.DayFlags = make(map[domain.Weekday]string)
			}
			rec.DayFlags[d] = v
		}
	}
	return rec
}

func blankRow(row []string) bool {
	for _, c := range row {
		for _, r := range c {
			if r != ' ' && r != '\t' && r != '\r' && r != '\n' {
				return false
			}
		}
	}
	return true
}
