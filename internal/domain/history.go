package domain

import "strings"

// HistoryRecord is one row of the merged academic-history table: a completed
// course for a student, denormalized with the student's identity and the
// meeting schedule of the offering. Empty strings and nil pointers stand for
// absent cells.
type HistoryRecord struct {
	StudentName     string
	StudentID       string
	AcademicProgram string
	CumulativeGPA   *float64
	CourseTitle     string
	SubjectCode     string
	Grade           string

	// DayFlags holds the raw cell value of each weekday column present on the row.
	DayFlags     map[Weekday]string
	MeetingStart *string
	MeetingEnd   *string
}

// MeetsOn reports whether the row's flag for d is "Y" after trimming and
// uppercasing.
func (r *HistoryRecord) MeetsOn(d Weekday) bool {
	v, ok := r.DayFlags[d]
	if !ok {
		return false
	}
	return strings.ToUpper(strings.TrimSpace(v)) == "Y"
}

// MeetingDays returns the weekdays the row is flagged for, in calendar order.
func (r *HistoryRecord) MeetingDays() []Weekday {
	var days []Weekday
	for _, d := range Weekdays {
		if r.MeetsOn(d) {
			days = append(days, d)
		}
	}
	return days
}

// HistorySchema describes which optional columns the loaded table carried.
type HistorySchema struct {
	HasGPA bool
}
