package testutil

import (
	"github.com/alexanderramin/advisor/internal/domain"
)

// RecordOption customizes a history row built by NewTestRecord.
type RecordOption func(*domain.HistoryRecord)

func WithStudentID(id string) RecordOption {
	return func(r *domain.HistoryRecord) {
		r.StudentID = id
	}
}

func WithProgram(program string) RecordOption {
	return func(r *domain.HistoryRecord) {
		r.AcademicProgram = program
	}
}

func WithGPA(gpa float64) RecordOption {
	return func(r *domain.HistoryRecord) {
		r.CumulativeGPA = &gpa
	}
}

func WithSubject(code, grade string) RecordOption {
	return func(r *domain.HistoryRecord) {
		r.SubjectCode = code
		r.Grade = grade
	}
}

// WithDay sets the raw flag cell for a weekday column.
func WithDay(d domain.Weekday, flag string) RecordOption {
	return func(r *domain.HistoryRecord) {
		if r.DayFlags == nil {
			r.DayFlags = make(map[domain.Weekday]string)
		}
		r.DayFlags[d] = flag
	}
}

// WithMeeting sets start and end times. An empty string leaves that side absent.
func WithMeeting(start, end string) RecordOption {
	return func(r *domain.HistoryRecord) {
		if start != "" {
			r.MeetingStart = &start
		}
		if end != "" {
			r.MeetingEnd = &end
		}
	}
}

// NewTestRecord builds a history row for student name that completed title.
func NewTestRecord(name, title string, opts ...RecordOption) domain.HistoryRecord {
	r := domain.HistoryRecord{
		StudentName:     name,
		StudentID:       "S0001",
		AcademicProgram: "BBA General",
		CourseTitle:     title,
		SubjectCode:     "GEN 100",
		Grade:           "A",
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
