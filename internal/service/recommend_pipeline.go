package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/advisor/internal/contract"
	"github.com/alexanderramin/advisor/internal/domain"
	"github.com/alexanderramin/advisor/internal/ranker"
	"github.com/alexanderramin/advisor/internal/repository"
)

// A program containing lawProgramMarker only sees electives whose module
// contains lawModuleMarker.
const (
	lawProgramMarker = "law"
	lawModuleMarker  = "law"
)

// StudentContext bundles everything loaded for one student.
type StudentContext struct {
	Now    time.Time
	Rows   []domain.HistoryRecord
	Schema domain.HistorySchema
}

// StudentLookup finds a student's history rows.
type StudentLookup struct {
	history repository.HistoryRepo
}

// Load validates the request and returns the student's rows. A nil context
// with no error means the name matched no rows.
func (l *StudentLookup) Load(ctx context.Context, req contract.RecommendRequest) (*StudentContext, error) {
	if strings.TrimSpace(req.StudentName) == "" {
		return nil, &contract.RecommendError{
			Code:    contract.ErrInvalidName,
			Message: contract.InvalidNameMessage,
		}
	}

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	rows, err := l.history.ListByStudentName(ctx, req.StudentName)
	if err != nil {
		return nil, fmt.Errorf("loading student history: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	schema, err := l.history.Schema(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading history schema: %w", err)
	}

	return &StudentContext{Now: now, Rows: rows, Schema: schema}, nil
}

// SummarizeStudent reads identity fields from the first row.
func SummarizeStudent(sc *StudentContext) contract.StudentSummary {
	first := sc.Rows[0]
	return contract.StudentSummary{
		Name:            first.StudentName,
		StudentID:       first.StudentID,
		AcademicProgram: first.AcademicProgram,
		GPA: contract.GPA{
			Available: sc.Schema.HasGPA,
			Value:     first.CumulativeGPA,
		},
	}
}

// ExtractSubjectsTaken projects rows to (title, code, grade), dropping exact
// duplicates and keeping first-seen order.
func ExtractSubjectsTaken(rows []domain.HistoryRecord) []contract.SubjectTaken {
	seen := make(map[contract.SubjectTaken]bool, len(rows))
	subjects := make([]contract.SubjectTaken, 0, len(rows))
	for _, r := range rows {
		s := contract.SubjectTaken{Title: r.CourseTitle, SubjectCode: r.SubjectCode, Grade: r.Grade}
		if seen[s] {
			continue
		}
		seen[s] = true
		subjects = append(subjects, s)
	}
	return subjects
}

// ExcludeTaken drops catalog entries the student already took. Catalog order
// is kept; the result is the corpus the electives are scored in.
func ExcludeTaken(entries []domain.CatalogEntry, taken []contract.SubjectTaken) []domain.CatalogEntry {
	excluded := make(map[string]bool, len(taken))
	for _, s := range taken {
		excluded[domain.NormalizeKey(s.Title)] = true
	}

	candidates := make([]domain.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if excluded[e.Key()] {
			continue
		}
		candidates = append(candidates, e)
	}
	return candidates
}

// ScoreCandidates scores every candidate against the taken titles, in order.
func ScoreCandidates(taken []contract.SubjectTaken, candidates []domain.CatalogEntry) []ranker.ScoredElective {
	titles := make([]string, len(taken))
	for i, s := range taken {
		titles[i] = s.Title
	}
	return ranker.ScoreElectives(ranker.QueryDocument(titles), candidates)
}

// FilterEligible keeps, for a law program, only electives in a law module.
// It runs on scored electives, so IDF still covers every untaken elective.
func FilterEligible(scored []ranker.ScoredElective, program string) []ranker.ScoredElective {
	if !strings.Contains(strings.ToLower(program), lawProgramMarker) {
		return scored
	}
	eligible := make([]ranker.ScoredElective, 0, len(scored))
	for _, s := range scored {
		if s.Entry.InModule(lawModuleMarker) {
			eligible = append(eligible, s)
		}
	}
	return eligible
}

// ScheduleEnricher attaches meeting days and times from the first history
// row offering each elective.
type ScheduleEnricher struct {
	history repository.HistoryRepo
}

func (e *ScheduleEnricher) Enrich(ctx context.Context, top []ranker.ScoredElective) ([]contract.Recommendation, error) {
	recs := make([]contract.Recommendation, 0, len(top))
	for _, s := range top {
		rec := contract.Recommendation{
			Title:  s.Entry.Title,
			Module: s.Entry.Module,
			Days:   contract.ScheduleTBA,
			Time:   contract.ScheduleTBA,
			Score:  s.Score,
		}

		row, err := e.history.FirstByCourseTitle(ctx, s.Entry.Title)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			// not offered in the history table
		case err != nil:
			return nil, fmt.Errorf("loading schedule for %q: %w", s.Entry.Title, err)
		default:
			rec.Days = FormatDays(row.MeetingDays())
			rec.Time = FormatMeetingTime(row.MeetingStart, row.MeetingEnd)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// FormatDays joins weekday labels with ", ", or reports TBA for none.
func FormatDays(days []domain.Weekday) string {
	if len(days) == 0 {
		return contract.ScheduleTBA
	}
	labels := make([]string, len(days))
	for i, d := range days {
		labels[i] = d.Label()
	}
	return strings.Join(labels, ", ")
}

// FormatMeetingTime renders "<start> - <end>". A missing start means TBA; a
// missing end is shown as TBA on its side.
func FormatMeetingTime(start, end *string) string {
	if start == nil {
		return contract.ScheduleTBA
	}
	return *start + " - " + domain.StrFromPtrWithDefault(contract.ScheduleTBA, end)
}

// AssembleResponse builds a SUCCESS response.
func AssembleResponse(
	now time.Time,
	catalogVersion string,
	student contract.StudentSummary,
	taken []contract.SubjectTaken,
	recs []contract.Recommendation,
) *contract.RecommendResponse {
	return &contract.RecommendResponse{
		GeneratedAt:     now,
		Status:          contract.StatusSuccess,
		CatalogVersion:  catalogVersion,
		Student:         &student,
		SubjectsTaken:   taken,
		Recommendations: recs,
	}
}

// NotFoundResponse builds the response for a name with no history rows.
func NotFoundResponse(now time.Time, catalogVersion string) *contract.RecommendResponse {
	return &contract.RecommendResponse{
		GeneratedAt:     now,
		Status:          contract.StatusNotFound,
		Message:         contract.NotFoundMessage,
		CatalogVersion:  catalogVersion,
		SubjectsTaken:   []contract.SubjectTaken{},
		Recommendations: []contract.Recommendation{},
	}
}
