package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/advisor/internal/catalog"
	"github.com/alexanderramin/advisor/internal/contract"
	"github.com/alexanderramin/advisor/internal/domain"
	"github.com/alexanderramin/advisor/internal/repository"
	"github.com/alexanderramin/advisor/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func recommendRequest(name string) contract.RecommendRequest {
	req := contract.NewRecommendRequest(name)
	req.Now = &fixedNow
	return req
}

func sampleHistory() []domain.HistoryRecord {
	return []domain.HistoryRecord{
		testutil.NewTestRecord("Jane Doe", "Principles of Finance",
			testutil.WithStudentID("1001"),
			testutil.WithProgram("BBA Finance"),
			testutil.WithGPA(3.45),
			testutil.WithSubject("FIN 201", "A"),
		),
		testutil.NewTestRecord("Jane Doe", "Principles of Finance",
			testutil.WithStudentID("1001"),
			testutil.WithProgram("BBA Finance"),
			testutil.WithSubject("FIN 201", "A"),
		),
		testutil.NewTestRecord("Alex Lee", "Consumer Protection Law",
			testutil.WithProgram("LLB Law"),
			testutil.WithSubject("LAW 210", "B"),
		),
		testutil.NewTestRecord("Sam Roe", "Principles of Macroeconomics",
			testutil.WithDay(domain.Monday, "Y"),
			testutil.WithDay(domain.Wednesday, "y "),
			testutil.WithDay(domain.Friday, "N"),
			testutil.WithMeeting("09:00", "10:15"),
		),
		testutil.NewTestRecord("Sam Roe", "Principles of Managerial Accounting",
			testutil.WithDay(domain.Tuesday, "Y"),
		),
		testutil.NewTestRecord("Sam Roe", "Principles of Medical Genetics",
			testutil.WithMeeting("14:00", ""),
		),
		testutil.NewTestRecord("Pat Blank", ""),
		testutil.NewTestRecord("Lee Law", "Criminal Procedure",
			testutil.WithProgram("Bachelor of LAW"),
		),
	}
}

func newTestAdvisor(t *testing.T, records []domain.HistoryRecord, observers ...UseCaseObserver) AdvisorService {
	t.Helper()
	repo := repository.NewMemoryHistoryRepo(records, domain.HistorySchema{HasGPA: true})
	return NewAdvisorService(repo, catalog.Default(), observers...)
}

func titlesOf(recs []contract.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func TestRecommend_FinanceStudent(t *testing.T) {
	svc := newTestAdvisor(t, sampleHistory())

	resp, err := svc.Recommend(context.Background(), recommendRequest("  jane DOE "))
	require.NoError(t, err)

	assert.Equal(t, contract.StatusSuccess, resp.Status)
	assert.Equal(t, fixedNow, resp.GeneratedAt)
	assert.Equal(t, catalog.DefaultVersion, resp.CatalogVersion)

	require.NotNil(t, resp.Student)
	assert.Equal(t, "Jane Doe", resp.Student.Name)
	assert.Equal(t, "1001", resp.Student.StudentID)
	assert.Equal(t, "BBA Finance", resp.Student.AcademicProgram)
	assert.Equal(t, "3.45", resp.Student.GPA.String())

	assert.Equal(t, []contract.SubjectTaken{
		{Title: "Principles of Finance", SubjectCode: "FIN 201", Grade: "A"},
	}, resp.SubjectsTaken)

	assert.Equal(t, []string{
		"Principles of Macroeconomics",
		"Principles of Managerial Accounting",
		"Principles of Medical Genetics",
		"Operations Management",
		"Applied Management Science",
	}, titlesOf(resp.Recommendations))
	assert.Equal(t, 0.23, resp.Recommendations[0].Score)
	assert.Equal(t, 0.18, resp.Recommendations[1].Score)
	assert.Equal(t, 0.17, resp.Recommendations[2].Score)
	assert.NotContains(t, titlesOf(resp.Recommendations), "Principles of Finance")
}

func TestRecommend_ScheduleEnrichment(t *testing.T) {
	svc := newTestAdvisor(t, sampleHistory())

	resp, err := svc.Recommend(context.Background(), recommendRequest("Jane Doe"))
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 5)

	macro := resp.Recommendations[0]
	assert.Equal(t, "Mon, Wed", macro.Days)
	assert.Equal(t, "09:00 - 10:15", macro.Time)

	managerial := resp.Recommendations[1]
	assert.Equal(t, "Tues", managerial.Days)
	assert.Equal(t, contract.ScheduleTBA, managerial.Time)

	genetics := resp.Recommendations[2]
	assert.Equal(t, contract.ScheduleTBA, genetics.Days)
	assert.Equal(t, "14:00 - TBA", genetics.Time)

	ops := resp.Recommendations[3]
	assert.Equal(t, contract.ScheduleTBA, ops.Days)
	assert.Equal(t, contract.ScheduleTBA, ops.Time)
}

func TestRecommend_UnknownStudent(t *testing.T) {
	svc := newTestAdvisor(t, sampleHistory())

	resp, err := svc.Recommend(context.Background(), recommendRequest("Zzyzx Qqq"))
	require.NoError(t, err)

	assert.Equal(t, contract.StatusNotFound, resp.Status)
	assert.False(t, resp.Found())
	assert.Equal(t, contract.NotFoundMessage, resp.Message)
	assert.Nil(t, resp.Student)
	assert.Empty(t, resp.Recommendations)
	assert.NotNil(t, resp.Recommendations)
}

func TestRecommend_BlankNameRejected(t *testing.T) {
	svc := newTestAdvisor(t, sampleHistory())

	for _, name := range []string{"", "   ", "\t"} {
		_, err := svc.Recommend(context.Background(), recommendRequest(name))
		var recErr *contract.RecommendError
		require.ErrorAs(t, err, &recErr, "name %q", name)
		assert.Equal(t, contract.ErrInvalidName, recErr.Code)
	}
}

func TestRecommend_LawProgramOnlyLawElectives(t *testing.T) {
	svc := newTestAdvisor(t, sampleHistory())

	resp, err := svc.Recommend(context.Background(), recommendRequest("Alex Lee"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Labour Law and Social Securities Law",
		"Primary Rights in Rem and Accessory Real Rights in Rem",
	}, titlesOf(resp.Recommendations))
	assert.Equal(t, 0.23, resp.Recommendations[0].Score)
	assert.Equal(t, 0.0, resp.Recommendations[1].Score)
	for _, r := range resp.Recommendations {
		assert.Contains(t, strings.ToLower(r.Module), "law")
	}
}

func TestRecommend_LawProgramAnyCasing(t *testing.T) {
	svc := newTestAdvisor(t, sampleHistory())

	resp, err := svc.Recommend(context.Background(), recommendRequest("Lee Law"))
	require.NoError(t, err)
	require.Len(t, resp.Recommendations, 3)
	for _, r := range resp.Recommendations {
		assert.Contains(t, strings.ToLower(r.Module), "law")
	}
}

func TestRecommend_NoLawElectivesLeft(t *testing.T) {
	records := []domain.HistoryRecord{
		testutil.NewTestRecord("Max Law", "Consumer Protection Law", testutil.WithProgram("LLB Law")),
		testutil.NewTestRecord("Max Law", "Labour Law and Social Securities Law", testutil.WithProgram("LLB Law")),
		testutil.NewTestRecord("Max Law", "Primary Rights in Rem and Accessory Real Rights in Rem", testutil.WithProgram("LLB Law")),
	}
	svc := newTestAdvisor(t, records)

	resp, err := svc.Recommend(context.Background(), recommendRequest("Max Law"))
	require.NoError(t, err)
	assert.Equal(t, contract.StatusSuccess, resp.Status)
	assert.Empty(t, resp.Recommendations)
}

func TestRecommend_StudentWithoutCourses(t *testing.T) {
	svc := newTestAdvisor(t, sampleHistory())

	resp, err := svc.Recommend(context.Background(), recommendRequest("Pat Blank"))
	require.NoError(t, err)

	entries := catalog.Default().Entries()
	require.Len(t, resp.Recommendations, 5)
	for i, r := range resp.Recommendations {
		assert.Equal(t, entries[i].Title, r.Title)
		assert.Equal(t, 0.0, r.Score)
	}
}

func TestRecommend_Idempotent(t *testing.T) {
	svc := newTestAdvisor(t, sampleHistory())
	ctx := context.Background()

	first, err := svc.Recommend(ctx, recommendRequest("Jane Doe"))
	require.NoError(t, err)
	second, err := svc.Recommend(ctx, recommendRequest("Jane Doe"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRecommend_Invariants(t *testing.T) {
	svc := newTestAdvisor(t, sampleHistory())

	for _, name := range []string{"Jane Doe", "Alex Lee", "Sam Roe", "Pat Blank", "Lee Law"} {
		resp, err := svc.Recommend(context.Background(), recommendRequest(name))
		require.NoError(t, err)

		assert.LessOrEqual(t, len(resp.Recommendations), contract.MaxRecommendations, name)
		for i := 1; i < len(resp.Recommendations); i++ {
			assert.GreaterOrEqual(t, resp.Recommendations[i-1].Score, resp.Recommendations[i].Score, name)
		}
		taken := make(map[string]bool)
		for _, s := range resp.SubjectsTaken {
			taken[domain.NormalizeKey(s.Title)] = true
		}
		for _, r := range resp.Recommendations {
			assert.False(t, taken[domain.NormalizeKey(r.Title)], "%s was recommended %q again", name, r.Title)
		}
	}
}

func TestRecommend_GPAUnavailableWithoutColumn(t *testing.T) {
	repo := repository.NewMemoryHistoryRepo(sampleHistory(), domain.HistorySchema{})
	svc := NewAdvisorService(repo, catalog.Default())

	resp, err := svc.Recommend(context.Background(), recommendRequest("Jane Doe"))
	require.NoError(t, err)
	assert.False(t, resp.Student.GPA.Available)
	assert.Equal(t, "N/A", resp.Student.GPA.String())
}

func TestRecommend_InjectedCatalog(t *testing.T) {
	cat, err := catalog.New("spring", []domain.CatalogEntry{
		{Title: "Advanced Corporate Finance", Module: "Finance"},
		{Title: "Marine Biology", Module: "Science"},
	})
	require.NoError(t, err)
	repo := repository.NewMemoryHistoryRepo(sampleHistory(), domain.HistorySchema{HasGPA: true})
	svc := NewAdvisorService(repo, cat)

	resp, err := svc.Recommend(context.Background(), recommendRequest("Jane Doe"))
	require.NoError(t, err)
	assert.Equal(t, "spring", resp.CatalogVersion)
	assert.Equal(t, []string{"Advanced Corporate Finance", "Marine Biology"}, titlesOf(resp.Recommendations))
	assert.Greater(t, resp.Recommendations[0].Score, 0.0)
}

func TestRecommend_ObservesUseCase(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	svc := newTestAdvisor(t, sampleHistory(), NewLogUseCaseObserver(logger))

	_, err := svc.Recommend(context.Background(), recommendRequest("Zzyzx Qqq"))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"use_case":"recommend"`)
	assert.Contains(t, out, `"status":"NOT_FOUND"`)
	assert.Contains(t, out, `"success":true`)
}
