package formatter

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/advisor/internal/contract"
	"github.com/alexanderramin/advisor/internal/domain"
	"github.com/alexanderramin/advisor/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// goldenTest compares got against testdata/<name>.golden.
// Set GOLDEN_UPDATE=1 to regenerate golden files.
func goldenTest(t *testing.T, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name+".golden")
	stripped := stripANSI(got)

	if os.Getenv("GOLDEN_UPDATE") == "1" {
		require.NoError(t, os.MkdirAll("testdata", 0755))
		require.NoError(t, os.WriteFile(path, []byte(stripped), 0644))
		return
	}

	expected, err := os.ReadFile(path)
	require.NoError(t, err, "run with GOLDEN_UPDATE=1 to create %s", path)
	assert.Equal(t, string(expected), stripped)
}

func TestRenderTable_Golden(t *testing.T) {
	out := RenderTable(
		[]string{"#", "TITLE", "MODULE"},
		[][]string{
			{"1", "Business Law", "Law"},
			{"2", "Macroeconomics", "Economics"},
		},
	)
	goldenTest(t, "table", out)
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"a"}}))
}

func TestFormatRecommendation_Found(t *testing.T) {
	gpa := 3.45
	resp := &contract.RecommendResponse{
		Status:         contract.StatusSuccess,
		CatalogVersion: "default",
		Student: &contract.StudentSummary{
			Name:            "Jane Doe",
			StudentID:       "1001",
			AcademicProgram: "BBA Finance",
			GPA:             contract.GPA{Available: true, Value: &gpa},
		},
		SubjectsTaken: []contract.SubjectTaken{{Title: "Principles of Finance", SubjectCode: "FIN 201", Grade: "A"}},
		Recommendations: []contract.Recommendation{
			{Title: "Principles of Macroeconomics", Module: "Economics", Days: "Mon, Wed", Time: "09:00 - 10:15", Score: 0.23},
			{Title: "Operations Management", Module: "Operations", Days: "TBA", Time: "TBA", Score: 0},
		},
	}

	out := stripANSI(FormatRecommendation(resp))
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "BBA Finance")
	assert.Contains(t, out, "3.45")
	assert.Contains(t, out, "FIN 201")
	assert.Contains(t, out, "Principles of Macroeconomics")
	assert.Contains(t, out, "Mon, Wed")
	assert.Contains(t, out, "09:00 - 10:15")
	assert.Contains(t, out, "0.23")
	assert.Contains(t, out, "0.00")
	assert.Contains(t, out, "catalog: default")
}

func TestFormatRecommendation_NotFound(t *testing.T) {
	resp := &contract.RecommendResponse{Status: contract.StatusNotFound, Message: contract.NotFoundMessage}
	assert.Equal(t, "✗ Student not found in the records.\n", stripANSI(FormatRecommendation(resp)))
}

func TestFormatRecommendation_NoEligible(t *testing.T) {
	resp := &contract.RecommendResponse{
		Status:  contract.StatusSuccess,
		Student: &contract.StudentSummary{Name: "Max Law"},
	}
	out := stripANSI(FormatRecommendation(resp))
	assert.Contains(t, out, "No eligible electives.")
	assert.Contains(t, out, "No completed courses on record.")
	assert.Contains(t, out, "N/A")
}

func TestFormatCatalog(t *testing.T) {
	out := stripANSI(FormatCatalog("spring", []domain.CatalogEntry{
		{Title: "Business Law", Module: "Law"},
	}))
	assert.Contains(t, out, "ELECTIVE CATALOG (SPRING)")
	assert.Contains(t, out, "Business Law")
	assert.Contains(t, out, "1 electives")
}

func TestFormatImports(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	assert.Contains(t, stripANSI(FormatImports(nil, now)), "No history imported yet")

	out := stripANSI(FormatImports([]*repository.HistoryImport{
		{ID: "0f8fad5b-d9cb-469f-a165-70867728950e", Source: "merged.xlsx", RowCount: 120, HasGPA: true, ImportedAt: now.Add(-2 * time.Hour)},
	}, now))
	assert.Contains(t, out, "0f8fad5b")
	assert.NotContains(t, out, "d9cb")
	assert.Contains(t, out, "merged.xlsx")
	assert.Contains(t, out, "2h ago")
	assert.Contains(t, out, "yes")
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Just now", HumanTimestamp(now.Add(-10*time.Second), now))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute), now))
	assert.Equal(t, "Aug 1, 2026 12:00", HumanTimestamp(now.AddDate(0, -1, 0), now))
}

func TestScoreStyle(t *testing.T) {
	assert.Equal(t, StyleGreen, ScoreStyle(0.23))
	assert.Equal(t, StyleYellow, ScoreStyle(0.05))
	assert.Equal(t, StyleDim, ScoreStyle(0))
}
