package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/advisor/internal/contract"
	"github.com/alexanderramin/advisor/internal/domain"
	"github.com/alexanderramin/advisor/internal/repository"
)

// FormatStudentSummary renders the identity block as label/value lines.
func FormatStudentSummary(s contract.StudentSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", Dim("Name:   "), Bold(s.Name))
	fmt.Fprintf(&b, "%s %s\n", Dim("ID:     "), s.StudentID)
	fmt.Fprintf(&b, "%s %s\n", Dim("Program:"), s.AcademicProgram)
	fmt.Fprintf(&b, "%s %s", Dim("GPA:    "), s.GPA.String())
	return b.String()
}

// FormatRecommendation renders a full recommendation response.
func FormatRecommendation(resp *contract.RecommendResponse) string {
	if !resp.Found() {
		return StyleRed.Render("✗ "+resp.Message) + "\n"
	}

	var b strings.Builder
	b.WriteString(RenderBox("Student", FormatStudentSummary(*resp.Student)))
	b.WriteString("\n\n")

	b.WriteString(Header("Subjects Taken"))
	b.WriteString("\n")
	if len(resp.SubjectsTaken) == 0 {
		b.WriteString(Dim("No completed courses on record.") + "\n")
	} else {
		rows := make([][]string, len(resp.SubjectsTaken))
		for i, s := range resp.SubjectsTaken {
			rows[i] = []string{s.Title, s.SubjectCode, s.Grade}
		}
		b.WriteString(RenderTable([]string{"COURSE", "CODE", "GRADE"}, rows))
	}
	b.WriteString("\n")

	b.WriteString(Header("Recommended Electives"))
	b.WriteString("\n")
	if len(resp.Recommendations) == 0 {
		b.WriteString(Dim("No eligible electives.") + "\n")
	} else {
		rows := make([][]string, len(resp.Recommendations))
		for i, r := range resp.Recommendations {
			rows[i] = []string{
				strconv.Itoa(i + 1),
				r.Title,
				StyleBlue.Render(r.Module),
				r.Days,
				r.Time,
				ScoreStyle(r.Score).Render(FormatScore(r.Score)),
			}
		}
		b.WriteString(RenderTable([]string{"#", "ELECTIVE", "MODULE", "DAYS", "TIME", "SCORE"}, rows))
	}

	b.WriteString("\n" + Dim("catalog: "+resp.CatalogVersion) + "\n")
	return b.String()
}

// FormatCatalog lists electives in catalog order.
func FormatCatalog(version string, entries []domain.CatalogEntry) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{strconv.Itoa(i + 1), e.Title, e.Module}
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Elective Catalog (%s)", version)))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"#", "TITLE", "MODULE"}, rows))
	b.WriteString(Dim(fmt.Sprintf("%d electives", len(entries))) + "\n")
	return b.String()
}

// FormatImports renders the import ledger, newest first.
func FormatImports(imports []*repository.HistoryImport, now time.Time) string {
	if len(imports) == 0 {
		return Dim("No history imported yet. Run 'advisor import FILE'.") + "\n"
	}

	rows := make([][]string, len(imports))
	for i, imp := range imports {
		gpa := Dim("no")
		if imp.HasGPA {
			gpa = StyleGreen.Render("yes")
		}
		rows[i] = []string{
			TruncID(imp.ID),
			imp.Source,
			strconv.Itoa(imp.RowCount),
			gpa,
			HumanTimestamp(imp.ImportedAt, now),
		}
	}
	return Header("History Imports") + "\n" +
		RenderTable([]string{"ID", "SOURCE", "ROWS", "GPA", "IMPORTED"}, rows)
}

func FormatImportResult(imp *repository.HistoryImport, students int) string {
	return StyleGreen.Render("✔ Imported ") +
		fmt.Sprintf("%d rows for %d students from %s", imp.RowCount, students, imp.Source) +
		Dim(" ("+TruncID(imp.ID)+")") + "\n"
}
