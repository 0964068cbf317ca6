package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/advisor/internal/catalog"
	"github.com/alexanderramin/advisor/internal/contract"
	"github.com/alexanderramin/advisor/internal/importer"
	"github.com/alexanderramin/advisor/internal/repository"
	"github.com/alexanderramin/advisor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const historyCSV = `name_display,emplid,acad_prog,cum_gpa,course_title_long,subject_x,crse_grade_off,mon,tues,wed,thurs,fri,sat,sun,mtg_start,mtg_end
Jane Doe,1001,BBA Finance,3.45,Principles of Finance,FIN 201,A,,,,,,,,,
Sam Roe,1002,BBA Economics,,Principles of Macroeconomics,ECO 102,B,Y,,Y,,,,,09:00,10:15
`

func writeHistoryCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "merged.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestImportHistory_StoresTableAndLedger(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	imports := repository.NewSQLiteImportRepo(database)
	svc := NewImportService(testutil.NewTestUoW(database), imports)

	result, err := svc.ImportHistory(ctx, writeHistoryCSV(t, historyCSV))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Import.RowCount)
	assert.Equal(t, 2, result.Students)
	assert.True(t, result.Import.HasGPA)
	assert.Equal(t, "merged.csv", result.Import.Source)
	assert.NotEmpty(t, result.Import.ID)

	list, err := svc.ListImports(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, result.Import.ID, list[0].ID)

	advisor := NewAdvisorService(repository.NewSQLiteHistoryRepo(database), catalog.Default())
	resp, err := advisor.Recommend(ctx, recommendRequest("jane doe"))
	require.NoError(t, err)
	require.Equal(t, contract.StatusSuccess, resp.Status)
	assert.Equal(t, "3.45", resp.Student.GPA.String())
	require.NotEmpty(t, resp.Recommendations)
	assert.Equal(t, "Principles of Macroeconomics", resp.Recommendations[0].Title)
	assert.Equal(t, "Mon, Wed", resp.Recommendations[0].Days)
	assert.Equal(t, "09:00 - 10:15", resp.Recommendations[0].Time)
}

func TestImportHistory_SchemaErrorLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(database), repository.NewSQLiteImportRepo(database))

	_, err := svc.ImportHistory(ctx, writeHistoryCSV(t, historyCSV))
	require.NoError(t, err)

	_, err = svc.ImportHistory(ctx, writeHistoryCSV(t, "name_display,course_title_long\nJane Doe,Finance\n"))
	var schemaErr *importer.SchemaError
	require.ErrorAs(t, err, &schemaErr)

	n, err := repository.NewSQLiteHistoryRepo(database).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestImportHistory_RollsBackOnWriteFailure(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	good := NewImportService(testutil.NewTestUoW(database), repository.NewSQLiteImportRepo(database))
	_, err := good.ImportHistory(ctx, writeHistoryCSV(t, historyCSV))
	require.NoError(t, err)

	injected := errors.New("disk full")
	// Exec 1 clears the table, exec 2 inserts the first row.
	failing := NewImportService(
		&testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: injected},
		repository.NewSQLiteImportRepo(database),
	)
	_, err = failing.ImportHistory(ctx, writeHistoryCSV(t, historyCSV))
	require.ErrorIs(t, err, injected)

	n, err := repository.NewSQLiteHistoryRepo(database).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "previous table survives a failed import")

	list, err := good.ListImports(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
