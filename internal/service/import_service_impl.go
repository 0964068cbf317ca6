package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/alexanderramin/advisor/internal/db"
	"github.com/alexanderramin/advisor/internal/domain"
	"github.com/alexanderramin/advisor/internal/importer"
	"github.com/alexanderramin/advisor/internal/repository"
	"github.com/google/uuid"
)

type importService struct {
	uow      db.UnitOfWork
	imports  repository.ImportRepo
	observer UseCaseObserver
}

func NewImportService(
	uow db.UnitOfWork,
	imports repository.ImportRepo,
	observers ...UseCaseObserver,
) ImportService {
	return &importService{
		uow:      uow,
		imports:  imports,
		observer: useCaseObserverOrNoop(observers),
	}
}

// ImportHistory loads a history file and replaces the stored table with it in
// one transaction, recording the import in the ledger.
func (s *importService) ImportHistory(ctx context.Context, path string) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"source": filepath.Base(path),
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-history",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	table, err := importer.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading history file: %w", err)
	}

	imp := &repository.HistoryImport{
		ID:         uuid.New().String(),
		Source:     filepath.Base(path),
		RowCount:   len(table.Records),
		HasGPA:     table.Schema.HasGPA,
		ImportedAt: startedAt,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		history := repository.NewSQLiteHistoryRepo(tx)
		if err := history.ReplaceAll(ctx, table.Records); err != nil {
			return err
		}
		stored, err := history.Count(ctx)
		if err != nil {
			return err
		}
		if stored != len(table.Records) {
			return fmt.Errorf("stored %d of %d history rows", stored, len(table.Records))
		}
		return repository.NewSQLiteImportRepo(tx).Create(ctx, imp)
	})
	if err != nil {
		return nil, fmt.Errorf("storing history: %w", err)
	}

	fields["rows"] = imp.RowCount
	fields["import_id"] = imp.ID
	return &ImportResult{Import: imp, Students: countStudents(table.Records)}, nil
}

func (s *importService) ListImports(ctx context.Context) ([]*repository.HistoryImport, error) {
	imports, err := s.imports.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing imports: %w", err)
	}
	return imports, nil
}

func countStudents(records []domain.HistoryRecord) int {
	names := make(map[string]struct{})
	for _, r := range records {
		if key := domain.NormalizeKey(r.StudentName); key != "" {
			names[key] = struct{}{}
		}
	}
	return len(names)
}
