package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/advisor/internal/db"
)

// SQLiteImportRepo implements ImportRepo over the history_imports ledger.
type SQLiteImportRepo struct {
	db db.DBTX
}

func NewSQLiteImportRepo(conn db.DBTX) *SQLiteImportRepo {
	return &SQLiteImportRepo{db: conn}
}

func (r *SQLiteImportRepo) Create(ctx context.Context, imp *HistoryImport) error {
	query := `INSERT INTO history_imports (id, source, row_count, has_gpa, imported_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		imp.ID,
		imp.Source,
		imp.RowCount,
		boolToInt(imp.HasGPA),
		imp.ImportedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting history import: %w", err)
	}
	return nil
}

func (r *SQLiteImportRepo) Latest(ctx context.Context) (*HistoryImport, error) {
	query := `SELECT id, source, row_count, has_gpa, imported_at
		FROM history_imports ORDER BY imported_at DESC, rowid DESC LIMIT 1`
	imp, err := scanImport(r.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("history import: %w", ErrNotFound)
		}
		return nil, err
	}
	return imp, nil
}

// List returns the ledger newest first.
func (r *SQLiteImportRepo) List(ctx context.Context) ([]*HistoryImport, error) {
	query := `SELECT id, source, row_count, has_gpa, imported_at
		FROM history_imports ORDER BY imported_at DESC, rowid DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing history imports: %w", err)
	}
	defer rows.Close()

	var imports []*HistoryImport
	for rows.Next() {
		imp, err := scanImport(rows)
		if err != nil {
			return nil, err
		}
		imports = append(imports, imp)
	}
	return imports, rows.Err()
}

func scanImport(s scanner) (*HistoryImport, error) {
	var (
		imp        HistoryImport
		hasGPA     int
		importedAt string
	)
	if err := s.Scan(&imp.ID, &imp.Source, &imp.RowCount, &hasGPA, &importedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning history import: %w", err)
	}
	imp.HasGPA = intToBool(hasGPA)
	imp.ImportedAt = parseTime(importedAt)
	return &imp, nil
}
