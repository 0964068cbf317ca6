package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/advisor/internal/domain"
)

// HistoryRepo is the read side of the enrollment history table. Name and
// title matching is exact after trimming and lowercasing.
type HistoryRepo interface {
	// ListByStudentName returns every row for the student in table order.
	// An unknown name yields an empty slice and no error.
	ListByStudentName(ctx context.Context, name string) ([]domain.HistoryRecord, error)
	// FirstByCourseTitle returns the earliest row whose course title matches,
	// or an error wrapping ErrNotFound.
	FirstByCourseTitle(ctx context.Context, title string) (*domain.HistoryRecord, error)
	Schema(ctx context.Context) (domain.HistorySchema, error)
}

// HistoryImport is one entry in the import ledger.
type HistoryImport struct {
	ID         string
	Source     string
	RowCount   int
	HasGPA     bool
	ImportedAt time.Time
}

type ImportRepo interface {
	Create(ctx context.Context, imp *HistoryImport) error
	Latest(ctx context.Context) (*HistoryImport, error)
	List(ctx context.Context) ([]*HistoryImport, error)
}
