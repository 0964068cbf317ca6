package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/advisor/internal/domain"
)

// MemoryHistoryRepo serves a history table held in memory, such as one read
// straight from a spreadsheet. It is read-only after construction and safe
// for concurrent use.
type MemoryHistoryRepo struct {
	records []domain.HistoryRecord
	schema  domain.HistorySchema
	byName  map[string][]int
	byTitle map[string]int
}

func NewMemoryHistoryRepo(records []domain.HistoryRecord, schema domain.HistorySchema) *MemoryHistoryRepo {
	r := &MemoryHistoryRepo{
		records: append([]domain.HistoryRecord(nil), records...),
		schema:  schema,
		byName:  make(map[string][]int),
		byTitle: make(map[string]int),
	}
	for i := range r.records {
		nk := domain.NormalizeKey(r.records[i].StudentName)
		r.byName[nk] = append(r.byName[nk], i)

		tk := domain.NormalizeKey(r.records[i].CourseTitle)
		if _, seen := r.byTitle[tk]; !seen {
			r.byTitle[tk] = i
		}
	}
	return r
}

func (r *MemoryHistoryRepo) ListByStudentName(_ context.Context, name string) ([]domain.HistoryRecord, error) {
	idx := r.byName[domain.NormalizeKey(name)]
	out := make([]domain.HistoryRecord, 0, len(idx))
	for _, i := range idx {
		out = append(out, r.records[i])
	}
	return out, nil
}

func (r *MemoryHistoryRepo) FirstByCourseTitle(_ context.Context, title string) (*domain.HistoryRecord, error) {
	i, ok := r.byTitle[domain.NormalizeKey(title)]
	if !ok {
		return nil, fmt.Errorf("course %q: %w", title, ErrNotFound)
	}
	rec := r.records[i]
	return &rec, nil
}

func (r *MemoryHistoryRepo) Schema(context.Context) (domain.HistorySchema, error) {
	return r.schema, nil
}

var (
	_ HistoryRepo = (*MemoryHistoryRepo)(nil)
	_ HistoryRepo = (*SQLiteHistoryRepo)(nil)
)
