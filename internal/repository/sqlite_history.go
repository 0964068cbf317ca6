package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/advisor/internal/db"
	"github.com/alexanderramin/advisor/internal/domain"
)

// SQLiteHistoryRepo implements HistoryRepo over the history_records table.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

// NewSQLiteHistoryRepo creates a new SQLiteHistoryRepo.
func NewSQLiteHistoryRepo(conn db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: conn}
}

const historyColumns = `name_display, emplid, acad_prog, cum_gpa, course_title, subject_code, grade,
	mon, tues, wed, thurs, fri, sat, sun, mtg_start, mtg_end`

// ReplaceAll swaps the stored table for records, keeping their order. Run it
// inside a transaction so readers never see a partial table.
func (r *SQLiteHistoryRepo) ReplaceAll(ctx context.Context, records []domain.HistoryRecord) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM history_records`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}

	query := `INSERT INTO history_records (row_index, name_key, title_key, ` + historyColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i := range records {
		rec := &records[i]
		args := []interface{}{
			i,
			domain.NormalizeKey(rec.StudentName),
			domain.NormalizeKey(rec.CourseTitle),
			rec.StudentName,
			rec.StudentID,
			rec.AcademicProgram,
			floatPtrToValue(rec.CumulativeGPA),
			rec.CourseTitle,
			rec.SubjectCode,
			rec.Grade,
		}
		for _, d := range domain.Weekdays {
			args = append(args, dayFlagValue(rec, d))
		}
		args = append(args, stringPtrToValue(rec.MeetingStart), stringPtrToValue(rec.MeetingEnd))

		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting history row %d: %w", i, err)
		}
	}
	return nil
}

func (r *SQLiteHistoryRepo) ListByStudentName(ctx context.Context, name string) ([]domain.HistoryRecord, error) {
	query := `SELECT ` + historyColumns + ` FROM history_records
		WHERE name_key = ? ORDER BY row_index`
	rows, err := r.db.QueryContext(ctx, query, domain.NormalizeKey(name))
	if err != nil {
		return nil, fmt.Errorf("listing history for student: %w", err)
	}
	defer rows.Close()

	records := []domain.HistoryRecord{}
	for rows.Next() {
		rec, err := scanHistoryRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history rows: %w", err)
	}
	return records, nil
}

func (r *SQLiteHistoryRepo) FirstByCourseTitle(ctx context.Context, title string) (*domain.HistoryRecord, error) {
	query := `SELECT ` + historyColumns + ` FROM history_records
		WHERE title_key = ? ORDER BY row_index LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, domain.NormalizeKey(title))
	rec, err := scanHistoryRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("course %q: %w", title, ErrNotFound)
		}
		return nil, err
	}
	return rec, nil
}

// Schema reports the shape of the most recent import. An empty store has no
// GPA column.
func (r *SQLiteHistoryRepo) Schema(ctx context.Context) (domain.HistorySchema, error) {
	var hasGPA int
	err := r.db.QueryRowContext(ctx,
		`SELECT has_gpa FROM history_imports ORDER BY imported_at DESC, rowid DESC LIMIT 1`,
	).Scan(&hasGPA)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.HistorySchema{}, nil
		}
		return domain.HistorySchema{}, fmt.Errorf("reading history schema: %w", err)
	}
	return domain.HistorySchema{HasGPA: intToBool(hasGPA)}, nil
}

func (r *SQLiteHistoryRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history_records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting history rows: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHistoryRecord(s scanner) (*domain.HistoryRecord, error) {
	var (
		rec        domain.HistoryRecord
		gpa        sql.NullFloat64
		days       [7]sql.NullString
		start, end sql.NullString
	)
	err := s.Scan(
		&rec.StudentName,
		&rec.StudentID,
		&rec.AcademicProgram,
		&gpa,
		&rec.CourseTitle,
		&rec.SubjectCode,
		&rec.Grade,
		&days[0], &days[1], &days[2], &days[3], &days[4], &days[5], &days[6],
		&start,
		&end,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning history row: %w", err)
	}

	rec.CumulativeGPA = nullableFloat(gpa)
	rec.MeetingStart = nullableString(start)
	rec.MeetingEnd = nullableString(end)
	for i, d := range domain.Weekdays {
		if days[i].Valid {
			if rec.DayFlags == nil {
				rec.DayFlags = make(map[domain.Weekday]string)
			}
			rec.DayFlags[d] = days[i].String
		}
	}
	return &rec, nil
}

func dayFlagValue(rec *domain.HistoryRecord, d domain.Weekday) interface{} {
	v, ok := rec.DayFlags[d]
	if !ok {
		return nil
	}
	return v
}
