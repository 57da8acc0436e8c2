// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package exam

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gambitacademy/gambit/internal/platform/apperr"
	"github.com/gambitacademy/gambit/internal/platform/database/schema"
	"github.com/gambitacademy/gambit/internal/platform/dberr"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL exam repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) Create(context context.Context, exam *Exam) error {
	t := schema.Exam
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.Table, strings.Join(t.Columns(), ", "))

	now := time.Now()
	exam.CreatedAt = now
	exam.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		exam.ID, exam.CourseID, exam.CoachID, exam.TestName, exam.ZoomLink,
		exam.Status, exam.Result, exam.CreatedAt, exam.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "Exam")
	}
	return nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Exam, error) {
	t := schema.Exam
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(t.Columns(), ", "), t.Table, t.ID)

	exam := &Exam{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&exam.ID, &exam.CourseID, &exam.CoachID, &exam.TestName, &exam.ZoomLink,
		&exam.Status, &exam.Result, &exam.CreatedAt, &exam.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Exam")
		}
		return nil, fmt.Errorf("postgres_exam_repo_find_failed: %w", err)
	}
	return exam, nil
}

func (repository *PostgresRepository) ListByCourse(context context.Context, courseID string) ([]*Exam, error) {
	t := schema.Exam
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1
		ORDER BY %s DESC`,
		strings.Join(t.Columns(), ", "), t.Table, t.CourseID, t.CreatedAt)
	return repository.queryExams(context, query, courseID)
}

func (repository *PostgresRepository) ListByCoach(context context.Context, coachID string) ([]*Exam, error) {
	t := schema.Exam
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1
		ORDER BY %s DESC`,
		strings.Join(t.Columns(), ", "), t.Table, t.CoachID, t.CreatedAt)
	return repository.queryExams(context, query, coachID)
}

func (repository *PostgresRepository) Update(context context.Context, exam *Exam) error {
	t := schema.Exam
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1`,
		t.Table, t.TestName, t.ZoomLink, t.Status, t.Result, t.UpdatedAt, t.ID)

	exam.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(context, query,
		exam.ID, exam.TestName, exam.ZoomLink, exam.Status, exam.Result, exam.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "Exam")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Exam")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	t := schema.Exam
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres_exam_repo_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Exam")
	}
	return nil
}

func (repository *PostgresRepository) queryExams(context context.Context, query string, arg any) ([]*Exam, error) {
	rows, err := repository.pool.Query(context, query, arg)
	if err != nil {
		return nil, fmt.Errorf("postgres_exam_repo_query_failed: %w", err)
	}
	defer rows.Close()

	exams := make([]*Exam, 0)
	for rows.Next() {
		exam := &Exam{}
		if err := rows.Scan(
			&exam.ID, &exam.CourseID, &exam.CoachID, &exam.TestName, &exam.ZoomLink,
			&exam.Status, &exam.Result, &exam.CreatedAt, &exam.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_exam_repo_scan_failed: %w", err)
		}
		exams = append(exams, exam)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_exam_repo_rows_failed: %w", err)
	}
	return exams, nil
}
