// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package submission

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

// NewPostgresRepository creates a new PostgreSQL submission repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) Create(context context.Context, submission *Submission) error {
	t := schema.Submission
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		t.Table, strings.Join(t.Columns(), ", "))

	now := time.Now()
	submission.CreatedAt = now
	submission.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		submission.ID, submission.AssignmentID, submission.StudentID, submission.Content,
		submission.Status, submission.Feedback, submission.CreatedAt, submission.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "Submission")
	}
	return nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Submission, error) {
	t := schema.Submission
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(t.Columns(), ", "), t.Table, t.ID)

	submission := &Submission{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&submission.ID, &submission.AssignmentID, &submission.StudentID, &submission.Content,
		&submission.Status, &submission.Feedback, &submission.CreatedAt, &submission.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Submission")
		}
		return nil, fmt.Errorf("postgres_submission_repo_find_failed: %w", err)
	}
	return submission, nil
}

func (repository *PostgresRepository) ListByAssignment(context context.Context, assignmentID string) ([]*Submission, error) {
	t := schema.Submission
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1
		ORDER BY %s ASC`,
		strings.Join(t.Columns(), ", "), t.Table, t.AssignmentID, t.CreatedAt)
	return repository.querySubmissions(context, query, assignmentID)
}

func (repository *PostgresRepository) ListByStudent(context context.Context, studentID string) ([]*Submission, error) {
	t := schema.Submission
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1
		ORDER BY %s DESC`,
		strings.Join(t.Columns(), ", "), t.Table, t.StudentID, t.CreatedAt)
	return repository.querySubmissions(context, query, studentID)
}

func (repository *PostgresRepository) Update(context context.Context, submission *Submission) error {
	t := schema.Submission
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1`,
		t.Table, t.Content, t.Status, t.Feedback, t.UpdatedAt, t.ID)

	submission.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(context, query,
		submission.ID, submission.Content, submission.Status, submission.Feedback, submission.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "Submission")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Submission")
	}
	return nil
}

func (repository *PostgresRepository) querySubmissions(context context.Context, query string, arg any) ([]*Submission, error) {
	rows, err := repository.pool.Query(context, query, arg)
	if err != nil {
		return nil, fmt.Errorf("postgres_submission_repo_query_failed: %w", err)
	}
	defer rows.Close()

	submissions := make([]*Submission, 0)
	for rows.Next() {
		submission := &Submission{}
		if err := rows.Scan(
			&submission.ID, &submission.AssignmentID, &submission.StudentID, &submission.Content,
			&submission.Status, &submission.Feedback, &submission.CreatedAt, &submission.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_submission_repo_scan_failed: %w", err)
		}
		submissions = append(submissions, submission)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_submission_repo_rows_failed: %w", err)
	}
	return submissions, nil
}
