// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package assignment

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

// NewPostgresRepository creates a new PostgreSQL assignment repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) Create(context context.Context, assignment *Assignment) error {
	t := schema.Assignment
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		t.Table, strings.Join(t.Columns(), ", "))

	now := time.Now()
	assignment.CreatedAt = now
	assignment.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		assignment.ID, assignment.CourseID, assignment.Technique, assignment.Description,
		assignment.DueDate, assignment.Solution, assignment.CreatedAt, assignment.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "Assignment")
	}
	return nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Assignment, error) {
	t := schema.Assignment
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(t.Columns(), ", "), t.Table, t.ID)

	assignment := &Assignment{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&assignment.ID, &assignment.CourseID, &assignment.Technique, &assignment.Description,
		&assignment.DueDate, &assignment.Solution, &assignment.CreatedAt, &assignment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Assignment")
		}
		return nil, fmt.Errorf("postgres_assignment_repo_find_failed: %w", err)
	}
	return assignment, nil
}

func (repository *PostgresRepository) ListByCourse(context context.Context, courseID string) ([]*Assignment, error) {
	t := schema.Assignment
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1
		ORDER BY %s ASC`,
		strings.Join(t.Columns(), ", "), t.Table, t.CourseID, t.DueDate)

	rows, err := repository.pool.Query(context, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("postgres_assignment_repo_list_failed: %w", err)
	}
	defer rows.Close()

	assignments := make([]*Assignment, 0)
	for rows.Next() {
		assignment := &Assignment{}
		if err := rows.Scan(
			&assignment.ID, &assignment.CourseID, &assignment.Technique, &assignment.Description,
			&assignment.DueDate, &assignment.Solution, &assignment.CreatedAt, &assignment.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_assignment_repo_scan_failed: %w", err)
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_assignment_repo_rows_failed: %w", err)
	}
	return assignments, nil
}

func (repository *PostgresRepository) Update(context context.Context, assignment *Assignment) error {
	t := schema.Assignment
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1`,
		t.Table, t.Technique, t.Description, t.DueDate, t.Solution, t.UpdatedAt, t.ID)

	assignment.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(context, query,
		assignment.ID, assignment.Technique, assignment.Description,
		assignment.DueDate, assignment.Solution, assignment.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "Assignment")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Assignment")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	t := schema.Assignment
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres_assignment_repo_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Assignment")
	}
	return nil
}
