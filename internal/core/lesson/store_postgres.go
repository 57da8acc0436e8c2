// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package lesson

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

// NewPostgresRepository creates a new PostgreSQL lesson repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) Create(context context.Context, lesson *Lesson) error {
	t := schema.Lesson
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		t.Table, strings.Join(t.Columns(), ", "))

	now := time.Now()
	lesson.CreatedAt = now
	lesson.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		lesson.ID, lesson.CourseID, lesson.Title, lesson.ClassTime,
		lesson.ZoomLink, lesson.Status, lesson.CreatedAt, lesson.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "Lesson")
	}
	return nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Lesson, error) {
	t := schema.Lesson
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(t.Columns(), ", "), t.Table, t.ID)

	lesson := &Lesson{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&lesson.ID, &lesson.CourseID, &lesson.Title, &lesson.ClassTime,
		&lesson.ZoomLink, &lesson.Status, &lesson.CreatedAt, &lesson.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Lesson")
		}
		return nil, fmt.Errorf("postgres_lesson_repo_find_failed: %w", err)
	}
	return lesson, nil
}

func (repository *PostgresRepository) ListByCourse(context context.Context, courseID string) ([]*Lesson, error) {
	t := schema.Lesson
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1
		ORDER BY %s ASC`,
		strings.Join(t.Columns(), ", "), t.Table, t.CourseID, t.ClassTime)

	rows, err := repository.pool.Query(context, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("postgres_lesson_repo_list_failed: %w", err)
	}
	defer rows.Close()

	lessons := make([]*Lesson, 0)
	for rows.Next() {
		lesson := &Lesson{}
		if err := rows.Scan(
			&lesson.ID, &lesson.CourseID, &lesson.Title, &lesson.ClassTime,
			&lesson.ZoomLink, &lesson.Status, &lesson.CreatedAt, &lesson.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_lesson_repo_scan_failed: %w", err)
		}
		lessons = append(lessons, lesson)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_lesson_repo_rows_failed: %w", err)
	}
	return lessons, nil
}

func (repository *PostgresRepository) Update(context context.Context, lesson *Lesson) error {
	t := schema.Lesson
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1`,
		t.Table, t.Title, t.ClassTime, t.ZoomLink, t.Status, t.UpdatedAt, t.ID)

	lesson.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(context, query,
		lesson.ID, lesson.Title, lesson.ClassTime, lesson.ZoomLink, lesson.Status, lesson.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "Lesson")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Lesson")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	t := schema.Lesson
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres_lesson_repo_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Lesson")
	}
	return nil
}
