// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package course

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

// NewPostgresRepository creates a new PostgreSQL course repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// courseColumns is the SELECT list shared by every course lookup.
func courseColumns() string {
	t := schema.Course
	return strings.Join([]string{
		t.ID, t.CoachID, t.Title, t.Slug, t.Description, t.CreatedAt, t.UpdatedAt,
	}, ", ")
}

func scanCourse(row pgx.Row) (*Course, error) {
	course := &Course{}
	err := row.Scan(
		&course.ID,
		&course.CoachID,
		&course.Title,
		&course.Slug,
		&course.Description,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Course")
		}
		return nil, fmt.Errorf("postgres_course_repo_scan_failed: %w", err)
	}
	return course, nil
}

func (repository *PostgresRepository) Create(context context.Context, course *Course) error {
	t := schema.Course
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.Table, t.ID, t.CoachID, t.Title, t.Slug, t.Description, t.CreatedAt, t.UpdatedAt)

	now := time.Now()
	course.CreatedAt = now
	course.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		course.ID, course.CoachID, course.Title, course.Slug, course.Description,
		course.CreatedAt, course.UpdatedAt,
	)
	if err != nil {
		return dberr.Wrap(err, "Course")
	}
	return nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Course, error) {
	t := schema.Course
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		courseColumns(), t.Table, t.ID, t.DeletedAt)
	return scanCourse(repository.pool.QueryRow(context, query, id))
}

func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Course, error) {
	t := schema.Course
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		courseColumns(), t.Table, t.Slug, t.DeletedAt)
	return scanCourse(repository.pool.QueryRow(context, query, slug))
}

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Course, int, error) {
	t := schema.Course

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s IS NULL`, t.Table, t.DeletedAt)
	if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_course_repo_count_failed: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s IS NULL
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2`,
		courseColumns(), t.Table, t.DeletedAt, t.CreatedAt)

	courses, err := repository.queryCourses(context, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

func (repository *PostgresRepository) ListByCoach(context context.Context, coachID string) ([]*Course, error) {
	t := schema.Course
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1 AND %s IS NULL
		ORDER BY %s DESC`,
		courseColumns(), t.Table, t.CoachID, t.DeletedAt, t.CreatedAt)
	return repository.queryCourses(context, query, coachID)
}

func (repository *PostgresRepository) ListByStudent(context context.Context, studentID string) ([]*Course, error) {
	t := schema.Course
	e := schema.CourseStudent
	query := fmt.Sprintf(`
		SELECT %s FROM %s c
		JOIN %s e ON e.%s = c.%s
		WHERE e.%s = $1 AND c.%s IS NULL
		ORDER BY c.%s DESC`,
		prefixColumns("c"), t.Table,
		e.Table, e.CourseID, t.ID,
		e.StudentID, t.DeletedAt, t.CreatedAt)
	return repository.queryCourses(context, query, studentID)
}

func (repository *PostgresRepository) Update(context context.Context, course *Course) error {
	t := schema.Course
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1 AND %s IS NULL`,
		t.Table, t.Title, t.Slug, t.Description, t.UpdatedAt, t.ID, t.DeletedAt)

	course.UpdatedAt = time.Now()
	tag, err := repository.pool.Exec(context, query,
		course.ID, course.Title, course.Slug, course.Description, course.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "Course")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Course")
	}
	return nil
}

func (repository *PostgresRepository) SoftDelete(context context.Context, id string) error {
	t := schema.Course
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1 AND %s IS NULL`,
		t.Table, t.DeletedAt, t.ID, t.DeletedAt)

	tag, err := repository.pool.Exec(context, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_course_repo_soft_delete_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Course")
	}
	return nil
}

// # Enrollment

func (repository *PostgresRepository) Enroll(context context.Context, courseID, studentID string) error {
	e := schema.CourseStudent
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		e.Table, e.CourseID, e.StudentID, e.EnrolledAt)

	_, err := repository.pool.Exec(context, query, courseID, studentID, time.Now())
	if err != nil {
		return dberr.Wrap(err, "Enrollment")
	}
	return nil
}

func (repository *PostgresRepository) Unenroll(context context.Context, courseID, studentID string) error {
	e := schema.CourseStudent
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		e.Table, e.CourseID, e.StudentID)

	tag, err := repository.pool.Exec(context, query, courseID, studentID)
	if err != nil {
		return fmt.Errorf("postgres_course_repo_unenroll_failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Enrollment")
	}
	return nil
}

func (repository *PostgresRepository) ListStudents(context context.Context, courseID string) ([]Student, error) {
	a := schema.UserAccount
	e := schema.CourseStudent
	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s
		FROM %s a
		JOIN %s e ON e.%s = a.%s
		WHERE e.%s = $1 AND a.%s IS NULL
		ORDER BY a.%s ASC`,
		a.ID, a.Username, a.FullName,
		a.Table,
		e.Table, e.StudentID, a.ID,
		e.CourseID, a.DeletedAt,
		a.FullName)

	rows, err := repository.pool.Query(context, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("postgres_course_repo_list_students_failed: %w", err)
	}
	defer rows.Close()

	students, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Student])
	if err != nil {
		return nil, fmt.Errorf("postgres_course_repo_collect_students_failed: %w", err)
	}
	return students, nil
}

func (repository *PostgresRepository) IsEnrolled(context context.Context, courseID, studentID string) (bool, error) {
	e := schema.CourseStudent
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`,
		e.Table, e.CourseID, e.StudentID)

	var enrolled bool
	if err := repository.pool.QueryRow(context, query, courseID, studentID).Scan(&enrolled); err != nil {
		return false, fmt.Errorf("postgres_course_repo_is_enrolled_failed: %w", err)
	}
	return enrolled, nil
}

// queryCourses runs a course query and hydrates the result rows.
func (repository *PostgresRepository) queryCourses(context context.Context, query string, args ...any) ([]*Course, error) {
	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres_course_repo_query_failed: %w", err)
	}
	defer rows.Close()

	courses := make([]*Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_course_repo_rows_failed: %w", err)
	}
	return courses, nil
}

// prefixColumns qualifies the course SELECT list with a table alias.
func prefixColumns(alias string) string {
	columns := strings.Split(courseColumns(), ", ")
	for i, column := range columns {
		columns[i] = alias + "." + column
	}
	return strings.Join(columns, ", ")
}
