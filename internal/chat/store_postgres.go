// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gambitacademy/gambit/internal/platform/database/schema"
	"github.com/gambitacademy/gambit/internal/platform/dberr"
)

// # Message Repository

// PostgresMessageRepository implements MessageRepository using pgx.
type PostgresMessageRepository struct {
	pool *pgxpool.Pool
}

// NewMessageRepository creates a new PostgreSQL implementation of MessageRepository.
func NewMessageRepository(pool *pgxpool.Pool) *PostgresMessageRepository {
	return &PostgresMessageRepository{pool: pool}
}

// Create persists one message. A single INSERT, so acceptance is atomic:
// the message is either fully recorded or not recorded at all.
func (repository *PostgresMessageRepository) Create(context context.Context, message *Message) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6)`,
		schema.ChatMessage.Table, strings.Join(schema.ChatMessage.Columns(), ", "))

	_, err := repository.pool.Exec(context, query,
		message.ID,
		message.ConversationID,
		message.SenderID,
		message.ReceiverID,
		message.Content,
		message.CreatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "Message")
	}

	return nil
}

// ListByConversation returns the conversation history, oldest message first.
func (repository *PostgresMessageRepository) ListByConversation(context context.Context, conversationID string) ([]Message, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1
		ORDER BY %s ASC, %s ASC`,
		strings.Join(schema.ChatMessage.Columns(), ", "), schema.ChatMessage.Table,
		schema.ChatMessage.ConversationID,
		schema.ChatMessage.CreatedAt, schema.ChatMessage.ID,
	)

	rows, err := repository.pool.Query(context, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("postgres_message_repo_list_failed: %w", err)
	}
	defer rows.Close()

	messages := make([]Message, 0)
	for rows.Next() {
		var message Message
		if err := rows.Scan(
			&message.ID,
			&message.ConversationID,
			&message.SenderID,
			&message.ReceiverID,
			&message.Content,
			&message.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_message_repo_scan_failed: %w", err)
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_message_repo_rows_failed: %w", err)
	}

	return messages, nil
}

// # Roster Repository

// PostgresRosterRepository implements RosterRepository against the enrollment tables.
type PostgresRosterRepository struct {
	pool *pgxpool.Pool
}

// NewRosterRepository creates a new PostgreSQL implementation of RosterRepository.
func NewRosterRepository(pool *pgxpool.Pool) *PostgresRosterRepository {
	return &PostgresRosterRepository{pool: pool}
}

// ListStudentsOfCoach returns the distinct students enrolled in any course run by the coach.
func (repository *PostgresRosterRepository) ListStudentsOfCoach(context context.Context, coachID string) ([]Contact, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT a.%s, a.%s, a.%s
		FROM %s a
		JOIN %s e ON e.%s = a.%s
		JOIN %s c ON c.%s = e.%s
		WHERE c.%s = $1 AND a.%s IS NULL
		ORDER BY a.%s ASC`,
		schema.UserAccount.ID, schema.UserAccount.Username, schema.UserAccount.FullName,
		schema.UserAccount.Table,
		schema.CourseStudent.Table, schema.CourseStudent.StudentID, schema.UserAccount.ID,
		schema.Course.Table, schema.Course.ID, schema.CourseStudent.CourseID,
		schema.Course.CoachID, schema.UserAccount.DeletedAt,
		schema.UserAccount.FullName,
	)

	return repository.queryContacts(context, query, coachID)
}

// ListCoachesOfStudent returns the distinct coaches of the student's courses.
func (repository *PostgresRosterRepository) ListCoachesOfStudent(context context.Context, studentID string) ([]Contact, error) {
	query := fmt.Sprintf(`
		SELECT DISTINCT a.%s, a.%s, a.%s
		FROM %s a
		JOIN %s c ON c.%s = a.%s
		JOIN %s e ON e.%s = c.%s
		WHERE e.%s = $1 AND a.%s IS NULL
		ORDER BY a.%s ASC`,
		schema.UserAccount.ID, schema.UserAccount.Username, schema.UserAccount.FullName,
		schema.UserAccount.Table,
		schema.Course.Table, schema.Course.CoachID, schema.UserAccount.ID,
		schema.CourseStudent.Table, schema.CourseStudent.CourseID, schema.Course.ID,
		schema.CourseStudent.StudentID, schema.UserAccount.DeletedAt,
		schema.UserAccount.FullName,
	)

	return repository.queryContacts(context, query, studentID)
}

// queryContacts runs a roster query and hydrates the result rows.
func (repository *PostgresRosterRepository) queryContacts(context context.Context, query string, arg any) ([]Contact, error) {
	rows, err := repository.pool.Query(context, query, arg)
	if err != nil {
		return nil, fmt.Errorf("postgres_roster_repo_query_failed: %w", err)
	}
	defer rows.Close()

	contacts, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Contact])
	if err != nil {
		return nil, fmt.Errorf("postgres_roster_repo_collect_failed: %w", err)
	}

	return contacts, nil
}
