// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package course

import "time"

// Course represents a coaching programme run by a single coach.
type Course struct {
	ID          string    `json:"id"`
	CoachID     string    `json:"coach_id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Student is the roster projection of an enrolled account.
type Student struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
}

// Validation field identifiers.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStudentID   = "student_id"
)
