// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package assignment

import "time"

// Assignment represents homework set for a course, typically a position or
// technique the students must work through before the next lesson.
type Assignment struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"course_id"`
	Technique   string    `json:"technique"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`

	// Solution stays hidden from students until the coach publishes it.
	Solution  *string   `json:"solution,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Technique   *string
	Description *string
	DueDate     *time.Time
	Solution    *string
}

// Validation field identifiers.
const (
	FieldCourseID    = "course_id"
	FieldTechnique   = "technique"
	FieldDescription = "description"
	FieldDueDate     = "due_date"
)
