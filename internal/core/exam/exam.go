// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package exam

import "time"

// Status tracks an exam through its lifecycle.
type Status string

const (
	StatusAssigned  Status = "assigned"
	StatusCompleted Status = "completed"
	StatusGraded    Status = "graded"
)

// Exam is a live assessment session run by a coach for a course.
type Exam struct {
	ID       string `json:"id"`
	CourseID string `json:"course_id"`
	CoachID  string `json:"coach_id"`
	TestName string `json:"test_name"`
	ZoomLink string `json:"zoom_link"`
	Status   Status `json:"status"`

	// Result is free-form (score, rating estimate, notes), set on grading.
	Result    *string   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validation field identifiers.
const (
	FieldCourseID = "course_id"
	FieldTestName = "test_name"
	FieldZoomLink = "zoom_link"
	FieldStatus   = "status"
	FieldResult   = "result"
)
