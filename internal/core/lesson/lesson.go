// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package lesson

import "time"

// Status tracks a lesson through its lifecycle.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

// Lesson is a scheduled online class within a course.
type Lesson struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"course_id"`
	Title     string    `json:"title"`
	ClassTime time.Time `json:"class_time"`
	ZoomLink  string    `json:"zoom_link"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validation field identifiers.
const (
	FieldCourseID  = "course_id"
	FieldTitle     = "title"
	FieldClassTime = "class_time"
	FieldZoomLink  = "zoom_link"
	FieldStatus    = "status"
)
