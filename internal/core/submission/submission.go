// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package submission

import "time"

// Status tracks a submission through the grading lifecycle.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSubmitted Status = "submitted"
	StatusPass      Status = "pass"
	StatusFail      Status = "fail"
)

// Submission is a student's answer to an assignment.
type Submission struct {
	ID           string    `json:"id"`
	AssignmentID string    `json:"assignment_id"`
	StudentID    string    `json:"student_id"`
	Content      string    `json:"content"`
	Status       Status    `json:"status"`
	Feedback     *string   `json:"feedback"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validation field identifiers.
const (
	FieldAssignmentID = "assignment_id"
	FieldContent      = "content"
	FieldStatus       = "status"
)
