// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package submission

import "context"

// Repository defines the data access contract for submissions.
type Repository interface {
	Create(context context.Context, submission *Submission) error
	FindByID(context context.Context, id string) (*Submission, error)
	ListByAssignment(context context.Context, assignmentID string) ([]*Submission, error)
	ListByStudent(context context.Context, studentID string) ([]*Submission, error)
	Update(context context.Context, submission *Submission) error
}

// AssignmentDirectory resolves which course an assignment belongs to.
type AssignmentDirectory interface {
	CourseOf(context context.Context, assignmentID string) (string, error)
}

// CourseDirectory exposes the course ownership and enrollment facts the
// grading guards need.
type CourseDirectory interface {
	OwnerOf(context context.Context, courseID string) (string, error)
	IsEnrolled(context context.Context, courseID, studentID string) (bool, error)
}
