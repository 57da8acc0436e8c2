// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package submission

import (
	"context"
	"log/slog"

	"github.com/gambitacademy/gambit/internal/platform/apperr"
	"github.com/gambitacademy/gambit/internal/platform/validate"
	"github.com/gambitacademy/gambit/pkg/uuid"
)

// Service orchestrates the submit-and-grade lifecycle.
type Service struct {
	repo        Repository
	assignments AssignmentDirectory
	courses     CourseDirectory
	logger      *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repo Repository, assignments AssignmentDirectory, courses CourseDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		assignments: assignments,
		courses:     courses,
		logger:      logger,
	}
}

/*
Submit records a student's answer to an assignment.

Description: Validates the content and the student's enrollment in the
assignment's course, then persists the submission as [StatusSubmitted].
A second submission to the same assignment conflicts.

Parameters:
  - context: context.Context
  - studentID: string (The acting student)
  - assignmentID: string
  - content: string

Returns:
  - *Submission: The recorded submission
  - error: Validation, enrollment, or persistence failures
*/
func (service *Service) Submit(context context.Context, studentID, assignmentID, content string) (*Submission, error) {
	validator := &validate.Validator{}
	validator.Required(FieldAssignmentID, assignmentID).UUID(FieldAssignmentID, assignmentID).
		Required(FieldContent, content)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	courseID, err := service.assignments.CourseOf(context, assignmentID)
	if err != nil {
		return nil, err
	}
	enrolled, err := service.courses.IsEnrolled(context, courseID, studentID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, apperr.Forbidden("You are not enrolled in this course")
	}

	submission := &Submission{
		ID:           uuid.New(),
		AssignmentID: assignmentID,
		StudentID:    studentID,
		Content:      content,
		Status:       StatusSubmitted,
	}
	if err := service.repo.Create(context, submission); err != nil {
		return nil, err
	}

	service.logger.Info("submission_recorded",
		slog.String("submission_id", submission.ID),
		slog.String("assignment_id", assignmentID),
	)
	return submission, nil
}

/*
Grade records the coach's verdict on a submission.

Description: Only the coach owning the course behind the submission's
assignment may grade. The verdict must be pass or fail; optional feedback
is stored verbatim.

Parameters:
  - context: context.Context
  - coachID: string (The acting coach)
  - submissionID: string
  - verdict: Status (StatusPass or StatusFail)
  - feedback: *string

Returns:
  - *Submission: The graded submission
  - error: apperr.Forbidden for a foreign coach, validation errors otherwise
*/
func (service *Service) Grade(context context.Context, coachID, submissionID string, verdict Status, feedback *string) (*Submission, error) {
	validator := &validate.Validator{}
	validator.OneOf(FieldStatus, string(verdict), string(StatusPass), string(StatusFail))
	if err := validator.Err(); err != nil {
		return nil, err
	}

	submission, err := service.repo.FindByID(context, submissionID)
	if err != nil {
		return nil, err
	}
	if err := service.requireGradingRights(context, submission, coachID); err != nil {
		return nil, err
	}

	submission.Status = verdict
	if feedback != nil {
		submission.Feedback = feedback
	}
	if err := service.repo.Update(context, submission); err != nil {
		return nil, err
	}

	service.logger.Info("submission_graded",
		slog.String("submission_id", submission.ID),
		slog.String("verdict", string(verdict)),
	)
	return submission, nil
}

// ListByAssignment returns every submission for an assignment. Coach only;
// ownership of the underlying course is enforced.
func (service *Service) ListByAssignment(context context.Context, coachID, assignmentID string) ([]*Submission, error) {
	courseID, err := service.assignments.CourseOf(context, assignmentID)
	if err != nil {
		return nil, err
	}
	ownerID, err := service.courses.OwnerOf(context, courseID)
	if err != nil {
		return nil, err
	}
	if ownerID != coachID {
		return nil, apperr.Forbidden("You do not own this course")
	}
	return service.repo.ListByAssignment(context, assignmentID)
}

// Mine returns the student's own submissions, newest first.
func (service *Service) Mine(context context.Context, studentID string) ([]*Submission, error) {
	return service.repo.ListByStudent(context, studentID)
}

// requireGradingRights walks submission -> assignment -> course and checks
// the coach owns that course.
func (service *Service) requireGradingRights(context context.Context, submission *Submission, coachID string) error {
	courseID, err := service.assignments.CourseOf(context, submission.AssignmentID)
	if err != nil {
		return err
	}
	ownerID, err := service.courses.OwnerOf(context, courseID)
	if err != nil {
		return err
	}
	if ownerID != coachID {
		return apperr.Forbidden("You do not own this course")
	}
	return nil
}
