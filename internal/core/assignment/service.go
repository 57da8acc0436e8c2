// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package assignment

import (
	"context"
	"log/slog"

	"github.com/gambitacademy/gambit/internal/platform/apperr"
	"github.com/gambitacademy/gambit/internal/platform/validate"
	"github.com/gambitacademy/gambit/pkg/uuid"
)

// Service orchestrates homework management for courses.
type Service struct {
	repo    Repository
	courses CourseDirectory
	logger  *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repo Repository, courses CourseDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		courses: courses,
		logger:  logger,
	}
}

/*
Create sets a new assignment on a course owned by the acting coach.

Description: Validates the technique, description, and a future due date,
then persists with a generated UUID v7 identity.

Parameters:
  - context: context.Context
  - coachID: string (The acting coach)
  - assignment: *Assignment

Returns:
  - error: Validation errors, or apperr.Forbidden on foreign courses
*/
func (service *Service) Create(context context.Context, coachID string, assignment *Assignment) error {
	validator := &validate.Validator{}
	validator.Required(FieldCourseID, assignment.CourseID).UUID(FieldCourseID, assignment.CourseID).
		Required(FieldTechnique, assignment.Technique).MaxLen(FieldTechnique, assignment.Technique, 200).
		Required(FieldDescription, assignment.Description).
		Future(FieldDueDate, assignment.DueDate)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.requireOwnership(context, assignment.CourseID, coachID); err != nil {
		return err
	}

	if assignment.ID == "" {
		assignment.ID = uuid.New()
	}

	if err := service.repo.Create(context, assignment); err != nil {
		return err
	}

	service.logger.Info("assignment_created",
		slog.String("assignment_id", assignment.ID),
		slog.String("course_id", assignment.CourseID),
	)
	return nil
}

// Get returns one assignment. Students only see assignments of courses they
// are enrolled in, and never the solution.
func (service *Service) Get(context context.Context, userID string, isCoach bool, id string) (*Assignment, error) {
	assignment, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if !isCoach {
		if err := service.requireEnrollment(context, assignment.CourseID, userID); err != nil {
			return nil, err
		}
		assignment.Solution = nil
	}
	return assignment, nil
}

// ListByCourse returns a course's assignments ordered by due date. The same
// visibility rules as Get apply.
func (service *Service) ListByCourse(context context.Context, userID string, isCoach bool, courseID string) ([]*Assignment, error) {
	if isCoach {
		if err := service.requireOwnership(context, courseID, userID); err != nil {
			return nil, err
		}
	} else {
		if err := service.requireEnrollment(context, courseID, userID); err != nil {
			return nil, err
		}
	}

	assignments, err := service.repo.ListByCourse(context, courseID)
	if err != nil {
		return nil, err
	}

	if !isCoach {
		for _, assignment := range assignments {
			assignment.Solution = nil
		}
	}
	return assignments, nil
}

/*
Update applies partial modifications to an assignment.

Parameters:
  - context: context.Context
  - coachID: string (The acting coach)
  - id: string
  - patch: Patch (nil fields are left untouched)

Returns:
  - *Assignment: The updated entity
  - error: apperr.Forbidden when the coach does not own the course
*/
func (service *Service) Update(context context.Context, coachID, id string, patch Patch) (*Assignment, error) {
	assignment, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if err := service.requireOwnership(context, assignment.CourseID, coachID); err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if patch.Technique != nil {
		validator.Required(FieldTechnique, *patch.Technique).MaxLen(FieldTechnique, *patch.Technique, 200)
		assignment.Technique = *patch.Technique
	}
	if patch.Description != nil {
		validator.Required(FieldDescription, *patch.Description)
		assignment.Description = *patch.Description
	}
	if patch.DueDate != nil {
		validator.Future(FieldDueDate, *patch.DueDate)
		assignment.DueDate = *patch.DueDate
	}
	if patch.Solution != nil {
		assignment.Solution = patch.Solution
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// Delete removes an assignment from a course owned by the acting coach.
func (service *Service) Delete(context context.Context, coachID, id string) error {
	assignment, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}
	if err := service.requireOwnership(context, assignment.CourseID, coachID); err != nil {
		return err
	}
	return service.repo.Delete(context, id)
}

// CourseOf reports the course an assignment belongs to. The submission
// domain uses it to walk from a submission up to the owning coach.
func (service *Service) CourseOf(context context.Context, assignmentID string) (string, error) {
	assignment, err := service.repo.FindByID(context, assignmentID)
	if err != nil {
		return "", err
	}
	return assignment.CourseID, nil
}

// requireOwnership checks the coach owns the course.
func (service *Service) requireOwnership(context context.Context, courseID, coachID string) error {
	ownerID, err := service.courses.OwnerOf(context, courseID)
	if err != nil {
		return err
	}
	if ownerID != coachID {
		return apperr.Forbidden("You do not own this course")
	}
	return nil
}

// requireEnrollment checks the student is enrolled in the course.
func (service *Service) requireEnrollment(context context.Context, courseID, studentID string) error {
	enrolled, err := service.courses.IsEnrolled(context, courseID, studentID)
	if err != nil {
		return err
	}
	if !enrolled {
		return apperr.Forbidden("You are not enrolled in this course")
	}
	return nil
}
