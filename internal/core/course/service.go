// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package course

import (
	"context"
	"log/slog"

	"github.com/gambitacademy/gambit/internal/platform/apperr"
	"github.com/gambitacademy/gambit/internal/platform/validate"
	"github.com/gambitacademy/gambit/pkg/slug"
	"github.com/gambitacademy/gambit/pkg/uuid"
)

// # Service Layer

// Service orchestrates the business logic for the course catalogue and
// enrollment management.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Course Lookups

/*
ListCourses retrieves a paginated collection of active courses.

Parameters:
  - context: context.Context
  - limit: int (Max records to return)
  - offset: int (Pagination cursor)

Returns:
  - []*Course: Slice of course records
  - int: Total count of active courses (for pagination metadata)
  - error: Repository level errors
*/
func (service *Service) ListCourses(context context.Context, limit, offset int) ([]*Course, int, error) {
	return service.repo.List(context, limit, offset)
}

/*
GetCourse fetches a single course by UUID or SEO slug.

Description: If the identifier matches the UUID format, it performs a
primary key lookup; otherwise, it resolves via the unique URL slug.

Parameters:
  - context: context.Context
  - identifier: string (UUID or Slug)

Returns:
  - *Course: The hydrated domain entity
  - error: apperr.NotFound if no match is found
*/
func (service *Service) GetCourse(context context.Context, identifier string) (*Course, error) {
	if uuid.IsValid(identifier) {
		return service.repo.FindByID(context, identifier)
	}
	return service.repo.FindBySlug(context, identifier)
}

// MyCourses returns the courses visible on a user's dashboard: courses run
// by a coach, or courses a student is enrolled in.
func (service *Service) MyCourses(context context.Context, userID string, isCoach bool) ([]*Course, error) {
	if isCoach {
		return service.repo.ListByCoach(context, userID)
	}
	return service.repo.ListByStudent(context, userID)
}

// # Course Management

/*
CreateCourse initialises a new course owned by the acting coach.

Description: Validates the metadata, generates a stable UUID v7 identity
and an SEO-friendly slug, then persists via the repository.

Parameters:
  - context: context.Context
  - course: *Course (Title, Description; CoachID set from the caller)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) CreateCourse(context context.Context, course *Course) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, course.Title).MaxLen(FieldTitle, course.Title, 200)

	if err := validator.Err(); err != nil {
		return err
	}

	if course.ID == "" {
		course.ID = uuid.New()
	}
	if course.Slug == "" {
		course.Slug = slug.From(course.Title)
	}

	if err := service.repo.Create(context, course); err != nil {
		return err
	}

	service.logger.Info("course_created",
		slog.String("course_id", course.ID),
		slog.String("coach_id", course.CoachID),
	)
	return nil
}

/*
UpdateCourse applies partial modifications to a course owned by the caller.

Description: Non-nil input fields overwrite existing values. A changed
title regenerates the slug. Only the owning coach may update.

Parameters:
  - context: context.Context
  - courseID: string
  - coachID: string (The acting coach)
  - title: *string
  - description: *string

Returns:
  - *Course: The updated entity
  - error: apperr.Forbidden when the caller does not own the course
*/
func (service *Service) UpdateCourse(context context.Context, courseID, coachID string, title, description *string) (*Course, error) {
	course, err := service.ownedCourse(context, courseID, coachID)
	if err != nil {
		return nil, err
	}

	if title != nil {
		validator := &validate.Validator{}
		validator.Required(FieldTitle, *title).MaxLen(FieldTitle, *title, 200)
		if err := validator.Err(); err != nil {
			return nil, err
		}
		course.Title = *title
		course.Slug = slug.From(*title)
	}
	if description != nil {
		course.Description = description
	}

	if err := service.repo.Update(context, course); err != nil {
		return nil, err
	}
	return course, nil
}

/*
DeleteCourse soft-deletes a course owned by the caller.

Parameters:
  - context: context.Context
  - courseID: string
  - coachID: string (The acting coach)

Returns:
  - error: apperr.Forbidden when the caller does not own the course
*/
func (service *Service) DeleteCourse(context context.Context, courseID, coachID string) error {
	if _, err := service.ownedCourse(context, courseID, coachID); err != nil {
		return err
	}

	if err := service.repo.SoftDelete(context, courseID); err != nil {
		return err
	}

	service.logger.Info("course_deleted",
		slog.String("course_id", courseID),
		slog.String("coach_id", coachID),
	)
	return nil
}

// # Enrollment

/*
EnrollStudent adds a student to a course owned by the acting coach.

Parameters:
  - context: context.Context
  - courseID: string
  - coachID: string (The acting coach)
  - studentID: string

Returns:
  - error: apperr.Forbidden on foreign courses, apperr.Conflict when
    the student is already enrolled
*/
func (service *Service) EnrollStudent(context context.Context, courseID, coachID, studentID string) error {
	validator := &validate.Validator{}
	validator.Required(FieldStudentID, studentID).UUID(FieldStudentID, studentID)
	if err := validator.Err(); err != nil {
		return err
	}

	if _, err := service.ownedCourse(context, courseID, coachID); err != nil {
		return err
	}

	return service.repo.Enroll(context, courseID, studentID)
}

// UnenrollStudent removes a student from a course owned by the acting coach.
func (service *Service) UnenrollStudent(context context.Context, courseID, coachID, studentID string) error {
	if _, err := service.ownedCourse(context, courseID, coachID); err != nil {
		return err
	}
	return service.repo.Unenroll(context, courseID, studentID)
}

// Students returns the roster of a course owned by the acting coach.
func (service *Service) Students(context context.Context, courseID, coachID string) ([]Student, error) {
	if _, err := service.ownedCourse(context, courseID, coachID); err != nil {
		return nil, err
	}
	return service.repo.ListStudents(context, courseID)
}

// # Cross-Domain Guards

// OwnerOf reports the coach owning a course. Sibling domains use it to
// enforce coach-owns-course before mutating course-scoped records.
func (service *Service) OwnerOf(context context.Context, courseID string) (string, error) {
	course, err := service.repo.FindByID(context, courseID)
	if err != nil {
		return "", err
	}
	return course.CoachID, nil
}

// IsEnrolled reports whether a student is enrolled in a course.
func (service *Service) IsEnrolled(context context.Context, courseID, studentID string) (bool, error) {
	return service.repo.IsEnrolled(context, courseID, studentID)
}

// ownedCourse loads a course and verifies the caller owns it.
func (service *Service) ownedCourse(context context.Context, courseID, coachID string) (*Course, error) {
	course, err := service.repo.FindByID(context, courseID)
	if err != nil {
		return nil, err
	}
	if course.CoachID != coachID {
		return nil, apperr.Forbidden("You do not own this course")
	}
	return course, nil
}
