// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package lesson

import (
	"context"
	"log/slog"
	"time"

	"github.com/gambitacademy/gambit/internal/platform/apperr"
	"github.com/gambitacademy/gambit/internal/platform/validate"
	"github.com/gambitacademy/gambit/pkg/uuid"
)

// Service orchestrates lesson scheduling within courses.
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

// Schedule creates a new lesson on a course owned by the acting coach.
// The class time must lie in the future and the meeting link must be a
// valid http(s) URL.
func (service *Service) Schedule(context context.Context, coachID string, lesson *Lesson) error {
	validator := &validate.Validator{}
	validator.Required(FieldCourseID, lesson.CourseID).UUID(FieldCourseID, lesson.CourseID).
		Required(FieldTitle, lesson.Title).MaxLen(FieldTitle, lesson.Title, 200).
		Future(FieldClassTime, lesson.ClassTime).
		Required(FieldZoomLink, lesson.ZoomLink).URL(FieldZoomLink, lesson.ZoomLink)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.requireOwnership(context, lesson.CourseID, coachID); err != nil {
		return err
	}

	if lesson.ID == "" {
		lesson.ID = uuid.New()
	}
	lesson.Status = StatusScheduled

	if err := service.repo.Create(context, lesson); err != nil {
		return err
	}

	service.logger.Info("lesson_scheduled",
		slog.String("lesson_id", lesson.ID),
		slog.String("course_id", lesson.CourseID),
		slog.Time("class_time", lesson.ClassTime),
	)
	return nil
}

// Get returns one lesson. Students must be enrolled in the lesson's course.
func (service *Service) Get(context context.Context, userID string, isCoach bool, id string) (*Lesson, error) {
	lesson, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if !isCoach {
		if err := service.requireEnrollment(context, lesson.CourseID, userID); err != nil {
			return nil, err
		}
	}
	return lesson, nil
}

// ListByCourse returns a course's lessons in chronological order.
func (service *Service) ListByCourse(context context.Context, userID string, isCoach bool, courseID string) ([]*Lesson, error) {
	if isCoach {
		if err := service.requireOwnership(context, courseID, userID); err != nil {
			return nil, err
		}
	} else {
		if err := service.requireEnrollment(context, courseID, userID); err != nil {
			return nil, err
		}
	}
	return service.repo.ListByCourse(context, courseID)
}

// Patch carries a partial lesson update; nil fields are left untouched.
type Patch struct {
	Title     *string
	ClassTime *time.Time
	ZoomLink  *string
	Status    *Status
}

// Update applies partial modifications to a lesson on an owned course.
func (service *Service) Update(context context.Context, coachID, id string, patch Patch) (*Lesson, error) {
	lesson, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if err := service.requireOwnership(context, lesson.CourseID, coachID); err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if patch.Title != nil {
		validator.Required(FieldTitle, *patch.Title).MaxLen(FieldTitle, *patch.Title, 200)
		lesson.Title = *patch.Title
	}
	if patch.ClassTime != nil {
		validator.Future(FieldClassTime, *patch.ClassTime)
		lesson.ClassTime = *patch.ClassTime
	}
	if patch.ZoomLink != nil {
		validator.Required(FieldZoomLink, *patch.ZoomLink).URL(FieldZoomLink, *patch.ZoomLink)
		lesson.ZoomLink = *patch.ZoomLink
	}
	if patch.Status != nil {
		validator.OneOf(FieldStatus, string(*patch.Status),
			string(StatusScheduled), string(StatusCompleted), string(StatusArchived))
		lesson.Status = *patch.Status
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

// Delete removes a lesson from an owned course.
func (service *Service) Delete(context context.Context, coachID, id string) error {
	lesson, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}
	if err := service.requireOwnership(context, lesson.CourseID, coachID); err != nil {
		return err
	}
	return service.repo.Delete(context, id)
}

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
