// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package exam

import (
	"context"
	"log/slog"

	"github.com/gambitacademy/gambit/internal/platform/apperr"
	"github.com/gambitacademy/gambit/internal/platform/validate"
	"github.com/gambitacademy/gambit/pkg/uuid"
)

// Service orchestrates exam sessions and their grading.
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

// Assign creates a new exam on a course owned by the acting coach.
func (service *Service) Assign(context context.Context, coachID string, exam *Exam) error {
	validator := &validate.Validator{}
	validator.Required(FieldCourseID, exam.CourseID).UUID(FieldCourseID, exam.CourseID).
		Required(FieldTestName, exam.TestName).MaxLen(FieldTestName, exam.TestName, 200).
		Required(FieldZoomLink, exam.ZoomLink).URL(FieldZoomLink, exam.ZoomLink)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.requireOwnership(context, exam.CourseID, coachID); err != nil {
		return err
	}

	if exam.ID == "" {
		exam.ID = uuid.New()
	}
	exam.CoachID = coachID
	exam.Status = StatusAssigned

	if err := service.repo.Create(context, exam); err != nil {
		return err
	}

	service.logger.Info("exam_assigned",
		slog.String("exam_id", exam.ID),
		slog.String("course_id", exam.CourseID),
	)
	return nil
}

// Get returns one exam. Students must be enrolled in the exam's course.
func (service *Service) Get(context context.Context, userID string, isCoach bool, id string) (*Exam, error) {
	exam, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if !isCoach {
		if err := service.requireEnrollment(context, exam.CourseID, userID); err != nil {
			return nil, err
		}
	}
	return exam, nil
}

// ListByCourse returns a course's exams, newest first.
func (service *Service) ListByCourse(context context.Context, userID string, isCoach bool, courseID string) ([]*Exam, error) {
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

// Mine returns the exams run by the acting coach.
func (service *Service) Mine(context context.Context, coachID string) ([]*Exam, error) {
	return service.repo.ListByCoach(context, coachID)
}

// Complete marks an assigned exam as held.
func (service *Service) Complete(context context.Context, coachID, id string) (*Exam, error) {
	exam, err := service.ownedExam(context, coachID, id)
	if err != nil {
		return nil, err
	}

	exam.Status = StatusCompleted
	if err := service.repo.Update(context, exam); err != nil {
		return nil, err
	}
	return exam, nil
}

// Grade records the result of a completed exam and marks it graded.
func (service *Service) Grade(context context.Context, coachID, id, result string) (*Exam, error) {
	validator := &validate.Validator{}
	validator.Required(FieldResult, result)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	exam, err := service.ownedExam(context, coachID, id)
	if err != nil {
		return nil, err
	}

	exam.Status = StatusGraded
	exam.Result = &result
	if err := service.repo.Update(context, exam); err != nil {
		return nil, err
	}

	service.logger.Info("exam_graded", slog.String("exam_id", exam.ID))
	return exam, nil
}

// Delete removes an exam run by the acting coach.
func (service *Service) Delete(context context.Context, coachID, id string) error {
	if _, err := service.ownedExam(context, coachID, id); err != nil {
		return err
	}
	return service.repo.Delete(context, id)
}

// ownedExam loads an exam and verifies the acting coach runs it.
func (service *Service) ownedExam(context context.Context, coachID, id string) (*Exam, error) {
	exam, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if exam.CoachID != coachID {
		return nil, apperr.Forbidden("You do not run this exam")
	}
	return exam, nil
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
