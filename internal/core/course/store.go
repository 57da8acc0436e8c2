// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package course

import "context"

// Repository defines the data access contract for courses and enrollment.
type Repository interface {
	Create(context context.Context, course *Course) error
	FindByID(context context.Context, id string) (*Course, error)
	FindBySlug(context context.Context, slug string) (*Course, error)
	List(context context.Context, limit, offset int) ([]*Course, int, error)
	ListByCoach(context context.Context, coachID string) ([]*Course, error)
	ListByStudent(context context.Context, studentID string) ([]*Course, error)
	Update(context context.Context, course *Course) error
	SoftDelete(context context.Context, id string) error

	Enroll(context context.Context, courseID, studentID string) error
	Unenroll(context context.Context, courseID, studentID string) error
	ListStudents(context context.Context, courseID string) ([]Student, error)
	IsEnrolled(context context.Context, courseID, studentID string) (bool, error)
}
