// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package exam

import "context"

// Repository defines the data access contract for exams.
type Repository interface {
	Create(context context.Context, exam *Exam) error
	FindByID(context context.Context, id string) (*Exam, error)
	ListByCourse(context context.Context, courseID string) ([]*Exam, error)
	ListByCoach(context context.Context, coachID string) ([]*Exam, error)
	Update(context context.Context, exam *Exam) error
	Delete(context context.Context, id string) error
}

// CourseDirectory exposes the course facts the exam guards need.
type CourseDirectory interface {
	OwnerOf(context context.Context, courseID string) (string, error)
	IsEnrolled(context context.Context, courseID, studentID string) (bool, error)
}
