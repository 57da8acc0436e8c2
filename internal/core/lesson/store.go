// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package lesson

import "context"

// Repository defines the data access contract for lessons.
type Repository interface {
	Create(context context.Context, lesson *Lesson) error
	FindByID(context context.Context, id string) (*Lesson, error)
	ListByCourse(context context.Context, courseID string) ([]*Lesson, error)
	Update(context context.Context, lesson *Lesson) error
	Delete(context context.Context, id string) error
}

// CourseDirectory exposes the course facts the scheduling guards need.
type CourseDirectory interface {
	OwnerOf(context context.Context, courseID string) (string, error)
	IsEnrolled(context context.Context, courseID, studentID string) (bool, error)
}
