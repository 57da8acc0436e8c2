// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package assignment

import "context"

// Repository defines the data access contract for assignments.
type Repository interface {
	Create(context context.Context, assignment *Assignment) error
	FindByID(context context.Context, id string) (*Assignment, error)
	ListByCourse(context context.Context, courseID string) ([]*Assignment, error)
	Update(context context.Context, assignment *Assignment) error
	Delete(context context.Context, id string) error
}

// CourseDirectory is the narrow view of the course domain this package
// needs: ownership and enrollment facts for authorization decisions.
type CourseDirectory interface {
	OwnerOf(context context.Context, courseID string) (string, error)
	IsEnrolled(context context.Context, courseID, studentID string) (bool, error)
}
