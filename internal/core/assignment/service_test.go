// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package assignment_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gambitacademy/gambit/internal/core/assignment"
	"github.com/gambitacademy/gambit/internal/platform/apperr"
	"github.com/gambitacademy/gambit/pkg/pointer"
)

const (
	coachID   = "018f0000-0000-7000-8000-0000000000c1"
	studentID = "018f0000-0000-7000-8000-0000000000c2"
	courseID  = "018f0000-0000-7000-8000-0000000000c3"
)

type fakeRepository struct {
	assignments map[string]*assignment.Assignment
}

func (r *fakeRepository) Create(_ context.Context, a *assignment.Assignment) error {
	r.assignments[a.ID] = a
	return nil
}

func (r *fakeRepository) FindByID(_ context.Context, id string) (*assignment.Assignment, error) {
	if a, ok := r.assignments[id]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, apperr.NotFound("Assignment")
}

func (r *fakeRepository) ListByCourse(_ context.Context, courseID string) ([]*assignment.Assignment, error) {
	result := make([]*assignment.Assignment, 0)
	for _, a := range r.assignments {
		if a.CourseID == courseID {
			clone := *a
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeRepository) Update(_ context.Context, a *assignment.Assignment) error {
	if _, ok := r.assignments[a.ID]; !ok {
		return apperr.NotFound("Assignment")
	}
	clone := *a
	r.assignments[a.ID] = &clone
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.assignments[id]; !ok {
		return apperr.NotFound("Assignment")
	}
	delete(r.assignments, id)
	return nil
}

type fakeCourseDirectory struct {
	owner    string
	enrolled bool
}

func (d *fakeCourseDirectory) OwnerOf(_ context.Context, _ string) (string, error) {
	return d.owner, nil
}

func (d *fakeCourseDirectory) IsEnrolled(_ context.Context, _, _ string) (bool, error) {
	return d.enrolled, nil
}

func newTestService() (*assignment.Service, *fakeCourseDirectory) {
	repo := &fakeRepository{assignments: make(map[string]*assignment.Assignment)}
	courses := &fakeCourseDirectory{owner: coachID, enrolled: true}
	return assignment.NewService(repo, courses, slog.Default()), courses
}

func setAssignment(t *testing.T, service *assignment.Service) *assignment.Assignment {
	t.Helper()
	a := &assignment.Assignment{
		CourseID:    courseID,
		Technique:   "Lucena position",
		Description: "Build the bridge from the given rook endgame.",
		DueDate:     time.Now().Add(72 * time.Hour),
		Solution:    pointer.To("1. Rf4 followed by Ke2-d3 and the bridge."),
	}
	require.NoError(t, service.Create(context.Background(), coachID, a))
	return a
}

/*
TestService_Create verifies validation of the due date and course ownership.
*/
func TestService_Create(t *testing.T) {
	service, courses := newTestService()
	setAssignment(t, service)

	t.Run("past due date rejected", func(t *testing.T) {
		err := service.Create(context.Background(), coachID, &assignment.Assignment{
			CourseID:    courseID,
			Technique:   "Philidor position",
			Description: "Hold the draw.",
			DueDate:     time.Now().Add(-time.Hour),
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("foreign course forbidden", func(t *testing.T) {
		courses.owner = "someone-else"
		defer func() { courses.owner = coachID }()

		err := service.Create(context.Background(), coachID, &assignment.Assignment{
			CourseID:    courseID,
			Technique:   "Philidor position",
			Description: "Hold the draw.",
			DueDate:     time.Now().Add(time.Hour),
		})
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	})
}

/*
TestService_SolutionVisibility verifies the solution is withheld from
students but visible to the coach.
*/
func TestService_SolutionVisibility(t *testing.T) {
	service, courses := newTestService()
	created := setAssignment(t, service)
	ctx := context.Background()

	forCoach, err := service.Get(ctx, coachID, true, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, forCoach.Solution)

	forStudent, err := service.Get(ctx, studentID, false, created.ID)
	require.NoError(t, err)
	assert.Nil(t, forStudent.Solution)

	listed, err := service.ListByCourse(ctx, studentID, false, courseID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Nil(t, listed[0].Solution)

	t.Run("unenrolled student forbidden", func(t *testing.T) {
		courses.enrolled = false
		defer func() { courses.enrolled = true }()

		_, err := service.Get(ctx, studentID, false, created.ID)
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	})
}
