// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package course_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gambitacademy/gambit/internal/core/course"
	"github.com/gambitacademy/gambit/internal/platform/apperr"
	"github.com/gambitacademy/gambit/pkg/pointer"
)

const (
	coachID      = "018f0000-0000-7000-8000-0000000000aa"
	otherCoachID = "018f0000-0000-7000-8000-0000000000ab"
	studentID    = "018f0000-0000-7000-8000-0000000000ac"
)

// fakeRepository is an in-memory Repository.
type fakeRepository struct {
	courses     map[string]*course.Course
	enrollments map[string][]string
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		courses:     make(map[string]*course.Course),
		enrollments: make(map[string][]string),
	}
}

func (r *fakeRepository) Create(_ context.Context, c *course.Course) error {
	r.courses[c.ID] = c
	return nil
}

func (r *fakeRepository) FindByID(_ context.Context, id string) (*course.Course, error) {
	if c, ok := r.courses[id]; ok {
		return c, nil
	}
	return nil, apperr.NotFound("Course")
}

func (r *fakeRepository) FindBySlug(_ context.Context, slug string) (*course.Course, error) {
	for _, c := range r.courses {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, apperr.NotFound("Course")
}

func (r *fakeRepository) List(_ context.Context, limit, offset int) ([]*course.Course, int, error) {
	all := make([]*course.Course, 0, len(r.courses))
	for _, c := range r.courses {
		all = append(all, c)
	}
	return all, len(all), nil
}

func (r *fakeRepository) ListByCoach(_ context.Context, coachID string) ([]*course.Course, error) {
	result := make([]*course.Course, 0)
	for _, c := range r.courses {
		if c.CoachID == coachID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *fakeRepository) ListByStudent(_ context.Context, studentID string) ([]*course.Course, error) {
	result := make([]*course.Course, 0)
	for courseID, students := range r.enrollments {
		for _, s := range students {
			if s == studentID {
				result = append(result, r.courses[courseID])
			}
		}
	}
	return result, nil
}

func (r *fakeRepository) Update(_ context.Context, c *course.Course) error {
	if _, ok := r.courses[c.ID]; !ok {
		return apperr.NotFound("Course")
	}
	r.courses[c.ID] = c
	return nil
}

func (r *fakeRepository) SoftDelete(_ context.Context, id string) error {
	if _, ok := r.courses[id]; !ok {
		return apperr.NotFound("Course")
	}
	delete(r.courses, id)
	return nil
}

func (r *fakeRepository) Enroll(_ context.Context, courseID, studentID string) error {
	for _, s := range r.enrollments[courseID] {
		if s == studentID {
			return apperr.Conflict("Enrollment already exists")
		}
	}
	r.enrollments[courseID] = append(r.enrollments[courseID], studentID)
	return nil
}

func (r *fakeRepository) Unenroll(_ context.Context, courseID, studentID string) error {
	students := r.enrollments[courseID]
	for i, s := range students {
		if s == studentID {
			r.enrollments[courseID] = append(students[:i], students[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Enrollment")
}

func (r *fakeRepository) ListStudents(_ context.Context, courseID string) ([]course.Student, error) {
	result := make([]course.Student, 0)
	for _, s := range r.enrollments[courseID] {
		result = append(result, course.Student{ID: s})
	}
	return result, nil
}

func (r *fakeRepository) IsEnrolled(_ context.Context, courseID, studentID string) (bool, error) {
	for _, s := range r.enrollments[courseID] {
		if s == studentID {
			return true, nil
		}
	}
	return false, nil
}

func newTestService(t *testing.T) (*course.Service, *fakeRepository) {
	t.Helper()
	repo := newFakeRepository()
	return course.NewService(repo, slog.Default()), repo
}

func createCourse(t *testing.T, service *course.Service, ownerID string) *course.Course {
	t.Helper()
	c := &course.Course{
		CoachID: ownerID,
		Title:   "Sicilian Defence Fundamentals",
	}
	require.NoError(t, service.CreateCourse(context.Background(), c))
	return c
}

/*
TestService_CreateCourse verifies identity and slug generation plus title
validation.
*/
func TestService_CreateCourse(t *testing.T) {
	service, _ := newTestService(t)

	c := createCourse(t, service, coachID)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "sicilian-defence-fundamentals", c.Slug)

	t.Run("missing title rejected", func(t *testing.T) {
		err := service.CreateCourse(context.Background(), &course.Course{CoachID: coachID})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

/*
TestService_GetCourse verifies lookup by UUID and by slug.
*/
func TestService_GetCourse(t *testing.T) {
	service, _ := newTestService(t)
	created := createCourse(t, service, coachID)

	byID, err := service.GetCourse(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	bySlug, err := service.GetCourse(context.Background(), created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)
}

/*
TestService_UpdateCourse verifies partial updates, slug regeneration, and the
ownership guard.
*/
func TestService_UpdateCourse(t *testing.T) {
	service, _ := newTestService(t)
	created := createCourse(t, service, coachID)
	ctx := context.Background()

	updated, err := service.UpdateCourse(ctx, created.ID, coachID,
		pointer.To("French Defence Fundamentals"), nil)
	require.NoError(t, err)
	assert.Equal(t, "French Defence Fundamentals", updated.Title)
	assert.Equal(t, "french-defence-fundamentals", updated.Slug)

	t.Run("description only leaves title", func(t *testing.T) {
		updated, err := service.UpdateCourse(ctx, created.ID, coachID,
			nil, pointer.To("Pawn structures and plans."))
		require.NoError(t, err)
		assert.Equal(t, "French Defence Fundamentals", updated.Title)
		assert.Equal(t, "Pawn structures and plans.", pointer.Val(updated.Description))
	})

	t.Run("foreign coach forbidden", func(t *testing.T) {
		_, err := service.UpdateCourse(ctx, created.ID, otherCoachID, pointer.To("Hijack"), nil)
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	})
}

/*
TestService_DeleteCourse verifies the ownership guard on deletion.
*/
func TestService_DeleteCourse(t *testing.T) {
	service, repo := newTestService(t)
	created := createCourse(t, service, coachID)
	ctx := context.Background()

	err := service.DeleteCourse(ctx, created.ID, otherCoachID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	require.NoError(t, service.DeleteCourse(ctx, created.ID, coachID))
	assert.Empty(t, repo.courses)
}

/*
TestService_Enrollment verifies the enroll/unenroll round trip with ownership
and duplicate guards.
*/
func TestService_Enrollment(t *testing.T) {
	service, _ := newTestService(t)
	created := createCourse(t, service, coachID)
	ctx := context.Background()

	require.NoError(t, service.EnrollStudent(ctx, created.ID, coachID, studentID))

	enrolled, err := service.IsEnrolled(ctx, created.ID, studentID)
	require.NoError(t, err)
	assert.True(t, enrolled)

	t.Run("duplicate enrollment conflicts", func(t *testing.T) {
		err := service.EnrollStudent(ctx, created.ID, coachID, studentID)
		require.Error(t, err)
		assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	})

	t.Run("foreign coach cannot enroll", func(t *testing.T) {
		err := service.EnrollStudent(ctx, created.ID, otherCoachID, studentID)
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	})

	t.Run("malformed student id rejected", func(t *testing.T) {
		err := service.EnrollStudent(ctx, created.ID, coachID, "not-a-uuid")
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	require.NoError(t, service.UnenrollStudent(ctx, created.ID, coachID, studentID))
	enrolled, err = service.IsEnrolled(ctx, created.ID, studentID)
	require.NoError(t, err)
	assert.False(t, enrolled)
}
