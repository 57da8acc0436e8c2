// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package lesson_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gambitacademy/gambit/internal/core/lesson"
	"github.com/gambitacademy/gambit/internal/platform/apperr"
	"github.com/gambitacademy/gambit/pkg/pointer"
)

const (
	coachID      = "018f0000-0000-7000-8000-0000000000d1"
	otherCoachID = "018f0000-0000-7000-8000-0000000000d2"
	studentID    = "018f0000-0000-7000-8000-0000000000d3"
	courseID     = "018f0000-0000-7000-8000-0000000000d4"
)

// fakeRepository is an in-memory Repository.
type fakeRepository struct {
	lessons map[string]*lesson.Lesson
}

func (r *fakeRepository) Create(_ context.Context, l *lesson.Lesson) error {
	r.lessons[l.ID] = l
	return nil
}

func (r *fakeRepository) FindByID(_ context.Context, id string) (*lesson.Lesson, error) {
	if l, ok := r.lessons[id]; ok {
		return l, nil
	}
	return nil, apperr.NotFound("Lesson")
}

func (r *fakeRepository) ListByCourse(_ context.Context, courseID string) ([]*lesson.Lesson, error) {
	result := make([]*lesson.Lesson, 0)
	for _, l := range r.lessons {
		if l.CourseID == courseID {
			result = append(result, l)
		}
	}
	return result, nil
}

func (r *fakeRepository) Update(_ context.Context, l *lesson.Lesson) error {
	if _, ok := r.lessons[l.ID]; !ok {
		return apperr.NotFound("Lesson")
	}
	r.lessons[l.ID] = l
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.lessons[id]; !ok {
		return apperr.NotFound("Lesson")
	}
	delete(r.lessons, id)
	return nil
}

// fakeCourseDirectory answers ownership and enrollment from fixed facts.
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

func newTestService() (*lesson.Service, *fakeRepository, *fakeCourseDirectory) {
	repo := &fakeRepository{lessons: make(map[string]*lesson.Lesson)}
	directory := &fakeCourseDirectory{owner: coachID, enrolled: true}
	return lesson.NewService(repo, directory, slog.Default()), repo, directory
}

func scheduleLesson(t *testing.T, service *lesson.Service) *lesson.Lesson {
	t.Helper()

	class := &lesson.Lesson{
		CourseID:  courseID,
		Title:     "Rook endings: Philidor and Lucena",
		ClassTime: time.Now().Add(48 * time.Hour),
		ZoomLink:  "https://zoom.us/j/8240003333",
	}
	require.NoError(t, service.Schedule(context.Background(), coachID, class))
	return class
}

func TestService_Schedule(t *testing.T) {
	service, _, directory := newTestService()

	class := scheduleLesson(t, service)
	assert.NotEmpty(t, class.ID)
	assert.Equal(t, lesson.StatusScheduled, class.Status)

	t.Run("past class time rejected", func(t *testing.T) {
		err := service.Schedule(context.Background(), coachID, &lesson.Lesson{
			CourseID:  courseID,
			Title:     "Yesterday's class",
			ClassTime: time.Now().Add(-time.Hour),
			ZoomLink:  "https://zoom.us/j/8240004444",
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("foreign course forbidden", func(t *testing.T) {
		directory.owner = otherCoachID
		defer func() { directory.owner = coachID }()

		err := service.Schedule(context.Background(), coachID, &lesson.Lesson{
			CourseID:  courseID,
			Title:     "Someone else's class",
			ClassTime: time.Now().Add(time.Hour),
			ZoomLink:  "https://zoom.us/j/8240005555",
		})
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	})
}

func TestService_Update(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()
	class := scheduleLesson(t, service)

	updated, err := service.Update(ctx, coachID, class.ID, lesson.Patch{
		Title:  pointer.To("Rook endings, part two"),
		Status: pointer.To(lesson.StatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, "Rook endings, part two", updated.Title)
	assert.Equal(t, lesson.StatusCompleted, updated.Status)

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := service.Update(ctx, coachID, class.ID, lesson.Patch{
			Status: pointer.To(lesson.Status("cancelled")),
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("foreign coach forbidden", func(t *testing.T) {
		_, err := service.Update(ctx, otherCoachID, class.ID, lesson.Patch{
			Title: pointer.To("Hijacked"),
		})
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	})
}

func TestService_StudentVisibility(t *testing.T) {
	service, _, directory := newTestService()
	ctx := context.Background()
	class := scheduleLesson(t, service)

	fetched, err := service.Get(ctx, studentID, false, class.ID)
	require.NoError(t, err)
	assert.Equal(t, class.ID, fetched.ID)

	listed, err := service.ListByCourse(ctx, studentID, false, courseID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	directory.enrolled = false
	_, err = service.Get(ctx, studentID, false, class.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
}
