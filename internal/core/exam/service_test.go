// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package exam_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gambitacademy/gambit/internal/core/exam"
	"github.com/gambitacademy/gambit/internal/platform/apperr"
	"github.com/gambitacademy/gambit/pkg/pointer"
)

const (
	coachID      = "018f0000-0000-7000-8000-0000000000c1"
	otherCoachID = "018f0000-0000-7000-8000-0000000000c2"
	studentID    = "018f0000-0000-7000-8000-0000000000c3"
	courseID     = "018f0000-0000-7000-8000-0000000000c4"
)

// fakeRepository is an in-memory Repository.
type fakeRepository struct {
	exams map[string]*exam.Exam
}

func (r *fakeRepository) Create(_ context.Context, e *exam.Exam) error {
	r.exams[e.ID] = e
	return nil
}

func (r *fakeRepository) FindByID(_ context.Context, id string) (*exam.Exam, error) {
	if e, ok := r.exams[id]; ok {
		return e, nil
	}
	return nil, apperr.NotFound("Exam")
}

func (r *fakeRepository) ListByCourse(_ context.Context, courseID string) ([]*exam.Exam, error) {
	result := make([]*exam.Exam, 0)
	for _, e := range r.exams {
		if e.CourseID == courseID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *fakeRepository) ListByCoach(_ context.Context, coachID string) ([]*exam.Exam, error) {
	result := make([]*exam.Exam, 0)
	for _, e := range r.exams {
		if e.CoachID == coachID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *fakeRepository) Update(_ context.Context, e *exam.Exam) error {
	if _, ok := r.exams[e.ID]; !ok {
		return apperr.NotFound("Exam")
	}
	r.exams[e.ID] = e
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.exams[id]; !ok {
		return apperr.NotFound("Exam")
	}
	delete(r.exams, id)
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

func newTestService() (*exam.Service, *fakeCourseDirectory) {
	repo := &fakeRepository{exams: make(map[string]*exam.Exam)}
	directory := &fakeCourseDirectory{owner: coachID, enrolled: true}
	return exam.NewService(repo, directory, slog.Default()), directory
}

func assignExam(t *testing.T, service *exam.Service) *exam.Exam {
	t.Helper()

	session := &exam.Exam{
		CourseID: courseID,
		TestName: "Endgame rating checkpoint",
		ZoomLink: "https://zoom.us/j/8240001111",
	}
	require.NoError(t, service.Assign(context.Background(), coachID, session))
	return session
}

func TestService_Assign(t *testing.T) {
	service, directory := newTestService()

	session := assignExam(t, service)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, coachID, session.CoachID)
	assert.Equal(t, exam.StatusAssigned, session.Status)

	t.Run("foreign course forbidden", func(t *testing.T) {
		directory.owner = otherCoachID
		defer func() { directory.owner = coachID }()

		err := service.Assign(context.Background(), coachID, &exam.Exam{
			CourseID: courseID,
			TestName: "Opening repertoire check",
			ZoomLink: "https://zoom.us/j/8240002222",
		})
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	})

	t.Run("invalid zoom link rejected", func(t *testing.T) {
		err := service.Assign(context.Background(), coachID, &exam.Exam{
			CourseID: courseID,
			TestName: "Tactics sprint",
			ZoomLink: "not-a-link",
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

func TestService_Lifecycle(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()
	session := assignExam(t, service)

	completed, err := service.Complete(ctx, coachID, session.ID)
	require.NoError(t, err)
	assert.Equal(t, exam.StatusCompleted, completed.Status)

	graded, err := service.Grade(ctx, coachID, session.ID, "1450 estimated, promote to group B")
	require.NoError(t, err)
	assert.Equal(t, exam.StatusGraded, graded.Status)
	assert.Equal(t, "1450 estimated, promote to group B", pointer.Val(graded.Result))

	t.Run("foreign coach cannot grade", func(t *testing.T) {
		_, err := service.Grade(ctx, otherCoachID, session.ID, "n/a")
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	})

	t.Run("empty result rejected", func(t *testing.T) {
		_, err := service.Grade(ctx, coachID, session.ID, "  ")
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

func TestService_StudentVisibility(t *testing.T) {
	service, directory := newTestService()
	ctx := context.Background()
	session := assignExam(t, service)

	fetched, err := service.Get(ctx, studentID, false, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, fetched.ID)

	directory.enrolled = false
	_, err = service.Get(ctx, studentID, false, session.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	_, err = service.ListByCourse(ctx, studentID, false, courseID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
}
