// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package submission_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gambitacademy/gambit/internal/core/submission"
	"github.com/gambitacademy/gambit/internal/platform/apperr"
	"github.com/gambitacademy/gambit/pkg/pointer"
)

const (
	coachID      = "018f0000-0000-7000-8000-0000000000b1"
	otherCoachID = "018f0000-0000-7000-8000-0000000000b2"
	studentID    = "018f0000-0000-7000-8000-0000000000b3"
	courseID     = "018f0000-0000-7000-8000-0000000000b4"
	assignmentID = "018f0000-0000-7000-8000-0000000000b5"
)

// fakeRepository is an in-memory Repository.
type fakeRepository struct {
	submissions map[string]*submission.Submission
}

func (r *fakeRepository) Create(_ context.Context, s *submission.Submission) error {
	for _, existing := range r.submissions {
		if existing.AssignmentID == s.AssignmentID && existing.StudentID == s.StudentID {
			return apperr.Conflict("Submission already exists")
		}
	}
	r.submissions[s.ID] = s
	return nil
}

func (r *fakeRepository) FindByID(_ context.Context, id string) (*submission.Submission, error) {
	if s, ok := r.submissions[id]; ok {
		return s, nil
	}
	return nil, apperr.NotFound("Submission")
}

func (r *fakeRepository) ListByAssignment(_ context.Context, assignmentID string) ([]*submission.Submission, error) {
	result := make([]*submission.Submission, 0)
	for _, s := range r.submissions {
		if s.AssignmentID == assignmentID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *fakeRepository) ListByStudent(_ context.Context, studentID string) ([]*submission.Submission, error) {
	result := make([]*submission.Submission, 0)
	for _, s := range r.submissions {
		if s.StudentID == studentID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *fakeRepository) Update(_ context.Context, s *submission.Submission) error {
	if _, ok := r.submissions[s.ID]; !ok {
		return apperr.NotFound("Submission")
	}
	r.submissions[s.ID] = s
	return nil
}

// fakeDirectory answers both directory interfaces from fixed facts.
type fakeDirectory struct {
	courseOwner string
	enrolled    bool
}

func (d *fakeDirectory) CourseOf(_ context.Context, _ string) (string, error) {
	return courseID, nil
}

func (d *fakeDirectory) OwnerOf(_ context.Context, _ string) (string, error) {
	return d.courseOwner, nil
}

func (d *fakeDirectory) IsEnrolled(_ context.Context, _, _ string) (bool, error) {
	return d.enrolled, nil
}

func newTestService() (*submission.Service, *fakeRepository, *fakeDirectory) {
	repo := &fakeRepository{submissions: make(map[string]*submission.Submission)}
	directory := &fakeDirectory{courseOwner: coachID, enrolled: true}
	return submission.NewService(repo, directory, directory, slog.Default()), repo, directory
}

/*
TestService_Submit verifies the happy path and its guards.
*/
func TestService_Submit(t *testing.T) {
	service, _, directory := newTestService()
	ctx := context.Background()

	recorded, err := service.Submit(ctx, studentID, assignmentID, "1. e4 e5 2. Nf3 Nc6 3. Bb5")
	require.NoError(t, err)
	assert.Equal(t, submission.StatusSubmitted, recorded.Status)
	assert.NotEmpty(t, recorded.ID)

	t.Run("second submission conflicts", func(t *testing.T) {
		_, err := service.Submit(ctx, studentID, assignmentID, "revised answer")
		require.Error(t, err)
		assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	})

	t.Run("unenrolled student forbidden", func(t *testing.T) {
		directory.enrolled = false
		defer func() { directory.enrolled = true }()

		_, err := service.Submit(ctx, studentID, assignmentID, "answer")
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	})

	t.Run("empty content rejected", func(t *testing.T) {
		_, err := service.Submit(ctx, studentID, assignmentID, "")
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

/*
TestService_Grade verifies verdict validation and the owning-coach guard.
*/
func TestService_Grade(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	recorded, err := service.Submit(ctx, studentID, assignmentID, "Qh5 wins on the spot")
	require.NoError(t, err)

	graded, err := service.Grade(ctx, coachID, recorded.ID, submission.StatusPass, pointer.To("Clean calculation."))
	require.NoError(t, err)
	assert.Equal(t, submission.StatusPass, graded.Status)
	assert.Equal(t, "Clean calculation.", pointer.Val(graded.Feedback))

	t.Run("foreign coach forbidden", func(t *testing.T) {
		_, err := service.Grade(ctx, otherCoachID, recorded.ID, submission.StatusFail, nil)
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	})

	t.Run("invalid verdict rejected", func(t *testing.T) {
		_, err := service.Grade(ctx, coachID, recorded.ID, submission.StatusPending, nil)
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("nil feedback keeps previous", func(t *testing.T) {
		regraded, err := service.Grade(ctx, coachID, recorded.ID, submission.StatusFail, nil)
		require.NoError(t, err)
		assert.Equal(t, submission.StatusFail, regraded.Status)
		assert.Equal(t, "Clean calculation.", pointer.Val(regraded.Feedback))
	})
}

/*
TestService_ListByAssignment verifies that listings are coach-owned only.
*/
func TestService_ListByAssignment(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	_, err := service.Submit(ctx, studentID, assignmentID, "answer")
	require.NoError(t, err)

	listed, err := service.ListByAssignment(ctx, coachID, assignmentID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	_, err = service.ListByAssignment(ctx, otherCoachID, assignmentID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
}
