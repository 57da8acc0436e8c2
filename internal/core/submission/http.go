// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

// Package submission provides the HTTP interface for homework submissions
// and grading.
package submission

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gambitacademy/gambit/internal/platform/middleware"
	requestutil "github.com/gambitacademy/gambit/internal/platform/request"
	"github.com/gambitacademy/gambit/internal/platform/respond"
	"github.com/gambitacademy/gambit/internal/platform/sec"
	"github.com/gambitacademy/gambit/internal/platform/validate"
)

// Handler implements the HTTP layer for submissions.
type Handler struct {
	service *Service
}

// NewHandler constructs a new submission [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the submission endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(student chi.Router) {
		student.Use(middleware.RequireAuth)

		student.Post("/", handler.submit)
		student.Get("/mine", handler.mine)
	})

	router.Group(func(coach chi.Router) {
		coach.Use(middleware.RequireRole(sec.RoleCoach))

		coach.Get("/assignment/{assignmentID}", handler.listByAssignment)
		coach.Patch("/{id}/grade", handler.grade)
	})

	return router
}

// # Request Payloads

type submitRequest struct {
	AssignmentID string `json:"assignment_id"`
	Content      string `json:"content"`
}

type gradeRequest struct {
	Status   string  `json:"status"`
	Feedback *string `json:"feedback"`
}

/*
POST /api/v1/submissions.

Request:
  - Body: submitRequest (AssignmentID, Content)

Response:
  - 201: Submission
  - 403: ErrForbidden: Student is not enrolled in the course
  - 409: ErrConflict: Already submitted for this assignment
*/
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input submitRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	submission, err := handler.service.Submit(request.Context(), claims.UserID, input.AssignmentID, input.Content)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, submission)
}

/*
GET /api/v1/submissions/mine.

Response:
  - 200: []Submission: The caller's submissions, newest first
*/
func (handler *Handler) mine(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	submissions, err := handler.service.Mine(request.Context(), claims.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, submissions)
}

/*
GET /api/v1/submissions/assignment/{assignmentID}.

Response:
  - 200: []Submission: Every submission for the assignment
  - 403: ErrForbidden: Caller does not own the course
*/
func (handler *Handler) listByAssignment(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	submissions, err := handler.service.ListByAssignment(request.Context(), claims.UserID, requestutil.ID(request, "assignmentID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, submissions)
}

/*
PATCH /api/v1/submissions/{id}/grade.

Request:
  - Body: gradeRequest (Status pass|fail, Feedback)

Response:
  - 200: Submission: The graded submission
  - 400: Validation failure: Verdict must be pass or fail
  - 403: ErrForbidden: Caller does not own the course
*/
func (handler *Handler) grade(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input gradeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	submission, err := handler.service.Grade(request.Context(), claims.UserID,
		requestutil.ID(request, "id"), Status(input.Status), input.Feedback)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, submission)
}
