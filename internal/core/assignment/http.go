// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

// Package assignment provides the HTTP interface for course homework.
//
// Coaches set, revise, and withdraw assignments on their own courses;
// enrolled students read them (without the solution).
package assignment

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gambitacademy/gambit/internal/platform/middleware"
	requestutil "github.com/gambitacademy/gambit/internal/platform/request"
	"github.com/gambitacademy/gambit/internal/platform/respond"
	"github.com/gambitacademy/gambit/internal/platform/sec"
	"github.com/gambitacademy/gambit/internal/platform/validate"
)

// Handler implements the HTTP layer for assignment management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new assignment [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the assignment endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth)

		authed.Get("/{id}", handler.getAssignment)
		authed.Get("/course/{courseID}", handler.listByCourse)
	})

	router.Group(func(coach chi.Router) {
		coach.Use(middleware.RequireRole(sec.RoleCoach))

		coach.Post("/", handler.createAssignment)
		coach.Patch("/{id}", handler.updateAssignment)
		coach.Delete("/{id}", handler.deleteAssignment)
	})

	return router
}

// # Request Payloads

type createAssignmentRequest struct {
	CourseID    string    `json:"course_id"`
	Technique   string    `json:"technique"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	Solution    *string   `json:"solution"`
}

type updateAssignmentRequest struct {
	Technique   *string    `json:"technique"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Solution    *string    `json:"solution"`
}

/*
POST /api/v1/assignments.

Request:
  - Body: createAssignmentRequest

Response:
  - 201: Assignment
  - 400: Validation failure (missing fields, past due date)
  - 403: ErrForbidden: Caller does not own the course
*/
func (handler *Handler) createAssignment(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createAssignmentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	assignment := &Assignment{
		CourseID:    input.CourseID,
		Technique:   input.Technique,
		Description: input.Description,
		DueDate:     input.DueDate,
		Solution:    input.Solution,
	}
	if err := handler.service.Create(request.Context(), claims.UserID, assignment); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, assignment)
}

/*
GET /api/v1/assignments/{id}.

Response:
  - 200: Assignment (solution omitted for students)
  - 403: ErrForbidden: Student is not enrolled in the course
*/
func (handler *Handler) getAssignment(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	isCoach := sec.UserRole(claims.Role).AtLeast(sec.RoleCoach)
	assignment, err := handler.service.Get(request.Context(), claims.UserID, isCoach, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, assignment)
}

/*
GET /api/v1/assignments/course/{courseID}.

Response:
  - 200: []Assignment: Ordered by due date
*/
func (handler *Handler) listByCourse(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	isCoach := sec.UserRole(claims.Role).AtLeast(sec.RoleCoach)
	assignments, err := handler.service.ListByCourse(request.Context(), claims.UserID, isCoach, requestutil.ID(request, "courseID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, assignments)
}

/*
PATCH /api/v1/assignments/{id}.

Request:
  - Body: updateAssignmentRequest (partial)

Response:
  - 200: Assignment: The updated entity
*/
func (handler *Handler) updateAssignment(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateAssignmentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	assignment, err := handler.service.Update(request.Context(), claims.UserID, requestutil.ID(request, "id"), Patch{
		Technique:   input.Technique,
		Description: input.Description,
		DueDate:     input.DueDate,
		Solution:    input.Solution,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, assignment)
}

/*
DELETE /api/v1/assignments/{id}.

Response:
  - 204: Assignment removed
*/
func (handler *Handler) deleteAssignment(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), claims.UserID, requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
