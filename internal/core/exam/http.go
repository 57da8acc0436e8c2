// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

// Package exam provides the HTTP interface for live assessment sessions.
package exam

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gambitacademy/gambit/internal/platform/middleware"
	requestutil "github.com/gambitacademy/gambit/internal/platform/request"
	"github.com/gambitacademy/gambit/internal/platform/respond"
	"github.com/gambitacademy/gambit/internal/platform/sec"
	"github.com/gambitacademy/gambit/internal/platform/validate"
)

// Handler implements the HTTP layer for exam management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new exam [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the exam endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth)

		authed.Get("/{id}", handler.getExam)
		authed.Get("/course/{courseID}", handler.listByCourse)
	})

	router.Group(func(coach chi.Router) {
		coach.Use(middleware.RequireRole(sec.RoleCoach))

		coach.Post("/", handler.assignExam)
		coach.Get("/mine", handler.mine)
		coach.Patch("/{id}/complete", handler.completeExam)
		coach.Patch("/{id}/grade", handler.gradeExam)
		coach.Delete("/{id}", handler.deleteExam)
	})

	return router
}

type assignExamRequest struct {
	CourseID string `json:"course_id"`
	TestName string `json:"test_name"`
	ZoomLink string `json:"zoom_link"`
}

type gradeExamRequest struct {
	Result string `json:"result"`
}

// POST /api/v1/exams.
func (handler *Handler) assignExam(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input assignExamRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	exam := &Exam{
		CourseID: input.CourseID,
		TestName: input.TestName,
		ZoomLink: input.ZoomLink,
	}
	if err := handler.service.Assign(request.Context(), claims.UserID, exam); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, exam)
}

// GET /api/v1/exams/{id}.
func (handler *Handler) getExam(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	isCoach := sec.UserRole(claims.Role).AtLeast(sec.RoleCoach)
	exam, err := handler.service.Get(request.Context(), claims.UserID, isCoach, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, exam)
}

// GET /api/v1/exams/course/{courseID}.
func (handler *Handler) listByCourse(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	isCoach := sec.UserRole(claims.Role).AtLeast(sec.RoleCoach)
	exams, err := handler.service.ListByCourse(request.Context(), claims.UserID, isCoach, requestutil.ID(request, "courseID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, exams)
}

// GET /api/v1/exams/mine.
func (handler *Handler) mine(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	exams, err := handler.service.Mine(request.Context(), claims.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, exams)
}

// PATCH /api/v1/exams/{id}/complete.
func (handler *Handler) completeExam(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	exam, err := handler.service.Complete(request.Context(), claims.UserID, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, exam)
}

// PATCH /api/v1/exams/{id}/grade.
func (handler *Handler) gradeExam(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input gradeExamRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	exam, err := handler.service.Grade(request.Context(), claims.UserID, requestutil.ID(request, "id"), input.Result)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, exam)
}

// DELETE /api/v1/exams/{id}.
func (handler *Handler) deleteExam(writer http.ResponseWriter, request *http.Request) {
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
