// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

// Package lesson provides the HTTP interface for scheduling online classes.
package lesson

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gambitacademy/gambit/internal/platform/middleware"
	requestutil "github.com/gambitacademy/gambit/internal/platform/request"
	"github.com/gambitacademy/gambit/internal/platform/respond"
	"github.com/gambitacademy/gambit/internal/platform/sec"
	"github.com/gambitacademy/gambit/internal/platform/validate"
	"github.com/gambitacademy/gambit/pkg/pointer"
)

// Handler implements the HTTP layer for lesson scheduling.
type Handler struct {
	service *Service
}

// NewHandler constructs a new lesson [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the lesson endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth)

		authed.Get("/{id}", handler.getLesson)
		authed.Get("/course/{courseID}", handler.listByCourse)
	})

	router.Group(func(coach chi.Router) {
		coach.Use(middleware.RequireRole(sec.RoleCoach))

		coach.Post("/", handler.scheduleLesson)
		coach.Patch("/{id}", handler.updateLesson)
		coach.Delete("/{id}", handler.deleteLesson)
	})

	return router
}

type scheduleLessonRequest struct {
	CourseID  string    `json:"course_id"`
	Title     string    `json:"title"`
	ClassTime time.Time `json:"class_time"`
	ZoomLink  string    `json:"zoom_link"`
}

type updateLessonRequest struct {
	Title     *string    `json:"title"`
	ClassTime *time.Time `json:"class_time"`
	ZoomLink  *string    `json:"zoom_link"`
	Status    *string    `json:"status"`
}

// POST /api/v1/lessons.
func (handler *Handler) scheduleLesson(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input scheduleLessonRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	lesson := &Lesson{
		CourseID:  input.CourseID,
		Title:     input.Title,
		ClassTime: input.ClassTime,
		ZoomLink:  input.ZoomLink,
	}
	if err := handler.service.Schedule(request.Context(), claims.UserID, lesson); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, lesson)
}

// GET /api/v1/lessons/{id}.
func (handler *Handler) getLesson(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	isCoach := sec.UserRole(claims.Role).AtLeast(sec.RoleCoach)
	lesson, err := handler.service.Get(request.Context(), claims.UserID, isCoach, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, lesson)
}

// GET /api/v1/lessons/course/{courseID}.
func (handler *Handler) listByCourse(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	isCoach := sec.UserRole(claims.Role).AtLeast(sec.RoleCoach)
	lessons, err := handler.service.ListByCourse(request.Context(), claims.UserID, isCoach, requestutil.ID(request, "courseID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, lessons)
}

// PATCH /api/v1/lessons/{id}.
func (handler *Handler) updateLesson(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateLessonRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	patch := Patch{
		Title:     input.Title,
		ClassTime: input.ClassTime,
		ZoomLink:  input.ZoomLink,
	}
	if input.Status != nil {
		patch.Status = pointer.To(Status(*input.Status))
	}

	lesson, err := handler.service.Update(request.Context(), claims.UserID, requestutil.ID(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, lesson)
}

// DELETE /api/v1/lessons/{id}.
func (handler *Handler) deleteLesson(writer http.ResponseWriter, request *http.Request) {
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
