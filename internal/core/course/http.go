// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

/*
Package course provides the HTTP interface for the coaching course catalogue.

It exposes endpoints for browsing courses, managing course metadata by the
owning coach, and maintaining the student enrollment roster.

# Routing Strategy

  - Discovery: List/get endpoints for any authenticated user.
  - Management: Mutative endpoints requiring the coach role; ownership is
    enforced in the service layer.
*/
package course

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"github.com/gambitacademy/gambit/internal/platform/middleware"
	requestutil "github.com/gambitacademy/gambit/internal/platform/request"
	"github.com/gambitacademy/gambit/internal/platform/respond"
	"github.com/gambitacademy/gambit/internal/platform/sec"
	"github.com/gambitacademy/gambit/internal/platform/validate"
	"github.com/gambitacademy/gambit/pkg/pagination"
)

// Handler implements the HTTP layer for course management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new course [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the course domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth)

		authed.Get("/", handler.listCourses)
		authed.Get("/mine", handler.myCourses)
		authed.Get("/{identifier}", handler.getCourse)
	})

	router.Group(func(coach chi.Router) {
		coach.Use(middleware.RequireRole(sec.RoleCoach))

		coach.Post("/", handler.createCourse)
		coach.Patch("/{id}", handler.updateCourse)
		coach.Delete("/{id}", handler.deleteCourse)

		// Enrollment roster
		coach.Get("/{id}/students", handler.listStudents)
		coach.Post("/{id}/students", handler.enrollStudent)
		coach.Delete("/{id}/students/{studentID}", handler.unenrollStudent)
	})

	return router
}

// # Request Payloads

type createCourseRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type updateCourseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type enrollStudentRequest struct {
	StudentID string `json:"student_id"`
}

// courseSummary is the trimmed list projection.
type courseSummary struct {
	ID      string `json:"id"`
	CoachID string `json:"coach_id"`
	Title   string `json:"title"`
	Slug    string `json:"slug"`
}

// # Discovery Endpoints

/*
GET /api/v1/courses.

Description: Retrieves a paginated list of active courses.

Request:
  - page: int
  - limit: int

Response:
  - 200: []courseSummary: Paginated course list
*/
func (handler *Handler) listCourses(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	courses, total, err := handler.service.ListCourses(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	summaries := lo.Map(courses, func(course *Course, _ int) courseSummary {
		return courseSummary{
			ID:      course.ID,
			CoachID: course.CoachID,
			Title:   course.Title,
			Slug:    course.Slug,
		}
	})

	respond.Paginated(writer, summaries, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/courses/mine.

Description: Returns the caller's dashboard courses: owned courses for a
coach, enrolled courses for a student.

Response:
  - 200: []Course
*/
func (handler *Handler) myCourses(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	isCoach := sec.UserRole(claims.Role).AtLeast(sec.RoleCoach)
	courses, err := handler.service.MyCourses(request.Context(), claims.UserID, isCoach)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, courses)
}

/*
GET /api/v1/courses/{identifier}.

Description: Fetches one course by UUID or slug.

Response:
  - 200: Course
  - 404: ErrNotFound
*/
func (handler *Handler) getCourse(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.ID(request, "identifier")

	course, err := handler.service.GetCourse(request.Context(), identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, course)
}

// # Management Endpoints

/*
POST /api/v1/courses.

Request:
  - Body: createCourseRequest (Title, Description)

Response:
  - 201: Course: The created course
  - 400: ErrInvalidJSON or validation failure
  - 403: ErrForbidden: Caller is not a coach
*/
func (handler *Handler) createCourse(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createCourseRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	course := &Course{
		CoachID:     claims.UserID,
		Title:       input.Title,
		Description: input.Description,
	}
	if err := handler.service.CreateCourse(request.Context(), course); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, course)
}

/*
PATCH /api/v1/courses/{id}.

Request:
  - Body: updateCourseRequest (partial; nil fields are left untouched)

Response:
  - 200: Course: The updated course
  - 403: ErrForbidden: Caller does not own the course
*/
func (handler *Handler) updateCourse(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateCourseRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	course, err := handler.service.UpdateCourse(request.Context(),
		requestutil.ID(request, "id"), claims.UserID, input.Title, input.Description)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, course)
}

/*
DELETE /api/v1/courses/{id}.

Response:
  - 204: Course removed
  - 403: ErrForbidden: Caller does not own the course
*/
func (handler *Handler) deleteCourse(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCourse(request.Context(), requestutil.ID(request, "id"), claims.UserID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Enrollment Endpoints

/*
GET /api/v1/courses/{id}/students.

Response:
  - 200: []Student: Enrolled students, ordered by name
*/
func (handler *Handler) listStudents(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	students, err := handler.service.Students(request.Context(), requestutil.ID(request, "id"), claims.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, students)
}

/*
POST /api/v1/courses/{id}/students.

Request:
  - Body: enrollStudentRequest (StudentID)

Response:
  - 201: Enrollment created
  - 409: ErrConflict: Student already enrolled
*/
func (handler *Handler) enrollStudent(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input enrollStudentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	courseID := requestutil.ID(request, "id")
	if err := handler.service.EnrollStudent(request.Context(), courseID, claims.UserID, input.StudentID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]string{
		"course_id":  courseID,
		"student_id": input.StudentID,
	})
}

/*
DELETE /api/v1/courses/{id}/students/{studentID}.

Response:
  - 204: Enrollment removed
  - 404: ErrNotFound: Student was not enrolled
*/
func (handler *Handler) unenrollStudent(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.service.UnenrollStudent(request.Context(),
		requestutil.ID(request, "id"), claims.UserID, requestutil.ID(request, "studentID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
