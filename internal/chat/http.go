// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package chat

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/gambitacademy/gambit/internal/platform/constants"
	"github.com/gambitacademy/gambit/internal/platform/middleware"
	requestutil "github.com/gambitacademy/gambit/internal/platform/request"
	"github.com/gambitacademy/gambit/internal/platform/respond"
	"github.com/gambitacademy/gambit/internal/platform/sec"
	"github.com/gambitacademy/gambit/internal/platform/validate"
)

// Handler implements the chat HTTP endpoints, including the live stream.
type Handler struct {
	chatService *Service
	presence    *Directory
	verifier    StreamVerifier
}

// NewHandler constructs a new [Handler] with its dependencies.
func NewHandler(service *Service, presence *Directory, verifier StreamVerifier) *Handler {
	return &Handler{
		chatService: service,
		presence:    presence,
		verifier:    verifier,
	}
}

// Routes returns a [chi.Router] configured with messaging routes.
//
// # Endpoints
//   - GET  /stream                   : Live event stream (credential in query).
//   - POST /messages                 : Send a direct message.
//   - GET  /with/{userID}/messages   : Conversation history with a peer.
//   - GET  /contacts                 : Chat roster for the current user.
//
// The stream endpoint authenticates itself during the handshake; everything
// else relies on the router-level Authenticate middleware.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/stream", handler.stream)

	router.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
		r.Use(middleware.RequireAuth)
		r.Post("/messages", handler.sendMessage)
		r.Get("/with/{userID}/messages", handler.history)
		r.Get("/contacts", handler.contacts)
	})

	return router
}

// # Request Payloads

type sendMessageRequest struct {
	ReceiverID string `json:"receiver_id"`
	Content    string `json:"content"`
}

/*
sendMessage accepts a direct message for persistence and delivery.

POST /api/v1/chats/messages

Request:
  - Body: sendMessageRequest (ReceiverID, Content)

Response:
  - 201: Message: The accepted message
  - 400: ErrInvalidJSON: Empty content, bad receiver, or self-message
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) sendMessage(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input sendMessageRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	message, err := handler.chatService.Send(request.Context(), SendInput{
		SenderID:   claims.UserID,
		ReceiverID: input.ReceiverID,
		Content:    input.Content,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, message)
}

/*
history returns the ordered conversation with a peer.

GET /api/v1/chats/with/{userID}/messages

Response:
  - 200: []Message: Oldest-first history (empty array when none)
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) history(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	peerID := requestutil.ID(request, "userID")

	messages, err := handler.chatService.History(request.Context(), claims.UserID, peerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, messages)
}

/*
contacts returns the chat roster for the current user.

GET /api/v1/chats/contacts

Response:
  - 200: []Contact: Students (for coaches) or coaches (for students)
  - 403: ErrForbidden: Role has no roster
*/
func (handler *Handler) contacts(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	roster, err := handler.chatService.Roster(request.Context(), claims.UserID, sec.UserRole(claims.Role))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, roster)
}
