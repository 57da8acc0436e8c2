// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package chat

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gambitacademy/gambit/internal/platform/apperr"
	"github.com/gambitacademy/gambit/internal/platform/constants"
	"github.com/gambitacademy/gambit/internal/platform/ctxutil"
	"github.com/gambitacademy/gambit/internal/platform/respond"
	"github.com/gambitacademy/gambit/internal/platform/sec"
)

// StreamVerifier verifies the handshake credential presented when a chat
// stream is opened.
type StreamVerifier interface {
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

/*
stream opens the live chat stream for the authenticated user.

GET /api/v1/chats/stream?access_token=...

Description: Verifies the handshake credential exactly once under a bounded
timeout, registers the connection in the presence directory, and then pushes
message events to the client as Server-Sent Events until the client
disconnects. Verification failures are rejected with 401 before the
connection is registered anywhere.

Response:
  - 200: text/event-stream: Live event stream
  - 401: ErrUnauthorized: Missing, expired, malformed, or forged credential
*/
func (handler *Handler) stream(writer http.ResponseWriter, request *http.Request) {

	// EventSource cannot set headers, so browsers pass the credential in the
	// query string. The Authorization header remains a fallback for CLIs.
	token := request.URL.Query().Get("access_token")
	if token == "" {
		if _, bearer, found := cutBearer(request.Header.Get(constants.HeaderAuthorization)); found {
			token = bearer
		}
	}
	if token == "" {
		respond.Error(writer, request, apperr.Unauthorized("Missing stream credential"))
		return
	}

	claims, err := handler.verifyHandshake(token)
	if err != nil {
		respond.Error(writer, request, apperr.Unauthorized("Invalid stream credential"))
		return
	}

	flusher, ok := writer.(http.Flusher)
	if !ok {
		respond.Error(writer, request, apperr.Internal(fmt.Errorf("chat_stream_not_flushable")))
		return
	}

	// Only a verified identity reaches the presence directory.
	connection := handler.presence.Register(claims.UserID)
	defer handler.presence.Unregister(connection)

	logger := ctxutil.GetLogger(request.Context())
	logger.Info("chat_stream_opened", "user_id", claims.UserID)
	defer logger.Info("chat_stream_closed", "user_id", claims.UserID)

	header := writer.Header()
	header.Set("Content-Type", "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	writer.WriteHeader(http.StatusOK)

	// An immediate comment confirms the subscription to the client.
	fmt.Fprintf(writer, ": connected %s\n\n", claims.UserID)
	flusher.Flush()

	heartbeat := time.NewTicker(constants.StreamHeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-request.Context().Done():
			return

		case <-heartbeat.C:
			// Keep-alive comment so proxies don't reap the idle stream.
			fmt.Fprint(writer, ": ping\n\n")
			flusher.Flush()

		case event := <-connection.Events():
			payload, err := json.Marshal(event.Message)
			if err != nil {
				logger.Error("chat_stream_encode_failed", "error", err)
				continue
			}
			fmt.Fprintf(writer, "event: %s\ndata: %s\n\n", event.Type, payload)
			flusher.Flush()
		}
	}
}

// verifyHandshake runs credential verification exactly once, bounded by
// [constants.StreamHandshakeTimeout]. The deadline guards against the
// verifier stalling; it never retries.
func (handler *Handler) verifyHandshake(token string) (*sec.AuthClaims, error) {
	type result struct {
		claims *sec.AuthClaims
		err    error
	}

	done := make(chan result, 1)
	go func() {
		claims, err := handler.verifier.VerifyToken(token)
		done <- result{claims: claims, err: err}
	}()

	select {
	case r := <-done:
		return r.claims, r.err
	case <-time.After(constants.StreamHandshakeTimeout):
		return nil, fmt.Errorf("chat_stream_handshake_timeout")
	}
}

// cutBearer splits an "Authorization: Bearer x" header value.
func cutBearer(headerValue string) (scheme, token string, ok bool) {
	const prefix = "Bearer "
	if len(headerValue) > len(prefix) && headerValue[:len(prefix)] == prefix {
		return "Bearer", headerValue[len(prefix):], true
	}
	return "", "", false
}
