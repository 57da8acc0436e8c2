// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package chat_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gambitacademy/gambit/internal/chat"
	"github.com/gambitacademy/gambit/internal/platform/sec"
)

// fakeVerifier returns canned handshake results.
type fakeVerifier struct {
	claims *sec.AuthClaims
	err    error
}

func (v *fakeVerifier) VerifyToken(_ string) (*sec.AuthClaims, error) {
	return v.claims, v.err
}

func newStreamFixture(verifier chat.StreamVerifier) (*chat.Handler, *chat.Directory) {
	presence := chat.NewDirectory()
	service := chat.NewService(&fakeMessageRepository{}, &fakeRosterRepository{}, presence)
	return chat.NewHandler(service, presence, verifier), presence
}

/*
TestStream_MissingCredential verifies that a handshake without any credential
is rejected before anything is registered.
*/
func TestStream_MissingCredential(t *testing.T) {
	handler, presence := newStreamFixture(&fakeVerifier{})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/stream", nil)
	handler.Routes().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Zero(t, presence.Count())
}

/*
TestStream_RejectsInvalidCredential verifies that a failed verification yields
401 and leaves the presence directory untouched.
*/
func TestStream_RejectsInvalidCredential(t *testing.T) {
	handler, presence := newStreamFixture(&fakeVerifier{err: sec.ErrTokenExpired})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/stream?access_token=stale", nil)
	handler.Routes().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Zero(t, presence.Count())
	assert.Contains(t, recorder.Body.String(), "Invalid stream credential")
}

/*
TestStream_Lifecycle verifies the full stream lifecycle: a verified handshake
registers the user, delivered events reach the response body, and the client
disconnect removes the presence entry.
*/
func TestStream_Lifecycle(t *testing.T) {
	claims := &sec.AuthClaims{UserID: coachID, Username: "magnus", Role: string(sec.RoleCoach)}
	handler, presence := newStreamFixture(&fakeVerifier{claims: claims})

	ctx, cancel := context.WithCancel(context.Background())
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/stream?access_token=valid", nil).WithContext(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		handler.Routes().ServeHTTP(recorder, request)
	}()

	require.Eventually(t, func() bool {
		return presence.Online(coachID)
	}, time.Second, 5*time.Millisecond, "verified handshake must register the user")

	connection, online := presence.Lookup(coachID)
	require.True(t, online)
	delivered := connection.Deliver(chat.Event{
		Type:    chat.EventTypeMessage,
		Message: &chat.Message{ID: "msg-1", SenderID: studentID, ReceiverID: coachID, Content: "hello"},
	})
	require.True(t, delivered)

	// Wait until the writer loop drained the event, then disconnect.
	require.Eventually(t, func() bool {
		return len(connection.Events()) == 0
	}, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "text/event-stream", recorder.Header().Get("Content-Type"))

	body := recorder.Body.String()
	assert.Contains(t, body, ": connected "+coachID)
	assert.Contains(t, body, "event: "+chat.EventTypeMessage)
	assert.Contains(t, body, `"msg-1"`)

	assert.False(t, presence.Online(coachID), "disconnect must clear the presence entry")
}

/*
TestStream_AuthorizationHeaderFallback verifies the Bearer header path used by
non-browser clients.
*/
func TestStream_AuthorizationHeaderFallback(t *testing.T) {
	claims := &sec.AuthClaims{UserID: studentID, Username: "anna", Role: string(sec.RoleStudent)}
	handler, presence := newStreamFixture(&fakeVerifier{claims: claims})

	ctx, cancel := context.WithCancel(context.Background())
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/stream", nil).WithContext(ctx)
	request.Header.Set("Authorization", "Bearer some-access-token")

	done := make(chan struct{})
	go func() {
		defer close(done)
		handler.Routes().ServeHTTP(recorder, request)
	}()

	require.Eventually(t, func() bool {
		return presence.Online(studentID)
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
	assert.Equal(t, http.StatusOK, recorder.Code)
}
