// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gambitacademy/gambit/internal/platform/constants"
	"github.com/gambitacademy/gambit/internal/platform/ctxutil"
	"github.com/gambitacademy/gambit/internal/platform/sec"
	"github.com/gambitacademy/gambit/internal/users/auth"
)

// loginStudent registers and logs in the default student, returning the session.
func loginStudent(t *testing.T, fixture *serviceFixture) *auth.LoginSession {
	t.Helper()

	fixture.registerStudent(t)
	session, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Login:    "anna@example.com",
		Password: "knight-to-f3",
	})
	require.NoError(t, err)
	return session
}

/*
TestHandler_Refresh_TokenSources verifies that the refresh endpoint accepts
the token from the security cookie or, for non-browser clients, from the
request body.
*/
func TestHandler_Refresh_TokenSources(t *testing.T) {
	fixture := newServiceFixture(t)
	router := auth.NewHandler(fixture.service).Routes()
	session := loginStudent(t, fixture)

	t.Run("body token", func(t *testing.T) {
		body := strings.NewReader(`{"refresh_token":"` + session.RefreshToken + `"}`)
		request := httptest.NewRequest(http.MethodPost, "/refresh", body)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "access_token")

		// The rotated refresh token is delivered as a cookie.
		cookie := findCookie(recorder, constants.RefreshTokenCookieName)
		require.NotNil(t, cookie)
		assert.NotEmpty(t, cookie.Value)
		assert.NotEqual(t, session.RefreshToken, cookie.Value)
	})

	t.Run("cookie token", func(t *testing.T) {
		renewed, err := fixture.service.Login(context.Background(), auth.LoginInput{
			Login:    "anna@example.com",
			Password: "knight-to-f3",
		})
		require.NoError(t, err)

		request := httptest.NewRequest(http.MethodPost, "/refresh", nil)
		request.AddCookie(&http.Cookie{
			Name:  constants.RefreshTokenCookieName,
			Value: renewed.RefreshToken,
		})
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("missing everywhere", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/refresh", nil)
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

/*
TestHandler_Logout_StoreOutage verifies that logout still clears the client
cookie and answers 204 when the token store is unreachable.
*/
func TestHandler_Logout_StoreOutage(t *testing.T) {
	fixture := newServiceFixture(t)
	router := auth.NewHandler(fixture.service).Routes()
	loginStudent(t, fixture)

	fixture.refreshRepo.clearErr = errors.New("dial tcp: connection refused")

	request := httptest.NewRequest(http.MethodPost, "/logout", nil)
	claims := &sec.AuthClaims{UserID: "user-123", Username: "anna", Role: "student"}
	request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)

	cookie := findCookie(recorder, constants.RefreshTokenCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

// findCookie returns the named Set-Cookie entry from a recorded response.
func findCookie(recorder *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
