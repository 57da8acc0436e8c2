// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gambitacademy/gambit/internal/platform/sec"
)

// newTestService generates an ephemeral RSA key pair for token round-trips.
func newTestService(t *testing.T) *sec.TokenService {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return sec.NewTokenServiceFromKeys(key, "test.gambitacademy.io")
}

/*
TestTokenService_AccessTokenRoundTrip verifies that identity claims survive
generation and verification intact.
*/
func TestTokenService_AccessTokenRoundTrip(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateAccessToken("user-123", "magnus", "coach", 15*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "magnus", claims.Username)
	assert.Equal(t, "coach", claims.Role)
	assert.Equal(t, "test.gambitacademy.io", claims.Issuer)
}

/*
TestTokenService_RefreshTokenOmitsProfile verifies that refresh tokens carry
only the user identity, never username or role.
*/
func TestTokenService_RefreshTokenOmitsProfile(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateRefreshToken("user-123", 30*24*time.Hour)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Empty(t, claims.Username)
	assert.Empty(t, claims.Role)
}

/*
TestTokenService_EveryIssuanceDistinct verifies that tokens minted back-to-back
for the same user are never identical. RS256 signing is deterministic and
iat/exp only resolve to the second, so distinctness rests entirely on the jti
claim; without it, refresh rotation inside one second would re-record the
token it was supposed to displace.
*/
func TestTokenService_EveryIssuanceDistinct(t *testing.T) {
	service := newTestService(t)

	t.Run("refresh tokens", func(t *testing.T) {
		first, err := service.GenerateRefreshToken("user-123", 30*24*time.Hour)
		require.NoError(t, err)
		second, err := service.GenerateRefreshToken("user-123", 30*24*time.Hour)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("access tokens", func(t *testing.T) {
		first, err := service.GenerateAccessToken("user-123", "magnus", "coach", 15*time.Minute)
		require.NoError(t, err)
		second, err := service.GenerateAccessToken("user-123", "magnus", "coach", 15*time.Minute)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

/*
TestTokenService_VerifyClassification verifies that every verification failure
maps onto exactly one sentinel in the package taxonomy.
*/
func TestTokenService_VerifyClassification(t *testing.T) {
	service := newTestService(t)

	t.Run("expired", func(t *testing.T) {
		token, err := service.GenerateAccessToken("user-123", "magnus", "coach", -1*time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.ErrorIs(t, err, sec.ErrTokenExpired)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := service.VerifyToken("not.a.jwt")
		assert.ErrorIs(t, err, sec.ErrTokenMalformed)
	})

	t.Run("foreign signature", func(t *testing.T) {
		other := newTestService(t)
		token, err := other.GenerateAccessToken("user-123", "magnus", "coach", 15*time.Minute)
		require.NoError(t, err)

		_, err = service.VerifyToken(token)
		assert.ErrorIs(t, err, sec.ErrTokenSignature)
	})
}

/*
TestUserRole_AtLeast verifies the admin > coach > student hierarchy.
*/
func TestUserRole_AtLeast(t *testing.T) {
	testCases := []struct {
		name     string
		role     sec.UserRole
		target   sec.UserRole
		expected bool
	}{
		{"admin meets coach", sec.RoleAdmin, sec.RoleCoach, true},
		{"coach meets student", sec.RoleCoach, sec.RoleStudent, true},
		{"student fails coach", sec.RoleStudent, sec.RoleCoach, false},
		{"same role passes", sec.RoleCoach, sec.RoleCoach, true},
		{"unknown role fails everything", sec.UserRole("spectator"), sec.RoleStudent, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.role.AtLeast(tc.target))
		})
	}
}
