// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gambitacademy/gambit/internal/platform/apperr"
	"github.com/gambitacademy/gambit/internal/platform/constants"
)

// # Refresh Token Repository

// RedisRefreshTokenRepository implements RefreshTokenRepository using Redis.
//
// The key is the user ID, not the token, so a plain SET gives us the
// replace-on-rotate semantics for free: one live refresh token per account.
type RedisRefreshTokenRepository struct {
	client *redis.Client
}

// NewRefreshTokenRepository creates a new Redis-backed RefreshTokenRepository.
func NewRefreshTokenRepository(client *redis.Client) *RedisRefreshTokenRepository {
	return &RedisRefreshTokenRepository{client: client}
}

/*
Record stores the refresh token digest for a user, replacing any prior digest.

Parameters:
  - context: context.Context
  - userID: string
  - tokenHash: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (repository *RedisRefreshTokenRepository) Record(context context.Context, userID, tokenHash string, ttl time.Duration) error {
	key := constants.RedisPrefixRefreshToken + userID

	if err := repository.client.Set(context, key, tokenHash, ttl).Err(); err != nil {
		return fmt.Errorf("redis_refresh_token_record_failed: %w", err)
	}

	return nil
}

/*
Lookup retrieves the recorded refresh token digest for a user.

Description: Returns apperr.NotFound if no digest is recorded (logged out,
expired, or already rotated away).

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - string: Recorded digest
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisRefreshTokenRepository) Lookup(context context.Context, userID string) (string, error) {
	key := constants.RedisPrefixRefreshToken + userID

	tokenHash, err := repository.client.Get(context, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Refresh session")
		}
		return "", fmt.Errorf("redis_refresh_token_lookup_failed: %w", err)
	}

	return tokenHash, nil
}

/*
Clear deletes the recorded digest, ending the user's refresh session.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisRefreshTokenRepository) Clear(context context.Context, userID string) error {
	key := constants.RedisPrefixRefreshToken + userID

	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_refresh_token_clear_failed: %w", err)
	}

	return nil
}

// # Reset Token Repository

// RedisResetTokenRepository implements ResetTokenRepository using Redis.
type RedisResetTokenRepository struct {
	client *redis.Client
}

// NewResetTokenRepository creates a new Redis-backed ResetTokenRepository.
func NewResetTokenRepository(client *redis.Client) *RedisResetTokenRepository {
	return &RedisResetTokenRepository{client: client}
}

/*
Set stores a reset token with its associated userID and TTL.

Parameters:
  - context: context.Context
  - token: string
  - userID: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (repository *RedisResetTokenRepository) Set(context context.Context, token string, userID string, ttl time.Duration) error {
	key := constants.RedisPrefixResetToken + token

	if err := repository.client.Set(context, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_reset_token_set_failed: %w", err)
	}

	return nil
}

/*
Get retrieves the userID for a given token.

Description: Returns apperr.NotFound if the token is absent or expired.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - string: Original UserID
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisResetTokenRepository) Get(context context.Context, token string) (string, error) {
	key := constants.RedisPrefixResetToken + token

	userID, err := repository.client.Get(context, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Reset token")
		}
		return "", fmt.Errorf("redis_reset_token_get_failed: %w", err)
	}

	return userID, nil
}

/*
Delete removes the token from Redis.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisResetTokenRepository) Delete(context context.Context, token string) error {
	key := constants.RedisPrefixResetToken + token

	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_reset_token_delete_failed: %w", err)
	}

	return nil
}
