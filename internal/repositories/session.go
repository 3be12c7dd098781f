package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/askedal/trailpack/internal/logger"
)

// ErrSessionNotFound is returned when a session record is absent, either
// because it expired or because the user logged out.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores live session records in Redis, keyed by the
// token's jti. Deleting the record revokes the token before its expiry.
type SessionRepository struct {
	client     *redis.Client
	expiration time.Duration
}

func NewSessionRepository(client *redis.Client, expiration time.Duration) *SessionRepository {
	return &SessionRepository{client: client, expiration: expiration}
}

func sessionKey(sessionID uuid.UUID) string {
	return "session:" + sessionID.String()
}

// Save records a live session for the given user. The record expires with
// the token.
func (r *SessionRepository) Save(ctx context.Context, sessionID, userID uuid.UUID) error {
	err := r.client.Set(ctx, sessionKey(sessionID), userID.String(), r.expiration).Err()
	if err != nil {
		logger.Log.Errorw("failed to save session", "session_id", sessionID, "error", err)
	}
	return err
}

// Get returns the user id bound to a live session, or ErrSessionNotFound.
func (r *SessionRepository) Get(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error) {
	val, err := r.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return uuid.Nil, ErrSessionNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get session", "session_id", sessionID, "error", err)
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, err
	}
	return userID, nil
}

// Delete removes a session record, revoking the associated token.
func (r *SessionRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	err := r.client.Del(ctx, sessionKey(sessionID)).Err()
	if err != nil {
		logger.Log.Errorw("failed to delete session", "session_id", sessionID, "error", err)
	}
	return err
}
