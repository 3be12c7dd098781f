package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/askedal/trailpack/internal/logger"
	"github.com/askedal/trailpack/internal/models"
)

// Error variables
var (
	ErrUsernameTaken      = errors.New("username already in use")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string, passwordHash string) (uuid.UUID, error)
}

// TokenGenerator issues signed session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, uuid.UUID, error)
}

// SessionWriter records and revokes live sessions.
type SessionWriter interface {
	Save(ctx context.Context, sessionID, userID uuid.UUID) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

// AuthService handles registration, login and logout.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	tokens   TokenGenerator
	sessions SessionWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenGenerator, sessions SessionWriter) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		tokens:   tokens,
		sessions: sessions,
	}
}

// Register creates a new user. The password confirmation must match and the
// username must be free.
func (svc *AuthService) Register(ctx context.Context, username, password, passwordConfirm string) error {
	if password != passwordConfirm {
		return ErrPasswordMismatch
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("username already in use", "username", username)
		return ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if _, err := svc.writer.Save(ctx, username, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user, records a session and returns a signed token.
// Unknown usernames and wrong passwords both map to ErrInvalidCredentials so
// callers cannot enumerate accounts.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, sessionID, err := svc.tokens.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	if err := svc.sessions.Save(ctx, sessionID, user.UserID); err != nil {
		logger.Log.Errorw("failed to record session", "err", err)
		return "", err
	}

	return token, nil
}

// Logout revokes the session record, invalidating the token before its
// natural expiry.
func (svc *AuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := svc.sessions.Delete(ctx, sessionID); err != nil {
		logger.Log.Errorw("failed to delete session", "session_id", sessionID, "err", err)
		return err
	}
	return nil
}
