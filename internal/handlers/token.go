package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Tokener resolves the calling user from the request's bearer token. The
// auth middleware has already validated the token and its session record;
// handlers still read the identity explicitly rather than from ambient
// request state.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
	GetSessionID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// ErrorResponse is the uniform error body returned by all handlers
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// callerID extracts the authenticated user id from the request token.
func callerID(ctx context.Context, tokener Tokener, r *http.Request) (uuid.UUID, error) {
	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return uuid.Nil, err
	}
	return tokener.GetUserID(ctx, tokenString)
}

// pathID parses a positive int64 URL parameter.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
