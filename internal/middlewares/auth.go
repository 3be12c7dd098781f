package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/askedal/trailpack/internal/jwt"
	"github.com/askedal/trailpack/internal/logger"
)

// Tokener defines the minimal token interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionReader checks that a session record is still live. A token whose
// session record was deleted (logout) is rejected even if its signature and
// expiry are valid.
type SessionReader interface {
	Get(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error)
}

// AuthMiddleware returns a middleware that validates the bearer token and
// its backing session record. Unauthenticated requests never reach the
// wrapped handler.
func AuthMiddleware(tokener Tokener, sessions SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			sessionID, err := uuid.Parse(claims.ID)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if _, err := sessions.Get(ctx, sessionID); err != nil {
				logger.Log.Errorw("session revoked or expired", "session_id", sessionID, "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
