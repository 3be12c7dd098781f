package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	j := New("test-secret", time.Minute)

	userID := uuid.New()
	ctx := context.Background()

	token, sessionID, err := j.Generate(ctx, userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, uuid.Nil, sessionID)

	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, sessionID.String(), claims.ID)

	gotUserID, err := j.GetUserID(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotUserID)

	gotSessionID, err := j.GetSessionID(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, sessionID, gotSessionID)
}

func TestJWT_EachTokenGetsFreshSessionID(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()
	userID := uuid.New()

	_, first, err := j.Generate(ctx, userID)
	assert.NoError(t, err)
	_, second, err := j.Generate(ctx, userID)
	assert.NoError(t, err)

	// Two logins revoke independently
	assert.NotEqual(t, first, second)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute) // already expired

	userID := uuid.New()
	ctx := context.Background()

	token, _, err := j.Generate(ctx, userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	claims, err := j.GetClaims(ctx, "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, claims)

	// A token signed with a different key is rejected
	other := New("other-secret", time.Minute)
	token, _, err := other.Generate(ctx, uuid.New())
	assert.NoError(t, err)

	_, err = j.GetUserID(ctx, token)
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name      string
		header    string
		expected  string
		expectErr bool
	}{
		{"valid bearer", "Bearer sometoken", "sometoken", false},
		{"lowercase scheme", "bearer sometoken", "sometoken", false},
		{"missing header", "", "", true},
		{"wrong scheme", "Basic sometoken", "", true},
		{"no token", "Bearer", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, token)
			}
		})
	}
}
