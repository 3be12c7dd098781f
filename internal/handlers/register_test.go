package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/askedal/trailpack/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockRegisterer(ctrl)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: RegisterRequest{
				Username:        "john",
				Password:        "secret123",
				PasswordConfirm: "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "john", "secret123", "secret123").
					Return(nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &RegisterResponse{
				Message: "You were successfully registered",
			},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Error: "Invalid request body",
			},
		},
		{
			name: "missing username",
			inputBody: RegisterRequest{
				Password:        "secret123",
				PasswordConfirm: "secret123",
			},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Error: "You must provide a username",
			},
		},
		{
			name: "missing password",
			inputBody: RegisterRequest{
				Username: "john",
			},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Error: "You must provide a password",
			},
		},
		{
			name: "passwords do not match",
			inputBody: RegisterRequest{
				Username:        "john",
				Password:        "secret123",
				PasswordConfirm: "other",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "john", "secret123", "other").
					Return(services.ErrPasswordMismatch)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Error: "Passwords don't match",
			},
		},
		{
			name: "username already in use",
			inputBody: RegisterRequest{
				Username:        "john",
				Password:        "secret123",
				PasswordConfirm: "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "john", "secret123", "secret123").
					Return(services.ErrUsernameTaken)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{
				Error: "Username already in use",
			},
		},
		{
			name: "internal error",
			inputBody: RegisterRequest{
				Username:        "john",
				Password:        "secret123",
				PasswordConfirm: "secret123",
			},
			mockSetup: func() {
				mockSvc.EXPECT().
					Register(gomock.Any(), "john", "secret123", "secret123").
					Return(errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{
				Error: "Internal server error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			NewRegisterHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			expectedJSON, _ := json.Marshal(tt.expectedBody)
			assert.JSONEq(t, string(expectedJSON), rr.Body.String())
		})
	}
}
