package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/askedal/trailpack/internal/models"
)

// authTokener wires a mock Tokener to resolve the given user id from any
// request carrying a bearer token.
func authTokener(ctrl *gomock.Controller, userID uuid.UUID) *MockTokener {
	tokener := NewMockTokener(ctrl)
	tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("JWT_TOKEN", nil).AnyTimes()
	tokener.EXPECT().GetUserID(gomock.Any(), "JWT_TOKEN").Return(userID, nil).AnyTimes()
	return tokener
}

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockSvc := NewMockDashboarder(ctrl)
	tokener := authTokener(ctrl, userID)

	projects := []models.ProjectDB{
		{ProjectID: 1, UserID: userID, ProjectName: "Trip"},
	}
	mockSvc.EXPECT().Dashboard(gomock.Any(), userID).Return(projects, nil)

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("Authorization", "Bearer JWT_TOKEN")
	rr := httptest.NewRecorder()

	NewDashboardHandler(mockSvc, tokener).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp DashboardResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Projects, 1)
	assert.Equal(t, "Trip", resp.Projects[0].ProjectName)
}

func TestDashboardHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokener := NewMockTokener(ctrl)
	tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("authorization header missing"))

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	rr := httptest.NewRecorder()

	NewDashboardHandler(nil, tokener).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateProjectHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockSvc := NewMockProjectCreator(ctrl)
	tokener := authTokener(ctrl, userID)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "success",
			inputBody: CreateProjectRequest{ProjectName: "Trip"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), userID, "Trip").
					Return(int64(42), nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: &CreateProjectResponse{ProjectID: 42},
		},
		{
			name:         "missing project name",
			inputBody:    CreateProjectRequest{},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "You must provide a project name"},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &ErrorResponse{Error: "Invalid request body"},
		},
		{
			name:      "internal error",
			inputBody: CreateProjectRequest{ProjectName: "Trip"},
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), userID, "Trip").
					Return(int64(0), errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &ErrorResponse{Error: "Internal server error"},
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

			req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewReader(bodyBytes))
			req.Header.Set("Authorization", "Bearer JWT_TOKEN")
			rr := httptest.NewRecorder()

			NewCreateProjectHandler(mockSvc, tokener).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			expectedJSON, _ := json.Marshal(tt.expectedBody)
			assert.JSONEq(t, string(expectedJSON), rr.Body.String())
		})
	}
}
