package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/askedal/trailpack/internal/services"
)

func TestCreateListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockSvc := NewMockListCreator(ctrl)
	tokener := authTokener(ctrl, userID)

	r := chi.NewRouter()
	r.Post("/projects/{projectID}/lists", NewCreateListHandler(mockSvc, tokener))

	mockSvc.EXPECT().Create(gomock.Any(), userID, int64(1), "Camping").Return(int64(10), nil)

	body, _ := json.Marshal(CreateListRequest{ListName: "Camping"})
	req := httptest.NewRequest(http.MethodPost, "/projects/1/lists", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer JWT_TOKEN")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"list_id":10}`, rr.Body.String())

	// Empty list name is rejected before the service is called
	body, _ = json.Marshal(CreateListRequest{})
	req = httptest.NewRequest(http.MethodPost, "/projects/1/lists", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer JWT_TOKEN")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Foreign project id resolves to not found
	mockSvc.EXPECT().Create(gomock.Any(), userID, int64(999), "Camping").Return(int64(0), services.ErrProjectNotFound)

	body, _ = json.Marshal(CreateListRequest{ListName: "Camping"})
	req = httptest.NewRequest(http.MethodPost, "/projects/999/lists", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer JWT_TOKEN")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockSvc := NewMockListDeleter(ctrl)
	tokener := authTokener(ctrl, userID)

	r := chi.NewRouter()
	r.Delete("/projects/{projectID}/lists/{listID}", NewDeleteListHandler(mockSvc, tokener))

	mockSvc.EXPECT().Delete(gomock.Any(), userID, int64(1), int64(10)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/projects/1/lists/10", nil)
	req.Header.Set("Authorization", "Bearer JWT_TOKEN")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"List deleted"}`, rr.Body.String())

	mockSvc.EXPECT().Delete(gomock.Any(), userID, int64(1), int64(99)).Return(services.ErrListNotFound)

	req = httptest.NewRequest(http.MethodDelete, "/projects/1/lists/99", nil)
	req.Header.Set("Authorization", "Bearer JWT_TOKEN")
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"List not found"}`, rr.Body.String())
}
