package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/askedal/trailpack/internal/logger"
	"github.com/askedal/trailpack/internal/services"
)

// ListCreator creates a list inside a project.
type ListCreator interface {
	Create(ctx context.Context, userID uuid.UUID, projectID int64, name string) (int64, error)
}

// ListDeleter removes a list and its items.
type ListDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID, projectID, listID int64) error
}

// CreateListRequest represents the JSON body for creating a list
// swagger:model CreateListRequest
type CreateListRequest struct {
	// List name
	// required: true
	// default: Camping gear
	ListName string `json:"list_name"`
}

// CreateListResponse carries the id of a newly created list
// swagger:model CreateListResponse
type CreateListResponse struct {
	// Generated list id
	ListID int64 `json:"list_id"`
}

// NewCreateListHandler returns an HTTP handler for adding a list to a project.
// @Summary Create a list
// @Description Adds a packing list to a project the caller owns
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Param createListRequest body handlers.CreateListRequest true "List to create"
// @Success 201 {object} handlers.CreateListResponse "List created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /projects/{projectID}/lists [post]
func NewCreateListHandler(svc ListCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := callerID(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		projectID, ok := pathID(r, "projectID")
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid project id"})
			return
		}

		var req CreateListRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}
		if req.ListName == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "You must provide a list name"})
			return
		}

		listID, err := svc.Create(ctx, userID, projectID, req.ListName)
		if err != nil {
			writeProjectError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateListResponse{ListID: listID})
	}
}

// NewDeleteListHandler returns an HTTP handler that deletes a list and its
// items. Routed through the transaction middleware.
// @Summary Delete a list
// @Description Deletes the list and its items from a project the caller owns
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Param listID path int true "List ID"
// @Success 200 {object} handlers.StatusResponse "List deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "List not found"
// @Router /projects/{projectID}/lists/{listID} [delete]
func NewDeleteListHandler(svc ListDeleter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := callerID(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		projectID, ok := pathID(r, "projectID")
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid project id"})
			return
		}

		listID, ok := pathID(r, "listID")
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid list id"})
			return
		}

		if err := svc.Delete(ctx, userID, projectID, listID); err != nil {
			switch {
			case errors.Is(err, services.ErrListNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "List not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatusResponse{Message: "List deleted"})
	}
}
