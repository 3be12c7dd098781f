package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/askedal/trailpack/internal/logger"
	"github.com/askedal/trailpack/internal/models"
	"github.com/askedal/trailpack/internal/services"
)

// ExploreLister returns the public gallery.
type ExploreLister interface {
	Gallery(ctx context.Context) ([]models.ExploreProjectDB, error)
}

// ExploreDetailer returns a published snapshot with totals.
type ExploreDetailer interface {
	Detail(ctx context.Context, projectID int64) (*services.ExploreDetail, error)
}

// ExploreEditor edits a published snapshot the caller owns.
type ExploreEditor interface {
	Rename(ctx context.Context, userID uuid.UUID, projectID int64, name string) error
	SetDescription(ctx context.Context, userID uuid.UUID, projectID int64, description string) error
}

// ExploreRemover deletes a published snapshot the caller owns.
type ExploreRemover interface {
	Delete(ctx context.Context, userID uuid.UUID, projectID int64) error
}

// ExploreResponse represents the public gallery
// swagger:model ExploreResponse
type ExploreResponse struct {
	// Published projects, most recent first
	Projects []models.ExploreProjectDB `json:"projects"`
}

// NewExploreHandler returns an HTTP handler for the public gallery. No
// authentication is required.
// @Summary List published projects
// @Description Returns every project shared to the explore gallery
// @Tags explore
// @Produce json
// @Success 200 {object} handlers.ExploreResponse "Published projects returned"
// @Router /explore [get]
func NewExploreHandler(svc ExploreLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := svc.Gallery(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ExploreResponse{Projects: projects})
	}
}

// NewExploreDetailHandler returns an HTTP handler for a published snapshot.
// No authentication is required.
// @Summary Get published project detail
// @Description Returns the snapshot with its lists, items and weight totals
// @Tags explore
// @Produce json
// @Param projectID path int true "Explore project ID"
// @Success 200 {object} services.ExploreDetail "Snapshot returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid project id"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /explore/{projectID} [get]
func NewExploreDetailHandler(svc ExploreDetailer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := pathID(r, "projectID")
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid project id"})
			return
		}

		detail, err := svc.Detail(r.Context(), projectID)
		if err != nil {
			writeProjectError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(detail)
	}
}

// NewRenameExploreProjectHandler returns an HTTP handler for renaming a
// published snapshot.
// @Summary Rename a published project
// @Tags explore
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Explore project ID"
// @Param editNameRequest body handlers.EditNameRequest true "New name"
// @Success 200 {object} handlers.StatusResponse "Project renamed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /explore/{projectID}/name [put]
func NewRenameExploreProjectHandler(svc ExploreEditor, tokener Tokener) http.HandlerFunc {
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

		var req EditNameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}
		if req.ProjectName == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "You must provide a project name"})
			return
		}

		if err := svc.Rename(ctx, userID, projectID, req.ProjectName); err != nil {
			writeProjectError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatusResponse{Message: "Project renamed"})
	}
}

// NewExploreDescriptionHandler returns an HTTP handler for editing a
// published snapshot's description.
// @Summary Edit a published project's description
// @Tags explore
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Explore project ID"
// @Param editDescriptionRequest body handlers.EditDescriptionRequest true "New description"
// @Success 200 {object} handlers.StatusResponse "Description updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /explore/{projectID}/description [put]
func NewExploreDescriptionHandler(svc ExploreEditor, tokener Tokener) http.HandlerFunc {
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

		var req EditDescriptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.SetDescription(ctx, userID, projectID, req.Description); err != nil {
			writeProjectError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatusResponse{Message: "Description updated"})
	}
}

// NewDeleteExploreProjectHandler returns an HTTP handler that removes a
// published snapshot with its lists and items. Routed through the
// transaction middleware.
// @Summary Delete a published project
// @Description Removes the snapshot, its lists and its items from the gallery
// @Tags explore
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Explore project ID"
// @Success 200 {object} handlers.StatusResponse "Project deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid project id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /explore/{projectID} [delete]
func NewDeleteExploreProjectHandler(svc ExploreRemover, tokener Tokener) http.HandlerFunc {
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

		if err := svc.Delete(ctx, userID, projectID); err != nil {
			writeProjectError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatusResponse{Message: "Project deleted"})
	}
}
