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

// ProjectDetailer returns a project with its lists, items and totals.
type ProjectDetailer interface {
	Detail(ctx context.Context, userID uuid.UUID, projectID int64) (*services.ProjectDetail, error)
}

// ProjectEditor edits a project's name or description.
type ProjectEditor interface {
	Rename(ctx context.Context, userID uuid.UUID, projectID int64, name string) error
	SetDescription(ctx context.Context, userID uuid.UUID, projectID int64, description string) error
}

// ProjectDeleter removes a project with its lists and items.
type ProjectDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID, projectID int64) error
}

// EditNameRequest represents the JSON body for renaming a project
// swagger:model EditNameRequest
type EditNameRequest struct {
	// New project name
	// required: true
	ProjectName string `json:"project_name"`
}

// EditDescriptionRequest represents the JSON body for editing a description
// swagger:model EditDescriptionRequest
type EditDescriptionRequest struct {
	// New project description
	// required: true
	Description string `json:"description"`
}

// StatusResponse is a generic success message
// swagger:model StatusResponse
type StatusResponse struct {
	// Success message
	Message string `json:"message"`
}

// NewProjectDetailHandler returns an HTTP handler for the project view.
// @Summary Get project detail
// @Description Returns the project with its lists, items, per-list weight totals and overall total
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Success 200 {object} services.ProjectDetail "Project detail returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid project id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /projects/{projectID} [get]
func NewProjectDetailHandler(svc ProjectDetailer, tokener Tokener) http.HandlerFunc {
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

		detail, err := svc.Detail(ctx, userID, projectID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProjectNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Project not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(detail)
	}
}

// NewRenameProjectHandler returns an HTTP handler for renaming a project.
// @Summary Rename a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Param editNameRequest body handlers.EditNameRequest true "New name"
// @Success 200 {object} handlers.StatusResponse "Project renamed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /projects/{projectID}/name [put]
func NewRenameProjectHandler(svc ProjectEditor, tokener Tokener) http.HandlerFunc {
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

// NewProjectDescriptionHandler returns an HTTP handler for editing a
// project's description.
// @Summary Edit project description
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Param editDescriptionRequest body handlers.EditDescriptionRequest true "New description"
// @Success 200 {object} handlers.StatusResponse "Description updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /projects/{projectID}/description [put]
func NewProjectDescriptionHandler(svc ProjectEditor, tokener Tokener) http.HandlerFunc {
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

// NewDeleteProjectHandler returns an HTTP handler that deletes a project and
// everything in it. Routed through the transaction middleware so the three
// deletes are atomic.
// @Summary Delete a project
// @Description Deletes the project, its lists and its items
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Success 200 {object} handlers.StatusResponse "Project deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid project id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /projects/{projectID} [delete]
func NewDeleteProjectHandler(svc ProjectDeleter, tokener Tokener) http.HandlerFunc {
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

// writeProjectError maps service errors to HTTP responses.
func writeProjectError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Project not found"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
	}
}
