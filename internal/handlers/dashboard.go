package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/askedal/trailpack/internal/logger"
	"github.com/askedal/trailpack/internal/models"
)

// Dashboarder lists the caller's projects.
type Dashboarder interface {
	Dashboard(ctx context.Context, userID uuid.UUID) ([]models.ProjectDB, error)
}

// ProjectCreator creates a project for the caller.
type ProjectCreator interface {
	Create(ctx context.Context, userID uuid.UUID, name string) (int64, error)
}

// DashboardResponse represents the caller's project overview
// swagger:model DashboardResponse
type DashboardResponse struct {
	// Projects owned by the caller
	Projects []models.ProjectDB `json:"projects"`
}

// CreateProjectRequest represents the JSON body for creating a project
// swagger:model CreateProjectRequest
type CreateProjectRequest struct {
	// Project name, duplicates permitted
	// required: true
	// default: Trip to Jotunheimen
	ProjectName string `json:"project_name"`
}

// CreateProjectResponse carries the id of a newly created project
// swagger:model CreateProjectResponse
type CreateProjectResponse struct {
	// Generated project id
	ProjectID int64 `json:"project_id"`
}

// NewDashboardHandler returns an HTTP handler for the project dashboard.
// @Summary List projects
// @Description Returns all projects owned by the authenticated user
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.DashboardResponse "Projects returned"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /projects [get]
func NewDashboardHandler(svc Dashboarder, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := callerID(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		projects, err := svc.Dashboard(ctx, userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DashboardResponse{Projects: projects})
	}
}

// NewCreateProjectHandler returns an HTTP handler for creating a project.
// @Summary Create a project
// @Description Creates a project owned by the authenticated user
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createProjectRequest body handlers.CreateProjectRequest true "Project to create"
// @Success 201 {object} handlers.CreateProjectResponse "Project created"
// @Failure 400 {object} handlers.ErrorResponse "Missing project name"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /projects [post]
func NewCreateProjectHandler(svc ProjectCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, err := callerID(ctx, tokener, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req CreateProjectRequest
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

		projectID, err := svc.Create(ctx, userID, req.ProjectName)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateProjectResponse{ProjectID: projectID})
	}
}
