package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// Sharer publishes a project snapshot to the explore gallery.
type Sharer interface {
	Publish(ctx context.Context, userID uuid.UUID, projectID int64) (int64, error)
}

// ShareResponse carries the id of the new explore entry
// swagger:model ShareResponse
type ShareResponse struct {
	// Generated explore project id
	ExploreProjectID int64 `json:"explore_project_id"`
}

// NewShareProjectHandler returns an HTTP handler that publishes a project to
// the explore gallery. Each share creates an independent snapshot; sharing
// the same project twice produces two explore entries. Routed through the
// transaction middleware so a partial copy rolls back.
// @Summary Share a project
// @Description Copies the project, its lists and its items into the public explore gallery
// @Tags explore
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Success 201 {object} handlers.ShareResponse "Project shared"
// @Failure 400 {object} handlers.ErrorResponse "Invalid project id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /projects/{projectID}/share [post]
func NewShareProjectHandler(svc Sharer, tokener Tokener) http.HandlerFunc {
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

		exploreProjectID, err := svc.Publish(ctx, userID, projectID)
		if err != nil {
			writeProjectError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ShareResponse{ExploreProjectID: exploreProjectID})
	}
}
