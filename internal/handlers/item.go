package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/askedal/trailpack/internal/logger"
)

// ItemCreator creates an item inside a list.
type ItemCreator interface {
	Create(ctx context.Context, userID uuid.UUID, projectID, listID int64, name, description string, weight float64, quantity int64) (int64, error)
}

// ItemsDeleter removes a set of items from a project.
type ItemsDeleter interface {
	DeleteSet(ctx context.Context, userID uuid.UUID, projectID int64, itemIDs []int64) (int64, error)
}

// CreateItemRequest represents the JSON body for creating an item
// swagger:model CreateItemRequest
type CreateItemRequest struct {
	// List the item belongs to
	// required: true
	ListID int64 `json:"list_id"`

	// Item name
	// required: true
	// default: Sleeping bag
	ItemName string `json:"item_name"`

	// Optional free-form description
	Description string `json:"description"`

	// Weight of a single unit, must be non-negative
	// required: true
	// default: 1.2
	Weight float64 `json:"weight"`

	// Number of units, must be positive
	// required: true
	// default: 1
	Quantity int64 `json:"quantity"`
}

// CreateItemResponse carries the id of a newly created item
// swagger:model CreateItemResponse
type CreateItemResponse struct {
	// Generated item id
	ItemID int64 `json:"item_id"`
}

// DeleteItemsRequest represents the JSON body for deleting a set of items
// swagger:model DeleteItemsRequest
type DeleteItemsRequest struct {
	// Ids of the items to delete; ids not owned by the caller are skipped
	// required: true
	ItemIDs []int64 `json:"item_ids"`
}

// DeleteItemsResponse reports how many items were removed
// swagger:model DeleteItemsResponse
type DeleteItemsResponse struct {
	// Number of items removed
	Deleted int64 `json:"deleted"`
}

// NewCreateItemHandler returns an HTTP handler for adding an item to a list.
// Weight and quantity are validated here before any write; the original
// application stored unparsed form values, which corrupted the weight
// aggregation downstream.
// @Summary Create an item
// @Description Adds an item to a list inside a project the caller owns
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Param createItemRequest body handlers.CreateItemRequest true "Item to create"
// @Success 201 {object} handlers.CreateItemResponse "Item created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Project not found"
// @Router /projects/{projectID}/items [post]
func NewCreateItemHandler(svc ItemCreator, tokener Tokener) http.HandlerFunc {
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

		var req CreateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}
		if req.ItemName == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "You must provide an item name"})
			return
		}
		if req.ListID <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid list id"})
			return
		}
		if req.Weight < 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Weight must be non-negative"})
			return
		}
		if req.Quantity <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Quantity must be positive"})
			return
		}

		itemID, err := svc.Create(ctx, userID, projectID, req.ListID, req.ItemName, req.Description, req.Weight, req.Quantity)
		if err != nil {
			writeProjectError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateItemResponse{ItemID: itemID})
	}
}

// NewDeleteItemsHandler returns an HTTP handler that deletes a set of items.
// Ids matching no row owned by the caller are skipped, the rest of the set
// is still processed.
// @Summary Delete items
// @Description Deletes the given items from a project the caller owns
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectID path int true "Project ID"
// @Param deleteItemsRequest body handlers.DeleteItemsRequest true "Items to delete"
// @Success 200 {object} handlers.DeleteItemsResponse "Items deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /projects/{projectID}/items [delete]
func NewDeleteItemsHandler(svc ItemsDeleter, tokener Tokener) http.HandlerFunc {
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

		var req DeleteItemsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid request body"})
			return
		}
		if len(req.ItemIDs) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "You must provide item ids"})
			return
		}

		deleted, err := svc.DeleteSet(ctx, userID, projectID, req.ItemIDs)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteItemsResponse{Deleted: deleted})
	}
}
