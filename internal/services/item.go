package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/askedal/trailpack/internal/logger"
	"github.com/askedal/trailpack/internal/models"
)

// ItemReader defines read operations for items.
type ItemReader interface {
	ListByProject(ctx context.Context, userID uuid.UUID, projectID int64) ([]models.ItemDB, error)
}

// ItemWriter defines write operations for items.
type ItemWriter interface {
	Save(ctx context.Context, userID uuid.UUID, projectID, listID int64, name, description string, weight float64, quantity int64) (int64, error)
	Delete(ctx context.Context, userID uuid.UUID, projectID, itemID int64) (int64, error)
	DeleteByList(ctx context.Context, userID uuid.UUID, projectID, listID int64) (int64, error)
	DeleteByProject(ctx context.Context, userID uuid.UUID, projectID int64) (int64, error)
}

// ItemService handles item creation and deletion within a project.
type ItemService struct {
	projects ProjectReader
	writer   ItemWriter
}

// NewItemService creates a new ItemService.
func NewItemService(projects ProjectReader, writer ItemWriter) *ItemService {
	return &ItemService{
		projects: projects,
		writer:   writer,
	}
}

// Create adds an item to a list inside a project the caller owns.
func (s *ItemService) Create(ctx context.Context, userID uuid.UUID, projectID, listID int64, name, description string, weight float64, quantity int64) (int64, error) {
	project, err := s.projects.GetByID(ctx, userID, projectID)
	if err != nil {
		logger.Log.Errorw("failed to check project", "project_id", projectID, "error", err)
		return 0, err
	}
	if project == nil {
		return 0, ErrProjectNotFound
	}

	itemID, err := s.writer.Save(ctx, userID, projectID, listID, name, description, weight, quantity)
	if err != nil {
		logger.Log.Errorw("failed to create item", "project_id", projectID, "list_id", listID, "error", err)
		return 0, err
	}
	return itemID, nil
}

// DeleteSet removes a set of items scoped to caller and project. Ids that
// match no row are skipped; the rest of the set is still processed. Returns
// the number of items actually removed.
func (s *ItemService) DeleteSet(ctx context.Context, userID uuid.UUID, projectID int64, itemIDs []int64) (int64, error) {
	var deleted int64
	for _, itemID := range itemIDs {
		rows, err := s.writer.Delete(ctx, userID, projectID, itemID)
		if err != nil {
			logger.Log.Errorw("failed to delete item", "item_id", itemID, "error", err)
			return deleted, err
		}
		if rows == 0 {
			logger.Log.Infow("item not found, skipping", "item_id", itemID, "project_id", projectID)
			continue
		}
		deleted += rows
	}
	return deleted, nil
}
