package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/askedal/trailpack/internal/logger"
	"github.com/askedal/trailpack/internal/models"
)

// ErrListNotFound is returned when a list id does not exist inside the
// caller's project.
var ErrListNotFound = errors.New("list not found")

// ListReader defines read operations for packing lists.
type ListReader interface {
	ListByProject(ctx context.Context, userID uuid.UUID, projectID int64) ([]models.ListDB, error)
}

// ListWriter defines write operations for packing lists.
type ListWriter interface {
	Save(ctx context.Context, userID uuid.UUID, projectID int64, name string) (int64, error)
	Delete(ctx context.Context, userID uuid.UUID, listID, projectID int64) (int64, error)
	DeleteByProject(ctx context.Context, userID uuid.UUID, projectID int64) (int64, error)
}

// ListService handles list creation and deletion within a project.
type ListService struct {
	projects   ProjectReader
	writer     ListWriter
	itemWriter ItemWriter
}

// NewListService creates a new ListService.
func NewListService(projects ProjectReader, writer ListWriter, itemWriter ItemWriter) *ListService {
	return &ListService{
		projects:   projects,
		writer:     writer,
		itemWriter: itemWriter,
	}
}

// Create adds a list to a project the caller owns.
func (s *ListService) Create(ctx context.Context, userID uuid.UUID, projectID int64, name string) (int64, error) {
	project, err := s.projects.GetByID(ctx, userID, projectID)
	if err != nil {
		logger.Log.Errorw("failed to check project", "project_id", projectID, "error", err)
		return 0, err
	}
	if project == nil {
		return 0, ErrProjectNotFound
	}

	listID, err := s.writer.Save(ctx, userID, projectID, name)
	if err != nil {
		logger.Log.Errorw("failed to create list", "project_id", projectID, "error", err)
		return 0, err
	}
	return listID, nil
}

// Delete removes a list and its items. Runs under a request transaction so
// the list and item deletes land together.
func (s *ListService) Delete(ctx context.Context, userID uuid.UUID, projectID, listID int64) error {
	rows, err := s.writer.Delete(ctx, userID, listID, projectID)
	if err != nil {
		logger.Log.Errorw("failed to delete list", "list_id", listID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrListNotFound
	}

	if _, err := s.itemWriter.DeleteByList(ctx, userID, projectID, listID); err != nil {
		logger.Log.Errorw("failed to delete list items", "list_id", listID, "error", err)
		return err
	}

	return nil
}
