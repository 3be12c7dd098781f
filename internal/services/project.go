package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/askedal/trailpack/internal/logger"
	"github.com/askedal/trailpack/internal/models"
)

// ErrProjectNotFound is returned when a project id does not exist or does
// not belong to the caller. Ownership misses surface as not-found rather
// than silent no-ops.
var ErrProjectNotFound = errors.New("project not found")

// ProjectReader defines read operations for projects.
type ProjectReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ProjectDB, error)
	GetByID(ctx context.Context, userID uuid.UUID, projectID int64) (*models.ProjectDB, error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	Save(ctx context.Context, userID uuid.UUID, name string) (int64, error)
	UpdateName(ctx context.Context, userID uuid.UUID, projectID int64, name string) (int64, error)
	UpdateDescription(ctx context.Context, userID uuid.UUID, projectID int64, description string) (int64, error)
	Delete(ctx context.Context, userID uuid.UUID, projectID int64) (int64, error)
}

// ProjectDetail is a project together with its lists, items and derived
// weight totals. Totals are recomputed on every read, never stored.
type ProjectDetail struct {
	Project     models.ProjectDB  `json:"project"`
	Lists       []models.ListDB   `json:"lists"`
	Items       []models.ItemDB   `json:"items"`
	ListTotals  map[int64]float64 `json:"list_totals"`
	TotalWeight float64           `json:"total_weight"`
}

// ProjectService handles the dashboard and per-project operations.
type ProjectService struct {
	reader     ProjectReader
	writer     ProjectWriter
	lists      ListReader
	listWriter ListWriter
	items      ItemReader
	itemWriter ItemWriter
}

// NewProjectService creates a new ProjectService.
func NewProjectService(
	reader ProjectReader,
	writer ProjectWriter,
	lists ListReader,
	listWriter ListWriter,
	items ItemReader,
	itemWriter ItemWriter,
) *ProjectService {
	return &ProjectService{
		reader:     reader,
		writer:     writer,
		lists:      lists,
		listWriter: listWriter,
		items:      items,
		itemWriter: itemWriter,
	}
}

// Dashboard returns all projects owned by the caller.
func (s *ProjectService) Dashboard(ctx context.Context, userID uuid.UUID) ([]models.ProjectDB, error) {
	projects, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list projects", "user_id", userID, "error", err)
		return nil, err
	}
	return projects, nil
}

// Create inserts a project owned by the caller and returns its id.
func (s *ProjectService) Create(ctx context.Context, userID uuid.UUID, name string) (int64, error) {
	projectID, err := s.writer.Save(ctx, userID, name)
	if err != nil {
		logger.Log.Errorw("failed to create project", "user_id", userID, "error", err)
		return 0, err
	}
	return projectID, nil
}

// Detail returns a project with its lists, items and weight totals. Items
// are fetched scoped to both owner and project, so another project's items
// never leak into the totals.
func (s *ProjectService) Detail(ctx context.Context, userID uuid.UUID, projectID int64) (*ProjectDetail, error) {
	project, err := s.reader.GetByID(ctx, userID, projectID)
	if err != nil {
		logger.Log.Errorw("failed to get project", "project_id", projectID, "error", err)
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	lists, err := s.lists.ListByProject(ctx, userID, projectID)
	if err != nil {
		logger.Log.Errorw("failed to list lists", "project_id", projectID, "error", err)
		return nil, err
	}

	items, err := s.items.ListByProject(ctx, userID, projectID)
	if err != nil {
		logger.Log.Errorw("failed to list items", "project_id", projectID, "error", err)
		return nil, err
	}

	listIDs := make([]int64, len(lists))
	for i, l := range lists {
		listIDs[i] = l.ListID
	}
	entries := make([]WeightEntry, len(items))
	for i, it := range items {
		entries[i] = WeightEntry{ListID: it.ListID, Weight: it.Weight, Quantity: it.Quantity}
	}
	listTotals, totalWeight := AggregateWeights(listIDs, entries)

	return &ProjectDetail{
		Project:     *project,
		Lists:       lists,
		Items:       items,
		ListTotals:  listTotals,
		TotalWeight: totalWeight,
	}, nil
}

// Rename changes a project's name.
func (s *ProjectService) Rename(ctx context.Context, userID uuid.UUID, projectID int64, name string) error {
	rows, err := s.writer.UpdateName(ctx, userID, projectID, name)
	if err != nil {
		logger.Log.Errorw("failed to rename project", "project_id", projectID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// SetDescription sets or replaces a project's description.
func (s *ProjectService) SetDescription(ctx context.Context, userID uuid.UUID, projectID int64, description string) error {
	rows, err := s.writer.UpdateDescription(ctx, userID, projectID, description)
	if err != nil {
		logger.Log.Errorw("failed to update project description", "project_id", projectID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// Delete removes a project together with its lists and items. The cascade is
// manual; callers run this under a request transaction so a failure rolls
// back all three deletes.
func (s *ProjectService) Delete(ctx context.Context, userID uuid.UUID, projectID int64) error {
	rows, err := s.writer.Delete(ctx, userID, projectID)
	if err != nil {
		logger.Log.Errorw("failed to delete project", "project_id", projectID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrProjectNotFound
	}

	if _, err := s.listWriter.DeleteByProject(ctx, userID, projectID); err != nil {
		logger.Log.Errorw("failed to delete project lists", "project_id", projectID, "error", err)
		return err
	}

	if _, err := s.itemWriter.DeleteByProject(ctx, userID, projectID); err != nil {
		logger.Log.Errorw("failed to delete project items", "project_id", projectID, "error", err)
		return err
	}

	return nil
}
