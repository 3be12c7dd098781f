package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/askedal/trailpack/internal/logger"
	"github.com/askedal/trailpack/internal/models"
)

// ExploreReader defines read operations against the explore mirror tables.
type ExploreReader interface {
	ListProjects(ctx context.Context) ([]models.ExploreProjectDB, error)
	GetProject(ctx context.Context, projectID int64) (*models.ExploreProjectDB, error)
	ListLists(ctx context.Context, projectID int64) ([]models.ExploreListDB, error)
	ListItems(ctx context.Context, projectID int64) ([]models.ExploreItemDB, error)
}

// ExploreDetail is a published snapshot with its lists, items and derived
// weight totals.
type ExploreDetail struct {
	Project     models.ExploreProjectDB `json:"project"`
	Lists       []models.ExploreListDB  `json:"lists"`
	Items       []models.ExploreItemDB  `json:"items"`
	ListTotals  map[int64]float64       `json:"list_totals"`
	TotalWeight float64                 `json:"total_weight"`
}

// ExploreService serves the public gallery and lets publishers edit or
// remove their own snapshots.
type ExploreService struct {
	reader ExploreReader
	writer ExploreWriter
}

// NewExploreService creates a new ExploreService.
func NewExploreService(reader ExploreReader, writer ExploreWriter) *ExploreService {
	return &ExploreService{
		reader: reader,
		writer: writer,
	}
}

// Gallery returns every published project.
func (s *ExploreService) Gallery(ctx context.Context) ([]models.ExploreProjectDB, error) {
	projects, err := s.reader.ListProjects(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list explore projects", "error", err)
		return nil, err
	}
	return projects, nil
}

// Detail returns a published snapshot with weight totals. Lists link to
// their items through the original list id carried into the snapshot.
func (s *ExploreService) Detail(ctx context.Context, projectID int64) (*ExploreDetail, error) {
	project, err := s.reader.GetProject(ctx, projectID)
	if err != nil {
		logger.Log.Errorw("failed to get explore project", "project_id", projectID, "error", err)
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}

	lists, err := s.reader.ListLists(ctx, projectID)
	if err != nil {
		logger.Log.Errorw("failed to list explore lists", "project_id", projectID, "error", err)
		return nil, err
	}

	items, err := s.reader.ListItems(ctx, projectID)
	if err != nil {
		logger.Log.Errorw("failed to list explore items", "project_id", projectID, "error", err)
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

	return &ExploreDetail{
		Project:     *project,
		Lists:       lists,
		Items:       items,
		ListTotals:  listTotals,
		TotalWeight: totalWeight,
	}, nil
}

// Rename changes a published snapshot's name, scoped to the publishing user.
func (s *ExploreService) Rename(ctx context.Context, userID uuid.UUID, projectID int64, name string) error {
	rows, err := s.writer.UpdateName(ctx, userID, projectID, name)
	if err != nil {
		logger.Log.Errorw("failed to rename explore project", "project_id", projectID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// SetDescription edits a published snapshot's description, scoped to the
// publishing user.
func (s *ExploreService) SetDescription(ctx context.Context, userID uuid.UUID, projectID int64, description string) error {
	rows, err := s.writer.UpdateDescription(ctx, userID, projectID, description)
	if err != nil {
		logger.Log.Errorw("failed to update explore description", "project_id", projectID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// Delete removes a published snapshot with its lists and items. Runs under a
// request transaction.
func (s *ExploreService) Delete(ctx context.Context, userID uuid.UUID, projectID int64) error {
	rows, err := s.writer.DeleteProject(ctx, userID, projectID)
	if err != nil {
		logger.Log.Errorw("failed to delete explore project", "project_id", projectID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrProjectNotFound
	}

	if _, err := s.writer.DeleteItems(ctx, userID, projectID); err != nil {
		logger.Log.Errorw("failed to delete explore items", "project_id", projectID, "error", err)
		return err
	}

	if _, err := s.writer.DeleteLists(ctx, userID, projectID); err != nil {
		logger.Log.Errorw("failed to delete explore lists", "project_id", projectID, "error", err)
		return err
	}

	return nil
}
