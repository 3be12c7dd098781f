package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/askedal/trailpack/internal/logger"
	"github.com/askedal/trailpack/internal/models"
)

// ExploreReadRepository handles reads against the public explore mirror.
// Gallery reads are unscoped: published snapshots are visible to everyone.
type ExploreReadRepository struct {
	db *sqlx.DB
}

func NewExploreReadRepository(db *sqlx.DB) *ExploreReadRepository {
	return &ExploreReadRepository{db: db}
}

// ListProjects returns every published project, most recent first.
func (r *ExploreReadRepository) ListProjects(ctx context.Context) ([]models.ExploreProjectDB, error) {
	const query = `
		SELECT project_id, user_id, username, project_name, project_description, created_at
		FROM explore_projects
		ORDER BY project_id DESC
	`

	var projects []models.ExploreProjectDB
	err := r.db.SelectContext(ctx, &projects, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(projects),
		"error", err,
	)

	return projects, err
}

// GetProject returns a published project by id, or nil if absent.
func (r *ExploreReadRepository) GetProject(ctx context.Context, projectID int64) (*models.ExploreProjectDB, error) {
	const query = `
		SELECT project_id, user_id, username, project_name, project_description, created_at
		FROM explore_projects
		WHERE project_id = $1
	`

	var project models.ExploreProjectDB
	err := r.db.GetContext(ctx, &project, query, projectID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{projectID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ListLists returns the published lists of a snapshot.
func (r *ExploreReadRepository) ListLists(ctx context.Context, projectID int64) ([]models.ExploreListDB, error) {
	const query = `
		SELECT explore_list_id, user_id, project_id, list_id, list_name, project_name
		FROM explore_lists
		WHERE project_id = $1
		ORDER BY explore_list_id
	`

	var lists []models.ExploreListDB
	err := r.db.SelectContext(ctx, &lists, query, projectID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{projectID},
		"rows", len(lists),
		"error", err,
	)

	return lists, err
}

// ListItems returns the published items of a snapshot.
func (r *ExploreReadRepository) ListItems(ctx context.Context, projectID int64) ([]models.ExploreItemDB, error) {
	const query = `
		SELECT explore_item_id, user_id, project_id, list_id, item_id, item_name, description, weight, quantity
		FROM explore_items
		WHERE project_id = $1
		ORDER BY explore_item_id
	`

	var items []models.ExploreItemDB
	err := r.db.SelectContext(ctx, &items, query, projectID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{projectID},
		"rows", len(items),
		"error", err,
	)

	return items, err
}

// ExploreWriteRepository handles writes against the explore mirror. All
// mutations of published snapshots are scoped to the publishing user.
type ExploreWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewExploreWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ExploreWriteRepository {
	return &ExploreWriteRepository{db: db, txGetter: txGetter}
}

func (r *ExploreWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// SaveProject inserts a published project row and returns the freshly minted
// explore project id. Using the insert's generated identifier avoids the
// requery-by-name race under concurrent publishes of identically named
// projects.
func (r *ExploreWriteRepository) SaveProject(ctx context.Context, userID uuid.UUID, username, projectName string, description *string) (int64, error) {
	const query = `
		INSERT INTO explore_projects (user_id, username, project_name, project_description, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING project_id
	`

	var projectID int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &projectID, query, userID, username, projectName, description)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, username, projectName},
		"result", projectID,
		"error", err,
	)

	return projectID, err
}

// SaveList inserts a published copy of a list, denormalized with the project
// name for query-free display.
func (r *ExploreWriteRepository) SaveList(ctx context.Context, userID uuid.UUID, projectID int64, list models.ListDB, projectName string) error {
	const query = `
		INSERT INTO explore_lists (user_id, project_id, list_id, list_name, project_name)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{userID, projectID, list.ListID, list.ListName, projectName}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// SaveItem inserts a published copy of an item.
func (r *ExploreWriteRepository) SaveItem(ctx context.Context, userID uuid.UUID, projectID int64, item models.ItemDB) error {
	const query = `
		INSERT INTO explore_items (user_id, project_id, list_id, item_id, item_name, description, weight, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	args := []any{userID, projectID, item.ListID, item.ItemID, item.ItemName, item.Description, item.Weight, item.Quantity}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// UpdateName renames a published snapshot, scoped to the publishing user.
func (r *ExploreWriteRepository) UpdateName(ctx context.Context, userID uuid.UUID, projectID int64, name string) (int64, error) {
	const query = `
		UPDATE explore_projects
		SET project_name = $1
		WHERE project_id = $2 AND user_id = $3
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, name, projectID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, projectID, userID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// UpdateDescription edits a published snapshot's description, scoped to the
// publishing user.
func (r *ExploreWriteRepository) UpdateDescription(ctx context.Context, userID uuid.UUID, projectID int64, description string) (int64, error) {
	const query = `
		UPDATE explore_projects
		SET project_description = $1
		WHERE project_id = $2 AND user_id = $3
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, description, projectID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{description, projectID, userID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// DeleteProject removes a published project row scoped to the publishing
// user. Lists and items are removed by their own delete methods inside the
// same transaction.
func (r *ExploreWriteRepository) DeleteProject(ctx context.Context, userID uuid.UUID, projectID int64) (int64, error) {
	const query = `
		DELETE FROM explore_projects
		WHERE project_id = $1 AND user_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, projectID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{projectID, userID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// DeleteLists removes a snapshot's lists.
func (r *ExploreWriteRepository) DeleteLists(ctx context.Context, userID uuid.UUID, projectID int64) (int64, error) {
	const query = `
		DELETE FROM explore_lists
		WHERE project_id = $1 AND user_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, projectID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{projectID, userID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// DeleteItems removes a snapshot's items.
func (r *ExploreWriteRepository) DeleteItems(ctx context.Context, userID uuid.UUID, projectID int64) (int64, error) {
	const query = `
		DELETE FROM explore_items
		WHERE project_id = $1 AND user_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, projectID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{projectID, userID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
