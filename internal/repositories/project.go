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

// ProjectReadRepository handles project read operations. Every query is
// scoped to the calling user; there is no row-level security at the storage
// layer, the predicate here is the isolation mechanism.
type ProjectReadRepository struct {
	db *sqlx.DB
}

func NewProjectReadRepository(db *sqlx.DB) *ProjectReadRepository {
	return &ProjectReadRepository{db: db}
}

// ListByUser returns all projects owned by the given user.
func (r *ProjectReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.ProjectDB, error) {
	const query = `
		SELECT project_id, user_id, project_name, project_description, created_at, updated_at
		FROM projects
		WHERE user_id = $1
		ORDER BY project_id
	`

	var projects []models.ProjectDB
	err := r.db.SelectContext(ctx, &projects, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(projects),
		"error", err,
	)

	return projects, err
}

// GetByID returns the project only if it belongs to the given user,
// nil otherwise.
func (r *ProjectReadRepository) GetByID(ctx context.Context, userID uuid.UUID, projectID int64) (*models.ProjectDB, error) {
	const query = `
		SELECT project_id, user_id, project_name, project_description, created_at, updated_at
		FROM projects
		WHERE project_id = $1 AND user_id = $2
	`

	var project models.ProjectDB
	err := r.db.GetContext(ctx, &project, query, projectID, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{projectID, userID},
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

// ProjectWriteRepository handles project write operations.
type ProjectWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProjectWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProjectWriteRepository {
	return &ProjectWriteRepository{db: db, txGetter: txGetter}
}

func (r *ProjectWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a project stamped with the owning user and returns the
// generated id. Duplicate names are permitted.
func (r *ProjectWriteRepository) Save(ctx context.Context, userID uuid.UUID, name string) (int64, error) {
	const query = `
		INSERT INTO projects (user_id, project_name, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING project_id
	`

	var projectID int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &projectID, query, userID, name)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, name},
		"result", projectID,
		"error", err,
	)

	return projectID, err
}

// UpdateName renames a project. Returns the number of rows changed; zero
// means the project does not belong to the caller.
func (r *ProjectWriteRepository) UpdateName(ctx context.Context, userID uuid.UUID, projectID int64, name string) (int64, error) {
	const query = `
		UPDATE projects
		SET project_name = $1, updated_at = NOW()
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

// UpdateDescription sets or replaces a project description, scoped to the
// calling user.
func (r *ProjectWriteRepository) UpdateDescription(ctx context.Context, userID uuid.UUID, projectID int64, description string) (int64, error) {
	const query = `
		UPDATE projects
		SET project_description = $1, updated_at = NOW()
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

// Delete removes the project row only. Dependent lists and items are removed
// by their own repositories; the cascade is orchestrated by the service
// inside one transaction.
func (r *ProjectWriteRepository) Delete(ctx context.Context, userID uuid.UUID, projectID int64) (int64, error) {
	const query = `
		DELETE FROM projects
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
