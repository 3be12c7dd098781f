package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/askedal/trailpack/internal/logger"
	"github.com/askedal/trailpack/internal/models"
)

// ListReadRepository handles packing list read operations.
type ListReadRepository struct {
	db *sqlx.DB
}

func NewListReadRepository(db *sqlx.DB) *ListReadRepository {
	return &ListReadRepository{db: db}
}

// ListByProject returns the project's lists, scoped to the calling user.
func (r *ListReadRepository) ListByProject(ctx context.Context, userID uuid.UUID, projectID int64) ([]models.ListDB, error) {
	const query = `
		SELECT list_id, user_id, project_id, list_name
		FROM lists
		WHERE user_id = $1 AND project_id = $2
		ORDER BY list_id
	`

	var lists []models.ListDB
	err := r.db.SelectContext(ctx, &lists, query, userID, projectID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, projectID},
		"rows", len(lists),
		"error", err,
	)

	return lists, err
}

// ListWriteRepository handles packing list write operations.
type ListWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewListWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ListWriteRepository {
	return &ListWriteRepository{db: db, txGetter: txGetter}
}

func (r *ListWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a list stamped with the owner and project, returning the
// generated id.
func (r *ListWriteRepository) Save(ctx context.Context, userID uuid.UUID, projectID int64, name string) (int64, error) {
	const query = `
		INSERT INTO lists (user_id, project_id, list_name)
		VALUES ($1, $2, $3)
		RETURNING list_id
	`

	var listID int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &listID, query, userID, projectID, name)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, projectID, name},
		"result", listID,
		"error", err,
	)

	return listID, err
}

// Delete removes a single list scoped to caller and project. Returns the
// number of rows removed; zero means the list is not the caller's.
func (r *ListWriteRepository) Delete(ctx context.Context, userID uuid.UUID, listID, projectID int64) (int64, error) {
	const query = `
		DELETE FROM lists
		WHERE list_id = $1 AND user_id = $2 AND project_id = $3
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, listID, userID, projectID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listID, userID, projectID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// DeleteByProject removes all of a project's lists as part of a project
// cascade delete.
func (r *ListWriteRepository) DeleteByProject(ctx context.Context, userID uuid.UUID, projectID int64) (int64, error) {
	const query = `
		DELETE FROM lists
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
