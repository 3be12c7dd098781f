package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/askedal/trailpack/internal/logger"
	"github.com/askedal/trailpack/internal/models"
)

// ItemReadRepository handles item read operations.
type ItemReadRepository struct {
	db *sqlx.DB
}

func NewItemReadRepository(db *sqlx.DB) *ItemReadRepository {
	return &ItemReadRepository{db: db}
}

// ListByProject returns the project's items scoped to the calling user.
// Scoping by project as well as owner keeps one project's items out of
// another project's totals.
func (r *ItemReadRepository) ListByProject(ctx context.Context, userID uuid.UUID, projectID int64) ([]models.ItemDB, error) {
	const query = `
		SELECT item_id, user_id, project_id, list_id, item_name, description, weight, quantity
		FROM items
		WHERE user_id = $1 AND project_id = $2
		ORDER BY item_id
	`

	var items []models.ItemDB
	err := r.db.SelectContext(ctx, &items, query, userID, projectID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, projectID},
		"rows", len(items),
		"error", err,
	)

	return items, err
}

// ItemWriteRepository handles item write operations.
type ItemWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewItemWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ItemWriteRepository {
	return &ItemWriteRepository{db: db, txGetter: txGetter}
}

func (r *ItemWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts an item stamped with owner, project and list, returning the
// generated id.
func (r *ItemWriteRepository) Save(ctx context.Context, userID uuid.UUID, projectID, listID int64, name, description string, weight float64, quantity int64) (int64, error) {
	const query = `
		INSERT INTO items (user_id, project_id, list_id, item_name, description, weight, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING item_id
	`
	args := []any{userID, projectID, listID, name, description, weight, quantity}

	var itemID int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &itemID, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", itemID,
		"error", err,
	)

	return itemID, err
}

// Delete removes a single item scoped to caller and project.
func (r *ItemWriteRepository) Delete(ctx context.Context, userID uuid.UUID, projectID, itemID int64) (int64, error) {
	const query = `
		DELETE FROM items
		WHERE item_id = $1 AND user_id = $2 AND project_id = $3
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, itemID, userID, projectID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID, userID, projectID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// DeleteByList removes a list's items as part of a list delete.
func (r *ItemWriteRepository) DeleteByList(ctx context.Context, userID uuid.UUID, projectID, listID int64) (int64, error) {
	const query = `
		DELETE FROM items
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

// DeleteByProject removes all of a project's items as part of a project
// cascade delete.
func (r *ItemWriteRepository) DeleteByProject(ctx context.Context, userID uuid.UUID, projectID int64) (int64, error) {
	const query = `
		DELETE FROM items
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
