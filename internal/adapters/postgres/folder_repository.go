package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"notekeeper/internal/domain/entities"
	"notekeeper/internal/ports/repositories"
	"notekeeper/pkg/logger"
)

// FolderRepository implements repositories.FolderRepository on Postgres.
type FolderRepository struct {
	pool PgxPoolInterface
}

// NewFolderRepository creates a new folder repository.
func NewFolderRepository(pool PgxPoolInterface) repositories.FolderRepository {
	return &FolderRepository{pool: pool}
}

// List returns folders ordered by id, optionally filtered by a name
// substring.
func (r *FolderRepository) List(ctx context.Context, searchTerm string) ([]*entities.Folder, error) {
	log := logger.Log(ctx).With(zap.String("repository", "folder"), zap.String("method", "List"))

	query := `SELECT id, name FROM folders`
	var args []interface{}
	if searchTerm != "" {
		query += ` WHERE name LIKE '%' || $1 || '%'`
		args = append(args, searchTerm)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "failed to list folders", zap.Error(err))
		return nil, fmt.Errorf("error querying folders: %w", err)
	}
	defer rows.Close()

	folders := make([]*entities.Folder, 0)
	for rows.Next() {
		var folder entities.Folder
		if err := rows.Scan(&folder.ID, &folder.Name); err != nil {
			log.Error(ctx, "failed to scan folder", zap.Error(err))
			return nil, fmt.Errorf("error scanning folder: %w", err)
		}
		folders = append(folders, &folder)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating folder rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating folder rows: %w", err)
	}

	return folders, nil
}

// GetByID returns one folder, or (nil, nil) when no row matches.
func (r *FolderRepository) GetByID(ctx context.Context, id int64) (*entities.Folder, error) {
	log := logger.Log(ctx).With(zap.String("repository", "folder"), zap.String("method", "GetByID"))

	var folder entities.Folder
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM folders WHERE id = $1`, id).
		Scan(&folder.ID, &folder.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "folder not found", zap.Int64("id", id))
			return nil, nil
		}
		log.Error(ctx, "failed to get folder", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("error querying folder by id: %w", err)
	}

	return &folder, nil
}

// Create inserts a folder and returns it with the engine-assigned id.
func (r *FolderRepository) Create(ctx context.Context, name string) (*entities.Folder, error) {
	log := logger.Log(ctx).With(zap.String("repository", "folder"), zap.String("method", "Create"))

	var folder entities.Folder
	err := r.pool.QueryRow(ctx,
		`INSERT INTO folders (name) VALUES ($1) RETURNING id, name`, name).
		Scan(&folder.ID, &folder.Name)
	if err != nil {
		log.Error(ctx, "failed to create folder", zap.Error(err))
		return nil, fmt.Errorf("error creating folder: %w", err)
	}

	log.Debug(ctx, "folder created", zap.Int64("id", folder.ID))
	return &folder, nil
}

// Update renames a folder, returning entities.ErrFolderNotFound when no row
// matches.
func (r *FolderRepository) Update(ctx context.Context, id int64, name string) (*entities.Folder, error) {
	log := logger.Log(ctx).With(zap.String("repository", "folder"), zap.String("method", "Update"))

	var folder entities.Folder
	err := r.pool.QueryRow(ctx,
		`UPDATE folders SET name = $1 WHERE id = $2 RETURNING id, name`, name, id).
		Scan(&folder.ID, &folder.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "folder not found", zap.Int64("id", id))
			return nil, entities.ErrFolderNotFound
		}
		log.Error(ctx, "failed to update folder", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("error updating folder: %w", err)
	}

	return &folder, nil
}

// Delete removes a folder row. Deleting a missing id is not an error.
func (r *FolderRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "folder"), zap.String("method", "Delete"))

	if _, err := r.pool.Exec(ctx, `DELETE FROM folders WHERE id = $1`, id); err != nil {
		log.Error(ctx, "failed to delete folder", zap.Error(err), zap.Int64("id", id))
		return fmt.Errorf("error deleting folder: %w", err)
	}

	return nil
}
