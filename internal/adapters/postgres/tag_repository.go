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

// TagRepository implements repositories.TagRepository on Postgres.
type TagRepository struct {
	pool PgxPoolInterface
}

// NewTagRepository creates a new tag repository.
func NewTagRepository(pool PgxPoolInterface) repositories.TagRepository {
	return &TagRepository{pool: pool}
}

// List returns tags ordered by id, optionally filtered by a name substring.
func (r *TagRepository) List(ctx context.Context, searchTerm string) ([]*entities.Tag, error) {
	log := logger.Log(ctx).With(zap.String("repository", "tag"), zap.String("method", "List"))

	query := `SELECT id, name FROM tags`
	var args []interface{}
	if searchTerm != "" {
		query += ` WHERE name LIKE '%' || $1 || '%'`
		args = append(args, searchTerm)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "failed to list tags", zap.Error(err))
		return nil, fmt.Errorf("error querying tags: %w", err)
	}
	defer rows.Close()

	tags := make([]*entities.Tag, 0)
	for rows.Next() {
		var tag entities.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			log.Error(ctx, "failed to scan tag", zap.Error(err))
			return nil, fmt.Errorf("error scanning tag: %w", err)
		}
		tags = append(tags, &tag)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating tag rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}

	return tags, nil
}

// GetByID returns one tag, or (nil, nil) when no row matches.
func (r *TagRepository) GetByID(ctx context.Context, id int64) (*entities.Tag, error) {
	log := logger.Log(ctx).With(zap.String("repository", "tag"), zap.String("method", "GetByID"))

	var tag entities.Tag
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM tags WHERE id = $1`, id).
		Scan(&tag.ID, &tag.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "tag not found", zap.Int64("id", id))
			return nil, nil
		}
		log.Error(ctx, "failed to get tag", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("error querying tag by id: %w", err)
	}

	return &tag, nil
}

// Create inserts a tag and returns it with the engine-assigned id.
func (r *TagRepository) Create(ctx context.Context, name string) (*entities.Tag, error) {
	log := logger.Log(ctx).With(zap.String("repository", "tag"), zap.String("method", "Create"))

	var tag entities.Tag
	err := r.pool.QueryRow(ctx,
		`INSERT INTO tags (name) VALUES ($1) RETURNING id, name`, name).
		Scan(&tag.ID, &tag.Name)
	if err != nil {
		log.Error(ctx, "failed to create tag", zap.Error(err))
		return nil, fmt.Errorf("error creating tag: %w", err)
	}

	log.Debug(ctx, "tag created", zap.Int64("id", tag.ID))
	return &tag, nil
}

// Update renames a tag, returning entities.ErrTagNotFound when no row
// matches.
func (r *TagRepository) Update(ctx context.Context, id int64, name string) (*entities.Tag, error) {
	log := logger.Log(ctx).With(zap.String("repository", "tag"), zap.String("method", "Update"))

	var tag entities.Tag
	err := r.pool.QueryRow(ctx,
		`UPDATE tags SET name = $1 WHERE id = $2 RETURNING id, name`, name, id).
		Scan(&tag.ID, &tag.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "tag not found", zap.Int64("id", id))
			return nil, entities.ErrTagNotFound
		}
		log.Error(ctx, "failed to update tag", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("error updating tag: %w", err)
	}

	return &tag, nil
}

// Delete removes a tag row. Deleting a missing id is not an error; join
// rows referencing the tag are cleaned up by the schema.
func (r *TagRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "tag"), zap.String("method", "Delete"))

	if _, err := r.pool.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id); err != nil {
		log.Error(ctx, "failed to delete tag", zap.Error(err), zap.Int64("id", id))
		return fmt.Errorf("error deleting tag: %w", err)
	}

	return nil
}
