package postgres

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"notekeeper/internal/domain/entities"
	"notekeeper/internal/ports/repositories"
	"notekeeper/pkg/logger"
)

// noteJoinQuery is the flat join every note read goes through. One row per
// note x tag pairing; a note without tags yields a single row with null tag
// columns.
const noteJoinQuery = `SELECT notes.id, notes.title, notes.content, notes.folder_id,
       folders.name AS folder_name, notes.created, tags.id AS tag_id, tags.name AS tag_name
FROM notes
LEFT JOIN folders ON notes.folder_id = folders.id
LEFT JOIN notes_tags ON notes.id = notes_tags.note_id
LEFT JOIN tags ON notes_tags.tag_id = tags.id`

// NoteRepository implements repositories.NoteRepository on Postgres.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository creates a new note repository.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// List returns hydrated note aggregates matching the filter, ordered by
// note id. The tag filter runs against the join table in a subquery so it
// narrows the note set without dropping the other tags of a matching note.
func (r *NoteRepository) List(ctx context.Context, filter entities.NoteFilter) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "List"))

	var (
		conditions []string
		args       []interface{}
	)
	if filter.SearchTerm != "" {
		args = append(args, filter.SearchTerm)
		conditions = append(conditions, fmt.Sprintf("notes.title LIKE '%%' || $%d || '%%'", len(args)))
	}
	if filter.FolderID != nil {
		args = append(args, *filter.FolderID)
		conditions = append(conditions, fmt.Sprintf("notes.folder_id = $%d", len(args)))
	}
	if filter.TagID != nil {
		args = append(args, *filter.TagID)
		conditions = append(conditions,
			fmt.Sprintf("notes.id IN (SELECT note_id FROM notes_tags WHERE tag_id = $%d)", len(args)))
	}

	query := noteJoinQuery
	if len(conditions) > 0 {
		query += "\nWHERE " + strings.Join(conditions, " AND ")
	}
	query += "\nORDER BY notes.id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("error querying notes: %w", err)
	}
	defer rows.Close()

	flat := make([]noteRow, 0)
	for rows.Next() {
		var row noteRow
		if err := rows.Scan(&row.ID, &row.Title, &row.Content, &row.FolderID,
			&row.FolderName, &row.Created, &row.TagID, &row.TagName); err != nil {
			log.Error(ctx, "failed to scan note row", zap.Error(err))
			return nil, fmt.Errorf("error scanning note row: %w", err)
		}
		flat = append(flat, row)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating note rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating note rows: %w", err)
	}

	return hydrateNotes(flat), nil
}

// GetByID returns one hydrated note, or (nil, nil) when no row matches.
func (r *NoteRepository) GetByID(ctx context.Context, id int64) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "GetByID"))

	query := noteJoinQuery + "\nWHERE notes.id = $1\nORDER BY notes.id"

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		log.Error(ctx, "failed to get note", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("error querying note by id: %w", err)
	}
	defer rows.Close()

	flat := make([]noteRow, 0)
	for rows.Next() {
		var row noteRow
		if err := rows.Scan(&row.ID, &row.Title, &row.Content, &row.FolderID,
			&row.FolderName, &row.Created, &row.TagID, &row.TagName); err != nil {
			log.Error(ctx, "failed to scan note row", zap.Error(err))
			return nil, fmt.Errorf("error scanning note row: %w", err)
		}
		flat = append(flat, row)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating note rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating note rows: %w", err)
	}

	hydrated := hydrateNotes(flat)
	if len(hydrated) == 0 {
		log.Debug(ctx, "note not found", zap.Int64("id", id))
		return nil, nil
	}
	return hydrated[0], nil
}

// Create inserts the note row and returns the new id. Tag associations are
// written separately through ReplaceTags.
func (r *NoteRepository) Create(ctx context.Context, draft *entities.NoteDraft) (int64, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))

	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notes (title, content, folder_id) VALUES ($1, $2, $3) RETURNING id`,
		draft.Title, draft.Content, draft.FolderID,
	).Scan(&id)
	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return 0, fmt.Errorf("error creating note: %w", err)
	}

	log.Debug(ctx, "note created", zap.Int64("id", id))
	return id, nil
}

// Update overwrites the note row unconditionally. folder_id is set to the
// draft value, clearing it when the draft carries none.
func (r *NoteRepository) Update(ctx context.Context, id int64, draft *entities.NoteDraft) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Update"))

	result, err := r.pool.Exec(ctx,
		`UPDATE notes SET title = $1, content = $2, folder_id = $3 WHERE id = $4`,
		draft.Title, draft.Content, draft.FolderID, id,
	)
	if err != nil {
		log.Error(ctx, "failed to update note", zap.Error(err), zap.Int64("id", id))
		return fmt.Errorf("error updating note: %w", err)
	}
	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found", zap.Int64("id", id))
		return entities.ErrNoteNotFound
	}

	return nil
}

// ReplaceTags swaps the full tag-association set of a note inside one
// transaction: delete everything, insert the new set.
func (r *NoteRepository) ReplaceTags(ctx context.Context, noteID int64, tagIDs []int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "ReplaceTags"))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, "failed to begin transaction", zap.Error(err))
		return fmt.Errorf("error beginning tag replacement: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM notes_tags WHERE note_id = $1`, noteID); err != nil {
		log.Error(ctx, "failed to clear note tags", zap.Error(err), zap.Int64("note_id", noteID))
		return fmt.Errorf("error clearing note tags: %w", err)
	}

	for _, tagID := range tagIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO notes_tags (note_id, tag_id) VALUES ($1, $2)`, noteID, tagID); err != nil {
			log.Error(ctx, "failed to insert note tag", zap.Error(err),
				zap.Int64("note_id", noteID), zap.Int64("tag_id", tagID))
			return fmt.Errorf("error inserting note tag: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, "failed to commit tag replacement", zap.Error(err))
		return fmt.Errorf("error committing tag replacement: %w", err)
	}

	return nil
}

// Delete removes the note row. Deleting a missing id is not an error; the
// schema cascades association cleanup.
func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Delete"))

	if _, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id); err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err), zap.Int64("id", id))
		return fmt.Errorf("error deleting note: %w", err)
	}

	return nil
}
