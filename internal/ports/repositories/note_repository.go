// Package repositories defines the persistence ports of the note store.
package repositories

import (
	"context"

	"notekeeper/internal/domain/entities"
)

// NoteRepository persists notes and their tag associations.
//
// GetByID returns (nil, nil) when no note matches; Update returns
// entities.ErrNoteNotFound when zero rows were affected. Delete is
// idempotent and does not report missing rows.
type NoteRepository interface {
	List(ctx context.Context, filter entities.NoteFilter) ([]*entities.Note, error)
	GetByID(ctx context.Context, id int64) (*entities.Note, error)
	Create(ctx context.Context, draft *entities.NoteDraft) (int64, error)
	Update(ctx context.Context, id int64, draft *entities.NoteDraft) error
	ReplaceTags(ctx context.Context, noteID int64, tagIDs []int64) error
	Delete(ctx context.Context, id int64) error
}
