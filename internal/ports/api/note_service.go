// Package api defines the application-facing ports consumed by transports.
package api

import (
	"context"

	"notekeeper/internal/domain/entities"
)

// NoteService exposes note operations to the transport layer.
type NoteService interface {
	ListNotes(ctx context.Context, filter entities.NoteFilter) ([]*entities.Note, error)
	GetNote(ctx context.Context, id int64) (*entities.Note, error)
	CreateNote(ctx context.Context, draft *entities.NoteDraft) (*entities.Note, error)
	UpdateNote(ctx context.Context, id int64, draft *entities.NoteDraft) (*entities.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}
