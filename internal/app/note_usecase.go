package app

import (
	"context"
	"fmt"
	"strings"

	"notekeeper/internal/domain/entities"
	"notekeeper/internal/ports/repositories"
)

// NoteUseCase orchestrates note retrieval and mutation, including the
// tag-association side effects.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase creates a new NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository) *NoteUseCase {
	return &NoteUseCase{noteRepo: noteRepo}
}

// ListNotes returns hydrated notes matching the filter, ordered by id.
func (uc *NoteUseCase) ListNotes(ctx context.Context, filter entities.NoteFilter) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// GetNote returns one hydrated note or entities.ErrNoteNotFound.
func (uc *NoteUseCase) GetNote(ctx context.Context, id int64) (*entities.Note, error) {
	note, err := uc.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, entities.ErrNoteNotFound
	}
	return note, nil
}

// CreateNote validates the draft, persists the note row and its tag
// associations, and returns the hydrated result.
func (uc *NoteUseCase) CreateNote(ctx context.Context, draft *entities.NoteDraft) (*entities.Note, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, errMissingField("title")
	}

	id, err := uc.noteRepo.Create(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	if len(draft.TagIDs) > 0 {
		if err := uc.noteRepo.ReplaceTags(ctx, id, draft.TagIDs); err != nil {
			return nil, fmt.Errorf("failed to attach note tags: %w", err)
		}
	}

	note, err := uc.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read back created note: %w", err)
	}
	if note == nil {
		return nil, entities.ErrNoteNotFound
	}
	return note, nil
}

// UpdateNote validates the draft, overwrites the note row, replaces the
// whole tag-association set, and returns the hydrated result.
// entities.ErrNoteNotFound passes through when the id does not exist.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, id int64, draft *entities.NoteDraft) (*entities.Note, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, errMissingField("title")
	}

	if err := uc.noteRepo.Update(ctx, id, draft); err != nil {
		return nil, err
	}

	if err := uc.noteRepo.ReplaceTags(ctx, id, draft.TagIDs); err != nil {
		return nil, fmt.Errorf("failed to replace note tags: %w", err)
	}

	note, err := uc.noteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read back updated note: %w", err)
	}
	if note == nil {
		return nil, entities.ErrNoteNotFound
	}
	return note, nil
}

// DeleteNote removes a note. Deleting a missing id succeeds.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, id int64) error {
	if err := uc.noteRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}
