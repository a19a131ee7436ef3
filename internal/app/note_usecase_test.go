package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/app"
	"notekeeper/internal/domain/entities"
)

func TestListNotes_PassesFilterThrough(t *testing.T) {
	t.Parallel()

	repo := new(mockNoteRepository)
	uc := app.NewNoteUseCase(repo)
	ctx := context.Background()

	folderID := int64(3)
	filter := entities.NoteFilter{SearchTerm: "cat", FolderID: &folderID}
	expected := []*entities.Note{
		{ID: 1, Title: "cats", Tags: []entities.Tag{}},
	}
	repo.On("List", ctx, filter).Return(expected, nil)

	notes, err := uc.ListNotes(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, expected, notes)
	repo.AssertExpectations(t)
}

func TestListNotes_WrapsStoreError(t *testing.T) {
	t.Parallel()

	repo := new(mockNoteRepository)
	uc := app.NewNoteUseCase(repo)
	ctx := context.Background()

	storeErr := errors.New("connection refused")
	repo.On("List", ctx, entities.NoteFilter{}).Return(nil, storeErr)

	notes, err := uc.ListNotes(ctx, entities.NoteFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, notes)
}

func TestGetNote_Found(t *testing.T) {
	t.Parallel()

	repo := new(mockNoteRepository)
	uc := app.NewNoteUseCase(repo)
	ctx := context.Background()

	note := &entities.Note{ID: 7, Title: "groceries", Created: time.Now(), Tags: []entities.Tag{}}
	repo.On("GetByID", ctx, int64(7)).Return(note, nil)

	got, err := uc.GetNote(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, note, got)
}

func TestGetNote_Missing(t *testing.T) {
	t.Parallel()

	repo := new(mockNoteRepository)
	uc := app.NewNoteUseCase(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(42)).Return(nil, nil)

	got, err := uc.GetNote(ctx, 42)
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrNoteNotFound)
	assert.Nil(t, got)
}

func TestCreateNote_EmptyTitleFailsBeforeStore(t *testing.T) {
	t.Parallel()

	repo := new(mockNoteRepository)
	uc := app.NewNoteUseCase(repo)
	ctx := context.Background()

	draft := &entities.NoteDraft{Title: "", Content: "body", TagIDs: []int64{1}}

	got, err := uc.CreateNote(ctx, draft)
	require.Error(t, err)
	assert.Nil(t, got)

	var validationErr *app.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "missing `title` in request body", validationErr.Message)

	repo.AssertNotCalled(t, "Create")
	repo.AssertNotCalled(t, "ReplaceTags")
}

func TestCreateNote_WhitespaceTitleRejected(t *testing.T) {
	t.Parallel()

	repo := new(mockNoteRepository)
	uc := app.NewNoteUseCase(repo)
	ctx := context.Background()

	_, err := uc.CreateNote(ctx, &entities.NoteDraft{Title: "   "})
	require.Error(t, err)

	var validationErr *app.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateNote_AttachesTagsAndReadsBack(t *testing.T) {
	t.Parallel()

	repo := new(mockNoteRepository)
	uc := app.NewNoteUseCase(repo)
	ctx := context.Background()

	draft := &entities.NoteDraft{Title: "ideas", Content: "text", TagIDs: []int64{10, 11}}
	hydrated := &entities.Note{
		ID:    5,
		Title: "ideas",
		Tags:  []entities.Tag{{ID: 10, Name: "work"}, {ID: 11, Name: "later"}},
	}
	repo.On("Create", ctx, draft).Return(int64(5), nil)
	repo.On("ReplaceTags", ctx, int64(5), []int64{10, 11}).Return(nil)
	repo.On("GetByID", ctx, int64(5)).Return(hydrated, nil)

	got, err := uc.CreateNote(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, hydrated, got)
	repo.AssertExpectations(t)
}

func TestCreateNote_NoTagsSkipsReplace(t *testing.T) {
	t.Parallel()

	repo := new(mockNoteRepository)
	uc := app.NewNoteUseCase(repo)
	ctx := context.Background()

	draft := &entities.NoteDraft{Title: "plain"}
	repo.On("Create", ctx, draft).Return(int64(9), nil)
	repo.On("GetByID", ctx, int64(9)).Return(&entities.Note{ID: 9, Title: "plain", Tags: []entities.Tag{}}, nil)

	_, err := uc.CreateNote(ctx, draft)
	require.NoError(t, err)
	repo.AssertNotCalled(t, "ReplaceTags")
}

func TestUpdateNote_MissingIDSignalsNotFound(t *testing.T) {
	t.Parallel()

	repo := new(mockNoteRepository)
	uc := app.NewNoteUseCase(repo)
	ctx := context.Background()

	draft := &entities.NoteDraft{Title: "renamed"}
	repo.On("Update", ctx, int64(999999), draft).Return(entities.ErrNoteNotFound)

	got, err := uc.UpdateNote(ctx, 999999, draft)
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrNoteNotFound)
	assert.Nil(t, got)
	repo.AssertNotCalled(t, "ReplaceTags")
}

func TestUpdateNote_ReplacesWholeTagSet(t *testing.T) {
	t.Parallel()

	repo := new(mockNoteRepository)
	uc := app.NewNoteUseCase(repo)
	ctx := context.Background()

	draft := &entities.NoteDraft{Title: "renamed", TagIDs: []int64{2}}
	hydrated := &entities.Note{ID: 4, Title: "renamed", Tags: []entities.Tag{{ID: 2, Name: "home"}}}
	repo.On("Update", ctx, int64(4), draft).Return(nil)
	repo.On("ReplaceTags", ctx, int64(4), []int64{2}).Return(nil)
	repo.On("GetByID", ctx, int64(4)).Return(hydrated, nil)

	got, err := uc.UpdateNote(ctx, 4, draft)
	require.NoError(t, err)
	assert.Equal(t, hydrated, got)
	repo.AssertExpectations(t)
}

func TestUpdateNote_EmptyTagListStillReplaces(t *testing.T) {
	t.Parallel()

	repo := new(mockNoteRepository)
	uc := app.NewNoteUseCase(repo)
	ctx := context.Background()

	draft := &entities.NoteDraft{Title: "bare"}
	repo.On("Update", ctx, int64(6), draft).Return(nil)
	repo.On("ReplaceTags", ctx, int64(6), []int64(nil)).Return(nil)
	repo.On("GetByID", ctx, int64(6)).Return(&entities.Note{ID: 6, Title: "bare", Tags: []entities.Tag{}}, nil)

	_, err := uc.UpdateNote(ctx, 6, draft)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateNote_EmptyTitleFailsBeforeStore(t *testing.T) {
	t.Parallel()

	repo := new(mockNoteRepository)
	uc := app.NewNoteUseCase(repo)
	ctx := context.Background()

	_, err := uc.UpdateNote(ctx, 1, &entities.NoteDraft{Title: ""})
	require.Error(t, err)

	var validationErr *app.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "missing `title` in request body", validationErr.Message)
	repo.AssertNotCalled(t, "Update")
}

func TestDeleteNote_Delegates(t *testing.T) {
	t.Parallel()

	repo := new(mockNoteRepository)
	uc := app.NewNoteUseCase(repo)
	ctx := context.Background()

	repo.On("Delete", ctx, int64(12)).Return(nil)

	require.NoError(t, uc.DeleteNote(ctx, 12))
	repo.AssertExpectations(t)
}

func TestDeleteNote_WrapsStoreError(t *testing.T) {
	t.Parallel()

	repo := new(mockNoteRepository)
	uc := app.NewNoteUseCase(repo)
	ctx := context.Background()

	storeErr := errors.New("connection reset")
	repo.On("Delete", ctx, int64(12)).Return(storeErr)

	err := uc.DeleteNote(ctx, 12)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}
