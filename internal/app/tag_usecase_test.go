package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeeper/internal/app"
	"notekeeper/internal/domain/entities"
)

func TestListTags_PassesSearchTermThrough(t *testing.T) {
	t.Parallel()

	repo := new(mockTagRepository)
	uc := app.NewTagUseCase(repo)
	ctx := context.Background()

	expected := []*entities.Tag{{ID: 1, Name: "urgent"}}
	repo.On("List", ctx, "urg").Return(expected, nil)

	tags, err := uc.ListTags(ctx, "urg")
	require.NoError(t, err)
	assert.Equal(t, expected, tags)
}

func TestGetTag_Missing(t *testing.T) {
	t.Parallel()

	repo := new(mockTagRepository)
	uc := app.NewTagUseCase(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(15)).Return(nil, nil)

	tag, err := uc.GetTag(ctx, 15)
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrTagNotFound)
	assert.Nil(t, tag)
}

func TestCreateTag_EmptyNameFailsBeforeStore(t *testing.T) {
	t.Parallel()

	repo := new(mockTagRepository)
	uc := app.NewTagUseCase(repo)
	ctx := context.Background()

	tag, err := uc.CreateTag(ctx, "")
	require.Error(t, err)
	assert.Nil(t, tag)

	var validationErr *app.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "missing `name` in request body", validationErr.Message)
	repo.AssertNotCalled(t, "Create")
}

func TestCreateTag_ReturnsStoredTag(t *testing.T) {
	t.Parallel()

	repo := new(mockTagRepository)
	uc := app.NewTagUseCase(repo)
	ctx := context.Background()

	stored := &entities.Tag{ID: 6, Name: "reading"}
	repo.On("Create", ctx, "reading").Return(stored, nil)

	tag, err := uc.CreateTag(ctx, "reading")
	require.NoError(t, err)
	assert.Equal(t, stored, tag)
}

func TestUpdateTag_MissingIDSignalsNotFound(t *testing.T) {
	t.Parallel()

	repo := new(mockTagRepository)
	uc := app.NewTagUseCase(repo)
	ctx := context.Background()

	repo.On("Update", ctx, int64(404), "renamed").Return(nil, entities.ErrTagNotFound)

	tag, err := uc.UpdateTag(ctx, 404, "renamed")
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrTagNotFound)
	assert.Nil(t, tag)
}

func TestDeleteTag_Delegates(t *testing.T) {
	t.Parallel()

	repo := new(mockTagRepository)
	uc := app.NewTagUseCase(repo)
	ctx := context.Background()

	repo.On("Delete", ctx, int64(3)).Return(nil)

	require.NoError(t, uc.DeleteTag(ctx, 3))
	repo.AssertExpectations(t)
}
