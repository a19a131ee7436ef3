package app

import (
	"context"
	"fmt"
	"strings"

	"notekeeper/internal/domain/entities"
	"notekeeper/internal/ports/repositories"
)

// TagUseCase implements the tag operations.
type TagUseCase struct {
	tagRepo repositories.TagRepository
}

// NewTagUseCase creates a new TagUseCase.
func NewTagUseCase(tagRepo repositories.TagRepository) *TagUseCase {
	return &TagUseCase{tagRepo: tagRepo}
}

// ListTags returns tags ordered by id, optionally name-filtered.
func (uc *TagUseCase) ListTags(ctx context.Context, searchTerm string) ([]*entities.Tag, error) {
	tags, err := uc.tagRepo.List(ctx, searchTerm)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// GetTag returns one tag or entities.ErrTagNotFound.
func (uc *TagUseCase) GetTag(ctx context.Context, id int64) (*entities.Tag, error) {
	tag, err := uc.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	if tag == nil {
		return nil, entities.ErrTagNotFound
	}
	return tag, nil
}

// CreateTag validates the name and inserts a tag.
func (uc *TagUseCase) CreateTag(ctx context.Context, name string) (*entities.Tag, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errMissingField("name")
	}

	tag, err := uc.tagRepo.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return tag, nil
}

// UpdateTag validates the name and renames a tag.
// entities.ErrTagNotFound passes through when the id does not exist.
func (uc *TagUseCase) UpdateTag(ctx context.Context, id int64, name string) (*entities.Tag, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errMissingField("name")
	}

	tag, err := uc.tagRepo.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	return tag, nil
}

// DeleteTag removes a tag. Deleting a missing id succeeds.
func (uc *TagUseCase) DeleteTag(ctx context.Context, id int64) error {
	if err := uc.tagRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}
