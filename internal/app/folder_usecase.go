package app

import (
	"context"
	"fmt"
	"strings"

	"notekeeper/internal/domain/entities"
	"notekeeper/internal/ports/repositories"
)

// FolderUseCase implements the folder operations.
type FolderUseCase struct {
	folderRepo repositories.FolderRepository
}

// NewFolderUseCase creates a new FolderUseCase.
func NewFolderUseCase(folderRepo repositories.FolderRepository) *FolderUseCase {
	return &FolderUseCase{folderRepo: folderRepo}
}

// ListFolders returns folders ordered by id, optionally name-filtered.
func (uc *FolderUseCase) ListFolders(ctx context.Context, searchTerm string) ([]*entities.Folder, error) {
	folders, err := uc.folderRepo.List(ctx, searchTerm)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	return folders, nil
}

// GetFolder returns one folder or entities.ErrFolderNotFound.
func (uc *FolderUseCase) GetFolder(ctx context.Context, id int64) (*entities.Folder, error) {
	folder, err := uc.folderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get folder: %w", err)
	}
	if folder == nil {
		return nil, entities.ErrFolderNotFound
	}
	return folder, nil
}

// CreateFolder validates the name and inserts a folder.
func (uc *FolderUseCase) CreateFolder(ctx context.Context, name string) (*entities.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errMissingField("name")
	}

	folder, err := uc.folderRepo.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}
	return folder, nil
}

// UpdateFolder validates the name and renames a folder.
// entities.ErrFolderNotFound passes through when the id does not exist.
func (uc *FolderUseCase) UpdateFolder(ctx context.Context, id int64, name string) (*entities.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errMissingField("name")
	}

	folder, err := uc.folderRepo.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}
	return folder, nil
}

// DeleteFolder removes a folder. Deleting a missing id succeeds.
func (uc *FolderUseCase) DeleteFolder(ctx context.Context, id int64) error {
	if err := uc.folderRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}
	return nil
}
