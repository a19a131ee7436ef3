package api

import (
	"context"

	"notekeeper/internal/domain/entities"
)

// FolderService exposes folder operations to the transport layer.
type FolderService interface {
	ListFolders(ctx context.Context, searchTerm string) ([]*entities.Folder, error)
	GetFolder(ctx context.Context, id int64) (*entities.Folder, error)
	CreateFolder(ctx context.Context, name string) (*entities.Folder, error)
	UpdateFolder(ctx context.Context, id int64, name string) (*entities.Folder, error)
	DeleteFolder(ctx context.Context, id int64) error
}
