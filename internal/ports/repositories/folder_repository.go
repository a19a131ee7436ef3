package repositories

import (
	"context"

	"notekeeper/internal/domain/entities"
)

// FolderRepository persists folders. GetByID returns (nil, nil) when no
// folder matches; Update returns entities.ErrFolderNotFound when zero rows
// were affected. Delete is idempotent.
type FolderRepository interface {
	List(ctx context.Context, searchTerm string) ([]*entities.Folder, error)
	GetByID(ctx context.Context, id int64) (*entities.Folder, error)
	Create(ctx context.Context, name string) (*entities.Folder, error)
	Update(ctx context.Context, id int64, name string) (*entities.Folder, error)
	Delete(ctx context.Context, id int64) error
}
