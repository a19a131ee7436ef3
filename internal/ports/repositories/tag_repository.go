package repositories

import (
	"context"

	"notekeeper/internal/domain/entities"
)

// TagRepository persists tags. GetByID returns (nil, nil) when no tag
// matches; Update returns entities.ErrTagNotFound when zero rows were
// affected. Delete is idempotent.
type TagRepository interface {
	List(ctx context.Context, searchTerm string) ([]*entities.Tag, error)
	GetByID(ctx context.Context, id int64) (*entities.Tag, error)
	Create(ctx context.Context, name string) (*entities.Tag, error)
	Update(ctx context.Context, id int64, name string) (*entities.Tag, error)
	Delete(ctx context.Context, id int64) error
}
