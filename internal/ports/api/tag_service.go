package api

import (
	"context"

	"notekeeper/internal/domain/entities"
)

// TagService exposes tag operations to the transport layer.
type TagService interface {
	ListTags(ctx context.Context, searchTerm string) ([]*entities.Tag, error)
	GetTag(ctx context.Context, id int64) (*entities.Tag, error)
	CreateTag(ctx context.Context, name string) (*entities.Tag, error)
	UpdateTag(ctx context.Context, id int64, name string) (*entities.Tag, error)
	DeleteTag(ctx context.Context, id int64) error
}
