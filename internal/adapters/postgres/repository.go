// Package postgres provides PostgreSQL implementations of the repositories.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"notekeeper/internal/ports/repositories"
)

// PgxPoolInterface is the subset of pgxpool.Pool the repositories use.
// pgxmock satisfies it in tests.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// RepositoryFactory creates all repositories backed by one pool.
type RepositoryFactory struct {
	noteRepo   repositories.NoteRepository
	folderRepo repositories.FolderRepository
	tagRepo    repositories.TagRepository
}

// NewRepositoryFactory creates a new repository factory.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{
		noteRepo:   NewNoteRepository(pool),
		folderRepo: NewFolderRepository(pool),
		tagRepo:    NewTagRepository(pool),
	}
}

// NoteRepository returns the note repository.
func (f *RepositoryFactory) NoteRepository() repositories.NoteRepository {
	return f.noteRepo
}

// FolderRepository returns the folder repository.
func (f *RepositoryFactory) FolderRepository() repositories.FolderRepository {
	return f.folderRepo
}

// TagRepository returns the tag repository.
func (f *RepositoryFactory) TagRepository() repositories.TagRepository {
	return f.tagRepo
}
