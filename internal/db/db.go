// Package db initializes the note store database: migrations, then pool.
package db

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"notekeeper/internal/config"
	"notekeeper/pkg/db/postgres"
	"notekeeper/pkg/logger"
)

// Log messages.
const (
	LogDBInitializing    = "initializing note store database"
	LogDBInitialized     = "note store database initialized successfully"
	LogMigrationStarting = "starting note store database migrations"
)

// Error messages.
const (
	ErrDBMigrations      = "failed to apply note store database migrations"
	ErrDBConnection      = "failed to connect to note store database"
	ErrGetPath           = "failed to get migrations path"
	ErrDBCheckConnection = "error checking the database connection"
)

const filePrefix = "file://"

// DB is the initialized note store database.
type DB struct {
	database *postgres.Database
}

// New applies migrations and opens the connection pool.
func New(ctx context.Context, cfg *config.PostgresConfig, migrationsDir string) (*DB, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogDBInitializing,
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.Int("min_conn", cfg.MinConn),
		zap.Int("max_conn", cfg.MaxConn))

	migrationsPath := migrationsDir
	if !filepath.IsAbs(migrationsPath) {
		absPath, err := filepath.Abs(migrationsPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", ErrDBMigrations, ErrGetPath, err)
		}
		migrationsPath = absPath
	}
	migrationsPath = filePrefix + migrationsPath

	log.Info(ctx, LogMigrationStarting, zap.String("migrations_path", migrationsPath))
	if err := postgres.MigrateDSN(ctx, cfg.GetConnectionURL(), migrationsPath); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}

	database, err := postgres.New(ctx, cfg.GetDSN(), cfg.MinConn, cfg.MaxConn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	log.Info(ctx, LogDBInitialized)

	return &DB{database: database}, nil
}

// Close closes the connection pool.
func (db *DB) Close(ctx context.Context) {
	db.database.Close(ctx)
}

// Pool returns the connection pool.
func (db *DB) Pool() *pgxpool.Pool {
	return db.database.Pool()
}

// Ping checks the database connection.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.database.Ping(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrDBCheckConnection, err)
	}
	return nil
}
