package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ucn-accounts/internal/config"
	"github.com/MKhiriev/ucn-accounts/internal/logger"
)

// Storages bundles the repositories used by the services together with the
// database handle that backs them, if any.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages opens the configured store. An empty DSN keeps users in
// memory; otherwise the database is connected and migrated.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Warn().Msg("no database configured, users are kept in memory")
		return &Storages{UserRepository: NewMemoryUserRepository()}, nil
	}

	db, err := NewConnectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the database handle. It is a no-op for the memory store.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
