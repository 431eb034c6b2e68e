package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-career-path/internal/config"
	"github.com/MKhiriev/go-career-path/internal/logger"
)

// ClientStorages groups all client-side storages into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// IdentityRepository is the durable username → credential map.
	IdentityRepository IdentityRepository
	// ProfileRepository is the durable username → profile map.
	ProfileRepository ProfileRepository
	// SessionStore is the process-scoped current user marker.
	SessionStore SessionStore

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories and an empty session.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		IdentityRepository: NewIdentityRepository(db, logger),
		ProfileRepository:  NewProfileRepository(db, logger),
		SessionStore:       NewSessionStore(),
		db:                 db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
