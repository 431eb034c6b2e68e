package store

import (
	"database/sql"

	"github.com/MKhiriev/go-career-path/internal/logger"
	"github.com/MKhiriev/go-career-path/migrations"
)

// DB wraps the SQLite connection pool of the client together with the
// logger used by repositories built on top of it.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies every pending schema migration.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
