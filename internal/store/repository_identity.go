package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-career-path/internal/logger"
	"github.com/MKhiriev/go-career-path/models"
)

// identityRepository is the SQLite-backed implementation of
// [IdentityRepository]. It handles identity creation and lookup against the
// "identities" table.
type identityRepository struct {
	*DB
	logger *logger.Logger
}

// NewIdentityRepository constructs an [IdentityRepository] backed by the
// provided database connection and logger.
func NewIdentityRepository(db *DB, logger *logger.Logger) IdentityRepository {
	logger.Debug().Msg("creating identity repository")
	return &identityRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateIdentity persists a new identity.
//
// Error handling:
//   - sqlite primary key violation → [ErrIdentityAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *identityRepository) CreateIdentity(ctx context.Context, identity models.Identity) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertIdentityQuery(identity.Username, identity.Credential, identity.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.CreateIdentity").Msg("error building query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrIdentityAlreadyExists
		}
		log.Err(err).
			Str("func", "*identityRepository.CreateIdentity").
			Str("username", identity.Username).
			Msg("error inserting identity")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

// FindIdentity retrieves the identity registered under username.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrIdentityNotFound].
//   - any other error → wrapped [ErrScanningRow].
func (r *identityRepository) FindIdentity(ctx context.Context, username string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectIdentityQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*identityRepository.FindIdentity").Msg("error building query")
		return models.Identity{}, err
	}

	var found models.Identity
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&found.Username, &found.Credential, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Identity{}, ErrIdentityNotFound
		}
		log.Err(err).
			Str("func", "*identityRepository.FindIdentity").
			Str("username", username).
			Msg("error scanning identity")
		return models.Identity{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	return found, nil
}
