package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-career-path/internal/logger"
	"github.com/MKhiriev/go-career-path/models"
)

// profileRepository is the SQLite-backed implementation of
// [ProfileRepository]. Profiles are stored as JSON documents keyed by
// username.
type profileRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// SaveProfile upserts the profile of username. The previous document is
// replaced as a whole.
func (r *profileRepository) SaveProfile(ctx context.Context, username string, profile models.Profile) error {
	log := logger.FromContext(ctx)

	document, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodingProfile, err)
	}

	query, args, err := buildUpsertProfileQuery(username, document, r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.SaveProfile").Msg("error building query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*profileRepository.SaveProfile").
			Str("username", username).
			Msg("error saving profile")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

// GetProfile loads the profile of username.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrProfileNotFound].
//   - undecodable document → wrapped [ErrEncodingProfile].
func (r *profileRepository) GetProfile(ctx context.Context, username string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProfileQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.GetProfile").Msg("error building query")
		return models.Profile{}, err
	}

	var document string
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&document); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}
		log.Err(err).
			Str("func", "*profileRepository.GetProfile").
			Str("username", username).
			Msg("error scanning profile")
		return models.Profile{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	var profile models.Profile
	if err = json.Unmarshal([]byte(document), &profile); err != nil {
		log.Err(err).
			Str("func", "*profileRepository.GetProfile").
			Str("username", username).
			Msg("stored profile is not valid json")
		return models.Profile{}, fmt.Errorf("%w: %v", ErrEncodingProfile, err)
	}

	return profile, nil
}
