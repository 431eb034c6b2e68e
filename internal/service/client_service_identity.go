package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-career-path/internal/logger"
	"github.com/MKhiriev/go-career-path/internal/store"
	"github.com/MKhiriev/go-career-path/models"
)

type identityService struct {
	identities store.IdentityRepository
	profiles   store.ProfileRepository
	latency    time.Duration
	now        func() time.Time
	logger     *logger.Logger
}

// NewIdentityService constructs an [IdentityService] over the durable
// repositories. latency is the minimum duration of every call.
func NewIdentityService(identities store.IdentityRepository, profiles store.ProfileRepository, latency time.Duration, logger *logger.Logger) IdentityService {
	return &identityService{
		identities: identities,
		profiles:   profiles,
		latency:    latency,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *identityService) RegisterIdentity(ctx context.Context, username, credential string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	err := s.identities.CreateIdentity(ctx, models.Identity{
		Username:   username,
		Credential: credential,
		CreatedAt:  s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, store.ErrIdentityAlreadyExists) {
			return err
		}
		return fmt.Errorf("register identity: %w", err)
	}

	return nil
}

func (s *identityService) VerifyIdentity(ctx context.Context, username, credential string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	identity, err := s.identities.FindIdentity(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrIdentityNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("verify identity: %w", err)
	}

	if identity.Credential != credential {
		return ErrInvalidCredentials
	}

	return nil
}

func (s *identityService) ReadProfile(ctx context.Context, username string) (*models.Profile, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetProfile(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read profile: %w", err)
	}

	return &profile, nil
}

func (s *identityService) WriteProfile(ctx context.Context, username string, profile models.Profile) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	if err := s.profiles.SaveProfile(ctx, username, profile); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}

	return nil
}

// wait blocks for the configured latency or until ctx is done.
func (s *identityService) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
