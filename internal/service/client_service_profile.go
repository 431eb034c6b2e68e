package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-career-path/internal/adapter"
	"github.com/MKhiriev/go-career-path/internal/app"
	"github.com/MKhiriev/go-career-path/internal/logger"
	"github.com/MKhiriev/go-career-path/models"
)

type profileService struct {
	identity  IdentityService
	generator adapter.Generator
	logger    *logger.Logger
}

// NewProfileService constructs a [ProfileService].
func NewProfileService(identity IdentityService, generator adapter.Generator, logger *logger.Logger) ProfileService {
	return &profileService{identity: identity, generator: generator, logger: logger}
}

func (s *profileService) Submit(ctx context.Context, username, resumeText, careerGoal string) (models.Profile, error) {
	if blank(resumeText) || blank(careerGoal) {
		return models.Profile{}, fmt.Errorf("%w: %s", ErrValidation, app.MsgProfileInputRequired)
	}
	if blank(username) {
		return models.Profile{}, ErrNoSession
	}

	profile, err := s.generator.ExtractProfile(ctx, resumeText, careerGoal)
	if err != nil {
		return models.Profile{}, err
	}

	if err = s.identity.WriteProfile(ctx, username, profile); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*profileService.Submit").
			Str("username", username).
			Msg("error saving generated profile")
		return models.Profile{}, fmt.Errorf("%w: %v", ErrSavingProfile, err)
	}

	return profile, nil
}
