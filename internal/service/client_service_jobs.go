package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-career-path/internal/adapter"
	"github.com/MKhiriev/go-career-path/internal/logger"
	"github.com/MKhiriev/go-career-path/internal/validators"
	"github.com/MKhiriev/go-career-path/models"
)

type jobService struct {
	generator adapter.Generator
	validator validators.Validator
	logger    *logger.Logger
}

// NewJobService constructs a [JobService].
func NewJobService(generator adapter.Generator, logger *logger.Logger) JobService {
	return &jobService{
		generator: generator,
		validator: validators.NewResponseValidator(),
		logger:    logger,
	}
}

func (s *jobService) Search(ctx context.Context, profile models.Profile, filters models.JobFilters) ([]models.Job, error) {
	filters = normalizeFilters(filters)
	if err := s.validator.Validate(ctx, filters); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	jobs, err := s.generator.SearchJobs(ctx, profile, filters)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*jobService.Search").
		Str("area", filters.AreaOrAny()).
		Int("jobs", len(jobs)).
		Msg("job search finished")
	return jobs, nil
}

// normalizeFilters trims the area and fills unset enums with "any".
func normalizeFilters(filters models.JobFilters) models.JobFilters {
	filters.Area = strings.TrimSpace(filters.Area)
	if filters.JobType == "" {
		filters.JobType = models.JobTypeAny
	}
	if filters.Experience == "" {
		filters.Experience = models.ExperienceAny
	}
	return filters
}
