package service

import (
	"context"

	"github.com/MKhiriev/go-career-path/internal/adapter"
	"github.com/MKhiriev/go-career-path/internal/logger"
	"github.com/MKhiriev/go-career-path/models"
)

type planService struct {
	generator adapter.Generator
	logger    *logger.Logger
}

// NewPlanService constructs a [PlanService].
func NewPlanService(generator adapter.Generator, logger *logger.Logger) PlanService {
	return &planService{generator: generator, logger: logger}
}

func (s *planService) Build(ctx context.Context, profile models.Profile) ([]models.LearningModule, error) {
	plan, err := s.generator.BuildLearningPlan(ctx, profile)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*planService.Build").
		Int("modules", len(plan)).
		Msg("learning plan generated")
	return plan, nil
}
