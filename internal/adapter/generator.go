package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/MKhiriev/go-career-path/internal/config"
	"github.com/MKhiriev/go-career-path/internal/logger"
	"github.com/MKhiriev/go-career-path/internal/utils"
	"github.com/MKhiriev/go-career-path/internal/validators"
	"github.com/MKhiriev/go-career-path/models"
)

// backend sends one prompt to a model and returns its raw JSON answer. The
// schema describes the expected shape of that answer.
type backend interface {
	generateJSON(ctx context.Context, model, prompt string, schema *genai.Schema) (string, error)
}

// generator implements [Generator] on top of a provider backend: it builds
// prompts, decodes and validates answers and wraps failures.
type generator struct {
	backend   backend
	cfg       config.ClientGenerator
	validator validators.Validator
	ids       *utils.UUIDGenerator
	logger    *logger.Logger
}

// NewGenerator constructs the [Generator] of the configured provider.
//
// Returns [ErrUnsupportedProvider] for an unknown provider name, or the
// error of the provider SDK when its client cannot be created.
func NewGenerator(ctx context.Context, cfg config.ClientGenerator, logger *logger.Logger) (Generator, error) {
	var (
		b   backend
		err error
	)

	switch cfg.Provider {
	case config.ProviderGemini:
		b, err = newGeminiGenerator(ctx, cfg)
	case config.ProviderOpenRouter:
		b, err = newOpenRouterGenerator(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("error creating %s generator: %w", cfg.Provider, err)
	}

	logger.Debug().Str("provider", cfg.Provider).Msg("creating generator")
	return newGenerator(b, cfg, logger), nil
}

func newGenerator(b backend, cfg config.ClientGenerator, logger *logger.Logger) *generator {
	return &generator{
		backend:   b,
		cfg:       cfg,
		validator: validators.NewResponseValidator(),
		ids:       utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// ExtractProfile implements [Generator].
func (g *generator) ExtractProfile(ctx context.Context, resumeText, careerGoal string) (models.Profile, error) {
	var dto profileDTO
	if err := g.generate(ctx, "ExtractProfile", g.cfg.ProfileModel, profilePrompt(resumeText, careerGoal), profileSchema, &dto); err != nil {
		return models.Profile{}, fmt.Errorf("%w: extract profile: %w", ErrGeneration, err)
	}

	profile := dto.toProfile(careerGoal)
	if err := g.validator.Validate(ctx, profile); err != nil {
		return models.Profile{}, fmt.Errorf("%w: extract profile: %w", ErrGeneration, err)
	}

	return profile, nil
}

// BuildLearningPlan implements [Generator].
func (g *generator) BuildLearningPlan(ctx context.Context, profile models.Profile) ([]models.LearningModule, error) {
	var dtos []moduleDTO
	if err := g.generate(ctx, "BuildLearningPlan", g.cfg.PlanModel, learningPlanPrompt(profile), learningPlanSchema, &dtos); err != nil {
		return nil, fmt.Errorf("%w: build learning plan: %w", ErrGeneration, err)
	}

	plan := toLearningPlan(dtos)
	if err := g.validator.Validate(ctx, plan); err != nil {
		return nil, fmt.Errorf("%w: build learning plan: %w", ErrGeneration, err)
	}

	return plan, nil
}

// SearchJobs implements [Generator].
func (g *generator) SearchJobs(ctx context.Context, profile models.Profile, filters models.JobFilters) ([]models.Job, error) {
	var dtos []jobDTO
	if err := g.generate(ctx, "SearchJobs", g.cfg.JobsModel, jobsPrompt(profile, filters), jobsSchema, &dtos); err != nil {
		return nil, fmt.Errorf("%w: search jobs: %w", ErrGeneration, err)
	}

	jobs := toJobs(dtos)
	if err := g.validator.Validate(ctx, jobs); err != nil {
		return nil, fmt.Errorf("%w: search jobs: %w", ErrGeneration, err)
	}

	return jobs, nil
}

// generate runs one backend call under the configured timeout and decodes
// the answer into dst.
func (g *generator) generate(ctx context.Context, op, model, prompt string, schema *genai.Schema, dst any) error {
	requestID := g.ids.Generate()
	ctx = utils.WithRequestID(ctx, requestID)

	if g.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.RequestTimeout)
		defer cancel()
	}

	log := g.logger.With().
		Str("func", "*generator."+op).
		Str("request_id", requestID).
		Str("model", model).
		Logger()

	start := time.Now()
	raw, err := g.backend.generateJSON(ctx, model, prompt, schema)
	if err != nil {
		log.Err(err).Dur("took", time.Since(start)).Msg("generation request failed")
		return err
	}
	log.Debug().Dur("took", time.Since(start)).Int("bytes", len(raw)).Msg("generation request finished")

	raw = utils.CleanJSON(raw)
	if strings.TrimSpace(raw) == "" {
		return ErrEmptyResponse
	}

	if err = json.Unmarshal([]byte(raw), dst); err != nil {
		log.Err(err).Msg("model answered with invalid json")
		return fmt.Errorf("%w: %v", validators.ErrMalformedResponse, err)
	}

	return nil
}
