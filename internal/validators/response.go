package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-career-path/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the name of a generated profile.
	FieldName = "name"

	// FieldModules targets every module of a learning plan.
	FieldModules = "modules"

	// FieldResources targets the resources of a learning module.
	FieldResources = "resources"

	// FieldPriority targets the priority of a learning module.
	FieldPriority = "priority"

	// FieldJobs targets every job of a search result.
	FieldJobs = "jobs"

	// FieldJobType targets the employment type filter.
	FieldJobType = "job_type"

	// FieldExperience targets the experience filter.
	FieldExperience = "experience"
)

var (
	allowedPriorities    = []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow}
	allowedResourceTypes = []models.ResourceType{models.ResourceVideo, models.ResourceArticle, models.ResourceCourse}
)

// ResponseValidator implements Validator for generated content and for job
// search filters.
//
// Supported types:
//   - models.Profile / *models.Profile
//   - []models.LearningModule
//   - models.LearningModule / *models.LearningModule
//   - []models.Job
//   - models.JobFilters / *models.JobFilters
type ResponseValidator struct {
}

// NewResponseValidator constructs a new ResponseValidator and returns it as
// the Validator interface.
func NewResponseValidator() Validator {
	return &ResponseValidator{}
}

// Validate dispatches validation to the type-specific method. Returns
// ErrUnsupportedType for any other value.
func (v *ResponseValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Profile:
		return v.validateProfile(ctx, value, fields...)
	case *models.Profile:
		return v.validateProfile(ctx, *value, fields...)

	case []models.LearningModule:
		return v.validatePlan(ctx, value, fields...)
	case models.LearningModule:
		return v.validateModule(ctx, value, fields...)
	case *models.LearningModule:
		return v.validateModule(ctx, *value, fields...)

	case []models.Job:
		return v.validateJobs(ctx, value, fields...)

	case models.JobFilters:
		return v.validateFilters(ctx, value, fields...)
	case *models.JobFilters:
		return v.validateFilters(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateProfile requires a name. Every list of a profile is optional.
func (v *ResponseValidator) validateProfile(ctx context.Context, profile models.Profile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(profile.Name) == "" {
				return ErrEmptyProfileName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePlan validates each module and reports the index of the first
// invalid one. An empty plan is valid.
func (v *ResponseValidator) validatePlan(ctx context.Context, plan []models.LearningModule, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldModules}
	}

	for _, f := range fields {
		switch f {
		case FieldModules:
			for i, module := range plan {
				if err := v.validateModule(ctx, module); err != nil {
					return fmt.Errorf("module at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateModule checks title, priority and every resource. Resource URLs
// key progress tracking, so a resource without one is unusable.
func (v *ResponseValidator) validateModule(ctx context.Context, module models.LearningModule, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPriority, FieldResources}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(module.Title) == "" {
				return ErrEmptyModuleTitle
			}
		case FieldPriority:
			if !slices.Contains(allowedPriorities, module.Priority) {
				return ErrInvalidPriority
			}
		case FieldResources:
			for i, resource := range module.Resources {
				if strings.TrimSpace(resource.URL) == "" {
					return fmt.Errorf("resource at index %d: %w", i, ErrEmptyResourceURL)
				}
				if !slices.Contains(allowedResourceTypes, resource.Type) {
					return fmt.Errorf("resource at index %d: %w", i, ErrInvalidResourceType)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateJobs requires a title and a link for every job. An empty list is a
// valid "no results" answer.
func (v *ResponseValidator) validateJobs(ctx context.Context, jobs []models.Job, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldJobs}
	}

	for _, f := range fields {
		switch f {
		case FieldJobs:
			for i, job := range jobs {
				if strings.TrimSpace(job.Title) == "" {
					return fmt.Errorf("job at index %d: %w", i, ErrEmptyJobTitle)
				}
				if strings.TrimSpace(job.URL) == "" {
					return fmt.Errorf("job at index %d: %w", i, ErrEmptyJobURL)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ResponseValidator) validateFilters(ctx context.Context, filters models.JobFilters, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldJobType, FieldExperience}
	}

	for _, f := range fields {
		switch f {
		case FieldJobType:
			if !slices.Contains(models.JobTypes, filters.JobType) {
				return ErrInvalidJobType
			}
		case FieldExperience:
			if !slices.Contains(models.ExperienceLevels, filters.Experience) {
				return ErrInvalidExperience
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
