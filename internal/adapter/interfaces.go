// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's link to the content-generation
// service.
//
// The primary abstraction is [Generator], which decouples the service layer
// from the provider. Two providers ship with the package: Gemini through the
// official genai SDK and any OpenAI-compatible chat completions endpoint
// (OpenRouter by default) over HTTP.
//
// Both providers answer with loosely shaped JSON. The adapter decodes it into
// transfer objects, turns missing lists into empty ones, converts the result
// to models and runs [validators.ResponseValidator] before returning. Every
// failure is wrapped in [ErrGeneration] so callers can match it with
// [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-career-path/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/generator_mock.go -package=mock

// Generator defines the content-generation collaborator. Each call may take
// an unbounded time and may fail; failures wrap [ErrGeneration].
type Generator interface {
	// ExtractProfile turns free resume text and a career goal into a
	// structured profile.
	ExtractProfile(ctx context.Context, resumeText, careerGoal string) (models.Profile, error)

	// BuildLearningPlan returns an ordered list of learning modules that lead
	// the profile owner to their career goal.
	BuildLearningPlan(ctx context.Context, profile models.Profile) ([]models.LearningModule, error)

	// SearchJobs returns job openings matching the profile and filters. An
	// empty list is a valid answer.
	SearchJobs(ctx context.Context, profile models.Profile, filters models.JobFilters) ([]models.Job, error)
}
