// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-career-path/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validModule() models.LearningModule {
	return models.LearningModule{
		Title:       "Advanced React",
		Description: "Hooks and patterns",
		Priority:    models.PriorityHigh,
		Resources: []models.Resource{
			{Name: "React docs", URL: "https://react.dev", Type: models.ResourceArticle},
			{Name: "Course", URL: "https://example.com/course", Type: models.ResourceCourse},
		},
		ProjectIdea: "Build a dashboard",
	}
}

func validJob() models.Job {
	return models.Job{Title: "Frontend Developer", Company: "Acme", URL: "https://jobs.example.com/1"}
}

// ---------------------------------------------------------------------------
// Profile
// ---------------------------------------------------------------------------

func TestValidateProfile(t *testing.T) {
	v := NewResponseValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.Profile{Name: "Jane Doe"}))
	require.NoError(t, v.Validate(ctx, &models.Profile{Name: "Jane Doe"}))

	err := v.Validate(ctx, models.Profile{Name: "   ", Skills: []string{"Go"}})
	assert.ErrorIs(t, err, ErrEmptyProfileName)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

// ---------------------------------------------------------------------------
// Learning plan
// ---------------------------------------------------------------------------

func TestValidatePlan(t *testing.T) {
	v := NewResponseValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(m *models.LearningModule)
		wantErr error
	}{
		{name: "valid", mutate: func(m *models.LearningModule) {}},
		{name: "no resources", mutate: func(m *models.LearningModule) { m.Resources = []models.Resource{} }},
		{name: "empty title", mutate: func(m *models.LearningModule) { m.Title = "" }, wantErr: ErrEmptyModuleTitle},
		{name: "bad priority", mutate: func(m *models.LearningModule) { m.Priority = "Urgent" }, wantErr: ErrInvalidPriority},
		{name: "empty url", mutate: func(m *models.LearningModule) { m.Resources[1].URL = " " }, wantErr: ErrEmptyResourceURL},
		{name: "bad type", mutate: func(m *models.LearningModule) { m.Resources[0].Type = "podcast" }, wantErr: ErrInvalidResourceType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			second := validModule()
			tt.mutate(&second)
			plan := []models.LearningModule{validModule(), second}

			err := v.Validate(ctx, plan)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrMalformedResponse)
			assert.Contains(t, err.Error(), "module at index 1")
		})
	}
}

func TestValidatePlan_Empty(t *testing.T) {
	assert.NoError(t, NewResponseValidator().Validate(context.Background(), []models.LearningModule{}))
}

func TestValidateModule_FieldScoping(t *testing.T) {
	v := NewResponseValidator()
	m := validModule()
	m.Priority = ""

	assert.NoError(t, v.Validate(context.Background(), m, FieldName, FieldResources))
	assert.ErrorIs(t, v.Validate(context.Background(), &m, FieldPriority), ErrInvalidPriority)
	assert.ErrorIs(t, v.Validate(context.Background(), m, "unknown"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Jobs
// ---------------------------------------------------------------------------

func TestValidateJobs(t *testing.T) {
	v := NewResponseValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, []models.Job{}))
	assert.NoError(t, v.Validate(ctx, []models.Job{validJob(), validJob()}))

	noURL := validJob()
	noURL.URL = ""
	assert.ErrorIs(t, v.Validate(ctx, []models.Job{validJob(), noURL}), ErrEmptyJobURL)

	noTitle := validJob()
	noTitle.Title = ""
	assert.ErrorIs(t, v.Validate(ctx, []models.Job{noTitle}), ErrEmptyJobTitle)
}

// ---------------------------------------------------------------------------
// Filters
// ---------------------------------------------------------------------------

func TestValidateFilters(t *testing.T) {
	v := NewResponseValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.DefaultJobFilters()))
	assert.NoError(t, v.Validate(ctx, &models.JobFilters{Area: "Remote", JobType: models.JobTypeContract, Experience: models.ExperienceSenior}))

	err := v.Validate(ctx, models.JobFilters{JobType: "Freelance", Experience: models.ExperienceAny})
	assert.ErrorIs(t, err, ErrInvalidJobType)
	assert.NotErrorIs(t, err, ErrMalformedResponse)

	assert.ErrorIs(t, v.Validate(ctx, models.JobFilters{JobType: models.JobTypeAny, Experience: "10 years"}), ErrInvalidExperience)
}

func TestValidate_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewResponseValidator().Validate(context.Background(), 42), ErrUnsupportedType)
}
