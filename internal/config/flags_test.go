package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-d", "career.db",
		"-config", "/etc/career.json",
		"-auth-latency", "100ms",
		"-provider", "openrouter",
		"-api-key", "secret",
		"-base-url", "http://localhost:9000",
		"-profile-model", "p",
		"-plan-model", "l",
		"-jobs-model", "j",
		"-request-timeout", "15s",
	})
	require.NoError(t, err)

	assert.Equal(t, "career.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/career.json", cfg.JSONFilePath)
	assert.Equal(t, 100*time.Millisecond, cfg.App.AuthLatency)
	assert.Equal(t, "openrouter", cfg.Generator.Provider)
	assert.Equal(t, "secret", cfg.Generator.APIKey)
	assert.Equal(t, "http://localhost:9000", cfg.Generator.BaseURL)
	assert.Equal(t, "p", cfg.Generator.ProfileModel)
	assert.Equal(t, "l", cfg.Generator.PlanModel)
	assert.Equal(t, "j", cfg.Generator.JobsModel)
	assert.Equal(t, 15*time.Second, cfg.Generator.RequestTimeout)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "short.json"})
	require.NoError(t, err)
	assert.Equal(t, "short.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_BadDuration(t *testing.T) {
	_, err := ParseFlags([]string{"-request-timeout", "later"})
	assert.Error(t, err)
}
