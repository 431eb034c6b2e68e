package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStructured() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Generator.APIKey = "key"
	return cfg
}

func TestNewClientConfig_Valid(t *testing.T) {
	cfg, err := newClientConfig(validStructured())
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.App.AuthLatency)
	assert.Equal(t, "career-path.db", cfg.Storage.DB.DSN)
	assert.Equal(t, ProviderGemini, cfg.Generator.Provider)
	assert.Equal(t, "key", cfg.Generator.APIKey)
}

func TestNewClientConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*StructuredConfig)
		want   error
	}{
		{
			name:   "empty dsn",
			mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" },
			want:   ErrInvalidStorageConfigs,
		},
		{
			name:   "in-memory dsn",
			mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = ":memory:" },
			want:   ErrInvalidStorageConfigs,
		},
		{
			name:   "unknown provider",
			mutate: func(c *StructuredConfig) { c.Generator.Provider = "oracle" },
			want:   ErrInvalidGeneratorProvider,
		},
		{
			name:   "missing api key",
			mutate: func(c *StructuredConfig) { c.Generator.APIKey = "" },
			want:   ErrInvalidGeneratorConfigs,
		},
		{
			name:   "missing model",
			mutate: func(c *StructuredConfig) { c.Generator.PlanModel = "" },
			want:   ErrInvalidGeneratorConfigs,
		},
		{
			name:   "zero timeout",
			mutate: func(c *StructuredConfig) { c.Generator.RequestTimeout = 0 },
			want:   ErrInvalidGeneratorConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructured()
			tt.mutate(cfg)

			_, err := newClientConfig(cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
