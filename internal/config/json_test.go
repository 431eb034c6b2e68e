package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "auth_latency": "750ms" },
		"storage": { "db": { "dsn": "career.db" } },
		"generator": {
			"provider": "openrouter",
			"api_key": "json-key",
			"base_url": "https://openrouter.ai/api/v1",
			"profile_model": "p",
			"plan_model": "l",
			"jobs_model": "j",
			"request_timeout": "45s"
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, 750*time.Millisecond, cfg.App.AuthLatency)
	assert.Equal(t, "career.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "openrouter", cfg.Generator.Provider)
	assert.Equal(t, "json-key", cfg.Generator.APIKey)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.Generator.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Generator.RequestTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Malformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{not valid json"), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"2s"`, want: 2 * time.Second},
		{name: "number of nanoseconds", input: `1000`, want: time.Microsecond},
		{name: "invalid string", input: `"two seconds"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
