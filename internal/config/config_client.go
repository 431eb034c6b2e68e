package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// AuthLatency is the minimum duration of identity store operations.
	AuthLatency time.Duration
}

// ClientGenerator holds settings of the content-generation adapter.
type ClientGenerator struct {
	Provider       string
	APIKey         string
	BaseURL        string
	ProfileModel   string
	PlanModel      string
	JobsModel      string
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Generator contains content-generation provider settings.
	Generator ClientGenerator
	// Storage contains client storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			AuthLatency: cfg.App.AuthLatency,
		},
		Generator: ClientGenerator{
			Provider:       cfg.Generator.Provider,
			APIKey:         cfg.Generator.APIKey,
			BaseURL:        cfg.Generator.BaseURL,
			ProfileModel:   cfg.Generator.ProfileModel,
			PlanModel:      cfg.Generator.PlanModel,
			JobsModel:      cfg.Generator.JobsModel,
			RequestTimeout: cfg.Generator.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
	}

	return clientCfg, clientCfg.validate()
}
