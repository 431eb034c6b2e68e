// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// career-path client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Generator holds configuration for the content-generation service.
	Generator Generator `envPrefix:"GENERATOR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// AuthLatency is the minimum duration of every identity store round
	// trip. It keeps the "network" feel of login and signup screens.
	// Env: APP_AUTH_LATENCY
	AuthLatency time.Duration `env:"AUTH_LATENCY"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path (e.g. "career-path.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Generator holds settings of the content-generation provider.
type Generator struct {
	// Provider selects the implementation: "gemini" or "openrouter".
	// Env: GENERATOR_PROVIDER
	Provider string `env:"PROVIDER"`

	// APIKey authenticates requests to the provider.
	// Env: GENERATOR_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseURL overrides the provider endpoint. Only used by "openrouter".
	// Env: GENERATOR_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// ProfileModel is used for resume extraction.
	// Env: GENERATOR_PROFILE_MODEL
	ProfileModel string `env:"PROFILE_MODEL"`

	// PlanModel is used for learning plan generation.
	// Env: GENERATOR_PLAN_MODEL
	PlanModel string `env:"PLAN_MODEL"`

	// JobsModel is used for job search.
	// Env: GENERATOR_JOBS_MODEL
	JobsModel string `env:"JOBS_MODEL"`

	// RequestTimeout bounds a single generation call (e.g. "60s").
	// Env: GENERATOR_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. Returns an error if any source fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
