package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidGeneratorProvider indicates an unknown generation provider.
	ErrInvalidGeneratorProvider = errors.New("invalid generator provider")
	// ErrInvalidGeneratorConfigs indicates incomplete generator settings
	// (for example, missing API key or model name).
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
	// ErrNegativeDuration indicates that a duration setting is negative.
	ErrNegativeDuration = errors.New("durations must not be negative")
)
