// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Only type-independent rules live here; the client-specific requirements
// are enforced by [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AuthLatency < 0 || cfg.Generator.RequestTimeout < 0 {
		return ErrNegativeDuration
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Generator.Provider {
	case ProviderGemini, ProviderOpenRouter:
	default:
		return ErrInvalidGeneratorProvider
	}

	if cfg.Generator.APIKey == "" || cfg.Generator.RequestTimeout <= 0 {
		return ErrInvalidGeneratorConfigs
	}

	if cfg.Generator.ProfileModel == "" || cfg.Generator.PlanModel == "" || cfg.Generator.JobsModel == "" {
		return ErrInvalidGeneratorConfigs
	}

	return nil
}
