package config

import "time"

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
)

// defaultConfig holds the values used for every field that no other source
// has set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AuthLatency: 500 * time.Millisecond,
		},
		Storage: Storage{
			DB: DB{DSN: "career-path.db"},
		},
		Generator: Generator{
			Provider:       ProviderGemini,
			ProfileModel:   "gemini-2.5-flash",
			PlanModel:      "gemini-2.5-pro",
			JobsModel:      "gemini-2.5-flash",
			RequestTimeout: 90 * time.Second,
		},
	}
}
