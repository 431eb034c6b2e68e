package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-d database file path
//	-c/-config json file path with configs
//	-auth-latency minimum identity store round trip (e.g., "500ms")
//	-provider generation provider (gemini or openrouter)
//	-api-key generation provider API key
//	-base-url generation provider base URL
//	-profile-model model used for resume extraction
//	-plan-model model used for learning plans
//	-jobs-model model used for job search
//	-request-timeout generation request timeout (e.g., "60s")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		databaseDSN    string
		jsonConfigPath string
		authLatency    time.Duration
		provider       string
		apiKey         string
		baseURL        string
		profileModel   string
		planModel      string
		jobsModel      string
		requestTimeout time.Duration
	)

	fs := flag.NewFlagSet("career-path", flag.ContinueOnError)
	fs.StringVar(&databaseDSN, "d", "", "Database file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&authLatency, "auth-latency", 0, "Minimum identity store round trip (e.g., 500ms)")
	fs.StringVar(&provider, "provider", "", "Generation provider: gemini or openrouter")
	fs.StringVar(&apiKey, "api-key", "", "Generation provider API key")
	fs.StringVar(&baseURL, "base-url", "", "Generation provider base URL")
	fs.StringVar(&profileModel, "profile-model", "", "Model used for resume extraction")
	fs.StringVar(&planModel, "plan-model", "", "Model used for learning plans")
	fs.StringVar(&jobsModel, "jobs-model", "", "Model used for job search")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Generation request timeout (e.g., 60s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AuthLatency: authLatency,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Generator: Generator{
			Provider:       provider,
			APIKey:         apiKey,
			BaseURL:        baseURL,
			ProfileModel:   profileModel,
			PlanModel:      planModel,
			JobsModel:      jobsModel,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
