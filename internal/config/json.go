package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		AuthLatency Duration `json:"auth_latency"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Generator struct {
		Provider       string   `json:"provider"`
		APIKey         string   `json:"api_key"`
		BaseURL        string   `json:"base_url"`
		ProfileModel   string   `json:"profile_model"`
		PlanModel      string   `json:"plan_model"`
		JobsModel      string   `json:"jobs_model"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"generator,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AuthLatency: time.Duration(jsonCfg.App.AuthLatency),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Generator: Generator{
			Provider:       jsonCfg.Generator.Provider,
			APIKey:         jsonCfg.Generator.APIKey,
			BaseURL:        jsonCfg.Generator.BaseURL,
			ProfileModel:   jsonCfg.Generator.ProfileModel,
			PlanModel:      jsonCfg.Generator.PlanModel,
			JobsModel:      jsonCfg.Generator.JobsModel,
			RequestTimeout: time.Duration(jsonCfg.Generator.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
