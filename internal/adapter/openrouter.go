package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"google.golang.org/genai"

	"github.com/MKhiriev/go-career-path/internal/config"
	"github.com/MKhiriev/go-career-path/internal/utils"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// openRouterGenerator talks to an OpenAI-compatible chat completions
// endpoint. Such endpoints have no portable JSON schema mode, so the schema
// is appended to the prompt.
type openRouterGenerator struct {
	client *utils.HTTPClient
}

func newOpenRouterGenerator(cfg config.ClientGenerator) (*openRouterGenerator, error) {
	raw := cfg.BaseURL
	if strings.TrimSpace(raw) == "" {
		raw = defaultOpenRouterBaseURL
	}

	baseURL, err := normalizeBaseURL(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid generator base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetAuthToken(cfg.APIKey)

	return &openRouterGenerator{client: client}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (o *openRouterGenerator) generateJSON(ctx context.Context, model, prompt string, schema *genai.Schema) (string, error) {
	shape, err := json.Marshal(schema)
	if err != nil {
		return "", fmt.Errorf("encode response schema: %w", err)
	}

	body := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: "You answer with JSON only, without commentary. The JSON must match this schema: " + string(shape)},
			{Role: "user", Content: prompt},
		},
	}

	var answer chatResponse
	req := o.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&answer)
	if requestID, ok := utils.GetRequestIDFromContext(ctx); ok {
		req.SetHeader("X-Request-ID", requestID)
	}

	resp, err := req.Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if answer.Error != nil {
		return "", fmt.Errorf("chat completions error: %s", answer.Error.Message)
	}
	if len(answer.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return answer.Choices[0].Message.Content, nil
}
