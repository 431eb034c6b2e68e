package adapter

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/MKhiriev/go-career-path/internal/config"
)

// modelsAPI is the part of the genai client used by the adapter.
type modelsAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// geminiGenerator talks to Gemini in JSON mode: the schema is passed to the
// model, which then answers with matching JSON.
type geminiGenerator struct {
	models modelsAPI
}

func newGeminiGenerator(ctx context.Context, cfg config.ClientGenerator) (*geminiGenerator, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &geminiGenerator{models: client.Models}, nil
}

func (g *geminiGenerator) generateJSON(ctx context.Context, model, prompt string, schema *genai.Schema) (string, error) {
	resp, err := g.models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("gemini blocked the prompt: %s", resp.PromptFeedback.BlockReason)
	}

	return resp.Text(), nil
}
