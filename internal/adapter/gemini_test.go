package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	resp *genai.GenerateContentResponse
	err  error

	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.contents = contents
	f.config = config
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func TestGeminiGenerator_JSONMode(t *testing.T) {
	models := &fakeModels{resp: textResponse(`{"name":"Jane"}`)}
	g := &geminiGenerator{models: models}

	got, err := g.generateJSON(context.Background(), "gemini-2.5-flash", "extract this", profileSchema)
	require.NoError(t, err)

	assert.Equal(t, `{"name":"Jane"}`, got)
	assert.Equal(t, "gemini-2.5-flash", models.model)
	require.Len(t, models.contents, 1)
	assert.Equal(t, "extract this", models.contents[0].Parts[0].Text)
	assert.Equal(t, "application/json", models.config.ResponseMIMEType)
	assert.Same(t, profileSchema, models.config.ResponseSchema)
}

func TestGeminiGenerator_RequestError(t *testing.T) {
	g := &geminiGenerator{models: &fakeModels{err: errors.New("429 resource exhausted")}}

	_, err := g.generateJSON(context.Background(), "m", "p", jobsSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429 resource exhausted")
}

func TestGeminiGenerator_BlockedPrompt(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety},
	}
	g := &geminiGenerator{models: &fakeModels{resp: resp}}

	_, err := g.generateJSON(context.Background(), "m", "p", jobsSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked")
}
