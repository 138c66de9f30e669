package content

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// creativity is the fixed sampling temperature for every generation call —
// low enough for coherent marketing copy, nonzero so repeated products do not
// produce identical text.
const creativity = 0.7

// TextGenerator is the minimal surface the synthesizer needs from the
// generative service. GenerateJSON must request machine-parseable structured
// output; GenerateText returns free-form prose.
type TextGenerator interface {
	GenerateJSON(ctx context.Context, system, prompt string) (string, error)
	GenerateText(ctx context.Context, system, prompt string) (string, error)
}

// ErrNotConfigured is returned by the nil generator when no API key is set.
var ErrNotConfigured = errors.New("content: generative service not configured")

// GeminiGenerator implements TextGenerator on Google's Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator builds a generator for the given API key and model.
// An empty key yields a nil generator — the synthesizer treats that as a
// permanently failing service and serves fallback content.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) GenerateJSON(ctx context.Context, system, prompt string) (string, error) {
	return g.generate(ctx, system, prompt, "application/json")
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	return g.generate(ctx, system, prompt, "")
}

func (g *GeminiGenerator) generate(ctx context.Context, system, prompt, mimeType string) (string, error) {
	if g == nil {
		return "", ErrNotConfigured
	}
	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](creativity),
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}
	if mimeType != "" {
		cfg.ResponseMIMEType = mimeType
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("content: empty response from generative service")
	}
	return text, nil
}
