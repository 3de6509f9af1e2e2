package translate

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"codeberg.org/akhadjon/tarjimon/internal/prompt"
)

// geminiTranslator calls the Gemini API. This is the default backend.
type geminiTranslator struct {
	apiKey  string
	model   string
	timeout time.Duration
	logger  *slog.Logger
	client  *genai.Client
}

func newGeminiTranslator(cfg Config) *geminiTranslator {
	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel
	}
	return &geminiTranslator{
		apiKey:  cfg.APIKey,
		model:   model,
		timeout: cfg.Timeout,
		logger:  cfg.Logger,
	}
}

// Translate sends the request to Gemini and returns the trimmed result.
// This is the single suspension point of the pipeline; no retries.
func (g *geminiTranslator) Translate(ctx context.Context, req prompt.Request) (string, error) {
	if g.apiKey == "" {
		return "", ErrMissingCredential
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	if g.client == nil {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			g.logger.Error("gemini client init failed", "error", err)
			return "", classifyCallError(ctx, err)
		}
		g.client = client
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.SourceText),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
			Temperature:       genai.Ptr(req.Temperature),
		})
	if err != nil {
		g.logger.Error("gemini call failed", "model", g.model, "error", err)
		return "", classifyCallError(ctx, err)
	}

	translated := strings.TrimSpace(resp.Text())
	if translated == "" {
		return "", ErrEmptyResponse
	}
	return translated, nil
}
