package translate

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/akhadjon/tarjimon/internal/prompt"
)

// openAITranslator calls the OpenAI chat completion API.
type openAITranslator struct {
	apiKey  string
	model   string
	timeout time.Duration
	logger  *slog.Logger
	client  *openai.Client
}

func newOpenAITranslator(cfg Config) *openAITranslator {
	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &openAITranslator{
		apiKey:  cfg.APIKey,
		model:   model,
		timeout: cfg.Timeout,
		logger:  cfg.Logger,
		client:  openai.NewClientWithConfig(clientConfig),
	}
}

// Translate sends the request to OpenAI and returns the trimmed result
func (o *openAITranslator) Translate(ctx context.Context, req prompt.Request) (string, error) {
	if o.apiKey == "" {
		return "", ErrMissingCredential
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.SystemInstruction,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.SourceText,
			},
		},
		MaxTokens:   1024,
		Temperature: req.Temperature,
	})
	if err != nil {
		o.logger.Error("openai call failed", "model", o.model, "error", err)
		return "", classifyCallError(ctx, err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return "", ErrEmptyResponse
	}
	return translated, nil
}
