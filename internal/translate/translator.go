package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"codeberg.org/akhadjon/tarjimon/internal/prompt"
)

// Error taxonomy for the translation pipeline. Callers match with
// errors.Is; the wrapped form keeps the original diagnostic for logs.
var (
	ErrEmptyInput        = errors.New("source text is empty")
	ErrMissingCredential = errors.New("translation API key not configured")
	ErrServiceFailure    = errors.New("translation service request failed")
	ErrEmptyResponse     = errors.New("translation service returned no text")
	ErrTimeout           = errors.New("translation request timed out")
)

// Translator produces exactly one translated string per request, or one
// error. There is no streaming and no partial output.
type Translator interface {
	Translate(ctx context.Context, req prompt.Request) (string, error)
}

// Provider IDs for supported backends
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderStub   = "stub"
)

// Default models per provider
const (
	DefaultGeminiModel = "gemini-2.0-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// DefaultTimeout bounds a single translation call. A hung service is
// reported as ErrTimeout instead of blocking the caller indefinitely.
const DefaultTimeout = 30 * time.Second

// Config carries everything a backend needs, credential included.
// The credential is passed explicitly so no package reads ambient state.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	// BaseURL overrides the provider endpoint, for OpenAI-compatible
	// services. Empty means the provider default.
	BaseURL string
	Timeout time.Duration
	Breaker bool
	Logger  *slog.Logger
}

// New creates a Translator for the configured provider, wrapped in a
// circuit breaker when enabled. An empty APIKey is not an error here;
// it surfaces as ErrMissingCredential on the first Translate call.
func New(cfg Config) (Translator, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	var tr Translator
	switch cfg.Provider {
	case "", ProviderGemini:
		tr = newGeminiTranslator(cfg)
	case ProviderOpenAI:
		tr = newOpenAITranslator(cfg)
	case ProviderStub:
		tr = NewStubTranslator(0)
	default:
		return nil, fmt.Errorf("unknown translation provider %q", cfg.Provider)
	}

	if cfg.Breaker {
		tr = NewBreakerTranslator(tr, cfg.Logger)
	}
	return tr, nil
}

// classifyCallError converts a backend failure into the pipeline taxonomy,
// preserving the original message via wrapping.
func classifyCallError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrServiceFailure, err)
}
