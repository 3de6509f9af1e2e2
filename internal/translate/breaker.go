package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"

	"codeberg.org/akhadjon/tarjimon/internal/prompt"
)

// BreakerTranslator wraps a backend with a circuit breaker. It never
// retries a request; after repeated service failures it rejects calls
// fast until the cooldown elapses, then lets a probe request through.
type BreakerTranslator struct {
	inner Translator
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerTranslator wraps inner with failure-counting protection.
// Only service-side failures count; configuration errors such as a
// missing credential pass through without affecting the breaker.
func NewBreakerTranslator(inner Translator, logger *slog.Logger) *BreakerTranslator {
	if logger == nil {
		logger = slog.Default()
	}

	settings := gobreaker.Settings{
		Name:        "translate",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			return !errors.Is(err, ErrServiceFailure) && !errors.Is(err, ErrTimeout)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("translation breaker state change", "from", from.String(), "to", to.String())
		},
	}

	return &BreakerTranslator{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate delegates to the wrapped backend through the breaker
func (b *BreakerTranslator) Translate(ctx context.Context, req prompt.Request) (string, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.inner.Translate(ctx, req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: %v", ErrServiceFailure, err)
		}
		return "", err
	}
	return result.(string), nil
}
