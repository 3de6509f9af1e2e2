package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"codeberg.org/akhadjon/tarjimon/internal/prompt"
)

// StubTranslator is an offline demo backend. It returns deterministic
// synthetic text after a fixed delay and needs no credential.
type StubTranslator struct {
	delay time.Duration
}

// NewStubTranslator creates a stub backend. A non-positive delay uses
// a short default so the demo still feels like a remote call.
func NewStubTranslator(delay time.Duration) *StubTranslator {
	if delay <= 0 {
		delay = 300 * time.Millisecond
	}
	return &StubTranslator{delay: delay}
}

// Translate returns a synthetic translation of the source text
func (s *StubTranslator) Translate(ctx context.Context, req prompt.Request) (string, error) {
	select {
	case <-ctx.Done():
		return "", classifyCallError(ctx, ctx.Err())
	case <-time.After(s.delay):
	}

	return fmt.Sprintf("[%s %s] %s", strings.ToLower(req.Target.Code()), req.Tone, req.SourceText), nil
}
