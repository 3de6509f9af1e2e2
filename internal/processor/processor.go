package processor

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"codeberg.org/akhadjon/tarjimon/internal/history"
	"codeberg.org/akhadjon/tarjimon/internal/prompt"
	"codeberg.org/akhadjon/tarjimon/internal/translate"
)

// ErrBusy is returned when a submission arrives while another
// translation is still in flight. At most one request runs at a time.
var ErrBusy = errors.New("a translation is already in progress")

// State is the pipeline state. Exactly one value is current at any
// time; there are no independent flags to drift out of sync.
type State int

const (
	StateReady State = iota
	StateTranslating
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateTranslating:
		return "translating"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "ready"
	}
}

// DefaultResetDelay is how long SUCCESS and ERROR are displayed before
// the pipeline auto-returns to READY.
const DefaultResetDelay = 3 * time.Second

// Options configure a Processor
type Options struct {
	Translator translate.Translator
	Store      *history.Store
	// CredentialPresent guards submissions: without a credential no
	// translation is attempted. The credential itself stays inside
	// the Translator.
	CredentialPresent bool
	// ResetDelay overrides DefaultResetDelay when positive.
	ResetDelay time.Duration
	Logger     *slog.Logger
	// Listener observes state transitions. Called outside the
	// processor lock; it may call back into the processor.
	Listener func(State)
}

// Processor coordinates Prompt Builder, Translation Client and History
// Store for one submission at a time.
type Processor struct {
	translator        translate.Translator
	store             *history.Store
	credentialPresent bool
	resetDelay        time.Duration
	logger            *slog.Logger
	listener          func(State)

	mu         sync.Mutex
	state      State
	resetTimer *time.Timer
}

// New creates a processor in the READY state
func New(opts Options) *Processor {
	delay := opts.ResetDelay
	if delay <= 0 {
		delay = DefaultResetDelay
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		translator:        opts.Translator,
		store:             opts.Store,
		credentialPresent: opts.CredentialPresent,
		resetDelay:        delay,
		logger:            logger,
		listener:          opts.Listener,
	}
}

// State returns the current pipeline state
func (p *Processor) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Submit runs one translation. Empty (after trimming) text is rejected
// without a state change; a missing credential moves straight to ERROR
// without entering TRANSLATING or touching the service; a submission
// while TRANSLATING is rejected with ErrBusy. On success the trimmed
// translation is returned and a record is appended to history.
func (p *Processor) Submit(ctx context.Context, text string, target prompt.Target, tone prompt.Tone) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", translate.ErrEmptyInput
	}

	p.mu.Lock()
	if p.state == StateTranslating {
		p.mu.Unlock()
		return "", ErrBusy
	}
	p.stopResetLocked()

	if !p.credentialPresent {
		p.state = StateError
		p.scheduleResetLocked()
		p.mu.Unlock()
		p.notify(StateError)
		return "", translate.ErrMissingCredential
	}

	p.state = StateTranslating
	p.mu.Unlock()
	p.notify(StateTranslating)

	req := prompt.BuildRequest(trimmed, target, tone)
	translated, err := p.translator.Translate(ctx, req)

	translated = strings.TrimSpace(translated)

	p.mu.Lock()
	var next State
	if err != nil {
		p.logger.Error("translation failed", "target", target.Code(), "error", err)
		next = StateError
	} else {
		p.store.Append(history.NewRecord(trimmed, translated, target, tone))
		next = StateSuccess
	}
	p.state = next
	p.scheduleResetLocked()
	p.mu.Unlock()
	p.notify(next)

	if err != nil {
		return "", err
	}
	return translated, nil
}

func (p *Processor) notify(s State) {
	if p.listener != nil {
		p.listener(s)
	}
}

func (p *Processor) stopResetLocked() {
	if p.resetTimer != nil {
		p.resetTimer.Stop()
		p.resetTimer = nil
	}
}

func (p *Processor) scheduleResetLocked() {
	p.stopResetLocked()
	p.resetTimer = time.AfterFunc(p.resetDelay, func() {
		p.mu.Lock()
		if p.state != StateSuccess && p.state != StateError {
			p.mu.Unlock()
			return
		}
		p.state = StateReady
		p.mu.Unlock()
		p.notify(StateReady)
	})
}

// UserMessage maps a pipeline error to a stable user-facing message.
// Transport internals never leak here; they stay in the logs.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, translate.ErrEmptyInput):
		return "Enter some text to translate."
	case errors.Is(err, ErrBusy):
		return "A translation is already in progress."
	case errors.Is(err, translate.ErrMissingCredential):
		return "Translation API key is not configured. Set GEMINI_API_KEY or add it to your config file."
	case errors.Is(err, translate.ErrTimeout):
		return "The translation service did not respond in time. Try again."
	case errors.Is(err, translate.ErrEmptyResponse):
		return "The translation service returned an empty result. Try again."
	default:
		return "Translation service unreachable. Verify your credentials and connection."
	}
}
