package prompt

import (
	"fmt"
	"strings"
)

// Target is the language a translation is produced in
type Target int

const (
	TargetRussian Target = iota
	TargetEnglish
)

// Name returns the human-readable language name used in prompts
func (t Target) Name() string {
	switch t {
	case TargetEnglish:
		return "English"
	default:
		return "Russian"
	}
}

// Code returns the short language code used in persisted records
func (t Target) Code() string {
	switch t {
	case TargetEnglish:
		return "EN"
	default:
		return "RU"
	}
}

// ParseTarget parses a target language from flag or config input
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ru", "rus", "russian":
		return TargetRussian, nil
	case "en", "eng", "english":
		return TargetEnglish, nil
	default:
		return TargetRussian, fmt.Errorf("unknown target language %q (expected ru or en)", s)
	}
}

// Tone is the style directive applied to a translation
type Tone int

const (
	ToneNatural Tone = iota
	ToneFormal
	ToneSlang
)

// toneDirectives maps each tone to the phrasing instruction embedded in
// the system prompt. The raw tone name never reaches the model.
var toneDirectives = map[Tone]string{
	ToneNatural: "natural, friendly, suited for casual messaging",
	ToneFormal:  "professional, respectful, suited for business correspondence",
	ToneSlang:   "casual, youth colloquialism with informal abbreviations",
}

// Directive returns the natural-language style instruction for the tone
func (t Tone) Directive() string {
	if d, ok := toneDirectives[t]; ok {
		return d
	}
	return toneDirectives[ToneNatural]
}

func (t Tone) String() string {
	switch t {
	case ToneFormal:
		return "formal"
	case ToneSlang:
		return "slang"
	default:
		return "natural"
	}
}

// ParseTone parses a tone from flag or config input
func ParseTone(s string) (Tone, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "natural":
		return ToneNatural, nil
	case "formal":
		return ToneFormal, nil
	case "slang":
		return ToneSlang, nil
	default:
		return ToneNatural, fmt.Errorf("unknown tone %q (expected natural, formal or slang)", s)
	}
}

// Temperature is the fixed sampling temperature for translation requests
const Temperature float32 = 0.8

// Request is a fully-built translation request ready for a backend.
// It is created per call and never persisted.
type Request struct {
	SourceText        string
	Target            Target
	Tone              Tone
	Temperature       float32
	SystemInstruction string
}

// BuildRequest constructs a translation request for non-empty source text.
// Callers validate that text is non-empty after trimming before invoking.
func BuildRequest(text string, target Target, tone Tone) Request {
	instruction := fmt.Sprintf(
		"You are an elite professional translator from Uzbek to %[1]s. "+
			"Translate the user's message into %[1]s. "+
			"The translation must sound %s. "+
			"Return ONLY the translated text, with no explanations, no quotes and no preamble.",
		target.Name(), tone.Directive())

	return Request{
		SourceText:        text,
		Target:            target,
		Tone:              tone,
		Temperature:       Temperature,
		SystemInstruction: instruction,
	}
}
