// Package prompt constructs translation requests for the language-model
// backends. It maps target languages and tones to natural-language
// instructions and produces the system prompt sent alongside the source
// text. All functions are pure and perform no I/O.
package prompt
