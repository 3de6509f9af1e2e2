package cli

import "time"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile      string
	Target       string
	Tone         string
	BatchFile    string
	ShowHistory  bool
	ClearHistory bool
	HistoryPath  string

	// Translation backend flags
	Provider string
	Model    string
	Timeout  time.Duration
	Breaker  bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Target:   "ru",
		Tone:     "natural",
		Provider: "gemini",
		Timeout:  30 * time.Second,
	}
}
