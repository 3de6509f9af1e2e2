package history

import (
	"time"

	"codeberg.org/akhadjon/tarjimon/internal"
	"codeberg.org/akhadjon/tarjimon/internal/prompt"
)

// SourceLanguage is fixed: the pipeline only translates from Uzbek
const SourceLanguage = "UZ"

// Record is one persisted translation. Created only on success and
// never mutated afterwards; removed only by Clear or cap eviction.
type Record struct {
	ID         string `json:"id"`
	From       string `json:"from"`
	To         string `json:"to"`
	Tone       string `json:"tone"`
	Original   string `json:"original"`
	Translated string `json:"translated"`
	Timestamp  int64  `json:"timestamp"` // epoch milliseconds
}

// NewRecord creates a record for a successful translation
func NewRecord(original, translated string, target prompt.Target, tone prompt.Tone) Record {
	return Record{
		ID:         internal.GenerateRecordID(original),
		From:       SourceLanguage,
		To:         target.Code(),
		Tone:       tone.String(),
		Original:   original,
		Translated: translated,
		Timestamp:  time.Now().UnixMilli(),
	}
}
