package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/akhadjon/tarjimon/internal/processor"
	"codeberg.org/akhadjon/tarjimon/internal/prompt"
)

// Entry is one source line from a batch file
type Entry struct {
	Text string
	Line int
}

// ReadBatchFile reads source texts from a file, one per line. Blank
// lines and lines starting with '#' are skipped.
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []Entry
	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, Entry{Text: line, Line: i + 1})
	}

	return entries, nil
}

// Summary reports the outcome of a batch run
type Summary struct {
	Total      int
	Translated int
	Failed     int
}

// Run translates each entry through the processor, printing results to
// out and continuing past per-entry failures.
func Run(ctx context.Context, proc *processor.Processor, entries []Entry, target prompt.Target, tone prompt.Tone, out io.Writer) Summary {
	summary := Summary{Total: len(entries)}

	for i, entry := range entries {
		fmt.Fprintf(out, "Translating %d/%d: %s\n", i+1, len(entries), entry.Text)

		translated, err := proc.Submit(ctx, entry.Text, target, tone)
		if err != nil {
			fmt.Fprintf(out, "  ✗ line %d: %s\n", entry.Line, processor.UserMessage(err))
			summary.Failed++
			continue
		}

		fmt.Fprintf(out, "  %s = %s\n", entry.Text, translated)
		summary.Translated++
	}

	fmt.Fprintf(out, "\n=== Batch Summary ===\n")
	fmt.Fprintf(out, "Total: %d\n", summary.Total)
	fmt.Fprintf(out, "Translated: %d\n", summary.Translated)
	if summary.Failed > 0 {
		fmt.Fprintf(out, "Failed: %d\n", summary.Failed)
	}

	return summary
}
