package summarizer

import "context"

// Summarizer produces a short summary for one segment's transcript text.
// The result is non-empty whenever the input is non-empty.
type Summarizer interface {
	Summarize(ctx context.Context, text string) string
	// Name identifies the active strategy, for logging.
	Name() string
}
