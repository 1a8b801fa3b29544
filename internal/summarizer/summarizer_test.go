package summarizer

import (
	"context"
	"strings"
	"testing"

	"github.com/phamtuanthanh31072004/highlight-flow/internal/config"
	"github.com/phamtuanthanh31072004/highlight-flow/internal/logger"
)

func TestNewStrategySelection(t *testing.T) {
	log := logger.New("error")

	s := New(config.SummarizerConfig{MaxWords: 60}, log)
	if s.Name() != "extractive" {
		t.Errorf("no API keys: strategy = %q, want extractive", s.Name())
	}

	s = New(config.SummarizerConfig{APIKeys: []string{"key-a"}, Model: "gemini-2.5-flash", MaxWords: 60}, log)
	if s.Name() != "abstractive" {
		t.Errorf("with API keys: strategy = %q, want abstractive", s.Name())
	}
}

func TestExtractiveNonEmpty(t *testing.T) {
	ctx := context.Background()
	s := &extractiveSummarizer{maxWords: 60}

	inputs := []string{
		"This is the most important part of the talk. It explains the key idea in detail. Then some filler follows here.",
		"short",
		"um uh you know",
		"one two three four five six seven eight nine ten",
		strings.Repeat("many words in a very long unpunctuated stream ", 30),
	}

	for _, in := range inputs {
		if got := s.Summarize(ctx, in); got == "" {
			t.Errorf("Summarize(%.30q...) returned empty summary", in)
		}
	}
}

func TestExtractiveEmptyInput(t *testing.T) {
	s := &extractiveSummarizer{maxWords: 60}
	if got := s.Summarize(context.Background(), ""); got != "" {
		t.Errorf("Summarize(empty) = %q, want empty", got)
	}
}

func TestExtractiveWordBudget(t *testing.T) {
	s := &extractiveSummarizer{maxWords: 20}

	text := "The first sentence sets up the background for everything that follows. " +
		"The second sentence contains the important key result of the whole study. " +
		"The third sentence meanders through various unrelated digressions and anecdotes. " +
		"The fourth sentence closes things out with a final thought."

	got := s.Summarize(context.Background(), text)
	if got == "" {
		t.Fatal("empty summary")
	}
	if words := len(strings.Fields(got)); words > 23 {
		// polishSentence may add a period but the budget must hold roughly.
		t.Errorf("summary has %d words, budget 20: %q", words, got)
	}
}

func TestExtractivePrefersSignalSentences(t *testing.T) {
	s := &extractiveSummarizer{maxWords: 15}

	text := "Some meandering filler opens the segment with nothing in it at all here. " +
		"The key conclusion is that the approach works well."

	got := s.Summarize(context.Background(), text)
	if !strings.Contains(strings.ToLower(got), "key conclusion") {
		t.Errorf("summary %q does not keep the signal sentence", got)
	}
}

func TestExtractiveStripsFillers(t *testing.T) {
	s := &extractiveSummarizer{maxWords: 60}

	text := "So um this is basically the main point of the whole presentation today."
	got := s.Summarize(context.Background(), text)

	lower := strings.ToLower(got)
	if strings.Contains(lower, " um ") || strings.Contains(lower, "basically") {
		t.Errorf("summary %q still contains filler words", got)
	}
}

func TestExtractiveStripsFillerPhrases(t *testing.T) {
	s := &extractiveSummarizer{maxWords: 60}

	text := "You know the design holds up well under load and I mean the numbers prove it clearly."
	got := s.Summarize(context.Background(), text)

	lower := strings.ToLower(got)
	if strings.Contains(lower, "you know") || strings.Contains(lower, "i mean") {
		t.Errorf("summary %q still contains filler phrases", got)
	}
	if got == "" {
		t.Error("summary is empty after phrase stripping")
	}
}

func TestTruncateWords(t *testing.T) {
	if got := truncateWords("a b c d", 10); got != "a b c d" {
		t.Errorf("truncateWords short = %q", got)
	}
	got := truncateWords("a b c d e", 3)
	if got != "a b c..." {
		t.Errorf("truncateWords = %q, want %q", got, "a b c...")
	}
}

func TestAbstractiveFallsBackOnError(t *testing.T) {
	// No network in tests: an invalid key makes every Gemini call fail, so
	// the summarizer must degrade to the extractive strategy.
	s := &abstractiveSummarizer{
		apiKeys:  []string{""},
		model:    "gemini-2.5-flash",
		maxWords: 30,
		fallback: &extractiveSummarizer{maxWords: 30},
		logger:   logger.New("error"),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // force the client call to fail immediately

	got := s.Summarize(ctx, "The important takeaway is that fallback always produces a caption.")
	if got == "" {
		t.Error("abstractive summarizer returned empty instead of falling back")
	}
}
