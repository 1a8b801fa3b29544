package summarizer

import (
	"github.com/phamtuanthanh31072004/highlight-flow/internal/config"
	"github.com/phamtuanthanh31072004/highlight-flow/internal/logger"
)

// New resolves the summarization strategy once at startup: Gemini-backed
// abstractive summaries when API keys are configured, extractive otherwise.
// The abstractive strategy still degrades to extractive per call on errors,
// so callers never receive an empty summary for non-empty input.
func New(cfg config.SummarizerConfig, log logger.Logger) Summarizer {
	extractive := &extractiveSummarizer{maxWords: cfg.MaxWords}

	if len(cfg.APIKeys) == 0 {
		return extractive
	}

	return &abstractiveSummarizer{
		apiKeys:  cfg.APIKeys,
		model:    cfg.Model,
		maxWords: cfg.MaxWords,
		fallback: extractive,
		logger:   log,
	}
}
