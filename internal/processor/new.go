package processor

import (
	"github.com/phamtuanthanh31072004/highlight-flow/internal/config"
	"github.com/phamtuanthanh31072004/highlight-flow/internal/logger"
	"github.com/phamtuanthanh31072004/highlight-flow/internal/summarizer"
	"github.com/phamtuanthanh31072004/highlight-flow/internal/thumbnail"
	"github.com/phamtuanthanh31072004/highlight-flow/internal/transcript"
	"github.com/phamtuanthanh31072004/highlight-flow/pkg/executor"
)

type implProcessor struct {
	cfg        *config.Config
	logger     logger.Logger
	fetcher    *transcript.Fetcher
	summarizer summarizer.Summarizer
	extractor  *thumbnail.Extractor
}

// New creates a new Processor instance.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		logger:     log,
		fetcher:    transcript.NewFetcher(cfg, exec, log),
		summarizer: summarizer.New(cfg.Summarizer, log),
		extractor:  thumbnail.NewExtractor(cfg, exec, log),
	}
}
