// Package processor orchestrates the highlight pipeline: transcript in,
// published bundle out.
package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/phamtuanthanh31072004/highlight-flow/internal/bundle"
	"github.com/phamtuanthanh31072004/highlight-flow/internal/config"
	"github.com/phamtuanthanh31072004/highlight-flow/internal/page"
	"github.com/phamtuanthanh31072004/highlight-flow/internal/segment"
	"github.com/phamtuanthanh31072004/highlight-flow/internal/thumbnail"
	"github.com/phamtuanthanh31072004/highlight-flow/internal/transcript"
)

// Run executes the pipeline for one video and returns what it produced.
func (p *implProcessor) Run(ctx context.Context, req Request) (*Result, error) {
	startTime := time.Now()

	if req.VideoURL == "" && req.TranscriptPath == "" {
		return nil, fmt.Errorf("either a video URL or a transcript file is required")
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting highlight run")
	p.logger.Info(ctx, "========================================")

	bundleDir, err := bundle.New(p.cfg.Paths.Output, req.OutputName)
	if err != nil {
		return nil, fmt.Errorf("prepare output: %w", err)
	}

	// An aborted run leaves no partial bundle behind.
	completed := false
	defer func() {
		if !completed {
			os.RemoveAll(bundleDir)
		}
	}()

	// Step 1: Acquire the transcript.
	captionPath, err := p.acquireTranscript(ctx, req, bundleDir)
	if err != nil {
		return nil, fmt.Errorf("acquire transcript: %w", err)
	}

	// Step 2: Parse it into cues.
	cues, err := transcript.ParseFile(captionPath)
	if err != nil {
		return nil, fmt.Errorf("parse transcript: %w", err)
	}
	if len(cues) == 0 {
		return nil, transcript.ErrNoTranscript
	}
	p.logger.Info(ctx, "Parsed %d cues spanning %s", len(cues),
		transcript.FormatTimestamp(transcript.Duration(cues)))

	// Step 3: Select segments.
	keywords := p.resolveKeywords(ctx, req, cues)
	cards := req.Cards
	if cards <= 0 {
		cards = p.cfg.Selector.Cards
	}
	if cards > config.MaxCards {
		p.logger.Warn(ctx, "Requested %d cards, capping at %d", cards, config.MaxCards)
		cards = config.MaxCards
	}
	segments := segment.Select(cues, keywords, cards, p.cfg.Window())
	if len(segments) == 0 {
		return nil, fmt.Errorf("no usable segments in transcript")
	}
	p.logger.Info(ctx, "Selected %d segments", len(segments))

	// Step 4: Summarize each segment.
	p.logger.Info(ctx, "Summarizing with the %s strategy", p.summarizer.Name())
	summaries := make([]string, len(segments))
	for i, seg := range segments {
		summaries[i] = p.summarizer.Summarize(ctx, seg.Text)
	}

	// Step 5: Thumbnails, best effort. Without a URL there is no video to
	// pull frames from and the page falls back to placeholders.
	var thumbs []string
	if req.VideoURL != "" {
		thumbs = p.extractor.ExtractAll(ctx, req.VideoURL, segments, bundleDir)
	} else {
		thumbs = make([]string, len(segments))
	}

	// Step 6: Render the page and the docx digest.
	videoID, _ := transcript.VideoID(req.VideoURL)
	data := page.Data{
		Title:   p.resolveTitle(req),
		VideoID: videoID,
		Cards:   buildCards(segments, summaries, thumbs),
	}

	pagePath, err := page.Render(data, bundleDir)
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}

	digestPath := filepath.Join(bundleDir, "highlights.docx")
	if err := page.WriteDigest(data.Title, data.Cards, digestPath); err != nil {
		p.logger.Warn(ctx, "Failed to write docx digest: %v", err)
		digestPath = ""
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Run completed in %s", time.Since(startTime).Round(time.Millisecond))
	p.logger.Info(ctx, "Output: %s", pagePath)
	p.logger.Info(ctx, "========================================")

	completed = true
	return &Result{
		BundleDir:  bundleDir,
		PagePath:   pagePath,
		DigestPath: digestPath,
		VideoID:    videoID,
		CardCount:  len(data.Cards),
	}, nil
}

// acquireTranscript puts a caption file into the bundle, copying a local
// file when one was given and downloading otherwise.
func (p *implProcessor) acquireTranscript(ctx context.Context, req Request, bundleDir string) (string, error) {
	if req.TranscriptPath != "" {
		dest := filepath.Join(bundleDir, "transcript"+filepath.Ext(req.TranscriptPath))
		if err := bundle.CopyFile(req.TranscriptPath, dest); err != nil {
			return "", err
		}
		p.logger.Info(ctx, "Using local transcript: %s", req.TranscriptPath)
		return dest, nil
	}
	return p.fetcher.Fetch(ctx, req.VideoURL, bundleDir)
}

// resolveKeywords picks the keyword list for segment selection. Explicit
// keywords win, then auto-detection when asked for, then the configured
// defaults. An empty result means even-spacing selection only.
func (p *implProcessor) resolveKeywords(ctx context.Context, req Request, cues []transcript.Cue) []string {
	if len(req.Keywords) > 0 {
		return req.Keywords
	}
	if req.AutoKeywords {
		detected := segment.DetectKeywords(cues)
		p.logger.Info(ctx, "Detected keywords: %v", detected)
		return detected
	}
	return p.cfg.Selector.Keywords
}

func (p *implProcessor) resolveTitle(req Request) string {
	if req.Title != "" {
		return req.Title
	}
	if req.OutputName != "" {
		return req.OutputName
	}
	return "Video Highlights"
}

func buildCards(segments []segment.Segment, summaries, thumbs []string) []page.Card {
	cards := make([]page.Card, len(segments))
	for i, seg := range segments {
		var thumbFile string
		if thumbs[i] != "" {
			thumbFile = thumbnail.FileName(i)
		}
		cards[i] = page.Card{
			Index:         i + 1,
			Timestamp:     transcript.FormatTimestamp(seg.Start),
			StartSeconds:  int(seg.Start.Seconds()),
			Summary:       summaries[i],
			Keyword:       seg.Keyword,
			ThumbnailFile: thumbFile,
		}
	}
	return cards
}
