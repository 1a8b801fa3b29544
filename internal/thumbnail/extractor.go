// Package thumbnail captures a representative frame for each selected
// segment. Extraction failures are non-fatal: a missing thumbnail means the
// card falls back to the YouTube thumbnail URL.
package thumbnail

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/phamtuanthanh31072004/highlight-flow/internal/config"
	"github.com/phamtuanthanh31072004/highlight-flow/internal/logger"
	"github.com/phamtuanthanh31072004/highlight-flow/internal/segment"
	"github.com/phamtuanthanh31072004/highlight-flow/pkg/executor"
)

// clipAnalysisWindow bounds how much of a segment is downloaded and scanned
// for a representative frame.
const clipAnalysisWindow = 10 * time.Second

type Extractor struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// NewExtractor creates an Extractor instance.
func NewExtractor(cfg *config.Config, exec executor.Executor, log logger.Logger) *Extractor {
	return &Extractor{cfg: cfg, executor: exec, logger: log}
}

// ExtractAll captures one thumbnail per segment into destDir. The returned
// slice is index-aligned with segments; an empty string marks a segment
// whose extraction failed.
func (e *Extractor) ExtractAll(ctx context.Context, videoURL string, segments []segment.Segment, destDir string) []string {
	paths := make([]string, len(segments))

	for i, seg := range segments {
		dest := filepath.Join(destDir, FileName(i))

		if err := e.extractOne(ctx, videoURL, seg, dest); err != nil {
			e.logger.Warn(ctx, "Thumbnail %d failed, card will use placeholder: %v", i+1, err)
			continue
		}

		e.logger.Info(ctx, "Thumbnail extracted: %s", dest)
		paths[i] = dest
	}

	return paths
}

// FileName returns the bundle file name for the i-th card's thumbnail.
func FileName(i int) string {
	return fmt.Sprintf("thumbnail_%03d.jpg", i+1)
}

// extractOne downloads a short clip of the segment and lets ffmpeg's
// thumbnail filter pick the most representative frame. Falls back to a
// plain first-frame grab when the filter pass fails.
func (e *Extractor) extractOne(ctx context.Context, videoURL string, seg segment.Segment, dest string) error {
	tempDir, err := os.MkdirTemp("", "thumb-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	clipPath := filepath.Join(tempDir, "clip.mp4")
	if err := e.downloadClip(ctx, videoURL, seg, clipPath); err != nil {
		return err
	}

	smartArgs := []string{
		"-i", clipPath,
		"-vf", "thumbnail=n=50,scale=800:-1", // scan 50 frames for the best one
		"-frames:v", "1",
		"-q:v", "2",
		"-y",
		dest,
	}
	if _, err := e.executor.Execute(ctx, e.cfg.Tools.FFmpeg, smartArgs...); err == nil {
		if _, statErr := os.Stat(dest); statErr == nil {
			return nil
		}
	}

	e.logger.Debug(ctx, "Smart frame selection failed, grabbing first frame")
	simpleArgs := []string{
		"-i", clipPath,
		"-frames:v", "1",
		"-q:v", "2",
		"-y",
		dest,
	}
	if _, err := e.executor.Execute(ctx, e.cfg.Tools.FFmpeg, simpleArgs...); err != nil {
		return fmt.Errorf("ffmpeg frame grab: %w", err)
	}
	if _, err := os.Stat(dest); err != nil {
		return fmt.Errorf("ffmpeg produced no output: %w", err)
	}
	return nil
}

// downloadClip fetches only the analyzed part of the segment, using ffmpeg
// as yt-dlp's external downloader to seek without fetching the whole video.
func (e *Extractor) downloadClip(ctx context.Context, videoURL string, seg segment.Segment, dest string) error {
	duration := seg.End - seg.Start
	if duration > clipAnalysisWindow {
		duration = clipAnalysisWindow
	}

	args := []string{
		"-f", "best[ext=mp4]/best",
		"--no-playlist",
		"--external-downloader", "ffmpeg",
		"--external-downloader-args", fmt.Sprintf("-ss %d -t %d", int(seg.Start.Seconds()), int(duration.Seconds())),
		"-o", dest,
		"--quiet",
		"--no-warnings",
		videoURL,
	}

	if _, err := e.executor.Execute(ctx, e.cfg.Tools.YtDlp, args...); err != nil {
		return fmt.Errorf("yt-dlp clip: %w", err)
	}
	if _, err := os.Stat(dest); err != nil {
		return fmt.Errorf("yt-dlp produced no clip: %w", err)
	}
	return nil
}
