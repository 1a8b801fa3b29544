package transcript

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/phamtuanthanh31072004/highlight-flow/internal/config"
	"github.com/phamtuanthanh31072004/highlight-flow/internal/logger"
	"github.com/phamtuanthanh31072004/highlight-flow/pkg/executor"
)

// ErrNoTranscript is returned when no captions exist for a video and no
// fallback produced a transcript. It is the only fatal pipeline error.
var ErrNoTranscript = errors.New("no transcript content available")

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#/]+)`),
	regexp.MustCompile(`youtube\.com/v/([^&\n?#/]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*?v=([^&\n?#/]+)`),
}

// VideoID extracts the video ID from a YouTube URL. Returns false for URLs
// it does not recognize.
func VideoID(url string) (string, bool) {
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// Fetcher downloads captions for a YouTube video via yt-dlp, falling back
// to auto-generated captions and, when configured, whisper transcription.
type Fetcher struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// NewFetcher creates a Fetcher instance.
func NewFetcher(cfg *config.Config, exec executor.Executor, log logger.Logger) *Fetcher {
	return &Fetcher{cfg: cfg, executor: exec, logger: log}
}

// Fetch downloads the transcript for videoURL into destDir and returns the
// path of the caption file. Manual captions are preferred over
// auto-generated ones; whisper transcription is the last resort.
func (f *Fetcher) Fetch(ctx context.Context, videoURL, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("create transcript dir: %w", err)
	}

	f.logger.Info(ctx, "Downloading transcript: %s", videoURL)

	if path, err := f.download(ctx, videoURL, destDir, "--write-subs"); err == nil {
		return path, nil
	} else {
		f.logger.Warn(ctx, "No manual captions: %v", err)
	}

	f.logger.Info(ctx, "Trying auto-generated captions...")
	if path, err := f.download(ctx, videoURL, destDir, "--write-auto-subs"); err == nil {
		return path, nil
	} else {
		f.logger.Warn(ctx, "No auto-generated captions: %v", err)
	}

	if f.cfg.Whisper.Enabled {
		f.logger.Info(ctx, "Falling back to whisper transcription...")
		path, err := f.transcribe(ctx, videoURL, destDir)
		if err != nil {
			f.logger.Error(ctx, "Whisper transcription failed: %v", err)
			return "", ErrNoTranscript
		}
		return path, nil
	}

	return "", ErrNoTranscript
}

func (f *Fetcher) download(ctx context.Context, videoURL, destDir, subsFlag string) (string, error) {
	args := []string{
		"--skip-download",
		subsFlag,
		"--sub-lang", "en",
		"--sub-format", "vtt",
		"-o", filepath.Join(destDir, "transcript.%(ext)s"),
		videoURL,
	}

	if _, err := f.executor.Execute(ctx, f.cfg.Tools.YtDlp, args...); err != nil {
		return "", fmt.Errorf("yt-dlp captions: %w", err)
	}

	path, err := findCaptionFile(destDir)
	if err != nil {
		return "", err
	}
	f.logger.Info(ctx, "Transcript downloaded: %s", path)
	return path, nil
}

// findCaptionFile locates the caption file yt-dlp wrote. yt-dlp inserts the
// language code before the extension, so look for *.en.vtt first.
func findCaptionFile(dir string) (string, error) {
	for _, pattern := range []string{"*.en.vtt", "*.vtt", "*.en.srt", "*.srt"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return "", err
		}
		if len(matches) > 0 {
			return matches[0], nil
		}
	}
	return "", errors.New("no caption file produced")
}

// IsCaptionFile reports whether path looks like a transcript file.
func IsCaptionFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".vtt" || ext == ".srt"
}
