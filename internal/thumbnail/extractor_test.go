package thumbnail

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/phamtuanthanh31072004/highlight-flow/internal/config"
	"github.com/phamtuanthanh31072004/highlight-flow/internal/logger"
	"github.com/phamtuanthanh31072004/highlight-flow/internal/segment"
)

// fakeExecutor simulates yt-dlp/ffmpeg by creating the output file each
// command would produce. failFFmpeg makes every ffmpeg call fail.
type fakeExecutor struct {
	failAll    bool
	failFFmpeg bool
	calls      []string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, name)
	if f.failAll {
		return "", errors.New("boom")
	}

	switch name {
	case "yt-dlp":
		for i, a := range args {
			if a == "-o" && i+1 < len(args) {
				return "", os.WriteFile(args[i+1], []byte("clip"), 0644)
			}
		}
	case "ffmpeg":
		if f.failFFmpeg {
			return "", errors.New("ffmpeg failed")
		}
		// Output path is the final argument.
		return "", os.WriteFile(args[len(args)-1], []byte("jpeg"), 0644)
	}
	return "", nil
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func testSegments() []segment.Segment {
	return []segment.Segment{
		{Start: 10 * time.Second, End: 55 * time.Second},
		{Start: 2 * time.Minute, End: 2*time.Minute + 45*time.Second},
	}
}

func TestExtractAll(t *testing.T) {
	dir := t.TempDir()
	exec := &fakeExecutor{}
	e := NewExtractor(testConfig(t), exec, logger.New("error"))

	paths := e.ExtractAll(context.Background(), "https://youtu.be/abc", testSegments(), dir)

	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}
	for i, p := range paths {
		if p == "" {
			t.Errorf("thumbnail %d missing", i)
			continue
		}
		if _, err := os.Stat(p); err != nil {
			t.Errorf("thumbnail %d not written: %v", i, err)
		}
	}
}

func TestExtractAllFailureIsNonFatal(t *testing.T) {
	dir := t.TempDir()
	exec := &fakeExecutor{failAll: true}
	e := NewExtractor(testConfig(t), exec, logger.New("error"))

	paths := e.ExtractAll(context.Background(), "https://youtu.be/abc", testSegments(), dir)

	if len(paths) != 2 {
		t.Fatalf("got %d paths, want 2", len(paths))
	}
	for i, p := range paths {
		if p != "" {
			t.Errorf("thumbnail %d = %q, want empty on failure", i, p)
		}
	}
}

func TestExtractAllFFmpegFailure(t *testing.T) {
	dir := t.TempDir()
	exec := &fakeExecutor{failFFmpeg: true}
	e := NewExtractor(testConfig(t), exec, logger.New("error"))

	paths := e.ExtractAll(context.Background(), "https://youtu.be/abc", testSegments()[:1], dir)

	if paths[0] != "" {
		t.Errorf("expected empty path when ffmpeg fails, got %q", paths[0])
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(0); got != "thumbnail_001.jpg" {
		t.Errorf("FileName(0) = %q", got)
	}
	if got := FileName(11); got != "thumbnail_012.jpg" {
		t.Errorf("FileName(11) = %q", got)
	}
}
