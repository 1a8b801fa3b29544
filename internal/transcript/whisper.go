package transcript

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// transcribe produces a transcript for a video that has no captions:
// download the audio with yt-dlp, convert it to 16kHz mono WAV (the format
// whisper.cpp expects), then run whisper to get an SRT file.
func (f *Fetcher) transcribe(ctx context.Context, videoURL, destDir string) (string, error) {
	tempDir, err := os.MkdirTemp("", "whisper-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	audioPath := filepath.Join(tempDir, "audio.m4a")
	wavPath := filepath.Join(tempDir, "audio.wav")

	f.logger.Info(ctx, "Downloading audio: %s", videoURL)
	downloadArgs := []string{
		"-x",
		"--audio-format", "m4a",
		"--audio-quality", "0",
		"--no-playlist",
		"-o", audioPath,
		videoURL,
	}
	if _, err := f.executor.Execute(ctx, f.cfg.Tools.YtDlp, downloadArgs...); err != nil {
		return "", fmt.Errorf("yt-dlp audio: %w", err)
	}

	f.logger.Info(ctx, "Converting audio for transcription...")
	convertArgs := []string{
		"-i", audioPath,
		"-vn",
		"-ar", "16000", // 16kHz sample rate
		"-ac", "1", // Mono
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}
	if _, err := f.executor.Execute(ctx, f.cfg.Tools.FFmpeg, convertArgs...); err != nil {
		return "", fmt.Errorf("ffmpeg convert audio: %w", err)
	}

	outputPrefix := filepath.Join(destDir, "transcript")
	f.logger.Info(ctx, "Transcribing with %d threads...", f.cfg.Whisper.Threads)

	whisperArgs := []string{
		"-m", f.cfg.Whisper.ModelPath,
		"-f", wavPath,
		"-osrt",
		"-l", f.cfg.Whisper.Language,
		"-t", strconv.Itoa(f.cfg.Whisper.Threads),
		"--output-file", outputPrefix,
	}
	if _, err := f.executor.Execute(ctx, f.cfg.Whisper.BinaryPath, whisperArgs...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	srtPath := outputPrefix + ".srt"
	if _, err := os.Stat(srtPath); err != nil {
		return "", fmt.Errorf("whisper output missing: %w", err)
	}

	f.logger.Info(ctx, "Transcription completed: %s", srtPath)
	return srtPath, nil
}
