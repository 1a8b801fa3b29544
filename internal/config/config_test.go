package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config uses defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "too many cards",
			config: Config{
				Selector: SelectorConfig{Cards: 11},
			},
			wantErr: true,
		},
		{
			name: "negative cards",
			config: Config{
				Selector: SelectorConfig{Cards: -1},
			},
			wantErr: true,
		},
		{
			name: "whisper enabled without model",
			config: Config{
				Whisper: WhisperConfig{
					Enabled:    true,
					BinaryPath: "./whisper",
				},
			},
			wantErr: true,
		},
		{
			name: "whisper enabled without binary",
			config: Config{
				Whisper: WhisperConfig{
					Enabled:   true,
					ModelPath: "models/base.bin",
				},
			},
			wantErr: true,
		},
		{
			name: "whisper fully configured",
			config: Config{
				Whisper: WhisperConfig{
					Enabled:    true,
					ModelPath:  "models/base.bin",
					BinaryPath: "./whisper",
				},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Selector.Cards != 4 {
		t.Errorf("Selector.Cards = %d, want 4", cfg.Selector.Cards)
	}
	if cfg.Selector.WindowSeconds != 45 {
		t.Errorf("Selector.WindowSeconds = %d, want 45", cfg.Selector.WindowSeconds)
	}
	if cfg.Tools.YtDlp != "yt-dlp" {
		t.Errorf("Tools.YtDlp = %q, want yt-dlp", cfg.Tools.YtDlp)
	}
	if cfg.Summarizer.Model != "gemini-2.5-flash" {
		t.Errorf("Summarizer.Model = %q", cfg.Summarizer.Model)
	}
	if cfg.Summarizer.MaxWords != 60 {
		t.Errorf("Summarizer.MaxWords = %d, want 60", cfg.Summarizer.MaxWords)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Window() != 45*time.Second {
		t.Errorf("Window() = %v, want 45s", cfg.Window())
	}
}

func TestValidateClampsWindow(t *testing.T) {
	cfg := Config{Selector: SelectorConfig{WindowSeconds: 5}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Selector.WindowSeconds != 30 {
		t.Errorf("WindowSeconds = %d, want clamped to 30", cfg.Selector.WindowSeconds)
	}

	cfg = Config{Selector: SelectorConfig{WindowSeconds: 300}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Selector.WindowSeconds != 60 {
		t.Errorf("WindowSeconds = %d, want clamped to 60", cfg.Selector.WindowSeconds)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
tools:
  ytdlp: "/usr/local/bin/yt-dlp"

selector:
  cards: 6
  window_seconds: 50
  keywords:
    - introduction
    - conclusion

summarizer:
  model: "gemini-2.5-flash"
  max_words: 40

deploy:
  username: "someuser"
  repo: "my-highlights"

logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Tools.YtDlp != "/usr/local/bin/yt-dlp" {
		t.Errorf("Tools.YtDlp = %q", cfg.Tools.YtDlp)
	}
	if cfg.Tools.FFmpeg != "ffmpeg" {
		t.Errorf("Tools.FFmpeg = %q, want default ffmpeg", cfg.Tools.FFmpeg)
	}
	if cfg.Selector.Cards != 6 {
		t.Errorf("Selector.Cards = %d, want 6", cfg.Selector.Cards)
	}
	if len(cfg.Selector.Keywords) != 2 {
		t.Errorf("Selector.Keywords = %v", cfg.Selector.Keywords)
	}
	if cfg.Summarizer.MaxWords != 40 {
		t.Errorf("Summarizer.MaxWords = %d, want 40", cfg.Summarizer.MaxWords)
	}
	if cfg.Deploy.Username != "someuser" {
		t.Errorf("Deploy.Username = %q", cfg.Deploy.Username)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Selector.Cards != 4 {
		t.Errorf("Selector.Cards = %d, want default 4", cfg.Selector.Cards)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("selector: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}
