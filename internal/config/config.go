package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// MaxCards bounds how many highlight cards a single run may produce,
// whether the count comes from the config file or a flag.
const MaxCards = 10

type Config struct {
	Tools      ToolsConfig      `yaml:"tools"`
	Whisper    WhisperConfig    `yaml:"whisper"`
	Selector   SelectorConfig   `yaml:"selector"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Deploy     DeployConfig     `yaml:"deploy"`
	Paths      PathsConfig      `yaml:"paths"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ToolsConfig struct {
	YtDlp  string `yaml:"ytdlp"`
	FFmpeg string `yaml:"ffmpeg"`
}

// WhisperConfig controls the transcription fallback used when a video has
// no captions at all. Disabled unless a model and binary are configured.
type WhisperConfig struct {
	Enabled    bool   `yaml:"enabled"`
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type SelectorConfig struct {
	Cards         int      `yaml:"cards"`
	WindowSeconds int      `yaml:"window_seconds"`
	Keywords      []string `yaml:"keywords"`
}

type SummarizerConfig struct {
	APIKeys  []string `yaml:"api_keys"`
	Model    string   `yaml:"model"`
	MaxWords int      `yaml:"max_words"`
}

type DeployConfig struct {
	Username string `yaml:"username"`
	Repo     string `yaml:"repo"`
	RepoDir  string `yaml:"repo_dir"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the configuration file at path. A missing file is not an
// error: every setting has a usable default applied by Validate.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Selector.Cards < 0 || c.Selector.Cards > MaxCards {
		return fmt.Errorf("selector.cards must be between 1 and %d", MaxCards)
	}
	if c.Whisper.Enabled {
		if c.Whisper.ModelPath == "" {
			return fmt.Errorf("whisper.model_path is required when whisper is enabled")
		}
		if c.Whisper.BinaryPath == "" {
			return fmt.Errorf("whisper.binary_path is required when whisper is enabled")
		}
	}

	if c.Tools.YtDlp == "" {
		c.Tools.YtDlp = "yt-dlp"
	}
	if c.Tools.FFmpeg == "" {
		c.Tools.FFmpeg = "ffmpeg"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.Selector.Cards == 0 {
		c.Selector.Cards = 4
	}
	if c.Selector.WindowSeconds == 0 {
		c.Selector.WindowSeconds = 45
	}
	// Windows shorter than 30s rarely hold a full thought; longer than 60s
	// makes cards unfocused.
	if c.Selector.WindowSeconds < 30 {
		c.Selector.WindowSeconds = 30
	}
	if c.Selector.WindowSeconds > 60 {
		c.Selector.WindowSeconds = 60
	}
	if c.Summarizer.Model == "" {
		c.Summarizer.Model = "gemini-2.5-flash"
	}
	if c.Summarizer.MaxWords <= 0 {
		c.Summarizer.MaxWords = 60
	}
	if c.Deploy.Repo == "" {
		c.Deploy.Repo = "video-highlights"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "highlights"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// Window returns the selector window bound as a duration.
func (c *Config) Window() time.Duration {
	return time.Duration(c.Selector.WindowSeconds) * time.Second
}
