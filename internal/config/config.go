package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"dualsub/internal/transcribe"
	"dualsub/internal/translate"
)

// top-level configuration
type Config struct {
	FFmpegPath  string           `toml:"ffmpeg_path"`
	FFprobePath string           `toml:"ffprobe_path"`
	Translate   TranslateConfig  `toml:"translate"`
	Transcribe  TranscribeConfig `toml:"transcribe"`
}

// settings for the translate command
type TranslateConfig struct {
	Provider    string `toml:"provider"`
	Model       string `toml:"model"`
	BaseURL     string `toml:"base_url"`
	BatchSize   int    `toml:"batch_size"`
	Concurrency int    `toml:"concurrency"`
}

// settings for the transcribe command
type TranscribeConfig struct {
	Binary string `toml:"binary"`
	Model  string `toml:"model"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Translate: TranslateConfig{
			Provider:    string(translate.ProviderOpenAI),
			BatchSize:   translate.DefaultBatchSize,
			Concurrency: translate.DefaultConcurrency,
		},
		Transcribe: TranscribeConfig{
			Binary: transcribe.DefaultBinary,
		},
	}
}

// DefaultPath returns the expected config file location
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(configDir, "dualsub", "config.toml"), nil
}

// Load reads the configuration from path, or from the default location when
// path is empty. It returns the configuration, the path it looked at, and
// whether a file was found there. A missing file at the default location
// falls back to defaults; an explicitly given path must exist.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultPath()
		if err != nil {
			// no resolvable config directory, run on defaults
			return cfg, "", false, nil
		}
		path = defaultPath
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, path, false, nil
		}
		return nil, path, false, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, path, true, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, path, true, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, path, true, nil
}

// Validate checks the configuration for unusable values
func (c *Config) Validate() error {
	switch translate.Provider(c.Translate.Provider) {
	case translate.ProviderOpenAI, translate.ProviderAnthropic, translate.ProviderGemini:
	default:
		return fmt.Errorf(
			"unknown translate provider %q (want openai, anthropic, or gemini)",
			c.Translate.Provider,
		)
	}
	if c.Translate.BatchSize <= 0 {
		return errors.New("translate batch_size must be positive")
	}
	if c.Translate.Concurrency <= 0 {
		return errors.New("translate concurrency must be positive")
	}
	if c.Transcribe.Binary == "" {
		return errors.New("transcribe binary must not be empty")
	}
	return nil
}
