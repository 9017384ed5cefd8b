package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/verse"
)

// Config holds CLI settings. Values come from defaultConfig, then the YAML
// file, then the environment, then flags.
type Config struct {
	Provider    string        `yaml:"provider"`
	Model       string        `yaml:"model"`
	Lexicon     string        `yaml:"lexicon"`
	Format      string        `yaml:"format"`
	Jobs        int           `yaml:"jobs"`
	MaxKeywords int           `yaml:"max_keywords"`
	Retries     int           `yaml:"retries"`
	Timeout     time.Duration `yaml:"timeout"`

	GeminiAPIKey string `yaml:"-"`
	OpenAIAPIKey string `yaml:"-"`
}

const (
	providerGemini = "gemini"
	providerOpenAI = "openai"
	providerStatic = "static"

	formatText = "text"
	formatJSON = "json"
)

func defaultConfig() Config {
	return Config{
		Provider:    providerGemini,
		Format:      formatText,
		Jobs:        4,
		MaxKeywords: verse.DefaultMaxKeywords,
		Retries:     3,
		Timeout:     2 * time.Minute,
	}
}

func (c Config) Validate() error {
	switch c.Provider {
	case providerGemini, providerOpenAI, providerStatic:
	default:
		return fmt.Errorf("provider must be one of gemini, openai, static (got %q)", c.Provider)
	}
	switch c.Format {
	case formatText, formatJSON:
	default:
		return fmt.Errorf("format must be text or json (got %q)", c.Format)
	}
	if c.Jobs <= 0 {
		return errors.New("jobs must be > 0")
	}
	if c.MaxKeywords <= 0 || c.MaxKeywords > verse.DefaultMaxKeywords {
		return fmt.Errorf("max_keywords must be between 1 and %d", verse.DefaultMaxKeywords)
	}
	if c.Retries <= 0 {
		return errors.New("retries must be > 0")
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be > 0")
	}
	return nil
}

// configError marks failures in loading or validating configuration so
// main can exit with a distinct status.
type configError struct {
	err error
}

func (e *configError) Error() string { return "config: " + e.err.Error() }

func (e *configError) Unwrap() error { return e.err }

// loadConfig reads the optional YAML file at path over the defaults and
// fills API keys from the environment.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("error reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("error parsing config YAML: %w", err)
		}
	}
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	return cfg, nil
}

// loadDotEnv loads the first-found values from paths without overriding
// variables that are already set. Missing files are skipped.
func loadDotEnv(paths ...string) ([]string, error) {
	var loaded []string
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, fmt.Errorf("failed to load %s: %w", p, err)
		}
		loaded = append(loaded, p)
	}
	return loaded, nil
}
