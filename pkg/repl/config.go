package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vic/golambda/pkg/lambda"
)

const (
	configFile  = ".lambda.yaml"
	historyFile = ".lambda_history"
)

// Config holds the interpreter and REPL settings read from YAML.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	Color       bool   `yaml:"color"`

	// Reduction safety valves; zero values keep reduction unbounded.
	MaxSteps     int  `yaml:"max_steps"`
	DetectCycles bool `yaml:"detect_cycles"`
	Strict       bool `yaml:"strict"`
	Trace        int  `yaml:"trace"`
}

func DefaultConfig() *Config {
	return &Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
		Color:       true,
	}
}

// DefaultConfigPath returns $HOME/.lambda.yaml, or "" without a home directory.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configFile)
}

// LoadConfig reads path on top of DefaultConfig. Unknown keys are errors.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps must not be negative, got %d", c.MaxSteps)
	}
	if c.Trace < 0 {
		return fmt.Errorf("trace must not be negative, got %d", c.Trace)
	}
	return nil
}

// HistoryPath resolves HistoryFile against the home directory.
// It returns "" when history is disabled.
func (c *Config) HistoryPath() string {
	if c.HistoryFile == "" || filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, c.HistoryFile)
}

func (c *Config) Options() lambda.Options {
	return lambda.Options{
		Strict:        c.Strict,
		MaxSteps:      c.MaxSteps,
		DetectCycles:  c.DetectCycles,
		TraceCapacity: c.Trace,
	}
}
