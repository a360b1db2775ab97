// Package yaml loads stepwise configuration files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/stepwise"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk layout of a config file.
type fileConfig struct {
	BaseURL            string   `yaml:"base_url"`
	LLM                string   `yaml:"llm"`
	IdleTimeout        string   `yaml:"idle_timeout"`
	Temperature        *float64 `yaml:"temperature"`
	TimeoutSeconds     *int     `yaml:"timeout_seconds"`
	UseToolRetriever   *bool    `yaml:"use_tool_retriever"`
	CommercialMode     *bool    `yaml:"commercial_mode"`
	DataPath           string   `yaml:"data_path"`
	DropPartialOnError bool     `yaml:"drop_partial_on_error"`
}

// DefaultPath returns the config file location under the user's config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("yaml: %w", err)
	}
	return filepath.Join(dir, "stepwise", "config.yaml"), nil
}

// Load reads the config file at path. A missing file yields a zero Config so
// the caller's defaults apply.
func Load(path string) (stepwise.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return stepwise.Config{}, nil
	}
	if err != nil {
		return stepwise.Config{}, fmt.Errorf("yaml: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return stepwise.Config{}, fmt.Errorf("yaml: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a config document. Unknown keys are rejected.
func Parse(data []byte) (stepwise.Config, error) {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return stepwise.Config{}, err
	}
	return fc.toConfig()
}

func (fc fileConfig) toConfig() (stepwise.Config, error) {
	cfg := stepwise.Config{
		BaseURL:            fc.BaseURL,
		LLM:                fc.LLM,
		Temperature:        fc.Temperature,
		TimeoutSeconds:     fc.TimeoutSeconds,
		UseToolRetriever:   fc.UseToolRetriever,
		CommercialMode:     fc.CommercialMode,
		DataPath:           fc.DataPath,
		DropPartialOnError: fc.DropPartialOnError,
	}
	if fc.IdleTimeout != "" {
		d, err := time.ParseDuration(fc.IdleTimeout)
		if err != nil {
			return stepwise.Config{}, fmt.Errorf("idle_timeout: %w", err)
		}
		if d < 0 {
			return stepwise.Config{}, fmt.Errorf("idle_timeout: must not be negative, got %s", d)
		}
		cfg.IdleTimeout = d
	}
	if err := cfg.Request().Validate(); err != nil {
		return stepwise.Config{}, err
	}
	return cfg, nil
}
