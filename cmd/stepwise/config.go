package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fwojciec/stepwise"
	"github.com/fwojciec/stepwise/yaml"
	"github.com/spf13/cobra"
)

// environment carries the environment variables stepwise reads. Only main
// reads the process environment.
type environment struct {
	BaseURL string
	LLM     string
}

// resolveConfig layers flags over environment over config file over
// defaults. Only flags set on the command line take part.
func resolveConfig(cmd *cobra.Command, opts *options, env environment) (stepwise.Config, error) {
	path := opts.configPath
	if path == "" {
		p, err := yaml.DefaultPath()
		if err != nil {
			return stepwise.Config{}, err
		}
		path = p
	} else if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return stepwise.Config{}, fmt.Errorf("config file %s does not exist", path)
	}

	file, err := yaml.Load(path)
	if err != nil {
		return stepwise.Config{}, err
	}

	cfg := stepwise.DefaultConfig().
		Merge(file).
		Merge(stepwise.Config{BaseURL: env.BaseURL, LLM: env.LLM}).
		Merge(flagConfig(cmd, opts))

	if err := cfg.Request().Validate(); err != nil {
		return stepwise.Config{}, err
	}
	return cfg, nil
}

// flagConfig returns the settings given explicitly on the command line.
func flagConfig(cmd *cobra.Command, opts *options) stepwise.Config {
	changed := cmd.Flags().Changed
	cfg := stepwise.Config{
		BaseURL:            opts.baseURL,
		LLM:                opts.llm,
		IdleTimeout:        opts.idleTimeout,
		DataPath:           opts.dataPath,
		DropPartialOnError: opts.dropPartial,
	}
	if changed("temperature") {
		cfg.Temperature = &opts.temperature
	}
	if changed("timeout-seconds") {
		cfg.TimeoutSeconds = &opts.timeoutSeconds
	}
	if changed("tool-retriever") {
		cfg.UseToolRetriever = &opts.toolRetriever
	}
	if changed("commercial-mode") {
		cfg.CommercialMode = &opts.commercialMode
	}
	return cfg
}
