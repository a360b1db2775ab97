package yaml_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/stepwise"
	"github.com/fwojciec/stepwise/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("all keys", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, `
base_url: http://agent.internal:8000
llm: claude-sonnet-4-5
idle_timeout: 90s
temperature: 0.7
timeout_seconds: 600
use_tool_retriever: false
commercial_mode: true
data_path: /data/biomni
drop_partial_on_error: true
`)
		cfg, err := yaml.Load(path)
		require.NoError(t, err)

		temp, timeout, retriever, commercial := 0.7, 600, false, true
		assert.Equal(t, stepwise.Config{
			BaseURL:            "http://agent.internal:8000",
			LLM:                "claude-sonnet-4-5",
			IdleTimeout:        90 * time.Second,
			Temperature:        &temp,
			TimeoutSeconds:     &timeout,
			UseToolRetriever:   &retriever,
			CommercialMode:     &commercial,
			DataPath:           "/data/biomni",
			DropPartialOnError: true,
		}, cfg)
	})

	t.Run("missing file is tolerated", func(t *testing.T) {
		t.Parallel()
		cfg, err := yaml.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, stepwise.Config{}, cfg)
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()
		cfg, err := yaml.Load(writeConfig(t, ""))
		require.NoError(t, err)
		assert.Equal(t, stepwise.Config{}, cfg)
	})

	t.Run("partial file merges over defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := yaml.Load(writeConfig(t, "llm: azure-gpt-4o\n"))
		require.NoError(t, err)

		merged := stepwise.DefaultConfig().Merge(cfg)
		assert.Equal(t, "azure-gpt-4o", merged.LLM)
		assert.Equal(t, stepwise.DefaultIdleTimeout, merged.IdleTimeout)
	})

	t.Run("error names the file", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "llm: [unterminated\n")
		_, err := yaml.Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{name: "unknown key", doc: "model: gpt\n", wantErr: "field model not found"},
		{name: "bad duration", doc: "idle_timeout: soon\n", wantErr: "idle_timeout"},
		{name: "negative duration", doc: "idle_timeout: -5s\n", wantErr: "must not be negative"},
		{name: "wrong type", doc: "temperature: hot\n", wantErr: "cannot unmarshal"},
		{name: "temperature out of range", doc: "temperature: 2.5\n", wantErr: "temperature must be in [0, 2]"},
		{name: "non-positive timeout", doc: "timeout_seconds: 0\n", wantErr: "timeout_seconds must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := yaml.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_RangeErrorsAreValidationErrors(t *testing.T) {
	t.Parallel()

	_, err := yaml.Parse([]byte("temperature: -1\n"))
	assert.ErrorIs(t, err, stepwise.ErrValidation)
}
