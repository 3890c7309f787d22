package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"model_tier": "advanced",
		"job_text": "Développeur Go senior",
		"port": 9090,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "advanced", cfg.ModelTier)
	assert.Equal(t, "Développeur Go senior", cfg.JobText)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `model_tier: lite
max_body_bytes: 2048
validate_output: true
job_text: |
  Data engineer
  Paris
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "lite", cfg.ModelTier)
	assert.Equal(t, int64(2048), cfg.MaxBodyBytes)
	assert.True(t, cfg.ValidateOutput)
	assert.Equal(t, "Data engineer\nParis\n", cfg.JobText)
}

func TestLoadConfig_UnknownExtension(t *testing.T) {
	path := writeFile(t, "feedbackrc", `{"port": 7000}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{ invalid json }`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeFile(t, "config.yml", "port: [not, a, number")

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{ModelTier: "standard", Port: 8080, MaxBodyBytes: 1024}, ""},
		{"empty", Config{}, ""},
		{"mutually exclusive job", Config{Job: "job.txt", JobText: "Go developer"}, "mutually exclusive"},
		{"unknown tier", Config{ModelTier: "ultra"}, "model_tier"},
		{"port out of range", Config{Port: 70000}, "port"},
		{"negative body limit", Config{MaxBodyBytes: -1}, "max_body_bytes"},
		{"negative timeout", Config{TimeoutSeconds: -5}, "timeout_seconds"},
		{"missing job file", Config{Job: "/nonexistent/job.txt"}, "job file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		APIKey:    "default-key",
		ModelTier: "lite",
		JobText:   "Default job",
		Port:      9000,
	}

	partial := Config{
		ModelTier: "advanced",
	}

	merged := partial.MergeWithDefaults(defaults)

	assert.Equal(t, "advanced", merged.ModelTier)
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, "Default job", merged.JobText)
	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, int64(DefaultMaxBodyBytes), merged.MaxBodyBytes)
	assert.Equal(t, DefaultTimeoutSeconds, merged.TimeoutSeconds)
}

func TestMergeWithDefaults_JobSourcesStayExclusive(t *testing.T) {
	cfg := Config{Job: "job.txt"}

	merged := cfg.MergeWithDefaults(Config{JobText: "other"})

	assert.Equal(t, "job.txt", merged.Job)
	assert.Empty(t, merged.JobText)
}

func TestJobContext(t *testing.T) {
	path := writeFile(t, "job.txt", "Backend engineer")

	got, err := (&Config{Job: path}).JobContext()
	require.NoError(t, err)
	assert.Equal(t, "Backend engineer", got)

	got, err = (&Config{JobText: "inline"}).JobContext()
	require.NoError(t, err)
	assert.Equal(t, "inline", got)

	_, err = (&Config{Job: "/nonexistent/job.txt"}).JobContext()
	assert.Error(t, err)
}
