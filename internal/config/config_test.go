package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JIRA_BASE_URL", "https://example.atlassian.net")
	t.Setenv("JIRA_EMAIL", "user@example.com")
	t.Setenv("JIRA_API_TOKEN", "secret-token")
}

func TestLoad(t *testing.T) {
	t.Run("FromEnvironment", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := Load("")
		require.NoError(t, err, "Load should succeed with all required variables set")
		assert.Equal(t, "https://example.atlassian.net", cfg.BaseURL)
		assert.Equal(t, "user@example.com", cfg.Email)
		assert.Equal(t, "secret-token", cfg.APIToken)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout, "default timeout should apply")
		assert.Equal(t, "info", cfg.LogLevel, "default log level should apply")
	})

	t.Run("EnvironmentOverridesDefaults", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("JIRA_REQUEST_TIMEOUT", "5s")
		t.Setenv("JIRA_LOG_LEVEL", "debug")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("MissingAllRequired", func(t *testing.T) {
		t.Setenv("JIRA_BASE_URL", "")
		t.Setenv("JIRA_EMAIL", "")
		t.Setenv("JIRA_API_TOKEN", "")

		_, err := Load("")
		require.Error(t, err, "Load should fail without required variables")
		assert.ErrorIs(t, err, ErrMissingVars)
		assert.Contains(t, err.Error(), "JIRA_API_TOKEN")
		assert.Contains(t, err.Error(), "JIRA_BASE_URL")
		assert.Contains(t, err.Error(), "JIRA_EMAIL")
	})

	t.Run("MissingOneRequired", func(t *testing.T) {
		t.Setenv("JIRA_BASE_URL", "https://example.atlassian.net")
		t.Setenv("JIRA_EMAIL", "user@example.com")
		t.Setenv("JIRA_API_TOKEN", "")

		_, err := Load("")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingVars)
		assert.Contains(t, err.Error(), "JIRA_API_TOKEN")
		assert.NotContains(t, err.Error(), "JIRA_BASE_URL")
	})

	t.Run("ConfigFile", func(t *testing.T) {
		t.Setenv("JIRA_BASE_URL", "")
		t.Setenv("JIRA_EMAIL", "")
		t.Setenv("JIRA_API_TOKEN", "")

		dir := t.TempDir()
		path := filepath.Join(dir, "jira-mcp.yaml")
		content := "base_url: https://file.atlassian.net\nemail: file@example.com\napi_token: file-token\nrequest_timeout: 10s\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		cfg, err := Load(path)
		require.NoError(t, err, "Load should read the config file")
		assert.Equal(t, "https://file.atlassian.net", cfg.BaseURL)
		assert.Equal(t, "file@example.com", cfg.Email)
		assert.Equal(t, "file-token", cfg.APIToken)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	})

	t.Run("EnvironmentOverridesFile", func(t *testing.T) {
		t.Setenv("JIRA_BASE_URL", "https://env.atlassian.net")
		t.Setenv("JIRA_EMAIL", "")
		t.Setenv("JIRA_API_TOKEN", "")

		dir := t.TempDir()
		path := filepath.Join(dir, "jira-mcp.yaml")
		content := "base_url: https://file.atlassian.net\nemail: file@example.com\napi_token: file-token\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "https://env.atlassian.net", cfg.BaseURL, "environment should take precedence over the file")
		assert.Equal(t, "file@example.com", cfg.Email)
	})

	t.Run("MissingConfigFile", func(t *testing.T) {
		setRequiredEnv(t)

		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err, "an explicitly named config file must exist")
		assert.ErrorIs(t, err, ErrConfigRead)
	})

	t.Run("InvalidTimeout", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("JIRA_REQUEST_TIMEOUT", "-5s")

		_, err := Load("")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidTimeout)
	})
}
