package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the server.
type Config struct {
	// BaseURL is the Jira site root, e.g. https://yourcompany.atlassian.net
	BaseURL string `mapstructure:"base_url"`

	// Email is the Atlassian account email paired with the API token
	Email string `mapstructure:"email"`

	// APIToken is the Jira API token used for basic authentication
	APIToken string `mapstructure:"api_token"`

	// RequestTimeout bounds every HTTP call to Jira
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// LogLevel is the zap log level (debug, info, warn, error)
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from JIRA_* environment variables, layered over
// an optional YAML config file. configFile may be empty, in which case a
// jira-mcp.yaml in the working directory is used if present. The returned
// Config is constructed once at startup and never updated afterwards.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Defaults. Required values default to empty so the keys are known to
	// viper and environment overrides reach Unmarshal.
	v.SetDefault("base_url", "")
	v.SetDefault("email", "")
	v.SetDefault("api_token", "")
	v.SetDefault("request_timeout", "30s")
	v.SetDefault("log_level", "info")

	// Environment variable overrides: base_url -> JIRA_BASE_URL and so on.
	v.SetEnvPrefix("JIRA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfigRead, err)
		}
	} else {
		v.SetConfigName("jira-mcp")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			// A missing default config file is fine; environment variables
			// and defaults still apply.
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("%w: %w", ErrConfigRead, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate reports every missing required value in a single error.
func (c *Config) validate() error {
	requiredVars := map[string]string{
		"JIRA_BASE_URL":  c.BaseURL,
		"JIRA_EMAIL":     c.Email,
		"JIRA_API_TOKEN": c.APIToken,
	}

	var missingVars []string
	for env, value := range requiredVars {
		if value == "" {
			missingVars = append(missingVars, env)
		}
	}

	if len(missingVars) > 0 {
		sort.Strings(missingVars)
		return fmt.Errorf("%w: %s", ErrMissingVars, strings.Join(missingVars, ", "))
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTimeout, c.RequestTimeout)
	}

	return nil
}
