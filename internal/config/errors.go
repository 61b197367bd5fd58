package config

import "errors"

// Sentinel errors for configuration loading and validation.

// ErrMissingVars indicates required configuration values were not provided.
var ErrMissingVars = errors.New("missing required environment variables")

// ErrConfigRead indicates an error occurred while reading the config file.
var ErrConfigRead = errors.New("failed to read configuration file")

// ErrConfigParse indicates an error occurred while parsing the config file.
var ErrConfigParse = errors.New("failed to parse configuration file")

// ErrInvalidTimeout indicates the request timeout is zero or negative.
var ErrInvalidTimeout = errors.New("request timeout must be positive")
