package config

import (
	"errors"

	"github.com/dshills/pagedit/internal/config/loader"
)

// Errors returned by configuration operations.
var (
	// ErrInvalidValue indicates a setting holds a value outside its range.
	ErrInvalidValue = errors.New("invalid config value")

	// ErrNoConfigPath indicates Watch was called without a file path.
	ErrNoConfigPath = errors.New("no config file path")
)

// ParseError represents an error while parsing a configuration file.
type ParseError = loader.ParseError
