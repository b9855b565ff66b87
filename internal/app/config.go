package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/fscheck/internal/i18n"
)

// Commands the App can run.
const (
	CommandValidate = "validate"
	CommandTokens   = "tokens"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command   string
	InputPath string // empty or "-" reads stdin

	Language  string
	LogFormat string
	LogLevel  string

	DiagnosticsFormat string
	Color             bool
	Width             int
	SemanticChecks    bool
}

// DefaultConfig returns the configuration used when neither flags nor a
// settings file say otherwise.
func DefaultConfig() Config {
	return Config{
		Command:           CommandValidate,
		Language:          "pt-BR",
		LogFormat:         "text",
		LogLevel:          "warn",
		DiagnosticsFormat: "text",
		Color:             true,
		Width:             78,
		SemanticChecks:    true,
	}
}

// NewConfig validates cfg and returns a normalized copy.
func NewConfig(cfg Config) (*Config, error) {
	cfg.Command = strings.ToLower(cfg.Command)
	switch cfg.Command {
	case "":
		cfg.Command = CommandValidate
	case CommandValidate, CommandTokens:
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}

	if _, err := i18n.Resolve(cfg.Language); err != nil {
		return nil, err
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	cfg.DiagnosticsFormat = strings.ToLower(cfg.DiagnosticsFormat)
	switch cfg.DiagnosticsFormat {
	case "text", "json", "yaml", "none":
		// valid
	default:
		return nil, errors.New("invalid diagnostics format: must be 'text', 'json', 'yaml', or 'none'")
	}

	if cfg.Width < 0 {
		return nil, errors.New("invalid diagnostics width: must not be negative")
	}

	return &cfg, nil
}
