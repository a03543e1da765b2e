// Package config assembles the helper's policy configuration.
//
// Sources, lowest precedence first: built-in defaults, an optional YAML
// file, the positional arguments OpenVPN passes on the script command line,
// and explicit command-line flags.
package config

import (
	"strings"

	"github.com/hnrobert/lumauth/internal/auth"
	"github.com/hnrobert/lumauth/internal/authority"
	"github.com/hnrobert/lumauth/internal/logger"
)

const (
	DefaultGroup        = "VPN Users"
	DefaultLogDirectory = "."
	EnvConfigPath       = "LUMAUTH_CONFIG"
)

type Config struct {
	// RequiredGroup is the local group an account must belong to. The empty
	// string disables the group check.
	RequiredGroup  string
	LoggingEnabled bool
	LogDirectory   string
	// CreateLogDirectory is set when LogDirectory was configured explicitly;
	// only then is the directory created on startup.
	CreateLogDirectory bool

	Backend    authority.Kind
	HostRoot   string
	PAMService string
	SuFallback bool

	RedactPasswords bool
	LogLevel        logger.Level
}

func Default() Config {
	return Config{
		RequiredGroup: DefaultGroup,
		LogDirectory:  DefaultLogDirectory,
		Backend:       authority.DefaultKind(),
		SuFallback:    true,
		LogLevel:      logger.LevelWarn,
	}
}

// GroupCheckEnabled reports whether a group requirement is configured.
func (c Config) GroupCheckEnabled() bool {
	return auth.GroupCheckEnabled(c.RequiredGroup)
}

// LoggingFlag interprets the logging argument: anything but "false"
// (case-insensitive) enables logging.
func LoggingFlag(s string) bool {
	return !strings.EqualFold(s, "false")
}

// WithArgs applies the positional arguments:
//
//	[0] required group ("" disables the check)
//	[1] logging flag
//	[2] log directory
//
// Arguments that are absent leave the current value untouched.
func (c Config) WithArgs(args []string) Config {
	if len(args) > 0 {
		c.RequiredGroup = args[0]
	}
	if len(args) > 1 {
		c.LoggingEnabled = LoggingFlag(args[1])
	}
	if len(args) > 2 {
		c.LogDirectory = args[2]
		c.CreateLogDirectory = true
	}
	return c
}
