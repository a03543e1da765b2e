package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hnrobert/lumauth/internal/authority"
	"github.com/hnrobert/lumauth/internal/logger"
)

// File is the on-disk configuration. Unset keys keep their defaults, so
// every field is a pointer.
//
//	required_group: VPN Users
//	logging: true
//	log_directory: /var/log/lumauth
//	backend: shadow
//	host_root: /
//	pam_service: openvpn
//	su_fallback: true
//	redact_passwords: false
//	log_level: warn
type File struct {
	RequiredGroup   *string `yaml:"required_group"`
	Logging         *bool   `yaml:"logging"`
	LogDirectory    *string `yaml:"log_directory"`
	Backend         *string `yaml:"backend"`
	HostRoot        *string `yaml:"host_root"`
	PAMService      *string `yaml:"pam_service"`
	SuFallback      *bool   `yaml:"su_fallback"`
	RedactPasswords *bool   `yaml:"redact_passwords"`
	LogLevel        *string `yaml:"log_level"`
}

// LoadFile reads a YAML configuration file. Unknown keys are rejected.
func LoadFile(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	return ParseFile(b)
}

func ParseFile(b []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("parse config: %w", err)
	}
	return f, nil
}

// Apply overlays the keys set in f onto c.
func (c Config) Apply(f File) (Config, error) {
	if f.RequiredGroup != nil {
		c.RequiredGroup = *f.RequiredGroup
	}
	if f.Logging != nil {
		c.LoggingEnabled = *f.Logging
	}
	if f.LogDirectory != nil {
		c.LogDirectory = *f.LogDirectory
		c.CreateLogDirectory = true
	}
	if f.Backend != nil {
		k, err := authority.ParseKind(*f.Backend)
		if err != nil {
			return c, err
		}
		c.Backend = k
	}
	if f.HostRoot != nil {
		c.HostRoot = *f.HostRoot
	}
	if f.PAMService != nil {
		c.PAMService = *f.PAMService
	}
	if f.SuFallback != nil {
		c.SuFallback = *f.SuFallback
	}
	if f.RedactPasswords != nil {
		c.RedactPasswords = *f.RedactPasswords
	}
	if f.LogLevel != nil {
		lvl, err := logger.ParseLevel(*f.LogLevel)
		if err != nil {
			return c, err
		}
		c.LogLevel = lvl
	}
	return c, nil
}
