// Package config provides the on-disk configuration store for the intra CLI.
//
// The configuration lives at <user config dir>/intra/config.toml and holds the
// OAuth application credentials plus the intra login to look up. It is created
// once by an interactive setup run and read on every subsequent invocation.
package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured indicates the configuration file does not exist yet.
	ErrNotConfigured = errors.New("not configured")
	// ErrInvalid indicates the configuration file exists but fails validation.
	ErrInvalid = errors.New("invalid configuration")
)

// maxCredentialLen caps client_id and client_secret. The intra API issues
// 64-byte hex credentials; anything beyond this is a corrupted file.
const maxCredentialLen = 256

// Config is the persisted configuration shape.
type Config struct {
	// ClientID is the OAuth application uid from profile.intra.42.fr
	ClientID string `toml:"client_id" yaml:"client_id"`
	// ClientSecret is the OAuth application secret
	ClientSecret string `toml:"client_secret" yaml:"client_secret"`
	// Login is the intra login whose profile is queried
	Login string `toml:"login" yaml:"login"`
	// Cursus optionally names the cursus used for grade/blackhole output.
	// When empty, the most recent enrollment is used.
	Cursus string `toml:"cursus,omitempty" yaml:"cursus,omitempty"`
}

// Validate checks the credential invariants: client_id and client_secret must
// be non-empty and at most 256 bytes. A violating configuration is unusable
// and the caller must fail fast rather than attempt authentication.
func (c *Config) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("%w: client_id is empty", ErrInvalid)
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("%w: client_secret is empty", ErrInvalid)
	}
	if len(c.ClientID) > maxCredentialLen {
		return fmt.Errorf("%w: client_id exceeds %d bytes", ErrInvalid, maxCredentialLen)
	}
	if len(c.ClientSecret) > maxCredentialLen {
		return fmt.Errorf("%w: client_secret exceeds %d bytes", ErrInvalid, maxCredentialLen)
	}
	return nil
}

// Redacted returns a copy with the client secret masked, for display output.
func (c *Config) Redacted() *Config {
	out := *c
	if out.ClientSecret != "" {
		out.ClientSecret = "********"
	}
	return &out
}
