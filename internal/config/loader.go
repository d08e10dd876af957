package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	appDirName = "intra"
	fileName   = "config.toml"
)

// DefaultPath resolves the platform-standard location of the configuration
// file, e.g. ~/.config/intra/config.toml on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(dir, appDirName, fileName), nil
}

// ResolvePath returns the override path when set, otherwise DefaultPath.
func ResolvePath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return DefaultPath()
}

// Exists reports whether a configuration file is present at path. A missing
// file or a missing parent directory both report false; the first run is
// expected to hit this before interactive setup creates the file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Load reads and parses the configuration file at path. A missing file maps
// to ErrNotConfigured; any other read or parse failure is returned wrapped.
// Load does not validate; callers check Validate separately.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotConfigured, path)
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
