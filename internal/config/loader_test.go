package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		assert.False(t, Exists(filepath.Join(dir, "config.toml")))
	})

	t.Run("missing parent directory", func(t *testing.T) {
		assert.False(t, Exists(filepath.Join(dir, "nope", "config.toml")))
	})

	t.Run("present file", func(t *testing.T) {
		path := filepath.Join(dir, "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("client_id=\"abc\"\n"), 0o600))
		assert.True(t, Exists(path))
	})

	t.Run("directory is not a config file", func(t *testing.T) {
		assert.False(t, Exists(dir))
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing file maps to ErrNotConfigured", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "config.toml"))
		require.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("parses quoted key=value lines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := "client_id=\"abc\"\nclient_secret=\"secret\"\nlogin=\"jdoe\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "abc", cfg.ClientID)
		assert.Equal(t, "secret", cfg.ClientSecret)
		assert.Equal(t, "jdoe", cfg.Login)
		assert.Empty(t, cfg.Cursus)
	})

	t.Run("optional cursus key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := "client_id=\"abc\"\nclient_secret=\"secret\"\nlogin=\"jdoe\"\ncursus=\"42cursus\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "42cursus", cfg.Cursus)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("client_id=\"unterminated\n"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotConfigured)
	})
}

func TestResolvePath(t *testing.T) {
	t.Run("override wins", func(t *testing.T) {
		path, err := ResolvePath("/tmp/custom.toml")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/custom.toml", path)
	})

	t.Run("default under user config dir", func(t *testing.T) {
		path, err := ResolvePath("")
		require.NoError(t, err)
		assert.Equal(t, fileName, filepath.Base(path))
		assert.Equal(t, appDirName, filepath.Base(filepath.Dir(path)))
	})
}
