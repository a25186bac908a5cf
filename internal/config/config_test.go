package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8787, cfg.Server.Port)
	assert.Equal(t, 15, cfg.Auth.AccessTokenMins)
	assert.Equal(t, 30, cfg.Auth.RefreshTokenDays)
	assert.Equal(t, "Your Brand", cfg.Brand.DefaultName)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shoutbase.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
port = 9000

[brand]
default_name = "Northwind"
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "Northwind", cfg.Brand.DefaultName)
	// Untouched keys keep their defaults.
	assert.Equal(t, 15, cfg.Auth.AccessTokenMins)
}

func TestLoadConfig_MissingExplicitFileErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestInitConfig_RefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shoutbase.toml")
	require.NoError(t, InitConfig(path))
	assert.Error(t, InitConfig(path))
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Server.Port = 8787
		cfg.Database.URL = "postgres://localhost/shoutbase"
		cfg.Auth.JWTSecret = "a-real-secret"
		return cfg
	}

	assert.NoError(t, Validate(valid()))

	cfg := valid()
	cfg.Server.Port = 0
	assert.Error(t, Validate(cfg))

	cfg = valid()
	cfg.Auth.JWTSecret = ""
	assert.Error(t, Validate(cfg))

	cfg = valid()
	cfg.Auth.JWTSecret = "change-me"
	assert.Error(t, Validate(cfg))

	cfg = valid()
	cfg.Database.URL = ""
	assert.Error(t, Validate(cfg))
}
