package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tvshow/internal/area"
	"tvshow/internal/render"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
area: 大阪
hours: 6
mode: list
verbose: true
timeout: 15s
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "大阪", cfg.Area)
	assert.Equal(t, 6, cfg.Hours)
	assert.Equal(t, string(render.ModeList), cfg.Mode)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	// untouched keys keep their defaults
	assert.Equal(t, DefaultLocation, cfg.Location)
	assert.Equal(t, 10, cfg.Log.MaxSize)
	assert.NoError(t, cfg.Validate())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "hours: [1, 2"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"zero hours", func(c *Config) { c.Hours = 0 }, ErrInvalidConfig},
		{"too many hours", func(c *Config) { c.Hours = render.MaxHours + 1 }, ErrInvalidConfig},
		{"overflowing hours", func(c *Config) { c.Hours = 3000000 }, ErrInvalidConfig},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, ErrInvalidConfig},
		{"unknown mode", func(c *Config) { c.Mode = "calendar" }, render.ErrUnknownMode},
		{"unknown area", func(c *Config) { c.Area = "ロンドン" }, area.ErrUnknownArea},
		{"unknown location", func(c *Config) { c.Location = "Mars/Olympus" }, ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), err.Error())
		})
	}
}

func TestValidateHoursLimit(t *testing.T) {
	cfg := Default()
	cfg.Hours = render.MaxHours
	assert.NoError(t, cfg.Validate())
}

func TestTimeLocationEmptyIsLocal(t *testing.T) {
	cfg := Default()
	cfg.Location = ""
	loc, err := cfg.TimeLocation()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}
