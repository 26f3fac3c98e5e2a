package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, uint32(3), c.TimeDelta)
	assert.Equal(t, int64(1), c.Seed)
	assert.Equal(t, 1, c.Chapter)
	assert.Equal(t, "", c.ContentDir)
	assert.Equal(t, "saves", c.SaveDir)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "console", c.LogFormat)
	require.NoError(t, c.Validate())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "express.ini")
	require.NoError(t, os.WriteFile(path, []byte("[engine]\ntime_delta = 10\nchapter = 3\n\n[log]\nlevel = debug\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(10), c.TimeDelta)
	assert.Equal(t, 3, c.Chapter)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, int64(1), c.Seed, "unset keys keep their defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "express.ini")
	require.NoError(t, os.WriteFile(path, []byte("[engine]\nseed = 5\n"), 0o644))
	t.Setenv("EXPRESS_SEED", "99")
	t.Setenv("EXPRESS_LOG_FORMAT", "json")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), c.Seed)
	assert.Equal(t, "json", c.LogFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	assert.ErrorContains(t, err, "reading config")
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("EXPRESS_TIME_DELTA", "fast")
	_, err := Load("")
	assert.ErrorContains(t, err, "parse env")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"time delta zero", func(c *Config) { c.TimeDelta = 0 }, "time_delta"},
		{"time delta too big", func(c *Config) { c.TimeDelta = 501 }, "time_delta"},
		{"chapter", func(c *Config) { c.Chapter = 6 }, "chapter"},
		{"max ticks", func(c *Config) { c.MaxTicks = -1 }, "max_ticks"},
		{"level", func(c *Config) { c.LogLevel = "loud" }, "log level"},
		{"format", func(c *Config) { c.LogFormat = "xml" }, "log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			assert.ErrorContains(t, c.Validate(), tt.want)
		})
	}
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		c := Default()
		c.LogFormat = format
		log, err := NewLogger(c)
		require.NoError(t, err)
		assert.NotNil(t, log)
	}
}
