// Package config loads engine settings from the built-in defaults, an
// optional INI file and EXPRESS_* environment variables, and builds the
// logger.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/ini.v1"
)

//go:embed default.ini
var defaultINI []byte

// EnvPrefix prefixes every environment override.
const EnvPrefix = "EXPRESS_"

// Config holds engine settings.
type Config struct {
	TimeDelta  uint32 `ini:"time_delta" env:"TIME_DELTA"`
	Seed       int64  `ini:"seed" env:"SEED"`
	Chapter    int    `ini:"chapter" env:"CHAPTER"`
	ContentDir string `ini:"content_dir" env:"CONTENT_DIR"`
	SaveDir    string `ini:"save_dir" env:"SAVE_DIR"`
	MaxTicks   int    `ini:"max_ticks" env:"MAX_TICKS"`
	LogLevel   string `ini:"level" env:"LOG_LEVEL"`
	LogFormat  string `ini:"format" env:"LOG_FORMAT"`
}

// Default returns the built-in settings.
func Default() Config {
	c, err := fromINI(nil)
	if err != nil {
		// default.ini is compiled in; failing to parse it is a build defect.
		panic(fmt.Sprintf("config: built-in defaults: %v", err))
	}
	return c
}

// Load reads the defaults, then path if it is not empty, then the
// environment, and validates the result.
func Load(path string) (Config, error) {
	var extra []any
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		extra = append(extra, path)
	}
	c, err := fromINI(extra)
	if err != nil {
		return Config{}, err
	}
	if err := env.ParseWithOptions(&c, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func fromINI(extra []any) (Config, error) {
	options := ini.LoadOptions{
		SkipUnrecognizableLines: true,
	}
	f, err := ini.LoadSources(options, defaultINI, extra...)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var c Config
	for _, name := range []string{"engine", "log"} {
		if err := f.Section(name).MapTo(&c); err != nil {
			return Config{}, fmt.Errorf("reading config section [%s]: %w", name, err)
		}
	}
	return c, nil
}

// Validate rejects settings the engine cannot run with.
func (c Config) Validate() error {
	if c.TimeDelta < 1 || c.TimeDelta > 500 {
		return fmt.Errorf("time_delta %d out of range 1-500", c.TimeDelta)
	}
	if c.Chapter < 1 || c.Chapter > 5 {
		return fmt.Errorf("chapter %d out of range 1-5", c.Chapter)
	}
	if c.MaxTicks < 0 {
		return fmt.Errorf("max_ticks %d is negative", c.MaxTicks)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("log format %q is not console or json", c.LogFormat)
	}
	return nil
}

// NewLogger builds the logger described by c.
func NewLogger(c Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	var zc zap.Config
	if c.LogFormat == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}
