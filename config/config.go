// Package config loads the settings of a logging core from a JSON5 file and
// the environment.
package config

import (
	"fmt"
	"os"

	"github.com/titanous/json5"

	"github.com/rediwo/redi-log/logger"
)

// EnvPrefix scopes every environment override
const EnvPrefix = "REDI_LOG"

// Config holds the user-facing settings of a logging core
type Config struct {
	ConsoleLevel string `json:"consoleLevel"`
	FileLevel    string `json:"fileLevel"`
	Mode         string `json:"mode"`
	ExportPath   string `json:"exportPath"`
	Color        bool   `json:"color"`
}

// Default returns the permissive defaults: everything logged, debug mode
func Default() Config {
	return Config{
		ConsoleLevel: logger.Trace.String(),
		FileLevel:    logger.Trace.String(),
		Mode:         logger.ModeDebug.String(),
	}
}

// Load reads a JSON5 config file on top of the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json5.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields with any REDI_LOG_* variables that are set
func (c *Config) ApplyEnv(l Loader) {
	c.ConsoleLevel = l.String("CONSOLE_LEVEL", c.ConsoleLevel)
	c.FileLevel = l.String("FILE_LEVEL", c.FileLevel)
	c.Mode = l.String("MODE", c.Mode)
	c.ExportPath = l.String("EXPORT_PATH", c.ExportPath)
	c.Color = l.Bool("COLOR", c.Color)
}

// Options validates the config and converts it to logger options
func (c Config) Options() (logger.Options, error) {
	var opts logger.Options
	var err error

	if opts.ConsoleLevel, err = logger.ParseSeverity(c.ConsoleLevel); err != nil {
		return opts, fmt.Errorf("consoleLevel: %w", err)
	}
	if opts.FileLevel, err = logger.ParseSeverity(c.FileLevel); err != nil {
		return opts, fmt.Errorf("fileLevel: %w", err)
	}
	if opts.Mode, err = logger.ParseMode(c.Mode); err != nil {
		return opts, fmt.Errorf("mode: %w", err)
	}
	opts.Color = c.Color
	return opts, nil
}
