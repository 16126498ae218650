package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	envPresetsFile = "VCSHELL_PRESETS_FILE"
	envCompressor  = "VCSHELL_COMPRESSOR"
	envAPIToken    = "VCSHELL_API_TOKEN"
)

func (c *Config) normalize() error {
	if err := loadDotEnv(); err != nil {
		return err
	}
	if err := c.normalizePresets(); err != nil {
		return err
	}
	c.normalizeCompressor()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

// loadDotEnv reads ./.env when present. Variables already set in the
// environment win.
func loadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf(".env: %w", err)
	}
	return nil
}

func (c *Config) normalizePresets() error {
	if value, ok := os.LookupEnv(envPresetsFile); ok && strings.TrimSpace(value) != "" {
		c.Presets.File = value
	}
	c.Presets.File = strings.TrimSpace(c.Presets.File)
	if c.Presets.File == "" {
		c.Presets.File = defaultPresetsFile
	}
	expanded, err := expandPath(c.Presets.File)
	if err != nil {
		return wrapField("presets.file", err)
	}
	c.Presets.File = expanded
	return nil
}

func (c *Config) normalizeCompressor() {
	if value, ok := os.LookupEnv(envCompressor); ok && strings.TrimSpace(value) != "" {
		c.Compressor.Binary = value
	}
	c.Compressor.Binary = strings.TrimSpace(c.Compressor.Binary)
	if c.Compressor.Binary == "" {
		c.Compressor.Binary = defaultCompressorBinary
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return wrapField("paths.log_dir", err)
	}
	c.Paths.APIBind = strings.TrimSpace(c.Paths.APIBind)
	if c.Paths.APIBind == "" {
		c.Paths.APIBind = defaultAPIBind
	}
	if value, ok := os.LookupEnv(envAPIToken); ok && strings.TrimSpace(value) != "" {
		c.Paths.APIToken = value
	}
	c.Paths.APIToken = strings.TrimSpace(c.Paths.APIToken)
	return nil
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if format == "" {
		format = defaultLogFormat
	}
	c.Logging.Format = format

	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if level == "" {
		level = defaultLogLevel
	}
	c.Logging.Level = level
}
