package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"vcshell/internal/config"
	"vcshell/internal/invoke"
	"vcshell/internal/logging"
	"vcshell/internal/presets"
)

type commandContext struct {
	configFlag *string
	verbose    *bool

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag *string, verbose *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		verbose:    verbose,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

// logger returns a stderr logger in verbose mode and a no-op logger otherwise.
func (c *commandContext) logger(cmd *cobra.Command) *slog.Logger {
	if c.verbose == nil || !*c.verbose {
		return logging.NewNop()
	}
	opts := logging.Options{
		Level:       "debug",
		Format:      "console",
		OutputPaths: []string{"stderr"},
	}
	if c.config != nil {
		opts.Format = c.config.Logging.Format
		opts.Development = c.config.Logging.Development
	}
	logger, err := logging.New(opts)
	if err != nil {
		cmd.PrintErrf("init logger: %v\n", err)
		return logging.NewNop()
	}
	return logger
}

func (c *commandContext) resolver(cmd *cobra.Command) (*presets.Resolver, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return presets.NewResolver(cfg.PresetsFile(), presets.WithLogger(c.logger(cmd))), nil
}

func (c *commandContext) bridge(cmd *cobra.Command) (*invoke.Bridge, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return invoke.New(cfg.CompressorBinary(), invoke.WithLogger(c.logger(cmd))), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
