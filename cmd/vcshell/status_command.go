package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vcshell/internal/api"
	"vcshell/internal/deps"
	"vcshell/internal/preflight"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report dependency and preset document health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			statuses := preflight.CheckSystemDeps(cfg)
			checks := preflight.RunAll(cfg)
			ready := !deps.MissingRequired(statuses) && !preflight.Failed(checks)

			if jsonOutput {
				return writeJSON(cmd, api.StatusResponse{
					Ready:        ready,
					PID:          os.Getpid(),
					PresetsFile:  cfg.PresetsFile(),
					Compressor:   cfg.CompressorBinary(),
					Dependencies: api.FromDependencies(statuses),
					Checks:       api.FromPreflight(checks),
				})
			}

			out := cmd.OutOrStdout()
			colorize := isTerminal(out)
			lines := renderSectionHeader("Dependencies", colorize)
			lines = append(lines, dependencyLines(statuses, colorize)...)
			lines = append(lines, "")
			lines = append(lines, renderSectionHeader("Preflight", colorize)...)
			lines = append(lines, preflightLines(checks, colorize)...)
			lines = append(lines, "", fmt.Sprintf("Ready: %s", yesNo(ready)))
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
