package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "run [flags] -- <args...>",
		Short: "Run the compression tool with the given arguments",
		Long: "Run the configured compression tool with exactly the arguments after \"--\".\n" +
			"On success its standard output is printed unchanged. On failure the tool's\n" +
			"standard error becomes the error message.",
		RunE: func(cmd *cobra.Command, args []string) error {
			bridge, err := ctx.bridge(cmd)
			if err != nil {
				return err
			}
			if jsonOutput {
				outcome := bridge.Invoke(args)
				if err := writeJSON(cmd, outcome); err != nil {
					return err
				}
				if !outcome.OK {
					return errSilentFailure
				}
				return nil
			}

			output, err := bridge.Run(args)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the outcome as JSON")
	return cmd
}
