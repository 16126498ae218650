package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"vcshell/internal/api"
	"vcshell/internal/presets"
)

func newPresetsCommand(ctx *commandContext) *cobra.Command {
	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "List and edit encoding presets",
	}

	presetsCmd.AddCommand(newPresetsListCommand(ctx))
	presetsCmd.AddCommand(newPresetsShowCommand(ctx))
	presetsCmd.AddCommand(newPresetsAddCommand(ctx))
	presetsCmd.AddCommand(newPresetsRemoveCommand(ctx))

	return presetsCmd
}

func newPresetsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List presets as selector entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := ctx.resolver(cmd)
			if err != nil {
				return err
			}
			entries, err := resolver.List()
			if err != nil {
				return err
			}
			sort.Slice(entries, func(i, j int) bool { return entries[i].Value < entries[j].Value })

			if jsonOutput {
				return writeJSON(cmd, api.PresetListResponse{Presets: entries})
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No presets defined")
				return nil
			}
			if isTerminal(out) {
				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					rows = append(rows, []string{entry.Value, entry.Label, entry.Description})
				}
				fmt.Fprintln(out, renderTable([]string{"Value", "Label", "Description"}, rows, nil))
				return nil
			}
			for _, entry := range entries {
				fmt.Fprintf(out, "%s\t%s\t%s\n", entry.Value, entry.Label, entry.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newPresetsShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a single preset definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := ctx.resolver(cmd)
			if err != nil {
				return err
			}
			def, err := resolver.Get(args[0])
			if err != nil {
				return err
			}
			detail := api.FromDefinition(def)
			if jsonOutput {
				return writeJSON(cmd, detail)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:        %s\n", detail.Name)
			fmt.Fprintf(out, "Label:       %s\n", detail.Label)
			fmt.Fprintf(out, "Description: %s\n", detail.Description)
			fmt.Fprintf(out, "Video codec: %s\n", valueOrDash(detail.VideoCodec))
			fmt.Fprintf(out, "Speed:       %s\n", valueOrDash(detail.Speed))
			fmt.Fprintf(out, "CRF:         %d\n", detail.CRF)
			fmt.Fprintf(out, "Args:        %s\n", strings.Join(detail.Args, " "))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newPresetsAddCommand(ctx *commandContext) *cobra.Command {
	var def presets.Definition
	var crf string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add or replace a preset in the preset document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(def.Description) == "" {
				return fmt.Errorf("--description is required")
			}
			if crf != "" {
				value, err := strconv.ParseUint(crf, 10, 32)
				if err != nil {
					return fmt.Errorf("invalid --crf %q: must be a non-negative integer", crf)
				}
				def.CRF = uint(value)
			}
			def.Name = args[0]

			resolver, err := ctx.resolver(cmd)
			if err != nil {
				return err
			}
			if err := resolver.Save(def); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %s (%s) to %s\n", def.Name, presets.FormatLabel(def.Name), resolver.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&def.VideoCodec, "video-codec", "", "Video codec passed to the encoder (for example libx264)")
	cmd.Flags().StringVar(&def.Speed, "speed", "", "Encoder speed/quality preset (for example veryfast)")
	cmd.Flags().StringVar(&crf, "crf", "", "Constant rate factor")
	cmd.Flags().StringVar(&def.Description, "description", "", "Description shown in the preset selector")
	return cmd
}

func newPresetsRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a preset from the preset document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver, err := ctx.resolver(cmd)
			if err != nil {
				return err
			}
			if err := resolver.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed preset %s\n", args[0])
			return nil
		},
	}
}

func valueOrDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
