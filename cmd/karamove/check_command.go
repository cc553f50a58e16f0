package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"karamove/internal/deps"
	"karamove/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var segmentsDir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify external tools and writable directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := preflight.CheckSystemDeps(cfg)
			failures := len(deps.MissingRequired(statuses))
			rows := make([][]string, 0, len(statuses)+2)
			for _, status := range statuses {
				state := "ok"
				detail := status.Path
				switch {
				case !status.Available && status.Optional:
					state = "optional"
					detail = status.Detail
				case !status.Available:
					state = "missing"
					detail = status.Detail
				case status.Detail != "":
					detail += " (" + status.Detail + ")"
				}
				rows = append(rows, []string{status.Name, state, detail})
			}
			results := preflight.RunAll(cfg, segmentsDir)
			failures += len(preflight.Failed(results))
			for _, result := range results {
				state := "ok"
				if !result.Passed {
					state = "failed"
				}
				rows = append(rows, []string{result.Name, state, result.Detail})
			}

			out := cmd.OutOrStdout()
			configLine := ctx.configPath
			if !ctx.configExists {
				configLine += " (not found, using defaults)"
			}
			fmt.Fprintf(out, "Config: %s\n", configLine)
			fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows, nil))

			if failures > 0 {
				return fmt.Errorf("%d check(s) failed", failures)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&segmentsDir, "segments-dir", "", "Also check that this segments directory is writable")
	return cmd
}
