package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"karamove/internal/preflight"
	"karamove/internal/segments"
	"karamove/internal/services"
)

func newMusicSegmentsCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var extension string

	cmd := &cobra.Command{
		Use:   "output-music-segments <csv> <intro-duration> <group-interval> <segments-dir> <ffmpeg> <music>",
		Short: "Cut the music into one audio segment per group with ffmpeg",
		Long: "Cut the music into N+2 segments: the intro, one per group and the outro.\n" +
			"Segments are written as <segments-dir>/<index>.<extension>. An empty <ffmpeg>\n" +
			"argument uses the configured ffmpeg binary.",
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			in, err := parseRosterArgs(args)
			if err != nil {
				return err
			}
			records, err := in.load()
			if err != nil {
				return err
			}

			ext := extension
			if strings.TrimSpace(ext) == "" {
				ext = cfg.Segments.Extension
			}
			dir := args[3]
			plan, err := segments.NewPlan(segments.PlanRequest{
				Groups:        segments.CountGroups(records),
				IntroDuration: in.introDuration,
				GroupInterval: in.groupInterval,
				MusicPath:     args[5],
				OutputDir:     dir,
				Extension:     ext,
			})
			if err != nil {
				return err
			}

			binary := strings.TrimSpace(args[4])
			if binary == "" {
				binary = cfg.FFmpegBinary()
			}

			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), shellJoin(binary, plan.Args()))
				return nil
			}

			if err := segments.PrepareOutputDir(dir); err != nil {
				return err
			}
			if check := preflight.CheckDirectoryAccess("Segments directory", dir); !check.Passed {
				return services.Wrap(services.ErrIO, "segments", "preflight", check.Detail, nil)
			}

			splitter := segments.NewSplitter(ctx.loggerFor(cmd), nil, binary)
			if err := splitter.Split(cmd.Context(), plan); err != nil {
				var procErr *segments.ProcessError
				if errors.As(err, &procErr) && len(procErr.Output) > 0 {
					errOut := cmd.ErrOrStderr()
					_, _ = errOut.Write(procErr.Output)
					if !strings.HasSuffix(string(procErr.Output), "\n") {
						fmt.Fprintln(errOut)
					}
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d segments to %s\n", len(plan.Outputs), dir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the ffmpeg command instead of running it")
	cmd.Flags().StringVar(&extension, "extension", "", "Segment file extension (defaults to segments.extension from config)")
	return cmd
}
