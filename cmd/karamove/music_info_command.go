package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"karamove/internal/fileutil"
	"karamove/internal/logging"
	"karamove/internal/media/ffprobe"
	"karamove/internal/services"
)

func newMusicInfoCommand(ctx *commandContext) *cobra.Command {
	var ffprobeFlag string

	cmd := &cobra.Command{
		Use:   "music-info <music> <json>",
		Short: "Record ffprobe format info for the music, as read by output-json --music-info",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			binary := strings.TrimSpace(ffprobeFlag)
			if binary == "" {
				binary = cfg.FFprobeBinary()
			}

			result, err := ffprobe.Inspect(cmd.Context(), binary, args[0])
			if err != nil {
				return err
			}
			duration, err := result.RoundedDurationSeconds()
			if err != nil {
				return err
			}
			if err := fileutil.WriteFile(args[1], result.RawJSON(), 0o644); err != nil {
				return services.Wrap(services.ErrIO, "ffprobe", "write", args[1], err)
			}

			logging.WithContext(cmd.Context(), ctx.loggerFor(cmd)).Info("music info written",
				logging.String(logging.FieldEventType, "music_info_written"),
				logging.String("music", args[0]),
				logging.String("output", args[1]),
				logging.Int("music_duration", duration),
				logging.Any("size_bytes", result.SizeBytes()),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Music duration %s (%ds) written to %s\n", formatClock(duration), duration, args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&ffprobeFlag, "ffprobe", "", "ffprobe binary (defaults to tools.ffprobe from config)")
	return cmd
}
