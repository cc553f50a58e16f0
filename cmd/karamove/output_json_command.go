package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"karamove/internal/lineup"
)

func newOutputJSONCommand(ctx *commandContext) *cobra.Command {
	var withTime bool
	var withMusic bool
	var musicInfo string

	cmd := &cobra.Command{
		Use:   "output-json <csv> <intro-duration> <group-interval> <json> <year>",
		Short: "Write the grouped roster JSON consumed by the website",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseRosterArgs(args)
			if err != nil {
				return err
			}
			year, err := parseUnsigned("year", args[4])
			if err != nil {
				return err
			}
			records, err := in.load()
			if err != nil {
				return err
			}

			emitter := lineup.NewEmitter(ctx.loggerFor(cmd))
			doc, err := emitter.Emit(cmd.Context(), records, lineup.EmitRequest{
				OutputPath:    args[3],
				MusicInfoPath: musicInfo,
				IntroDuration: in.introDuration,
				GroupInterval: in.groupInterval,
				Year:          year,
				WithTime:      withTime,
				WithMusic:     withMusic,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d groups and %d members to %s\n", len(doc.Groups), len(records), args[3])
			return nil
		},
	}

	cmd.Flags().BoolVar(&withTime, "with-time", false, "Emit per-group time windows and order groups by position")
	cmd.Flags().BoolVar(&withMusic, "with-music", false, "Tell the website that music segments are available")
	cmd.Flags().StringVar(&musicInfo, "music-info", "", "ffprobe JSON of the music (required with --with-time)")
	return cmd
}
