package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"karamove/internal/lineup"
)

func newSummaryCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "summary <csv> <intro-duration> <group-interval>",
		Short: "Show groups in on-air order with their time windows",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseRosterArgs(args)
			if err != nil {
				return err
			}
			records, err := in.load()
			if err != nil {
				return err
			}
			doc, err := lineup.Build(records, lineup.Options{
				IntroDuration: in.introDuration,
				GroupInterval: in.groupInterval,
				WithTime:      true,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, doc.Groups)
			}

			rows := make([][]string, 0, len(doc.Groups))
			for _, group := range doc.Groups {
				window := group.TimeInterval
				rows = append(rows, []string{
					strconv.Itoa(group.Position()),
					group.Name,
					group.Location.String(),
					strconv.Itoa(len(group.Members)),
					formatClock(window.Start),
					formatClock(window.End),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Position", "Group", "Location", "Members", "Start", "End"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight},
			))
			fmt.Fprintf(out, "%d groups, %d members, %d profiles\n", len(doc.Groups), len(records), len(doc.Profiles))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output groups as JSON")
	return cmd
}
