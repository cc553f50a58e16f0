package main

import (
	"fmt"
	"strconv"
	"strings"

	"karamove/internal/roster"
	"karamove/internal/services"
)

// rosterArgs are the three positional arguments shared by the roster commands.
type rosterArgs struct {
	csvPath       string
	introDuration int
	groupInterval int
}

func parseRosterArgs(args []string) (rosterArgs, error) {
	intro, err := parseUnsigned("intro duration", args[1])
	if err != nil {
		return rosterArgs{}, err
	}
	interval, err := parseUnsigned("group interval", args[2])
	if err != nil {
		return rosterArgs{}, err
	}
	return rosterArgs{
		csvPath:       args[0],
		introDuration: intro,
		groupInterval: interval,
	}, nil
}

func (r rosterArgs) load() ([]roster.Record, error) {
	return roster.Load(r.csvPath)
}

func parseUnsigned(name, value string) (int, error) {
	parsed, err := strconv.ParseUint(strings.TrimSpace(value), 10, 31)
	if err != nil {
		return 0, services.Wrap(services.ErrArgument, "cli", "", fmt.Sprintf("%s %q is not a non-negative integer", name, value), nil)
	}
	return int(parsed), nil
}

// formatClock renders seconds as m:ss.
func formatClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// shellJoin renders a command line that can be pasted into a POSIX shell.
func shellJoin(binary string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, shellQuote(binary))
	for _, arg := range args {
		parts = append(parts, shellQuote(arg))
	}
	return strings.Join(parts, " ")
}

func shellQuote(value string) string {
	if value != "" && !strings.ContainsAny(value, " \t\n'\"\\|&;<>()[]$`*?#~!{}") {
		return value
	}
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
