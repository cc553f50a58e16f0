package main

import "strings"

// legacyCommands take the roster arguments before the subcommand name in the
// historical invocation: karamove <csv> <intro> <interval> <command> ...
var legacyCommands = map[string]bool{
	"output-json":           true,
	"output-music-segments": true,
}

// persistentValueFlags are the root flags that consume the following argument.
var persistentValueFlags = map[string]bool{
	"-c":           true,
	"--config":     true,
	"--log-level":  true,
	"--log-format": true,
}

// rewriteLegacyArgs moves the three roster arguments behind the subcommand so
// cobra sees `<command> <csv> <intro> <interval> ...`. Persistent flags given
// before the roster arguments stay in front. Any other argument list is
// returned unchanged.
func rewriteLegacyArgs(args []string) []string {
	start := leadingFlagsEnd(args)
	rest := args[start:]
	if len(rest) < 4 || !legacyCommands[rest[3]] {
		return args
	}
	for _, arg := range rest[:3] {
		if strings.HasPrefix(arg, "-") || legacyCommands[arg] {
			return args
		}
	}
	rewritten := make([]string, 0, len(args))
	rewritten = append(rewritten, args[:start]...)
	rewritten = append(rewritten, rest[3])
	rewritten = append(rewritten, rest[:3]...)
	rewritten = append(rewritten, rest[4:]...)
	return rewritten
}

// leadingFlagsEnd returns the index of the first argument after the leading
// persistent flags and their values.
func leadingFlagsEnd(args []string) int {
	i := 0
	for i < len(args) {
		arg := args[i]
		name, _, attached := strings.Cut(arg, "=")
		switch {
		case persistentValueFlags[arg]:
			i += 2
		case attached && persistentValueFlags[name]:
			i++
		case strings.HasPrefix(arg, "-c") && !strings.HasPrefix(arg, "--") && len(arg) > 2:
			i++
		default:
			return i
		}
	}
	return min(i, len(args))
}
