// Package main hosts the karamove CLI entrypoint and command graph.
//
// The Cobra-based command tree turns the roster export into the website
// JSON, cuts the event music into per-group segments, records music info with
// ffprobe and prints lineup summaries and environment checks. It centralizes
// configuration resolution and structured logging setup so subcommands stay
// thin wrappers over the internal packages.
//
// The historical argument order, with the roster arguments before the
// subcommand name, is rewritten in main before Cobra parses the command line.
package main
