// Package services defines the shared error taxonomy and context helpers used
// by the roster loader, the lineup emitter and the segment planner.
//
// Key responsibilities:
//   - Sentinel markers (argument, i/o, parse, configuration, external tool)
//     plus the Wrap helper that prefixes failures with component and
//     operation context while keeping errors.Is working for both the marker
//     and the underlying cause.
//   - Context helpers that stamp the per-invocation run ID and subcommand name
//     so log lines can be correlated.
package services
