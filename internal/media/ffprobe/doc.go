// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// The roster tool only needs container metadata: the music-info document is
// the output of `ffprobe -show_format -of json` and its format.duration field
// drives the total music duration of the lineup.
//
// Primary entry points:
//   - Inspect: executes ffprobe and returns the parsed Result
//   - ReadInfo: decodes a stored music-info document
//
// RoundedDurationSeconds converts the textual duration to whole seconds.
package ffprobe
