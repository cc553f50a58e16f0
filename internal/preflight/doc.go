// Package preflight provides readiness checks for the external tools and
// filesystem paths karamove depends on.
//
// The "check" command renders every Result as a table. The
// output-music-segments command runs CheckDirectoryAccess on the segments
// directory before starting ffmpeg so a read-only target fails fast.
package preflight
