package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"karamove/internal/config"
	"karamove/internal/deps"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckSystemDeps evaluates the external tools configured in cfg.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	requirements := []deps.Requirement{
		{
			Name:        "FFmpeg",
			Command:     cfg.FFmpegBinary(),
			Description: "Required for output-music-segments",
		},
		{
			Name:        "FFprobe",
			Command:     cfg.FFprobeBinary(),
			Description: "Required for music-info",
			Optional:    true,
		},
	}
	statuses := deps.CheckBinaries(requirements)

	// Fall back to an ffprobe shipped next to ffmpeg when the configured one
	// cannot be found.
	if ffprobe := &statuses[1]; !ffprobe.Available {
		if sibling := deps.CheckFFprobeBeside(cfg.FFmpegBinary()); sibling.Available {
			ffprobe.Command = sibling.Command
			ffprobe.Path = sibling.Path
			ffprobe.Available = true
			ffprobe.Detail = "found next to ffmpeg"
		}
	}
	return statuses
}
