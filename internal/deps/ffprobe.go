package deps

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// CheckFFprobeBeside reports the ffprobe binary paired with ffmpegCommand.
//
// Static ffmpeg builds ship both tools in one directory, so an ffprobe next to
// the resolved ffmpeg executable is preferred. Otherwise "ffprobe" is resolved
// from PATH.
func CheckFFprobeBeside(ffmpegCommand string) Status {
	result := Status{
		Name:        "FFprobe",
		Description: "Used to read the music duration",
	}

	ffmpegBinary := strings.TrimSpace(ffmpegCommand)
	if ffmpegBinary != "" {
		if resolved, err := exec.LookPath(ffmpegBinary); err == nil {
			candidate := siblingBinary(resolved, "ffprobe")
			if info, statErr := os.Stat(candidate); statErr == nil && isExecutable(info) {
				result.Command = candidate
				result.Path = candidate
				result.Available = true
				return result
			}
		}
	}

	name := "ffprobe"
	if path, err := exec.LookPath(name); err == nil {
		result.Command = path
		result.Path = path
		result.Available = true
		return result
	}

	result.Command = name
	result.Detail = fmt.Sprintf("binary %q not found", name)
	return result
}

func siblingBinary(resolved, name string) string {
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(filepath.Dir(resolved), name)
}

func isExecutable(info os.FileInfo) bool {
	if info == nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
