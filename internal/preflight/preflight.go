package preflight

import (
	"path/filepath"
	"strings"

	"karamove/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the filesystem checks that apply to cfg. segmentsDir is
// only checked when non-empty.
func RunAll(cfg *config.Config, segmentsDir string) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	if dir := strings.TrimSpace(segmentsDir); dir != "" {
		results = append(results, CheckDirectoryAccess("Segments directory", dir))
	}

	if file := strings.TrimSpace(cfg.Logging.File); file != "" {
		results = append(results, CheckDirectoryAccess("Log directory", filepath.Dir(file)))
	}

	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, result := range results {
		if !result.Passed {
			failed = append(failed, result)
		}
	}
	return failed
}
