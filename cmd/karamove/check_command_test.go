package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"karamove/internal/testsupport"
)

func writeToolsConfig(t *testing.T, path, ffmpeg, ffprobe string) {
	t.Helper()
	content := fmt.Sprintf("[tools]\nffmpeg = %q\nffprobe = %q\n", ffmpeg, ffprobe)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestCheckCommand(t *testing.T) {
	base := setupCLITestEnv(t)
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries())
	configPath := filepath.Join(base, "karamove.toml")
	writeToolsConfig(t, configPath, cfg.Tools.FFmpeg, cfg.Tools.FFprobe)

	stdout, _, err := runCLI(t, "--config", configPath, "check", "--segments-dir", base)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, stdout)
	}
	requireContains(t, stdout, "Config: "+configPath)
	requireContains(t, stdout, "FFmpeg")
	requireContains(t, stdout, "Segments directory")
	requireContains(t, stdout, cfg.Tools.FFmpeg)
}

func TestCheckCommandReportsFailures(t *testing.T) {
	base := setupCLITestEnv(t)
	t.Setenv("PATH", "")
	configPath := filepath.Join(base, "karamove.toml")
	writeToolsConfig(t, configPath, "ffmpeg-not-installed", "ffprobe-not-installed")

	stdout, _, err := runCLI(t, "check", "--segments-dir", filepath.Join(base, "absent"))
	if err == nil {
		t.Fatal("expected check to fail")
	}
	requireContains(t, err.Error(), "2 check(s) failed")
	requireContains(t, stdout, "missing")
	requireContains(t, stdout, "optional")
	requireContains(t, stdout, "does not exist")
}
