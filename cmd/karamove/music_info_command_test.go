package main

import (
	"errors"
	"path/filepath"
	"testing"

	"karamove/internal/services"
	"karamove/internal/testsupport"
)

func TestMusicInfoCommand(t *testing.T) {
	base := setupCLITestEnv(t)
	ffprobeJSON := `{"format":{"filename":"music.ogg","duration":"125.600000"}}`
	ffprobe := testsupport.WriteStub(t, filepath.Join(base, "bin"), "ffprobe", "printf '%s' '"+ffprobeJSON+"'\n")
	out := filepath.Join(base, "music.json")

	stdout, _, err := runCLI(t, "music-info", "music.ogg", out, "--ffprobe", ffprobe)
	if err != nil {
		t.Fatalf("music-info: %v", err)
	}
	requireContains(t, stdout, "2:06 (126s)")
	if got := readFile(t, out); got != ffprobeJSON {
		t.Fatalf("unexpected music info %q", got)
	}

	// The stored document feeds output-json --music-info.
	csvPath := testsupport.WriteRoster(t, base, testsupport.SampleParticipants()...)
	if _, _, err := runCLI(t, "output-json", csvPath, "0", "30", filepath.Join(base, "data.json"), "2025", "--with-time", "--music-info", out); err != nil {
		t.Fatalf("output-json with recorded music info: %v", err)
	}
}

func TestMusicInfoCommandProbeFailure(t *testing.T) {
	base := setupCLITestEnv(t)
	ffprobe := testsupport.WriteStub(t, filepath.Join(base, "bin"), "ffprobe", "echo 'Invalid data found' >&2\nexit 1\n")

	_, _, err := runCLI(t, "music-info", "music.ogg", filepath.Join(base, "music.json"), "--ffprobe", ffprobe)
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
	requireContains(t, err.Error(), "Invalid data found")
}
