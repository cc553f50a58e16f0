package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"karamove/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a unique temp directory per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Logging.Level = "debug"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLogFile points the rotating log file at <base>/logs/karamove.log.
func WithLogFile() ConfigOption {
	return func(b *configBuilder) {
		dir := filepath.Join(b.baseDir, "logs")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			b.t.Fatalf("mkdir log dir: %v", err)
		}
		b.cfg.Logging.File = filepath.Join(dir, "karamove.log")
	}
}

// WithStubbedBinaries writes stub executables for the provided names, points
// the tool settings at them and prepends their directory to PATH. If names is
// empty, ffmpeg and ffprobe are stubbed.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		if len(names) == 0 {
			names = []string{"ffmpeg", "ffprobe"}
		}
		binDir := filepath.Join(b.baseDir, "bin")
		for _, name := range names {
			target := WriteStub(b.t, binDir, name, "exit 0\n")
			switch name {
			case "ffmpeg":
				b.cfg.Tools.FFmpeg = target
			case "ffprobe":
				b.cfg.Tools.FFprobe = target
			}
		}
		b.t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	}
}

// WriteStub writes an executable shell script named name into dir and
// returns its path. body is appended after the shebang line.
func WriteStub(t testing.TB, dir, name, body string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir stub dir: %v", err)
	}
	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return target
}
