package segments

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"karamove/internal/logging"
	"karamove/internal/services"
)

type fakeRunner struct {
	result RunResult
	err    error

	binary string
	args   []string
	calls  int
}

func (f *fakeRunner) Run(_ context.Context, binary string, args []string) (RunResult, error) {
	f.calls++
	f.binary = binary
	f.args = append([]string(nil), args...)
	return f.result, f.err
}

func testPlan(t *testing.T) Plan {
	t.Helper()
	plan, err := NewPlan(PlanRequest{Groups: 2, IntroDuration: 10, GroupInterval: 20, MusicPath: "m.ogg", OutputDir: "out"})
	if err != nil {
		t.Fatalf("NewPlan returned error: %v", err)
	}
	return plan
}

func TestSplitRunsFFmpegOnce(t *testing.T) {
	runner := &fakeRunner{}
	plan := testPlan(t)

	if err := NewSplitter(nil, runner, " /usr/bin/ffmpeg ").Split(context.Background(), plan); err != nil {
		t.Fatalf("Split returned error: %v", err)
	}
	if runner.calls != 1 {
		t.Fatalf("expected a single ffmpeg run, got %d", runner.calls)
	}
	if runner.binary != "/usr/bin/ffmpeg" {
		t.Fatalf("unexpected binary %q", runner.binary)
	}
	if !reflect.DeepEqual(runner.args, plan.Args()) {
		t.Fatalf("unexpected args %q", runner.args)
	}
}

func TestSplitLogsOutputPaths(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}
	plan := testPlan(t)

	if err := NewSplitter(logger, &fakeRunner{}, "ffmpeg").Split(context.Background(), plan); err != nil {
		t.Fatalf("Split returned error: %v", err)
	}
	logs := buf.String()
	if !strings.Contains(logs, `"msg":"music split"`) {
		t.Fatalf("expected completion log, got %s", logs)
	}
	for _, path := range plan.Paths() {
		if !strings.Contains(logs, strconv.Quote(path)) {
			t.Fatalf("expected %s in logs %s", path, logs)
		}
	}
}

func TestSplitNonZeroExit(t *testing.T) {
	runner := &fakeRunner{result: RunResult{ExitCode: 1, Output: []byte("Invalid data found")}}
	err := NewSplitter(nil, runner, "ffmpeg").Split(context.Background(), testPlan(t))

	var procErr *ProcessError
	if !errors.As(err, &procErr) {
		t.Fatalf("expected ProcessError, got %v", err)
	}
	if procErr.ExitCode != 1 || string(procErr.Output) != "Invalid data found" {
		t.Fatalf("unexpected process error %+v", procErr)
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatal("expected external tool marker")
	}
}

func TestSplitStartFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exec: not found")}
	err := NewSplitter(nil, runner, "ffmpeg").Split(context.Background(), testPlan(t))
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool error, got %v", err)
	}
	var procErr *ProcessError
	if errors.As(err, &procErr) {
		t.Fatal("start failures must not be reported as ProcessError")
	}
}

func TestSplitRequiresBinary(t *testing.T) {
	runner := &fakeRunner{}
	err := NewSplitter(nil, runner, "  ").Split(context.Background(), testPlan(t))
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if runner.calls != 0 {
		t.Fatal("runner must not be invoked without a binary")
	}
}

func writeStub(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestExecRunnerCapturesOutputAndExitCode(t *testing.T) {
	stub := writeStub(t, "echo \"out $1\"\necho err >&2\nexit 3\n")
	result, err := ExecRunner{}.Run(context.Background(), stub, []string{"-hide_banner"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.ExitCode != 3 {
		t.Fatalf("exit code = %d, want 3", result.ExitCode)
	}
	output := string(result.Output)
	if !strings.Contains(output, "out -hide_banner") || !strings.Contains(output, "err") {
		t.Fatalf("unexpected output %q", output)
	}
}

func TestExecRunnerSuccess(t *testing.T) {
	stub := writeStub(t, "exit 0\n")
	result, err := ExecRunner{}.Run(context.Background(), stub, nil)
	if err != nil || result.ExitCode != 0 {
		t.Fatalf("unexpected result %+v err %v", result, err)
	}
}

func TestExecRunnerMissingBinary(t *testing.T) {
	_, err := ExecRunner{}.Run(context.Background(), filepath.Join(t.TempDir(), "absent"), nil)
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
}

func TestPrepareOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	if err := PrepareOutputDir(dir); err != nil {
		t.Fatalf("PrepareOutputDir returned error: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("expected directory, stat err %v", err)
	}
}
