package segments

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// RunResult captures a finished process.
type RunResult struct {
	ExitCode int
	Output   []byte
}

// Runner abstracts process execution so the splitter can be tested without
// ffmpeg.
type Runner interface {
	Run(ctx context.Context, binary string, args []string) (RunResult, error)
}

// ExecRunner runs commands with os/exec, capturing stdout and stderr together.
type ExecRunner struct{}

// Run executes binary. A process that starts and exits non-zero is reported
// through RunResult.ExitCode with a nil error; the error is reserved for
// processes that could not be started or were cancelled.
func (ExecRunner) Run(ctx context.Context, binary string, args []string) (RunResult, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()
	result := RunResult{Output: output.Bytes()}
	if err == nil {
		return result, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, ctxErr
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	return result, err
}
