package segments

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"karamove/internal/logging"
	"karamove/internal/services"
)

// ProcessError reports an ffmpeg run that exited non-zero.
type ProcessError struct {
	Binary   string
	ExitCode int
	Output   []byte
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Binary, e.ExitCode)
}

// Unwrap tags the failure as an external tool error.
func (e *ProcessError) Unwrap() error {
	return services.ErrExternalTool
}

// Splitter runs segment plans through ffmpeg.
type Splitter struct {
	logger *slog.Logger
	runner Runner
	binary string
}

// NewSplitter constructs a Splitter that invokes binary. A nil runner uses
// ExecRunner.
func NewSplitter(logger *slog.Logger, runner Runner, binary string) *Splitter {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Splitter{
		logger: logging.NewComponentLogger(logger, component),
		runner: runner,
		binary: strings.TrimSpace(binary),
	}
}

// Split runs ffmpeg once for the whole plan.
func (s *Splitter) Split(ctx context.Context, plan Plan) error {
	if s.binary == "" {
		return services.Wrap(services.ErrConfiguration, component, "split", "ffmpeg binary not configured", nil)
	}
	logger := logging.WithContext(ctx, s.logger)
	logger.Info("splitting music",
		logging.String("music", plan.MusicPath),
		logging.Int("segment_count", len(plan.Outputs)),
		logging.String("filter", plan.Filter),
	)

	started := time.Now()
	result, err := s.runner.Run(ctx, s.binary, plan.Args())
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		return services.Wrap(services.ErrExternalTool, component, "split", "execute "+s.binary, err)
	}
	if result.ExitCode != 0 {
		logger.Error("ffmpeg failed",
			logging.String(logging.FieldEventType, "segments_failed"),
			logging.Int("exit_code", result.ExitCode),
		)
		return &ProcessError{Binary: s.binary, ExitCode: result.ExitCode, Output: result.Output}
	}

	logger.Info("music split",
		logging.String(logging.FieldEventType, "segments_written"),
		logging.Int("segment_count", len(plan.Outputs)),
		logging.Any("outputs", plan.Paths()),
		logging.Duration("elapsed", time.Since(started)),
	)
	return nil
}

// PrepareOutputDir creates dir when it does not exist yet.
func PrepareOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return services.Wrap(services.ErrIO, component, "prepare", dir, err)
	}
	return nil
}
