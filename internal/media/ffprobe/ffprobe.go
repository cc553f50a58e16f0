package ffprobe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"karamove/internal/services"
)

const component = "ffprobe"

var commandContext = exec.CommandContext

// Result represents the parsed output from an ffprobe inspection. Only the
// container section is modelled; stream details are kept in the raw payload.
type Result struct {
	Format Format `json:"format"`
	raw    []byte
}

// Format captures container-level metadata extracted by ffprobe.
type Format struct {
	Filename   string `json:"filename"`
	NBStreams  int    `json:"nb_streams"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
	BitRate    string `json:"bit_rate"`
	FormatName string `json:"format_name"`
}

// Inspect executes ffprobe against the provided path and decodes the JSON response.
func Inspect(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, services.Wrap(services.ErrArgument, component, "inspect", "empty path", nil)
	}

	cmd := commandContext(ctx, binary, "-v", "error", "-hide_banner", "-show_format", "-of", "json", "--", path) //nolint:gosec
	var stderr strings.Builder
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return Result{}, services.Wrap(services.ErrExternalTool, component, "inspect", strings.TrimSpace(stderr.String()), err)
	}

	result, err := Decode(bytes.NewReader(output))
	if err != nil {
		return Result{}, err
	}
	return result, nil
}

// ReadInfo decodes a music-info document previously written by ffprobe.
func ReadInfo(path string) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, services.Wrap(services.ErrIO, component, "open music info", path, err)
	}
	defer file.Close()

	result, err := Decode(file)
	if err != nil {
		return Result{}, fmt.Errorf("read music info %s: %w", path, err)
	}
	return result, nil
}

// Decode parses an ffprobe JSON document and keeps the raw bytes.
func Decode(r io.Reader) (Result, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Result{}, services.Wrap(services.ErrIO, component, "read", "", err)
	}
	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return Result{}, services.Wrap(services.ErrParse, component, "parse", "", err)
	}
	result.raw = raw
	return result, nil
}

// RawJSON returns the raw ffprobe JSON payload.
func (r Result) RawJSON() []byte {
	return append([]byte(nil), r.raw...)
}

// RoundedDurationSeconds parses format.duration with single precision, as
// ffprobe prints it, and rounds half away from zero to whole seconds.
func (r Result) RoundedDurationSeconds() (int, error) {
	cleaned := strings.TrimSpace(r.Format.Duration)
	if cleaned == "" {
		return 0, services.Wrap(services.ErrParse, component, "duration", "format.duration is missing", nil)
	}
	value, err := strconv.ParseFloat(cleaned, 32)
	if err != nil {
		return 0, services.Wrap(services.ErrParse, component, "duration", fmt.Sprintf("format.duration %q", r.Format.Duration), err)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, services.Wrap(services.ErrParse, component, "duration", fmt.Sprintf("format.duration %q is out of range", r.Format.Duration), nil)
	}
	return int(math.Round(value)), nil
}

// SizeBytes returns the reported container size in bytes, or 0 when unavailable.
func (r Result) SizeBytes() int64 {
	size := parseFloat(r.Format.Size)
	if math.IsNaN(size) || size < 0 {
		return 0
	}
	return int64(size)
}

func parseFloat(value string) float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return 0
	}
	if parsed, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return parsed
	}
	return math.NaN()
}
