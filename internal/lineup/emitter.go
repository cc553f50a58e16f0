package lineup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"karamove/internal/fileutil"
	"karamove/internal/logging"
	"karamove/internal/media/ffprobe"
	"karamove/internal/roster"
	"karamove/internal/services"
)

const component = "lineup"

// EmitRequest describes one output-json run.
type EmitRequest struct {
	OutputPath    string
	MusicInfoPath string
	IntroDuration int
	GroupInterval int
	Year          int
	WithTime      bool
	WithMusic     bool
}

// Emitter builds lineup documents and writes them to disk.
type Emitter struct {
	logger *slog.Logger
}

// NewEmitter constructs an Emitter.
func NewEmitter(logger *slog.Logger) *Emitter {
	return &Emitter{logger: logging.NewComponentLogger(logger, component)}
}

// Emit resolves the music duration when timing is requested, builds the
// document and replaces req.OutputPath with its JSON encoding.
func (e *Emitter) Emit(ctx context.Context, records []roster.Record, req EmitRequest) (Document, error) {
	logger := logging.WithContext(ctx, e.logger)

	opts := Options{
		IntroDuration: req.IntroDuration,
		GroupInterval: req.GroupInterval,
		Year:          req.Year,
		WithTime:      req.WithTime,
		WithMusic:     req.WithMusic,
	}
	if req.WithTime {
		duration, err := musicDuration(req.MusicInfoPath)
		if err != nil {
			return Document{}, err
		}
		opts.MusicDuration = duration
		logger.Debug("music duration resolved",
			logging.String("music_info", req.MusicInfoPath),
			logging.Int("music_duration", duration),
		)
	}

	doc, err := Build(records, opts)
	if err != nil {
		return Document{}, err
	}
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	if err := fileutil.WriteFileAtomic(req.OutputPath, 0o644, func(w io.Writer) error {
		return Encode(w, doc)
	}); err != nil {
		return Document{}, services.Wrap(services.ErrIO, component, "write", req.OutputPath, err)
	}

	logger.Info("lineup written",
		logging.String(logging.FieldEventType, "lineup_written"),
		logging.String("output", req.OutputPath),
		logging.Int("group_count", len(doc.Groups)),
		logging.Int("member_count", len(records)),
		logging.Int("profile_count", len(doc.Profiles)),
		logging.String("order", OrderFor(req.WithTime).String()),
	)
	return doc, nil
}

// Encode writes doc as compact JSON with no trailing newline. HTML characters
// are left unescaped so drive links keep their query strings readable.
func Encode(w io.Writer, doc Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode lineup: %w", err)
	}
	if _, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))); err != nil {
		return fmt.Errorf("write lineup: %w", err)
	}
	return nil
}

func musicDuration(path string) (int, error) {
	if strings.TrimSpace(path) == "" {
		return 0, services.Wrap(services.ErrConfiguration, component, "", "--music-info must be given with --with-time", nil)
	}
	info, err := ffprobe.ReadInfo(path)
	if err != nil {
		return 0, err
	}
	return info.RoundedDurationSeconds()
}
