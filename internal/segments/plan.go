package segments

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"karamove/internal/services"
)

const (
	component        = "segments"
	defaultExtension = "ogg"
)

// PlanRequest describes the music and lineup to cut.
type PlanRequest struct {
	Groups        int
	IntroDuration int
	GroupInterval int
	MusicPath     string
	OutputDir     string
	// Extension selects the output container, without the dot. Empty means ogg.
	Extension string
}

// Output is one labelled filter pad and the file it is written to.
type Output struct {
	Label int
	Path  string
}

// Plan is a fully resolved ffmpeg invocation.
type Plan struct {
	MusicPath  string
	Filter     string
	Timestamps []int
	Outputs    []Output
}

// NewPlan computes the cut points and output files for req.
func NewPlan(req PlanRequest) (Plan, error) {
	music := strings.TrimSpace(req.MusicPath)
	if music == "" {
		return Plan{}, services.Wrap(services.ErrArgument, component, "plan", "music path is required", nil)
	}
	dir := strings.TrimSpace(req.OutputDir)
	if dir == "" {
		return Plan{}, services.Wrap(services.ErrArgument, component, "plan", "segments directory is required", nil)
	}
	if req.Groups < 0 {
		return Plan{}, services.Wrap(services.ErrArgument, component, "plan", fmt.Sprintf("group count %d is negative", req.Groups), nil)
	}
	ext := strings.TrimPrefix(strings.TrimSpace(req.Extension), ".")
	if ext == "" {
		ext = defaultExtension
	}

	timestamps := make([]int, 0, req.Groups+1)
	for index := 0; index <= req.Groups; index++ {
		timestamps = append(timestamps, req.IntroDuration+req.GroupInterval*index)
	}

	outputs := make([]Output, 0, req.Groups+2)
	for label := 0; label < req.Groups+2; label++ {
		outputs = append(outputs, Output{
			Label: label,
			Path:  filepath.Join(dir, strconv.Itoa(label)+"."+ext),
		})
	}

	return Plan{
		MusicPath:  music,
		Filter:     buildFilter(timestamps, len(outputs)),
		Timestamps: timestamps,
		Outputs:    outputs,
	}, nil
}

func buildFilter(timestamps []int, pads int) string {
	var b strings.Builder
	b.WriteString("asegment=timestamps=")
	for i, ts := range timestamps {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(strconv.Itoa(ts))
	}
	for label := 0; label < pads; label++ {
		b.WriteString(padLabel(label))
	}
	return b.String()
}

func padLabel(label int) string {
	return "[" + strconv.Itoa(label) + "]"
}

// Args renders the ffmpeg argument vector, without the binary.
func (p Plan) Args() []string {
	args := make([]string, 0, 5+3*len(p.Outputs))
	args = append(args,
		"-hide_banner",
		"-i", p.MusicPath,
		"-filter_complex", p.Filter,
	)
	for _, out := range p.Outputs {
		args = append(args, "-map", padLabel(out.Label), out.Path)
	}
	return args
}

// Paths lists the output files in label order.
func (p Plan) Paths() []string {
	paths := make([]string, 0, len(p.Outputs))
	for _, out := range p.Outputs {
		paths = append(paths, out.Path)
	}
	return paths
}
