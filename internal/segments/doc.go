// Package segments slices the event music into one audio file per group.
//
// A lineup of N groups produces N+2 segments: the intro, one segment per
// group and the outro after the last group. The cut points are derived from
// the intro duration and the group interval and handed to ffmpeg's asegment
// filter in a single invocation.
//
// NewPlan computes the filter graph and output paths, Plan.Args renders the
// ffmpeg argument vector and Splitter runs it through a Runner.
package segments
