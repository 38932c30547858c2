package probe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
)

// Prober reports the duration of an audio resource in seconds.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// runner abstracts command execution for tests.
type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// FFProbe reads duration metadata with the ffprobe binary. Only the
// container metadata is read; the audio stream is never decoded.
type FFProbe struct {
	run runner
}

// NewFFProbe creates an ffprobe-backed prober
func NewFFProbe() *FFProbe {
	return &FFProbe{run: execRunner}
}

// Available returns true if ffprobe is on the PATH
func Available() bool {
	_, err := exec.LookPath("ffprobe")
	return err == nil
}

// probeOutput mirrors the ffprobe JSON structure.
type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Duration returns the clip length in seconds
func (p *FFProbe) Duration(ctx context.Context, path string) (float64, error) {
	out, err := p.run(ctx,
		"ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "json",
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	var probe probeOutput
	if err := json.Unmarshal(out, &probe); err != nil {
		return 0, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	dur, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe reported no duration for %s: %w", path, err)
	}
	return dur, nil
}

// Fixed is a prober that always reports the same duration, for callers
// that already know the clip length.
type Fixed float64

// Duration returns the fixed duration regardless of path
func (f Fixed) Duration(_ context.Context, _ string) (float64, error) {
	return float64(f), nil
}
