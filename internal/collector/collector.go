package collector

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"wordsync/internal/probe"
	"wordsync/internal/timing"
	"wordsync/pkg/logger"
	"wordsync/pkg/model"

	"go.uber.org/zap"
)

var (
	ErrNoAudio = errors.New("no audio resource supplied")
	ErrNoText  = errors.New("no text supplied")
)

// Collector accepts exactly one audio resource and one text string and
// runs the timing engine once the audio duration is known. Probing the
// duration is the single ordering point in the system: the scale factor
// depends on it, so estimation never runs first.
type Collector struct {
	prober probe.Prober
	opts   timing.Options
}

// New creates a collector using the given duration prober
func New(prober probe.Prober, opts timing.Options) *Collector {
	return &Collector{
		prober: prober,
		opts:   opts,
	}
}

// Collect resolves the audio duration and produces the timing sequence.
// Missing inputs suppress processing and are reported as typed errors.
func (c *Collector) Collect(ctx context.Context, audioPath, text string) (*model.TimingSequence, error) {
	if audioPath == "" {
		return nil, ErrNoAudio
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoText
	}

	duration, err := c.prober.Duration(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve audio duration: %w", err)
	}

	logger.Debug("Audio duration resolved",
		zap.String("audio", audioPath),
		zap.Float64("duration", duration))

	seq, err := timing.Estimate(text, duration, c.opts)
	if err != nil {
		return nil, fmt.Errorf("estimation failed: %w", err)
	}

	logger.Info("Timing sequence computed",
		zap.String("sequence_id", seq.ID),
		zap.String("strategy", string(seq.Strategy)),
		zap.Int("words", seq.Metrics.WordsProcessed),
		zap.Duration("took", seq.Metrics.TotalTime))

	return seq, nil
}
