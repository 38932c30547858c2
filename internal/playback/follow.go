package playback

import (
	"context"
	"time"
)

// Frame is one highlight snapshot emitted by Follow.
type Frame struct {
	Position float64
	Active   []bool
}

// Follow simulates a playback clock: starting from zero it feeds
// wall-clock positions into the synchronizer at the given interval and
// emits a frame per tick until the loaded sequence's audio duration is
// reached or the context is cancelled. A final frame at the exact end
// position is always emitted on normal completion.
func Follow(ctx context.Context, s *Synchronizer, interval time.Duration, emit func(Frame)) error {
	seq := s.Sequence()
	if seq == nil {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	started := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			position := now.Sub(started).Seconds()
			if position >= seq.AudioDuration {
				emit(Frame{Position: seq.AudioDuration, Active: s.Update(seq.AudioDuration)})
				return nil
			}
			emit(Frame{Position: position, Active: s.Update(position)})
		}
	}
}
