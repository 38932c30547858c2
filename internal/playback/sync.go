package playback

import (
	"sort"
	"sync"
	"wordsync/pkg/model"
)

// Synchronizer maps a playback position onto the current timing sequence.
// It owns no timer; callers feed it positions as the playback source
// reports them. The sequence slot is replaced wholesale, never mutated.
type Synchronizer struct {
	mu  sync.RWMutex
	seq *model.TimingSequence
}

// NewSynchronizer creates a synchronizer with no sequence loaded
func NewSynchronizer() *Synchronizer {
	return &Synchronizer{}
}

// Load replaces the current timing sequence
func (s *Synchronizer) Load(seq *model.TimingSequence) {
	s.mu.Lock()
	s.seq = seq
	s.mu.Unlock()
}

// Sequence returns the currently loaded timing sequence, or nil
func (s *Synchronizer) Sequence() *model.TimingSequence {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq
}

// Update re-evaluates every word against the playback position and
// returns one active flag per word. Intervals are closed on both ends, so
// where two words touch the boundary position activates both. The scan is
// O(n) per tick, which is immaterial for human-entered text.
func (s *Synchronizer) Update(position float64) []bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.seq == nil {
		return nil
	}

	active := make([]bool, len(s.seq.Words))
	for i := range s.seq.Words {
		active[i] = s.seq.Words[i].Contains(position)
	}
	return active
}

// ActiveIndex returns the index of the latest word whose interval
// contains the position, using a binary search over start times, or -1
// when no word contains it. Cursor-style consumers that want a single
// word should prefer this over Update.
func (s *Synchronizer) ActiveIndex(position float64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.seq == nil || len(s.seq.Words) == 0 {
		return -1
	}

	words := s.seq.Words
	i := sort.Search(len(words), func(i int) bool {
		return words[i].Start > position
	})
	if i == 0 {
		return -1
	}
	if words[i-1].Contains(position) {
		return i - 1
	}
	return -1
}
