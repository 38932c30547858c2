package model

import (
	"strings"
	"time"
)

// Strategy identifies the estimation strategy used for a run
type Strategy string

const (
	StrategySyllables  Strategy = "syllables"
	StrategyCharacters Strategy = "characters"
)

// IsValid returns true if the strategy is one of the known strategies
func (s Strategy) IsValid() bool {
	return s == StrategySyllables || s == StrategyCharacters
}

// WordTiming holds the estimated timing for a single text token
type WordTiming struct {
	Word       string  `json:"word"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Duration   float64 `json:"duration"`
	Pause      float64 `json:"pause,omitempty"`
	Characters int     `json:"characters"`
	Syllables  int     `json:"syllables,omitempty"`
}

// Contains reports whether a playback position falls inside the word's
// interval. The interval is closed on both ends, so touching words may
// both contain the boundary position.
func (w *WordTiming) Contains(position float64) bool {
	return position >= w.Start && position <= w.End
}

// ProcessingMetrics summarizes one estimation run
type ProcessingMetrics struct {
	TotalTime           time.Duration `json:"total_time"`
	WordsProcessed      int           `json:"words_processed"`
	AverageTimePerWord  time.Duration `json:"average_time_per_word"`
	TotalDuration       float64       `json:"total_duration"`
	AverageWordDuration float64       `json:"average_word_duration"`
}

// TimingSequence is the complete output of one estimation run. It is
// immutable once computed; a new run replaces the whole sequence.
type TimingSequence struct {
	ID            string            `json:"id"`
	Strategy      Strategy          `json:"strategy"`
	AudioDuration float64           `json:"audio_duration"`
	Words         []WordTiming      `json:"words"`
	Metrics       ProcessingMetrics `json:"metrics"`
	CreatedAt     time.Time         `json:"created_at"`
}

// SpannedDuration returns the sum of all word durations and pauses
func (s *TimingSequence) SpannedDuration() float64 {
	var total float64
	for i := range s.Words {
		total += s.Words[i].Duration + s.Words[i].Pause
	}
	return total
}

// Text reassembles the original token stream with single spaces
func (s *TimingSequence) Text() string {
	tokens := make([]string, len(s.Words))
	for i := range s.Words {
		tokens[i] = s.Words[i].Word
	}
	return strings.Join(tokens, " ")
}
