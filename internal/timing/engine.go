package timing

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
	"wordsync/pkg/model"

	"github.com/google/uuid"
)

// Tuning constants for the syllable strategy.
const (
	secondsPerSyllable = 0.15
	longWordFactor     = 1.2
	shortWordFactor    = 0.8
	longWordLength     = 8
	shortWordLength    = 2
)

// ErrEmptyText is returned when the input text contains no words.
var ErrEmptyText = errors.New("text contains no words")

// Options controls a single estimation run.
type Options struct {
	Strategy model.Strategy
}

// Estimate distributes audioDuration across the whitespace-delimited words
// of text and returns the resulting timing sequence. The audio itself is
// never inspected; only its total duration matters. A non-positive
// duration yields all-zero timings rather than an error.
func Estimate(text string, audioDuration float64, opts Options) (*model.TimingSequence, error) {
	started := time.Now()

	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, ErrEmptyText
	}

	strategy := opts.Strategy
	if strategy == "" {
		strategy = model.StrategySyllables
	}
	if !strategy.IsValid() {
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}

	var words []model.WordTiming
	switch strategy {
	case model.StrategyCharacters:
		words = estimateByCharacters(tokens, audioDuration)
	default:
		words = estimateBySyllables(tokens)
	}

	rescale(words, audioDuration)

	seq := &model.TimingSequence{
		ID:            uuid.New().String(),
		Strategy:      strategy,
		AudioDuration: audioDuration,
		Words:         words,
		CreatedAt:     time.Now(),
	}
	seq.Metrics = buildMetrics(seq, time.Since(started))

	return seq, nil
}

// estimateByCharacters assigns each word a share of the audio duration
// proportional to its character count. No pauses are inserted.
func estimateByCharacters(tokens []string, audioDuration float64) []model.WordTiming {
	words := make([]model.WordTiming, len(tokens))

	totalChars := 0
	for i, tok := range tokens {
		words[i].Word = tok
		words[i].Characters = utf8.RuneCountInString(tok)
		totalChars += words[i].Characters
	}
	if totalChars == 0 || audioDuration <= 0 {
		return words
	}

	perChar := audioDuration / float64(totalChars)
	cursor := 0.0
	for i := range words {
		dur := float64(words[i].Characters) * perChar
		words[i].Start = cursor
		words[i].Duration = dur
		words[i].End = cursor + dur
		cursor = words[i].End
	}
	return words
}

// estimateBySyllables builds unscaled durations from syllable counts with
// length modifiers, and inserts a pause after every word sized by its
// trailing punctuation or a phrase-boundary lookahead.
func estimateBySyllables(tokens []string) []model.WordTiming {
	words := make([]model.WordTiming, len(tokens))

	cursor := 0.0
	for i, tok := range tokens {
		length := utf8.RuneCountInString(tok)
		syllables := CountSyllables(tok)

		dur := float64(syllables) * secondsPerSyllable
		if length > longWordLength {
			dur *= longWordFactor
		} else if length <= shortWordLength {
			dur *= shortWordFactor
		}

		next := ""
		if i+1 < len(tokens) {
			next = tokens[i+1]
		}

		words[i] = model.WordTiming{
			Word:       tok,
			Start:      cursor,
			End:        cursor + dur,
			Duration:   dur,
			Pause:      PauseAfter(tok, next),
			Characters: length,
			Syllables:  syllables,
		}
		cursor = words[i].End + words[i].Pause
	}
	return words
}

// rescale multiplies every start, end, duration and pause by
// audioDuration / spanned so the sequence spans the clip exactly. When the
// factor would be non-finite or non-positive the sequence is zeroed
// instead, so degenerate inputs never leak NaN or Inf into the output.
func rescale(words []model.WordTiming, audioDuration float64) {
	var spanned float64
	for i := range words {
		spanned += words[i].Duration + words[i].Pause
	}

	factor := audioDuration / spanned
	if spanned <= 0 || audioDuration <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		for i := range words {
			words[i].Start = 0
			words[i].End = 0
			words[i].Duration = 0
			words[i].Pause = 0
		}
		return
	}

	for i := range words {
		words[i].Start *= factor
		words[i].End *= factor
		words[i].Duration *= factor
		words[i].Pause *= factor
	}
}

// buildMetrics records the wall-clock cost of the pass alongside summary
// duration statistics.
func buildMetrics(seq *model.TimingSequence, elapsed time.Duration) model.ProcessingMetrics {
	n := len(seq.Words)

	var wordSeconds float64
	for i := range seq.Words {
		wordSeconds += seq.Words[i].Duration
	}

	m := model.ProcessingMetrics{
		TotalTime:      elapsed,
		WordsProcessed: n,
		TotalDuration:  seq.AudioDuration,
	}
	if n > 0 {
		m.AverageTimePerWord = elapsed / time.Duration(n)
		m.AverageWordDuration = wordSeconds / float64(n)
	}
	return m
}
