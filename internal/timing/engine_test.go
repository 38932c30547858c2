package timing

import (
	"math"
	"strings"
	"testing"
	"wordsync/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateCharacterProportional(t *testing.T) {
	seq, err := Estimate("Hello world.", 2.0, Options{Strategy: model.StrategyCharacters})
	require.NoError(t, err)
	require.Len(t, seq.Words, 2)

	// 5 and 6 characters out of 11 total.
	assert.InDelta(t, 2.0*5.0/11.0, seq.Words[0].Duration, 1e-9)
	assert.InDelta(t, 2.0*6.0/11.0, seq.Words[1].Duration, 1e-9)
	assert.InDelta(t, 2.0, seq.SpannedDuration(), 1e-9)

	// No gaps: each word ends exactly where the next starts.
	assert.Equal(t, 0.0, seq.Words[0].Start)
	assert.InDelta(t, seq.Words[0].End, seq.Words[1].Start, 1e-12)
	assert.Zero(t, seq.Words[0].Pause)
}

func TestEstimateSyllableStrategySpansAudioDuration(t *testing.T) {
	texts := []string{
		"The quick brown fox jumps over the lazy dog.",
		"One, two; three: four? Five! And after a while, it ended before anyone noticed.",
		"a",
		"Supercalifragilisticexpialidocious is an extraordinarily unquestionably preposterous word",
	}
	durations := []float64{0.5, 2.0, 13.75, 3600.0}

	for _, text := range texts {
		for _, d := range durations {
			seq, err := Estimate(text, d, Options{})
			require.NoError(t, err)
			assert.InEpsilon(t, d, seq.SpannedDuration(), 1e-6,
				"text %q duration %v", text, d)
		}
	}
}

func TestEstimatePreservesTokenOrderAndCount(t *testing.T) {
	text := "  Pack my   box with five dozen\nliquor jugs.  "
	tokens := strings.Fields(text)

	for _, strategy := range []model.Strategy{model.StrategySyllables, model.StrategyCharacters} {
		seq, err := Estimate(text, 4.2, Options{Strategy: strategy})
		require.NoError(t, err)
		require.Len(t, seq.Words, len(tokens))
		for i, tok := range tokens {
			assert.Equal(t, tok, seq.Words[i].Word)
		}
	}
}

func TestEstimateWordsAreOrderedAndNonOverlapping(t *testing.T) {
	seq, err := Estimate("and so it goes, on and on; forever.", 7.5, Options{})
	require.NoError(t, err)

	for i := 0; i < len(seq.Words)-1; i++ {
		cur, next := &seq.Words[i], &seq.Words[i+1]
		assert.LessOrEqual(t, cur.End, next.Start)
		assert.InDelta(t, cur.End+cur.Pause, next.Start, 1e-9)
	}
}

func TestEstimateZeroDurationProducesZeroTimings(t *testing.T) {
	for _, d := range []float64{0, -1} {
		for _, strategy := range []model.Strategy{model.StrategySyllables, model.StrategyCharacters} {
			seq, err := Estimate("some words here", d, Options{Strategy: strategy})
			require.NoError(t, err)

			for i := range seq.Words {
				w := &seq.Words[i]
				assert.Zero(t, w.Start)
				assert.Zero(t, w.End)
				assert.Zero(t, w.Duration)
				assert.Zero(t, w.Pause)
				assert.False(t, math.IsNaN(w.Duration) || math.IsInf(w.Duration, 0))
			}
		}
	}
}

func TestEstimateEmptyText(t *testing.T) {
	_, err := Estimate("", 2.0, Options{})
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = Estimate("   \n\t ", 2.0, Options{})
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestEstimateUnknownStrategy(t *testing.T) {
	_, err := Estimate("hello", 2.0, Options{Strategy: "phonemes"})
	assert.Error(t, err)
}

func TestEstimateDefaultsToSyllables(t *testing.T) {
	seq, err := Estimate("hello there", 2.0, Options{})
	require.NoError(t, err)
	assert.Equal(t, model.StrategySyllables, seq.Strategy)
	assert.Positive(t, seq.Words[0].Syllables)
	assert.Positive(t, seq.Words[0].Pause)
}

func TestEstimateWordLengthModifiers(t *testing.T) {
	// A one-syllable short word is shrunk, a one-syllable long word is
	// stretched; compare their unscaled ratio through equal rescaling.
	seq, err := Estimate("ox strengths", 3.0, Options{})
	require.NoError(t, err)
	require.Len(t, seq.Words, 2)

	short, long := seq.Words[0], seq.Words[1]
	assert.Equal(t, 1, short.Syllables)
	assert.Equal(t, 1, long.Syllables)
	// 0.8x vs 1.2x of the same syllable base.
	assert.InEpsilon(t, 1.5, long.Duration/short.Duration, 1e-9)
}

func TestEstimateMetrics(t *testing.T) {
	seq, err := Estimate("three little words", 6.0, Options{})
	require.NoError(t, err)

	m := seq.Metrics
	assert.Equal(t, 3, m.WordsProcessed)
	assert.Equal(t, 6.0, m.TotalDuration)
	assert.GreaterOrEqual(t, m.TotalTime, m.AverageTimePerWord)

	var wordSeconds float64
	for i := range seq.Words {
		wordSeconds += seq.Words[i].Duration
	}
	assert.InDelta(t, wordSeconds/3.0, m.AverageWordDuration, 1e-9)
	assert.NotEmpty(t, seq.ID)
}
