package render

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"wordsync/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSequence() *model.TimingSequence {
	return &model.TimingSequence{
		ID:            "test-run",
		Strategy:      model.StrategySyllables,
		AudioDuration: 2.25,
		Words: []model.WordTiming{
			{Word: "Hello", Start: 0, End: 1.5, Duration: 1.5, Characters: 5, Syllables: 2},
			{Word: "world.", Start: 1.5, End: 2.25, Duration: 0.75, Characters: 6, Syllables: 1},
		},
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, sampleSequence()))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "WORD")
	assert.Contains(t, lines[0], "DURATION")
	assert.Contains(t, lines[1], "Hello")
	assert.Contains(t, lines[1], "1.500")
	assert.Contains(t, lines[2], "world.")
	assert.Contains(t, lines[2], "0.750")
	assert.Contains(t, lines[2], "2.250")
}

func TestWriteSRT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSRT(&buf, sampleSequence()))

	want := "1\n" +
		"00:00:00,000 --> 00:00:01,500\n" +
		"Hello\n" +
		"\n" +
		"2\n" +
		"00:00:01,500 --> 00:00:02,250\n" +
		"world.\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteVTT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVTT(&buf, sampleSequence()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "WEBVTT\n"))
	assert.Contains(t, out, "00:00:00.000 --> 00:00:01.500\nHello\n")
	assert.Contains(t, out, "00:00:01.500 --> 00:00:02.250\nworld.\n")
}

func TestFormatClockTime(t *testing.T) {
	assert.Equal(t, "00:00:00,000", formatClockTime(0, ","))
	assert.Equal(t, "00:00:01,500", formatClockTime(1.5, ","))
	assert.Equal(t, "00:01:05,250", formatClockTime(65.25, ","))
	assert.Equal(t, "01:00:00,000", formatClockTime(3600, ","))
	assert.Equal(t, "00:00:00.999", formatClockTime(0.9995, "."))
}

func TestHighlightLine(t *testing.T) {
	seq := sampleSequence()

	plain := HighlightLine(seq, []bool{false, false})
	assert.Equal(t, "Hello world.", plain)

	lit := HighlightLine(seq, []bool{false, true})
	assert.Equal(t, "Hello \x1b[7mworld.\x1b[0m", lit)

	// A nil flag slice highlights nothing.
	assert.Equal(t, "Hello world.", HighlightLine(seq, nil))
}

func TestWriteMetrics(t *testing.T) {
	var buf bytes.Buffer
	WriteMetrics(&buf, model.ProcessingMetrics{
		TotalTime:           1500 * time.Microsecond,
		WordsProcessed:      2,
		AverageTimePerWord:  750 * time.Microsecond,
		TotalDuration:       2.25,
		AverageWordDuration: 1.125,
	})

	out := buf.String()
	assert.Contains(t, out, "Processing time:      1.50 ms")
	assert.Contains(t, out, "Words processed:      2")
	assert.Contains(t, out, "Avg time per word:    0.75 ms")
	assert.Contains(t, out, "Total audio duration: 2.25 s")
	assert.Contains(t, out, "Avg word duration:    1.125 s")
}
