package render

import (
	"fmt"
	"io"
	"math"
	"wordsync/pkg/model"
)

// formatClockTime converts seconds to HH:MM:SS plus milliseconds, joined
// by the given separator ("," for SRT, "." for WebVTT).
func formatClockTime(seconds float64, sep string) string {
	totalSec := math.Abs(seconds)
	hours := int(totalSec / 3600)
	remainder := math.Mod(totalSec, 3600)
	minutes := int(remainder / 60)
	secs := math.Mod(remainder, 60)
	millis := int(math.Round(math.Mod(secs, 1) * 1000))
	if millis == 1000 {
		millis = 999
	}
	return fmt.Sprintf("%02d:%02d:%02d%s%03d", hours, minutes, int(secs), sep, millis)
}

// WriteSRT renders the sequence as SRT with one cue per word.
func WriteSRT(w io.Writer, seq *model.TimingSequence) error {
	for i := range seq.Words {
		wt := &seq.Words[i]
		_, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n",
			i+1,
			formatClockTime(wt.Start, ","),
			formatClockTime(wt.End, ","),
			wt.Word)
		if err != nil {
			return err
		}
		if i < len(seq.Words)-1 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteVTT renders the sequence as WebVTT with one cue per word.
func WriteVTT(w io.Writer, seq *model.TimingSequence) error {
	if _, err := fmt.Fprintln(w, "WEBVTT"); err != nil {
		return err
	}
	for i := range seq.Words {
		wt := &seq.Words[i]
		_, err := fmt.Fprintf(w, "\n%s --> %s\n%s\n",
			formatClockTime(wt.Start, "."),
			formatClockTime(wt.End, "."),
			wt.Word)
		if err != nil {
			return err
		}
	}
	return nil
}
