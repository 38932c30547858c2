package render

import (
	"fmt"
	"io"
	"text/tabwriter"
	"wordsync/pkg/model"
)

// WriteTable renders the per-word timing listing with seconds to three
// decimal places.
func WriteTable(w io.Writer, seq *model.TimingSequence) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "#\tWORD\tCHARS\tSTART\tEND\tDURATION")
	for i := range seq.Words {
		wt := &seq.Words[i]
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.3f\t%.3f\t%.3f\n",
			i+1, wt.Word, wt.Characters, wt.Start, wt.End, wt.Duration)
	}

	return tw.Flush()
}

// WriteMetrics renders the diagnostic summary of one estimation run.
func WriteMetrics(w io.Writer, m model.ProcessingMetrics) {
	fmt.Fprintf(w, "Processing time:      %.2f ms\n", float64(m.TotalTime.Microseconds())/1000.0)
	fmt.Fprintf(w, "Words processed:      %d\n", m.WordsProcessed)
	fmt.Fprintf(w, "Avg time per word:    %.2f ms\n", float64(m.AverageTimePerWord.Microseconds())/1000.0)
	fmt.Fprintf(w, "Total audio duration: %.2f s\n", m.TotalDuration)
	fmt.Fprintf(w, "Avg word duration:    %.3f s\n", m.AverageWordDuration)
}
