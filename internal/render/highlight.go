package render

import (
	"strings"
	"wordsync/pkg/model"
)

// ANSI inverse video wraps the active word.
const (
	highlightOn  = "\x1b[7m"
	highlightOff = "\x1b[0m"
)

// HighlightLine returns the full text with every active word wrapped in
// an inverse-video escape. active must be the flag slice produced by the
// synchronizer for this sequence; a short or nil slice leaves the
// remaining words unhighlighted.
func HighlightLine(seq *model.TimingSequence, active []bool) string {
	var sb strings.Builder
	for i := range seq.Words {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if i < len(active) && active[i] {
			sb.WriteString(highlightOn)
			sb.WriteString(seq.Words[i].Word)
			sb.WriteString(highlightOff)
		} else {
			sb.WriteString(seq.Words[i].Word)
		}
	}
	return sb.String()
}
