package timing

import (
	"strings"
	"unicode/utf8"
)

// Pause lengths in unscaled seconds, keyed by the trailing punctuation of
// the word just spoken.
const (
	pauseSentence = 0.5
	pauseClause   = 0.35
	pauseComma    = 0.25
	pausePhrase   = 0.2
	pauseDefault  = 0.1
)

// phraseBoundaryWords are conjunctions and prepositions that usually
// start a new phrase; a medium pause is inserted before them.
var phraseBoundaryWords = map[string]struct{}{
	"and": {}, "but": {}, "or": {}, "nor": {}, "for": {},
	"yet": {}, "so": {}, "after": {}, "before": {}, "while": {},
}

// PauseAfter returns the pause in unscaled seconds to insert after word.
// next is the following word, or empty when word is the last token.
func PauseAfter(word, next string) float64 {
	word = strings.TrimSpace(word)
	if word != "" {
		last, _ := utf8.DecodeLastRuneInString(word)
		switch last {
		case '.', '?', '!':
			return pauseSentence
		case ';', ':':
			return pauseClause
		case ',':
			return pauseComma
		}
	}

	if _, ok := phraseBoundaryWords[strings.ToLower(next)]; ok {
		return pausePhrase
	}
	return pauseDefault
}
