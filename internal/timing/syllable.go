package timing

import (
	"strings"
	"unicode/utf8"
)

var vowels = map[rune]struct{}{
	'a': {}, 'e': {}, 'i': {}, 'o': {}, 'u': {}, 'y': {},
}

// strippablePunctuation is the punctuation class removed before counting
// vowel runs. Only the first matched character is stripped.
var strippablePunctuation = map[rune]struct{}{
	'.': {}, ',': {}, '!': {}, '?': {}, ';': {}, ':': {},
}

func isVowel(r rune) bool {
	_, ok := vowels[r]
	return ok
}

// stripFirstPunctuation removes the first character belonging to the
// strippable punctuation class, leaving any later occurrences in place.
func stripFirstPunctuation(word string) string {
	for i, r := range word {
		if _, ok := strippablePunctuation[r]; ok {
			return word[:i] + word[i+utf8.RuneLen(r):]
		}
	}
	return word
}

// CountSyllables estimates the syllable count of a single word. Each
// maximal run of consecutive vowels counts as one syllable, a trailing
// silent "e" is discounted, and a consonant+"le" ending ("simple") adds
// one back. The result is never below 1.
func CountSyllables(word string) int {
	w := strings.ToLower(word)
	if utf8.RuneCountInString(w) <= 3 {
		return 1
	}

	w = stripFirstPunctuation(w)
	runes := []rune(w)

	count := 0
	prevVowel := false
	for _, r := range runes {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	if strings.HasSuffix(w, "e") {
		count--
	}
	if strings.HasSuffix(w, "le") && len(runes) > 2 && !isVowel(runes[len(runes)-3]) {
		count++
	}

	if count < 1 {
		count = 1
	}
	return count
}
