package tokenizer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// wordRegex matches maximal runs of word characters in already-lowercased
// text. Go's \w is ASCII-only, so the class is spelled out to keep letters
// and digits from any script (plus underscore).
var wordRegex = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// stopWords is the fixed set of common English function words excluded from
// indexing and querying.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"from": {}, "as": {}, "is": {}, "was": {}, "are": {}, "were": {},
	"been": {}, "be": {}, "have": {}, "has": {}, "had": {}, "do": {},
	"does": {}, "did": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "may": {}, "might": {}, "can": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "i": {}, "you": {}, "he": {}, "she": {},
	"it": {}, "we": {}, "they": {}, "them": {}, "their": {},
}

// minTokenLength is exclusive: tokens must be longer than this to survive.
const minTokenLength = 2

// Tokenize converts text into a slice of index terms. It lowercases the
// input, extracts word-character runs, and drops stop-words and tokens of
// 2 or fewer runes. Empty or whitespace-only input yields an empty slice.
func Tokenize(text string) []string {
	words := wordRegex.FindAllString(strings.ToLower(text), -1)

	tokens := make([]string, 0, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) <= minTokenLength {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// IsStopWord reports whether the given (lowercase) word is in the stop-word set.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}
