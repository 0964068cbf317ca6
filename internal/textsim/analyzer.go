package textsim

import (
	"strings"
	"unicode"
)

// Tokenize lowercases doc and splits it into runs of word characters
// (letters, digits, marks, underscore). Runs shorter than two characters
// are dropped.
func Tokenize(doc string) []string {
	var tokens []string
	var cur []rune
	flush := func() {
		if len(cur) >= 2 {
			tokens = append(tokens, string(cur))
		}
		cur = cur[:0]
	}
	for _, r := range strings.ToLower(doc) {
		if isWordRune(r) {
			cur = append(cur, r)
			continue
		}
		flush()
	}
	flush()
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// Analyzer turns a document into the terms counted by the vectorizer.
type Analyzer struct {
	MinN      int
	MaxN      int
	StopWords map[string]struct{}
}

// DefaultAnalyzer emits unigrams and bigrams with English stop words removed.
func DefaultAnalyzer() Analyzer {
	return Analyzer{MinN: 1, MaxN: 2, StopWords: englishStopWords}
}

// Analyze tokenizes doc, removes stop words, then emits all n-grams for
// n in [MinN, MaxN] over the remaining tokens, shortest first. N-grams are
// built after stop-word removal, so a bigram may span a removed word.
func (a Analyzer) Analyze(doc string) []string {
	var kept []string
	for _, tok := range Tokenize(doc) {
		if _, stop := a.StopWords[tok]; stop {
			continue
		}
		kept = append(kept, tok)
	}

	minN, maxN := a.MinN, a.MaxN
	if minN < 1 {
		minN = 1
	}
	if maxN < minN {
		maxN = minN
	}

	var terms []string
	for n := minN; n <= maxN; n++ {
		for i := 0; i+n <= len(kept); i++ {
			terms = append(terms, strings.Join(kept[i:i+n], " "))
		}
	}
	return terms
}
