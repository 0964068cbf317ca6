// Package textsim computes bag-of-words similarity between short documents
// using TF-IDF weighting and cosine similarity.
//
// Every Fit builds its vocabulary and document frequencies from the corpus it
// is given and keeps nothing afterwards; two calls never share statistics.
package textsim

import "math"

// Vector is a sparse, L2-normalized TF-IDF row keyed by vocabulary index.
type Vector map[int]float64

// Model holds the vocabulary and IDF weights learned from one corpus.
type Model struct {
	vocab map[string]int
	idf   []float64
	rows  []Vector
}

// Vectorizer fits TF-IDF models. The zero value is not usable; use
// NewVectorizer.
type Vectorizer struct {
	analyzer Analyzer
}

// NewVectorizer returns a vectorizer using the given analyzer.
func NewVectorizer(a Analyzer) *Vectorizer {
	return &Vectorizer{analyzer: a}
}

// Fit learns the vocabulary and smoothed IDF over docs and returns the
// normalized row of every document.
//
//	idf(t) = ln((1 + n) / (1 + df(t))) + 1
//
// Term frequency is the raw count. A document with no terms gets an empty
// row; a corpus with no terms at all yields all-empty rows instead of an
// error.
func (v *Vectorizer) Fit(docs []string) *Model {
	analyzed := make([][]string, len(docs))
	vocab := make(map[string]int)
	var df []int
	for i, doc := range docs {
		terms := v.analyzer.Analyze(doc)
		analyzed[i] = terms
		seen := make(map[int]bool, len(terms))
		for _, t := range terms {
			idx, ok := vocab[t]
			if !ok {
				idx = len(vocab)
				vocab[t] = idx
				df = append(df, 0)
			}
			if !seen[idx] {
				seen[idx] = true
				df[idx]++
			}
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(df))
	for i, d := range df {
		idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}

	rows := make([]Vector, len(docs))
	for i, terms := range analyzed {
		row := make(Vector, len(terms))
		for _, t := range terms {
			idx := vocab[t]
			row[idx] += idf[idx]
		}
		rows[i] = normalize(row)
	}

	return &Model{vocab: vocab, idf: idf, rows: rows}
}

// Row returns the normalized vector of the i-th fitted document.
func (m *Model) Row(i int) Vector {
	return m.rows[i]
}

// VocabularySize returns the number of distinct terms in the fitted corpus.
func (m *Model) VocabularySize() int {
	return len(m.vocab)
}

// IDF returns the learned weight of term and whether it is in the vocabulary.
func (m *Model) IDF(term string) (float64, bool) {
	idx, ok := m.vocab[term]
	if !ok {
		return 0, false
	}
	return m.idf[idx], true
}

func normalize(v Vector) Vector {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return Vector{}
	}
	norm := math.Sqrt(sum)
	for k, x := range v {
		v[k] = x / norm
	}
	return v
}

// Cosine returns the cosine similarity of a and b. Either vector being empty
// gives 0.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot, na, nb float64
	for k, x := range a {
		dot += x * b[k]
		na += x * x
	}
	for _, x := range b {
		nb += x * x
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// QuerySimilarities fits a fresh model over query followed by candidates and
// returns the cosine similarity of the query to each candidate, in order.
func (v *Vectorizer) QuerySimilarities(query string, candidates []string) []float64 {
	if len(candidates) == 0 {
		return nil
	}
	corpus := make([]string, 0, len(candidates)+1)
	corpus = append(corpus, query)
	corpus = append(corpus, candidates...)
	model := v.Fit(corpus)

	q := model.Row(0)
	scores := make([]float64, len(candidates))
	for i := range candidates {
		scores[i] = Cosine(q, model.Row(i+1))
	}
	return scores
}

// Round rounds x to the given number of decimal places, halves to even.
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.RoundToEven(x*p) / p
}
