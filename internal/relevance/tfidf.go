// Package relevance implements the vector-space ranking mode: candidates are
// pre-filtered by literal job keywords, then ranked by cosine similarity
// between TF-IDF document vectors and a keyword pseudo-document.
//
// The model is fitted per batch, so a candidate's relevance is corpus-relative:
// the same CV can score differently in a different batch. That is a documented
// property of the mode, not a defect; NewFixedVectorizer gives a reproducible
// vocabulary when that property is undesirable.
package relevance

import (
	"math"
	"strings"
	"unicode"
)

// Vectorizer encodes documents as TF-IDF weight vectors over a fixed
// vocabulary. Fitting happens once per batch; Encode is then safe for
// concurrent use.
type Vectorizer struct {
	vocab map[string]int
	idf   []float64
}

// NewVectorizer fits vocabulary and inverse document frequencies over the
// given corpus. Every distinct token of every document enters the vocabulary.
func NewVectorizer(corpus []string) *Vectorizer {
	v := &Vectorizer{vocab: make(map[string]int)}

	df := make([]int, 0)
	for _, doc := range corpus {
		seen := make(map[int]bool)
		for _, tok := range Tokenize(doc) {
			idx, ok := v.vocab[tok]
			if !ok {
				idx = len(v.vocab)
				v.vocab[tok] = idx
				df = append(df, 0)
			}
			if !seen[idx] {
				seen[idx] = true
				df[idx]++
			}
		}
	}

	n := float64(len(corpus))
	v.idf = make([]float64, len(df))
	for i, d := range df {
		v.idf[i] = math.Log(1 + n/float64(1+d))
	}
	return v
}

// NewFixedVectorizer builds a vectorizer whose vocabulary comes from the given
// term list instead of a batch corpus, for reproducible single-candidate
// scoring. All terms carry unit weight.
func NewFixedVectorizer(terms []string) *Vectorizer {
	v := &Vectorizer{vocab: make(map[string]int)}
	for _, term := range terms {
		for _, tok := range Tokenize(term) {
			if _, ok := v.vocab[tok]; !ok {
				v.vocab[tok] = len(v.vocab)
			}
		}
	}
	v.idf = make([]float64, len(v.vocab))
	for i := range v.idf {
		v.idf[i] = 1
	}
	return v
}

// Encode maps a document onto the fitted vocabulary. Tokens outside the
// vocabulary are dropped.
func (v *Vectorizer) Encode(doc string) []float64 {
	vec := make([]float64, len(v.vocab))

	tokens := Tokenize(doc)
	if len(tokens) == 0 {
		return vec
	}

	counts := make(map[int]int)
	for _, tok := range tokens {
		if idx, ok := v.vocab[tok]; ok {
			counts[idx]++
		}
	}

	docLen := float64(len(tokens))
	for idx, count := range counts {
		vec[idx] = float64(count) / docLen * v.idf[idx]
	}
	return vec
}

// VocabularySize reports the number of fitted terms.
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocab)
}

// Cosine returns the normalized dot product of two equal-length vectors,
// in [0, 1] for non-negative weights. Zero vectors yield 0.
func Cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Tokenize splits text into lowercase word tokens of three or more runes,
// dropping stop words. Letters and digits are word characters; everything
// else separates tokens.
func Tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	out := make([]string, 0, len(words))
	for _, w := range words {
		if len([]rune(w)) >= 3 && !stopWords[w] {
			out = append(out, w)
		}
	}
	return out
}

// stopWords covers the filler vocabulary of the CVs this tool sees, which mix
// Spanish and English.
var stopWords = map[string]bool{
	// Spanish
	"las": true, "los": true, "del": true, "por": true, "con": true,
	"para": true, "una": true, "uno": true, "que": true, "como": true,
	"más": true, "mas": true, "sus": true, "este": true, "esta": true,
	"entre": true, "sobre": true, "desde": true, "hasta": true,
	// English
	"the": true, "and": true, "for": true, "with": true, "that": true,
	"this": true, "from": true, "have": true, "been": true, "will": true,
	"their": true, "about": true, "which": true, "would": true,
}
