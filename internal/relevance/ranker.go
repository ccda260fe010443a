package relevance

import (
	"sort"
	"strings"

	"github.com/lil-jrg/cv-sorter/internal/candidate"
)

// Relevance floors. Candidates below the floor are excluded from the result
// entirely, not merely down-ranked.
const (
	// BroadFloor applies to the personnel-type workflow, where keywords are
	// generic ("técnico", "administrador").
	BroadFloor = 0.1
	// PositionFloor applies to position-specific keyword lists.
	PositionFloor = 0.3
)

// KeywordSets maps a personnel type to its literal pre-filter keywords. The
// value is built once at startup and injected; tests supply their own sets.
type KeywordSets map[string][]string

// Personnel types of the keyword-first workflow.
const (
	PersonnelField  = "campo"
	PersonnelOffice = "oficina"
)

// DefaultKeywordSets returns the built-in pre-filter vocabulary per personnel
// type.
func DefaultKeywordSets() KeywordSets {
	return KeywordSets{
		PersonnelField: {
			"curso gwo", "trabajos en altura", "extinción de incendios",
			"certificación bst", "bstr", "tecnico", "técnico", "especialista",
		},
		PersonnelOffice: {
			"administrador", "contador", "contadora", "recepcionista",
			"recursos humanos", "licenciado", "licenciada", "lic.", "asistente",
		},
	}
}

// Prefilter keeps only candidates whose raw text contains at least one of the
// keywords, case-insensitively. OR semantics: a single hit passes.
func Prefilter(candidates []*candidate.Profile, keywords []string) []*candidate.Profile {
	var out []*candidate.Profile
	for _, p := range candidates {
		if p == nil {
			continue
		}
		text := strings.ToLower(p.RawText)
		for _, kw := range keywords {
			if kw == "" {
				continue
			}
			if strings.Contains(text, strings.ToLower(kw)) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Ranked pairs a candidate with its corpus-relative relevance in [0, 1].
type Ranked struct {
	Profile   *candidate.Profile
	Relevance float64
}

// Rank fits a TF-IDF model over the batch corpus, encodes the job keywords as
// one pseudo-document in that vocabulary, and returns the candidates at or
// above the floor, descending by relevance. Ties keep discovery order.
//
// The fit is a synchronization barrier: all texts must be present before any
// candidate can be scored.
func Rank(candidates []*candidate.Profile, keywords []string, floor float64) []Ranked {
	if len(candidates) == 0 || len(keywords) == 0 {
		return nil
	}

	corpus := make([]string, len(candidates))
	for i, p := range candidates {
		corpus[i] = p.RawText
	}

	v := NewVectorizer(corpus)
	return rankWith(v, candidates, corpus, keywords, floor)
}

// RankFixed is the reproducible variant: the vocabulary comes from the
// keyword list itself, so a candidate's relevance does not depend on which
// other candidates share the batch.
func RankFixed(candidates []*candidate.Profile, keywords []string, floor float64) []Ranked {
	if len(candidates) == 0 || len(keywords) == 0 {
		return nil
	}

	corpus := make([]string, len(candidates))
	for i, p := range candidates {
		corpus[i] = p.RawText
	}

	v := NewFixedVectorizer(keywords)
	return rankWith(v, candidates, corpus, keywords, floor)
}

func rankWith(v *Vectorizer, candidates []*candidate.Profile, corpus, keywords []string, floor float64) []Ranked {
	query := v.Encode(strings.Join(keywords, " "))

	var out []Ranked
	for i, p := range candidates {
		rel := Cosine(query, v.Encode(corpus[i]))
		if rel >= floor {
			out = append(out, Ranked{Profile: p, Relevance: rel})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Relevance > out[j].Relevance
	})
	return out
}
