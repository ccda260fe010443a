// Package registry holds the static table of job profiles candidates are
// ranked against. The table is immutable after construction; scoring never
// mutates it.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownJob is returned by Lookup for job ids with no profile. Callers
// must treat it as fatal for the run: scoring against an undefined profile is
// a configuration error, not a scoring outcome.
var ErrUnknownJob = errors.New("unknown job id")

// JobProfile describes the requirements of one position.
type JobProfile struct {
	ID                 string
	Title              string
	Category           string
	RequiredSkills     []string
	PreferredSkills    []string
	RequiredLanguages  []string
	PreferredLanguages []string
	MinExperienceYears int
	// MinScore is the 0-100 passing threshold for the suitability verdict.
	MinScore float64
}

// Registry maps job ids to their profiles, case-insensitively.
type Registry struct {
	profiles map[string]JobProfile
	order    []string
}

// New builds a registry from the given profiles. Later duplicates of an id
// override earlier ones.
func New(profiles []JobProfile) *Registry {
	r := &Registry{profiles: make(map[string]JobProfile, len(profiles))}
	for _, p := range profiles {
		id := normalizeID(p.ID)
		if _, exists := r.profiles[id]; !exists {
			r.order = append(r.order, id)
		}
		r.profiles[id] = p
	}
	return r
}

// Lookup resolves a job id to its profile.
func (r *Registry) Lookup(jobID string) (JobProfile, error) {
	p, ok := r.profiles[normalizeID(jobID)]
	if !ok {
		return JobProfile{}, fmt.Errorf("%w: %q", ErrUnknownJob, jobID)
	}
	return p, nil
}

// IDs returns all job ids in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Categories returns the distinct profile categories, sorted.
func (r *Registry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, id := range r.order {
		cat := r.profiles[id].Category
		if cat != "" && !seen[cat] {
			seen[cat] = true
			cats = append(cats, cat)
		}
	}
	sort.Strings(cats)
	return cats
}

// ByCategory returns the profiles of one category in registration order.
func (r *Registry) ByCategory(category string) []JobProfile {
	var out []JobProfile
	for _, id := range r.order {
		if strings.EqualFold(r.profiles[id].Category, category) {
			out = append(out, r.profiles[id])
		}
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.order)
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
