// Package scoring implements the fuzzy candidate-to-job rubric. The weights
// are hand-tuned recruiting constants and are pinned by tests; they are not
// free parameters.
package scoring

import (
	"math"
	"strings"

	"github.com/lil-jrg/cv-sorter/internal/candidate"
	"github.com/lil-jrg/cv-sorter/internal/registry"
)

// Rubric weights. Skill and language pools sum to 90 before bonuses; the two
// bonuses can bring a candidate up to the 100 cap.
const (
	RequiredSkillPool    = 50.0
	PreferredSkillPool   = 30.0
	RequiredLanguagePool = 7.0
	PreferredLanguagePool = 3.0

	// SubstringBonus is the minimum match strength when any single word of
	// a requirement appears as a substring of a candidate feature.
	SubstringBonus = 0.75

	// ExperienceBonusStep is the per-extra-year increment of the experience
	// bonus; ExperienceBonusCap caps the bonus itself.
	ExperienceBonusStep = 2.5
	ExperienceBonusCap  = 10.0

	// MomentumFloor is the running score at which the flat MomentumBonus is
	// granted, compensating for the rubric's conservative partial credit.
	MomentumFloor = 40.0
	MomentumBonus = 10.0

	MaxScore = 100.0
)

// Result is the outcome of scoring one candidate against one job.
type Result struct {
	Score    float64
	Suitable bool
}

// Score computes the 0-100 composite score and suitability verdict for the
// normalized features against the job profile.
func Score(f candidate.Features, job registry.JobProfile) Result {
	score := poolScore(job.RequiredSkills, f.Skills, RequiredSkillPool)
	score += poolScore(job.PreferredSkills, f.Skills, PreferredSkillPool)
	score += languageScore(job.RequiredLanguages, f.Languages, RequiredLanguagePool)
	score += languageScore(job.PreferredLanguages, f.Languages, PreferredLanguagePool)

	if f.ExperienceYears >= job.MinExperienceYears {
		extra := float64(f.ExperienceYears-job.MinExperienceYears+1) * ExperienceBonusStep
		score = math.Min(MaxScore, score+math.Min(ExperienceBonusCap, extra))
	}

	if score >= MomentumFloor {
		score = math.Min(MaxScore, score+MomentumBonus)
	}

	score = math.Round(score*10) / 10

	return Result{
		Score:    score,
		Suitable: score >= job.MinScore,
	}
}

// poolScore divides the pool equally among the requirements and credits each
// with its best fuzzy match strength. An empty requirement list contributes
// nothing; there is no division by zero.
func poolScore(requirements, features []string, pool float64) float64 {
	if len(requirements) == 0 {
		return 0
	}

	perSkill := pool / float64(len(requirements))
	total := 0.0
	for _, req := range requirements {
		total += perSkill * bestMatchStrength(candidate.Fold(req), features)
	}
	return total
}

// bestMatchStrength returns the strongest match of one requirement over all
// candidate features: the word-set overlap ratio, raised to at least
// SubstringBonus when any single requirement word occurs inside the feature.
func bestMatchStrength(requirement string, features []string) float64 {
	words := strings.Fields(requirement)
	if len(words) == 0 {
		return 0
	}

	best := 0.0
	for _, feature := range features {
		featureWords := fieldSet(feature)

		matched := 0
		for _, w := range words {
			if featureWords[w] {
				matched++
			}
		}
		overlap := float64(matched) / float64(len(words))
		if overlap > best {
			best = overlap
		}

		if best < SubstringBonus {
			for _, w := range words {
				if strings.Contains(feature, w) {
					best = SubstringBonus
					break
				}
			}
		}

		if best >= 1 {
			return 1
		}
	}
	return best
}

// languageScore credits the pool share for every required language that
// appears as a substring of any candidate language entry.
func languageScore(required, spoken []string, pool float64) float64 {
	if len(required) == 0 {
		return 0
	}

	perLanguage := pool / float64(len(required))
	total := 0.0
	for _, req := range required {
		folded := candidate.Fold(req)
		for _, lang := range spoken {
			if strings.Contains(lang, folded) {
				total += perLanguage
				break
			}
		}
	}
	return total
}

func fieldSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}
