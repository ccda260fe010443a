package candidate

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Features is the normalized view of a profile the scorer works with. Skills
// holds explicit skill tokens followed by implied ones from experience roles
// and responsibilities. ExperienceYears sums the tenure of ongoing entries;
// overlapping entries are summed, not deduplicated.
type Features struct {
	Skills          []string
	Languages       []string
	ExperienceYears int
}

// ongoingMarkers flag an experience period as still running.
var ongoingMarkers = []string{"presente", "actual"}

var startYearRe = regexp.MustCompile(`[0-9]{2,}`)

// Normalize lower-cases and trims every candidate feature string into
// comparable tokens. It is pure: malformed entries degrade to zero years and
// no implied skill instead of failing.
func Normalize(p *Profile, now time.Time) Features {
	f := Features{}
	if p == nil {
		return f
	}

	for _, s := range p.Skills {
		if tok := Fold(s); tok != "" {
			f.Skills = append(f.Skills, tok)
		}
	}

	for _, exp := range p.Experience {
		// Roles and responsibilities are weak evidence of skill
		// possession, so they join the same token space.
		if tok := Fold(exp.Role); tok != "" {
			f.Skills = append(f.Skills, tok)
		}
		for _, resp := range exp.Responsibilities {
			if tok := Fold(resp); tok != "" {
				f.Skills = append(f.Skills, tok)
			}
		}

		f.ExperienceYears += yearsFromPeriod(exp.Period, now)
	}

	for _, lang := range p.Languages {
		if tok := Fold(lang.Language); tok != "" {
			f.Languages = append(f.Languages, tok)
		}
	}

	return f
}

// yearsFromPeriod extracts the contributed tenure from a free-form period
// string such as "2022 - presente". Only ongoing entries count; the start
// year is the first run of two or more digits before the first dash.
func yearsFromPeriod(period string, now time.Time) int {
	folded := Fold(period)
	if folded == "" {
		return 0
	}

	ongoing := false
	for _, marker := range ongoingMarkers {
		if strings.Contains(folded, marker) {
			ongoing = true
			break
		}
	}
	if !ongoing {
		return 0
	}

	start, _, _ := strings.Cut(folded, "-")
	digits := startYearRe.FindString(start)
	if digits == "" {
		return 0
	}

	year, err := strconv.Atoi(digits)
	if err != nil || year > now.Year() {
		return 0
	}

	return now.Year() - year
}

// Fold canonicalizes a feature string for comparison: Unicode NFC (OCR and
// LLM output mix composed and decomposed accents), lower case, trimmed.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}
