package candidate

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

var fixedNow = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestNormalizeFlattensExperience(t *testing.T) {
	p := &Profile{
		Skills: []string{"  Contabilidad ", "Excel Avanzado"},
		Experience: []Experience{
			{
				Role:             "Auxiliar Contable",
				Company:          "ACME",
				Period:           "2022 - presente",
				Responsibilities: []string{"Conciliaciones bancarias", ""},
			},
		},
		Languages: []Language{{Language: "Español"}, {Language: "Inglés", Level: "intermedio"}},
	}

	f := Normalize(p, fixedNow)

	wantSkills := []string{
		"contabilidad",
		"excel avanzado",
		"auxiliar contable",
		"conciliaciones bancarias",
	}
	if !reflect.DeepEqual(f.Skills, wantSkills) {
		t.Fatalf("unexpected skills: %v", f.Skills)
	}

	wantLangs := []string{"español", "inglés"}
	if !reflect.DeepEqual(f.Languages, wantLangs) {
		t.Fatalf("unexpected languages: %v", f.Languages)
	}

	if f.ExperienceYears != 2 {
		t.Fatalf("expected 2 years, got %d", f.ExperienceYears)
	}
}

func TestNormalizeNilProfile(t *testing.T) {
	f := Normalize(nil, fixedNow)
	if len(f.Skills) != 0 || len(f.Languages) != 0 || f.ExperienceYears != 0 {
		t.Fatalf("expected empty features, got %+v", f)
	}
}

func TestYearsFromPeriod(t *testing.T) {
	cases := []struct {
		name   string
		period string
		want   int
	}{
		{"ongoing dash", "2022-presente", 2},
		{"ongoing spaced", "2020 - Actual", 4},
		{"finished", "2019-2021", 0},
		{"no start year", "presente", 0},
		{"garbage", "???", 0},
		{"empty", "", 0},
		{"future start", "2030-presente", 0},
		{"month prefix", "enero 2021 - presente", 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := yearsFromPeriod(tc.period, fixedNow)
			if got != tc.want {
				t.Fatalf("yearsFromPeriod(%q) = %d, want %d", tc.period, got, tc.want)
			}
		})
	}
}

func TestYearsAcrossEntriesAreSummed(t *testing.T) {
	p := &Profile{
		Experience: []Experience{
			{Period: "2022-presente"},
			{Period: "2020 - actual"},
		},
	}

	f := Normalize(p, fixedNow)
	if f.ExperienceYears != 6 {
		t.Fatalf("expected summed tenure of 6, got %d", f.ExperienceYears)
	}
}

func TestLanguageDecodeBothForms(t *testing.T) {
	raw := `["inglés (avanzado)", {"idioma": "francés", "nivel": "básico"}]`

	var langs []Language
	if err := json.Unmarshal([]byte(raw), &langs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if langs[0].Language != "inglés (avanzado)" || langs[0].Level != "" {
		t.Fatalf("unexpected first language: %+v", langs[0])
	}
	if langs[1].Language != "francés" || langs[1].Level != "básico" {
		t.Fatalf("unexpected second language: %+v", langs[1])
	}
}

func TestSanitizeFillsSentinels(t *testing.T) {
	p := &Profile{}
	p.Sanitize()

	if p.Name != NameNotFound {
		t.Fatalf("expected name sentinel, got %q", p.Name)
	}
	if p.Phone != Unspecified || p.Email != Unspecified {
		t.Fatalf("expected contact sentinels, got %q / %q", p.Phone, p.Email)
	}
	if len(p.Education) != 1 || p.Education[0] != UnspecifiedF {
		t.Fatalf("expected education sentinel, got %v", p.Education)
	}
	if p.Skills == nil || p.Experience == nil || p.Languages == nil {
		t.Fatalf("expected empty slices, got nils")
	}
}

func TestFold(t *testing.T) {
	// Decomposed e + combining acute must compare equal to the composed form.
	decomposed := "Inglés"
	if Fold(decomposed) != "inglés" {
		t.Fatalf("expected NFC fold, got %q", Fold(decomposed))
	}
}
