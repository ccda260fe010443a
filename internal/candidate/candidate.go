package candidate

import (
	"encoding/json"
	"strings"
)

// Sentinel values used when the upstream extractor could not find a field.
// Scoring never sees a nil or missing field, only these.
const (
	NameNotFound = "Nombre no encontrado"
	Unspecified  = "No especificado"
	UnspecifiedF = "No especificada"
)

// Experience is a single work history entry as extracted from a CV.
type Experience struct {
	Role             string   `json:"puesto"`
	Company          string   `json:"empresa"`
	Period           string   `json:"periodo"`
	Responsibilities []string `json:"responsabilidades"`
}

// Language holds a language name and an optional proficiency level. Extractors
// emit either a bare string ("inglés (avanzado)") or an object, so both forms
// are accepted on decode.
type Language struct {
	Language string `json:"idioma"`
	Level    string `json:"nivel,omitempty"`
}

func (l *Language) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		l.Language = s
		l.Level = ""
		return nil
	}

	type plain Language
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*l = Language(p)
	return nil
}

func (l Language) MarshalJSON() ([]byte, error) {
	if l.Level == "" {
		return json.Marshal(l.Language)
	}
	type plain Language
	return json.Marshal(plain(l))
}

// Profile is one candidate as delivered by the extraction boundary. Contact
// fields flow through to reports only and never into scoring.
type Profile struct {
	Name       string       `json:"nombre"`
	Phone      string       `json:"telefono,omitempty"`
	Email      string       `json:"correo,omitempty"`
	Location   string       `json:"ubicacion,omitempty"`
	Education  []string     `json:"educacion,omitempty"`
	Skills     []string     `json:"habilidades"`
	Experience []Experience `json:"experiencia,omitempty"`
	Languages  []Language   `json:"idiomas,omitempty"`

	// RawText is the full extracted document text, used by the relevance
	// ranker. SourceFile identifies the document for caching.
	RawText    string `json:"-"`
	SourceFile string `json:"-"`
}

// Sanitize replaces empty fields with their sentinels so later stages can rely
// on every field being present.
func (p *Profile) Sanitize() {
	if strings.TrimSpace(p.Name) == "" {
		p.Name = NameNotFound
	}
	if strings.TrimSpace(p.Phone) == "" {
		p.Phone = Unspecified
	}
	if strings.TrimSpace(p.Email) == "" {
		p.Email = Unspecified
	}
	if strings.TrimSpace(p.Location) == "" {
		p.Location = UnspecifiedF
	}
	if len(p.Education) == 0 {
		p.Education = []string{UnspecifiedF}
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []Experience{}
	}
	if p.Languages == nil {
		p.Languages = []Language{}
	}
}

// Batch is a collection of candidates in discovery order.
type Batch struct {
	Items []*Profile
}

func (b *Batch) Len() int {
	return len(b.Items)
}

func (b *Batch) Append(p *Profile) {
	b.Items = append(b.Items, p)
}

func (b *Batch) FindBySource(sourceFile string) *Profile {
	for _, p := range b.Items {
		if p.SourceFile == sourceFile {
			return p
		}
	}
	return nil
}
