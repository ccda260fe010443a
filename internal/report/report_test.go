package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lil-jrg/cv-sorter/internal/batch"
	"github.com/lil-jrg/cv-sorter/internal/candidate"
)

func fixedWriterClock() time.Time {
	return time.Date(2025, time.March, 10, 14, 30, 5, 0, time.UTC)
}

func newWriter(t *testing.T) *Writer {
	t.Helper()
	w, err := NewWriter(t.TempDir(), WithWriterClock(fixedWriterClock))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return w
}

func TestNewWriterCreatesTimestampedRunFolder(t *testing.T) {
	w := newWriter(t)

	if filepath.Base(w.RunDir()) != "2025-03-10_14-30-05-CV-Sorter" {
		t.Fatalf("unexpected run folder: %s", w.RunDir())
	}
	if _, err := os.Stat(w.RunDir()); err != nil {
		t.Fatalf("run folder not created: %v", err)
	}
}

func TestWriteShortlist(t *testing.T) {
	w := newWriter(t)

	shortlist := batch.Shortlist{
		{
			Profile:  &candidate.Profile{Name: "María López", Phone: "55 1234 5678"},
			Score:    74.5,
			Suitable: true,
		},
		{
			Profile:  &candidate.Profile{Name: "Juan Pérez", Phone: candidate.Unspecified},
			Score:    68,
			Suitable: true,
		},
	}

	paths, err := w.WriteShortlist("Auxiliar_Contable", shortlist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 files, got %d", len(paths))
	}

	if filepath.Base(paths[0]) != "top1_auxiliar_contable_María_López.json" {
		t.Fatalf("unexpected file name: %s", filepath.Base(paths[0]))
	}

	data, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if entry.Score != 74.5 || !entry.Suitable {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if !strings.HasPrefix(entry.Contact, "https://wa.me/+5255") {
		t.Fatalf("unexpected contact link: %s", entry.Contact)
	}

	// Unspecified phone degrades to a marker, never a broken link.
	data, err = os.ReadFile(paths[1])
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if entry.Contact != NoContact {
		t.Fatalf("expected no-contact marker, got %s", entry.Contact)
	}
}

func TestWriteShortlistEmptyIsNormal(t *testing.T) {
	w := newWriter(t)

	paths, err := w.WriteShortlist("auxiliar_contable", nil)
	if err != nil {
		t.Fatalf("empty shortlist must not error: %v", err)
	}
	if len(paths) != 0 {
		t.Fatalf("expected no files, got %v", paths)
	}
}

func TestWriteAudit(t *testing.T) {
	w := newWriter(t)

	results := []batch.ScoredCandidate{
		{Profile: &candidate.Profile{Name: "A"}, Score: 74.5, Suitable: true},
		{Profile: &candidate.Profile{Name: "B"}, Score: 12, Suitable: false},
	}

	path, err := w.WriteAudit("auxiliar_contable", results)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "resultados_auxiliar_contable.json" {
		t.Fatalf("unexpected audit file name: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read audit: %v", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("decode audit: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected all candidates in audit, got %d", len(entries))
	}
	if entries[1].Suitable {
		t.Fatalf("unsuitable candidate must stay marked: %+v", entries[1])
	}
}

func TestWhatsAppLink(t *testing.T) {
	tests := []struct {
		name   string
		phone  string
		expect string
	}{
		{
			name:   "strips formatting and adds country code",
			phone:  "(55) 1234-5678",
			expect: "https://wa.me/+525512345678?text=",
		},
		{
			name:   "no digits means no contact",
			phone:  "N/A",
			expect: NoContact,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WhatsAppLink(tt.phone, "Laura", "María")
			if !strings.HasPrefix(got, tt.expect) {
				t.Fatalf("expected prefix %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestWhatsAppLinkMessageIsEscaped(t *testing.T) {
	got := WhatsAppLink("5512345678", "", "María")
	if strings.ContainsAny(got, " ¿") {
		t.Fatalf("message not escaped: %s", got)
	}
	if !strings.Contains(got, "Recursos+Humanos") {
		t.Fatalf("expected default recruiter name in message: %s", got)
	}
}
