package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lil-jrg/cv-sorter/internal/candidate"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

func TestRoundTrip(t *testing.T) {
	s := newStore(t)

	rec := &Record{
		Profile: &candidate.Profile{
			Name:   "María López",
			Skills: []string{"contabilidad"},
		},
		Score:    74.5,
		Suitable: true,
	}

	if err := s.Save("cv_maria.pdf", "auxiliar_contable", rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok := s.Load("cv_maria.pdf", "auxiliar_contable")
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if got.Score != 74.5 || !got.Suitable {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.Profile.Name != "María López" {
		t.Fatalf("unexpected profile name: %q", got.Profile.Name)
	}
	if got.Profile.SourceFile != "cv_maria.pdf" {
		t.Fatalf("expected source file restored, got %q", got.Profile.SourceFile)
	}
}

func TestLoadMisses(t *testing.T) {
	s := newStore(t)

	if _, ok := s.Load("missing.pdf", "auxiliar_contable"); ok {
		t.Fatalf("expected miss for absent record")
	}

	// A corrupt record is a miss, not an error.
	path := s.path("broken.pdf", "auxiliar_contable")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt record: %v", err)
	}
	if _, ok := s.Load("broken.pdf", "auxiliar_contable"); ok {
		t.Fatalf("expected miss for corrupt record")
	}
}

func TestSaveIsLastWriterWins(t *testing.T) {
	s := newStore(t)
	p := &candidate.Profile{Name: "X"}

	if err := s.Save("cv.pdf", "job", &Record{Profile: p, Score: 10}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := s.Save("cv.pdf", "job", &Record{Profile: p, Score: 20}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, ok := s.Load("cv.pdf", "job")
	if !ok || got.Score != 20 {
		t.Fatalf("expected last write to win, got %+v", got)
	}
}

func TestPurgeRemovesOnlyTargetJob(t *testing.T) {
	s := newStore(t)
	p := &candidate.Profile{Name: "X"}

	if err := s.Save("a.pdf", "auxiliar_contable", &Record{Profile: p, Score: 1}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save("b.pdf", "auxiliar_contable", &Record{Profile: p, Score: 2}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save("a.pdf", "recursos_humanos", &Record{Profile: p, Score: 3}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := s.Purge("auxiliar_contable"); err != nil {
		t.Fatalf("purge: %v", err)
	}

	if _, ok := s.Load("a.pdf", "auxiliar_contable"); ok {
		t.Fatalf("expected purged record gone")
	}
	if _, ok := s.Load("b.pdf", "auxiliar_contable"); ok {
		t.Fatalf("expected purged record gone")
	}
	if _, ok := s.Load("a.pdf", "recursos_humanos"); !ok {
		t.Fatalf("expected other job's record to survive purge")
	}
}

func TestSanitizedFileNames(t *testing.T) {
	s := newStore(t)

	got := s.path("Mi CV Final.PDF", "Auxiliar_Contable")
	want := filepath.Join(s.dir, "mi_cv_final_auxiliar_contable_cache.json")
	if got != want {
		t.Fatalf("unexpected path: %s", got)
	}
}
