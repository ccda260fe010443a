// Package report persists the outcome of a processing run: one JSON file per
// shortlisted candidate plus a full audit list, grouped under a timestamped
// run folder so consecutive runs never overwrite each other.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lil-jrg/cv-sorter/internal/batch"
	"github.com/lil-jrg/cv-sorter/internal/candidate"
)

const runFolderSuffix = "CV-Sorter"

// Entry is one candidate in a written report.
type Entry struct {
	Profile  *candidate.Profile `json:"perfil"`
	Score    float64            `json:"score"`
	Suitable bool               `json:"apto"`
	Contact  string             `json:"contacto_whatsapp,omitempty"`
}

// Writer lays out one run folder and writes report files into it.
type Writer struct {
	baseDir       string
	runDir        string
	recruiterName string
	now           func() time.Time
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithRecruiterName sets the name signing WhatsApp contact messages.
func WithRecruiterName(name string) WriterOption {
	return func(w *Writer) {
		if strings.TrimSpace(name) != "" {
			w.recruiterName = name
		}
	}
}

// WithWriterClock overrides the run folder timestamp clock, for tests.
func WithWriterClock(now func() time.Time) WriterOption {
	return func(w *Writer) { w.now = now }
}

// NewWriter creates the timestamped run folder under baseDir.
func NewWriter(baseDir string, opts ...WriterOption) (*Writer, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, fmt.Errorf("results directory is required")
	}

	w := &Writer{
		baseDir:       baseDir,
		recruiterName: DefaultRecruiterName,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}

	stamp := w.now().Format("2006-01-02_15-04-05")
	w.runDir = filepath.Join(baseDir, fmt.Sprintf("%s-%s", stamp, runFolderSuffix))
	if err := os.MkdirAll(w.runDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating run folder: %w", err)
	}

	return w, nil
}

// RunDir returns the folder this run writes into.
func (w *Writer) RunDir() string {
	return w.runDir
}

// WriteShortlist writes one file per shortlisted candidate, named by rank,
// job and candidate name. An empty shortlist writes nothing; that is a normal
// outcome, not an error. Returns the written paths in rank order.
func (w *Writer) WriteShortlist(jobID string, shortlist batch.Shortlist) ([]string, error) {
	paths := make([]string, 0, len(shortlist))

	for i, sc := range shortlist {
		name := "candidato"
		if sc.Profile != nil && strings.TrimSpace(sc.Profile.Name) != "" {
			name = sc.Profile.Name
		}

		filename := fmt.Sprintf("top%d_%s_%s.json", i+1, strings.ToLower(jobID), fileNameFragment(name))
		path := filepath.Join(w.runDir, filename)

		entry := Entry{
			Profile:  sc.Profile,
			Score:    sc.Score,
			Suitable: sc.Suitable,
			Contact:  w.contactFor(sc.Profile),
		}

		if err := w.writeJSON(path, entry); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// WriteAudit writes the full scored list, including unsuitable candidates, so
// every decision of the run can be reviewed.
func (w *Writer) WriteAudit(jobID string, results []batch.ScoredCandidate) (string, error) {
	entries := make([]Entry, 0, len(results))
	for _, sc := range results {
		entries = append(entries, Entry{
			Profile:  sc.Profile,
			Score:    sc.Score,
			Suitable: sc.Suitable,
		})
	}

	path := filepath.Join(w.runDir, fmt.Sprintf("resultados_%s.json", strings.ToLower(jobID)))
	if err := w.writeJSON(path, entries); err != nil {
		return "", err
	}
	return path, nil
}

func (w *Writer) contactFor(p *candidate.Profile) string {
	if p == nil || p.Phone == candidate.Unspecified {
		return NoContact
	}
	return WhatsAppLink(p.Phone, w.recruiterName, p.Name)
}

func (w *Writer) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", filepath.Base(path), err)
	}
	return nil
}

func fileNameFragment(name string) string {
	repl := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	return repl.Replace(strings.TrimSpace(name))
}
