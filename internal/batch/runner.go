// Package batch runs a scoring pass over all candidates of one processing
// run and selects the shortlist. Candidates are independent, so scoring is
// fanned out over a small worker pool; the only shared inputs are the
// read-only job profile and the optional cache.
package batch

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lil-jrg/cv-sorter/internal/cache"
	"github.com/lil-jrg/cv-sorter/internal/candidate"
	"github.com/lil-jrg/cv-sorter/internal/registry"
	"github.com/lil-jrg/cv-sorter/internal/scoring"
)

// DefaultWorkers matches the pool size the tool has always used for
// CPU-bound scoring.
const DefaultWorkers = 4

// Runner scores batches of candidates against a job profile.
type Runner struct {
	registry *registry.Registry
	store    *cache.Store
	logger   *zap.Logger
	workers  int
	now      func() time.Time
}

// Step summarizes one batch run for logging and reporting.
type Step struct {
	Total     int
	FromCache int
	Suitable  int
}

// Option configures a Runner.
type Option func(*Runner)

// WithCache enables the on-disk score cache.
func WithCache(store *cache.Store) Option {
	return func(r *Runner) { r.store = store }
}

// WithWorkers overrides the worker pool size.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithClock overrides the tenure reference clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// NewRunner builds a Runner over the given profile registry.
func NewRunner(reg *registry.Registry, logger *zap.Logger, opts ...Option) *Runner {
	r := &Runner{
		registry: reg,
		logger:   logger,
		workers:  DefaultWorkers,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run scores every candidate against the job and returns the full audit list
// in discovery order plus run statistics. An unknown job id fails before any
// scoring starts. Per-candidate failures degrade to a zero score; a canceled
// context stops new work but already computed scores are kept.
func (r *Runner) Run(ctx context.Context, jobID string, candidates []*candidate.Profile) ([]ScoredCandidate, Step, error) {
	job, err := r.registry.Lookup(jobID)
	if err != nil {
		return nil, Step{}, err
	}

	results := make([]ScoredCandidate, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, p := range candidates {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			results[i] = r.scoreOne(job, p)
			return nil
		})
	}

	runErr := g.Wait()

	step := Step{Total: len(candidates)}
	for _, sc := range results {
		if sc.FromCache {
			step.FromCache++
		}
		if sc.Suitable {
			step.Suitable++
		}
	}

	r.logger.Info("batch scored",
		zap.String("job_id", job.ID),
		zap.Int("total", step.Total),
		zap.Int("from_cache", step.FromCache),
		zap.Int("suitable", step.Suitable),
	)

	return results, step, runErr
}

func (r *Runner) scoreOne(job registry.JobProfile, p *candidate.Profile) ScoredCandidate {
	if p == nil {
		// A candidate the extractor could not produce still occupies its
		// slot with a neutral zero so the batch keeps going.
		return ScoredCandidate{Profile: &candidate.Profile{Name: candidate.NameNotFound}}
	}

	if r.store != nil {
		if rec, ok := r.store.Load(p.SourceFile, job.ID); ok {
			r.logger.Debug("cache hit",
				zap.String("document", p.SourceFile),
				zap.String("job_id", job.ID),
				zap.Float64("score", rec.Score),
			)
			return ScoredCandidate{
				Profile:   rec.Profile,
				Score:     rec.Score,
				Suitable:  rec.Suitable,
				FromCache: true,
			}
		}
	}

	features := candidate.Normalize(p, r.now())
	res := scoring.Score(features, job)

	if r.store != nil {
		rec := &cache.Record{Profile: p, Score: res.Score, Suitable: res.Suitable}
		if err := r.store.Save(p.SourceFile, job.ID, rec); err != nil {
			r.logger.Warn("cache write failed",
				zap.String("document", p.SourceFile),
				zap.Error(err),
			)
		}
	}

	return ScoredCandidate{Profile: p, Score: res.Score, Suitable: res.Suitable}
}
