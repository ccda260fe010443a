package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lil-jrg/cv-sorter/internal/batch"
	"github.com/lil-jrg/cv-sorter/internal/cache"
	"github.com/lil-jrg/cv-sorter/internal/candidate"
	"github.com/lil-jrg/cv-sorter/internal/extract"
	"github.com/lil-jrg/cv-sorter/internal/logger"
	"github.com/lil-jrg/cv-sorter/internal/registry"
	"github.com/lil-jrg/cv-sorter/internal/relevance"
	"github.com/lil-jrg/cv-sorter/internal/report"
	"github.com/lil-jrg/cv-sorter/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes = "Sí"
	PromptNo  = "No"

	ModeMatch     = "match"
	ModeRelevance = "relevance"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Score the CVs in the curriculums folder against a job profile and write the shortlist",
	Run: func(cmd *cobra.Command, _ []string) {
		rank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().String("job", "", "job profile id, e.g. auxiliar_contable. Interactive menu when unset.")
	rankCmd.Flags().String("mode", ModeMatch, "ranking mode: match (rubric scoring) or relevance (tf-idf)")
	rankCmd.Flags().String("personnel", relevance.PersonnelOffice, "personnel type for the relevance pre-filter: oficina or campo")
	rankCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for confirmation before writing results")
	rankCmd.Flags().Bool("no-cache", false, "score every CV even when a cached result exists")
	rankCmd.Flags().Bool("fresh", false, "purge cached results for the job before scoring")
	rankCmd.Flags().IntP("top", "k", batch.DefaultTopK, "shortlist size")
	rankCmd.Flags().Int("workers", batch.DefaultWorkers, "scoring worker pool size")

	viper.BindPFlag("workers", rankCmd.Flags().Lookup("workers"))
}

// rank is the main command for the cli.
func rank(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the cv-sorter", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	reg := registry.Default()

	jobID, err := resolveJob(cmd, reg)
	if err != nil {
		logger.Fatal("selecting a job profile", zap.Error(err))
	}

	job, err := reg.Lookup(jobID)
	if err != nil {
		logger.Fatal("unknown job profile",
			zap.Error(err),
			zap.Strings("known job ids", reg.IDs()),
		)
	}

	extractor := prepareExtractor(ctx, config, logger)

	candidates, err := loadCandidates(ctx, config.CurriculumsDir, extractor, logger)
	if err != nil {
		logger.Fatal("loading candidate documents", zap.Error(err))
	}

	if candidates.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no candidate documents found"),
			zap.String("curriculums_dir", config.CurriculumsDir))
		return
	}

	logger.Info("loaded candidates", zap.Int("count", candidates.Len()))

	var results []batch.ScoredCandidate
	switch mode := cmd.Flag("mode").Value.String(); mode {
	case ModeMatch:
		results, err = runMatch(ctx, cmd, config, reg, job, candidates, logger)
	case ModeRelevance:
		results, err = runRelevance(cmd, job, candidates, logger)
	default:
		logger.Fatal("invalid mode", zap.String("mode", mode))
	}
	if err != nil {
		logger.Fatal("scoring failed", zap.Error(err))
	}

	top, _ := cmd.Flags().GetInt("top")
	shortlist := batch.SelectTop(results, top)

	if len(shortlist) == 0 {
		logger.Info("no suitable candidates for the job", zap.String("job_id", job.ID))
		return
	}

	for i, sc := range shortlist {
		logger.Info("shortlisted candidate",
			zap.Int("rank", i+1),
			zap.String("name", sc.Profile.Name),
			zap.Float64("score", sc.Score),
			zap.Bool("from_cache", sc.FromCache),
		)
	}

	if cmd.Flag("auto-approve").Value.String() == "false" {
		prompt := promptui.Select{
			Label: "¿Guardar los resultados?",
			Items: []string{PromptYes, PromptNo},
		}
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		if action == PromptNo {
			logger.Info("exiting", zap.String("reason", "got no from prompt"))
			return
		}
	}

	writer, err := report.NewWriter(config.ResultsDir, report.WithRecruiterName(config.RecruiterName))
	if err != nil {
		logger.Fatal("creating the results folder", zap.Error(err))
	}

	paths, err := writer.WriteShortlist(job.ID, shortlist)
	if err != nil {
		logger.Fatal("writing the shortlist", zap.Error(err))
	}

	auditPath, err := writer.WriteAudit(job.ID, results)
	if err != nil {
		logger.Fatal("writing the audit list", zap.Error(err))
	}

	logger.Info("results saved",
		zap.String("run_dir", writer.RunDir()),
		zap.Strings("shortlist", paths),
		zap.String("audit", auditPath),
	)
}

func runMatch(ctx context.Context, cmd *cobra.Command, config *Config, reg *registry.Registry, job registry.JobProfile, candidates *candidate.Batch, logger *zap.Logger) ([]batch.ScoredCandidate, error) {
	opts := []batch.Option{}

	if cmd.Flag("no-cache").Value.String() == "false" {
		store, err := cache.New(config.CacheDir)
		if err != nil {
			return nil, fmt.Errorf("opening the score cache: %w", err)
		}

		if cmd.Flag("fresh").Value.String() == "true" {
			if err := store.Purge(job.ID); err != nil {
				return nil, fmt.Errorf("purging the score cache: %w", err)
			}
			logger.Info("purged cached results", zap.String("job_id", job.ID))
		}

		opts = append(opts, batch.WithCache(store))
	}

	if config.Workers > 0 {
		opts = append(opts, batch.WithWorkers(config.Workers))
	}

	runner := batch.NewRunner(reg, logger, opts...)

	results, step, err := runner.Run(ctx, job.ID, candidates.Items)
	if err != nil {
		return results, err
	}

	logger.Info("scoring finished",
		zap.Int("total", step.Total),
		zap.Int("from_cache", step.FromCache),
		zap.Int("suitable", step.Suitable),
	)

	return results, nil
}

// runRelevance ranks by TF-IDF similarity to the job's skill vocabulary
// instead of the suitability rubric. Candidates at or above the position
// floor count as suitable; the relevance is surfaced on the 0-100 scale.
func runRelevance(cmd *cobra.Command, job registry.JobProfile, candidates *candidate.Batch, logger *zap.Logger) ([]batch.ScoredCandidate, error) {
	personnel := cmd.Flag("personnel").Value.String()
	keywords, ok := relevance.DefaultKeywordSets()[personnel]
	if !ok {
		return nil, fmt.Errorf("unknown personnel type: %s", personnel)
	}

	pre := relevance.Prefilter(candidates.Items, keywords)
	logger.Info("pre-filtered candidates",
		zap.String("personnel", personnel),
		zap.Int("kept", len(pre)),
		zap.Int("total", candidates.Len()),
	)

	jobKeywords := append(append([]string{}, job.RequiredSkills...), job.PreferredSkills...)

	ranked := relevance.Rank(pre, jobKeywords, relevance.PositionFloor)

	results := make([]batch.ScoredCandidate, 0, len(ranked))
	for _, r := range ranked {
		results = append(results, batch.ScoredCandidate{
			Profile:  r.Profile,
			Score:    roundRelevance(r.Relevance * 100),
			Suitable: true,
		})
	}
	return results, nil
}

func roundRelevance(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

// resolveJob returns the job id from the flag, or walks the category and job
// menus when the flag is unset.
func resolveJob(cmd *cobra.Command, reg *registry.Registry) (string, error) {
	if jobID := strings.TrimSpace(cmd.Flag("job").Value.String()); jobID != "" {
		return jobID, nil
	}

	categoryPrompt := promptui.Select{
		Label: "Seleccione una categoría",
		Items: reg.Categories(),
	}
	_, category, err := categoryPrompt.Run()
	if err != nil {
		return "", err
	}

	jobs := reg.ByCategory(category)
	items := make([]string, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, j.Title)
	}

	jobPrompt := promptui.Select{
		Label: "Seleccione un puesto",
		Items: items,
		Size:  len(items),
	}
	idx, _, err := jobPrompt.Run()
	if err != nil {
		return "", err
	}

	return jobs[idx].ID, nil
}

// prepareExtractor builds the Gemini-backed extractor, or returns nil when no
// API key is configured. Without it only pre-extracted .json documents load.
func prepareExtractor(ctx context.Context, config *Config, logger *zap.Logger) *extract.Extractor {
	gemini := config.Gemini
	if gemini == nil {
		gemini = &GeminiConfig{APIKeyFile: viper.GetString("gemini.api-key-file")}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: gemini.APIKeyFile,
	})
	if err != nil {
		logger.Warn("extraction disabled, raw .txt documents will be skipped",
			zap.Error(err),
			zap.String("hint", "set gemini.api-key-file or GEMINI_API_KEY_FILE"),
		)
		return nil
	}

	generator, err := extract.NewGenerator(ctx, apiKey, gemini.Model)
	if err != nil {
		logger.Warn("extraction disabled", zap.Error(err))
		return nil
	}

	extractLogger := logger.With(zap.String("model", generator.Model()))

	opts := []extract.ExtractorOption{}
	if gemini.MaxRetries > 0 {
		opts = append(opts, extract.WithMaxRetries(gemini.MaxRetries))
	}

	return extract.NewExtractor(generator, extractLogger, opts...)
}

// loadCandidates reads the curriculums folder: .json files are pre-extracted
// profiles, .txt files are raw CV text handed to the extractor. A document
// that fails to load is logged and skipped, never fatal.
func loadCandidates(ctx context.Context, dir string, extractor *extract.Extractor, logger *zap.Logger) (*candidate.Batch, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading curriculums folder: %w", err)
	}

	b := &candidate.Batch{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		path := filepath.Join(dir, name)

		switch strings.ToLower(filepath.Ext(name)) {
		case ".json":
			p, err := loadProfileFile(path)
			if err != nil {
				logger.Warn("skipping unreadable profile", zap.String("document", name), zap.Error(err))
				continue
			}
			p.SourceFile = name
			b.Append(p)
		case ".txt":
			if extractor == nil {
				logger.Warn("skipping raw document, extraction disabled", zap.String("document", name))
				continue
			}
			data, err := os.ReadFile(path)
			if err != nil {
				logger.Warn("skipping unreadable document", zap.String("document", name), zap.Error(err))
				continue
			}
			p, err := extractor.Extract(ctx, name, string(data))
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return b, err
				}
				logger.Warn("skipping document, extraction failed", zap.String("document", name), zap.Error(err))
				continue
			}
			b.Append(p)
		}
	}

	return b, nil
}

func loadProfileFile(path string) (*candidate.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p candidate.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	p.RawText = string(data)
	p.Sanitize()
	return &p, nil
}
