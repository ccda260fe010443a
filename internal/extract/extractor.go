// Package extract turns raw CV text into structured candidate profiles by
// prompting a generative model and decoding its JSON answer. The model is the
// only component allowed to guess; everything downstream treats the decoded
// profile as ground truth.
package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/lil-jrg/cv-sorter/internal/candidate"
	"github.com/lil-jrg/cv-sorter/internal/utils"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const (
	defaultMaxRetries   = 3
	defaultRetryWait    = time.Second
	defaultMaxLogLength = 200
)

// ErrNoJSON is returned when the model response contains no JSON object.
var ErrNoJSON = errors.New("no json object in model response")

// Extractor prompts the model per document and decodes profiles.
type Extractor struct {
	generator  contentGenerator
	logger     *zap.Logger
	maxRetries int
	wait       time.Duration
	maxLogLen  int
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithMaxRetries overrides how many times a failed model call is retried.
func WithMaxRetries(n int) ExtractorOption {
	return func(e *Extractor) {
		if n > 0 {
			e.maxRetries = n
		}
	}
}

// WithRetryWait overrides the base wait between retries.
func WithRetryWait(d time.Duration) ExtractorOption {
	return func(e *Extractor) {
		if d > 0 {
			e.wait = d
		}
	}
}

// NewExtractor builds an Extractor over the given generator.
func NewExtractor(generator contentGenerator, logger *zap.Logger, opts ...ExtractorOption) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Extractor{
		generator:  generator,
		logger:     logger,
		maxRetries: defaultMaxRetries,
		wait:       defaultRetryWait,
		maxLogLen:  defaultMaxLogLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract prompts the model with the document text and decodes the returned
// JSON into a profile. Failed calls are retried with doubling waits; a
// response without usable JSON is an error, not an empty profile.
func (e *Extractor) Extract(ctx context.Context, docID, text string) (*candidate.Profile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("document %s has no text", docID)
	}

	prompt := buildPrompt(text)

	e.logger.Debug("gemini extract request",
		zap.String("document", docID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, e.maxLogLen)),
	)

	raw, err := e.generateWithRetry(ctx, docID, prompt)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("gemini extract response",
		zap.String("document", docID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, e.maxLogLen)),
	)

	profile, err := parseProfile(raw)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", docID, err)
	}

	profile.SourceFile = docID
	profile.RawText = text
	profile.Sanitize()
	return profile, nil
}

func (e *Extractor) generateWithRetry(ctx context.Context, docID, prompt string) (string, error) {
	var lastErr error
	wait := e.wait

	for attempt := 1; attempt <= e.maxRetries; attempt++ {
		raw, err := e.generator.GenerateContent(ctx, prompt)
		if err == nil {
			return raw, nil
		}
		lastErr = err

		e.logger.Warn("model call failed",
			zap.String("document", docID),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		if attempt == e.maxRetries {
			break
		}
		if err := utils.WaitFor(ctx, wait); err != nil {
			return "", err
		}
		wait *= 2
	}

	return "", fmt.Errorf("document %s: model call failed after %d attempts: %w", docID, e.maxRetries, lastErr)
}

func parseProfile(raw string) (*candidate.Profile, error) {
	cleaned, ok := extractJSON(raw)
	if !ok {
		return nil, ErrNoJSON
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		// The model sometimes breaks strings across lines; flattening
		// recovers most of those responses.
		flattened := strings.NewReplacer("\n", " ", "\r", "").Replace(cleaned)
		if err2 := json.Unmarshal([]byte(flattened), &data); err2 != nil {
			return nil, fmt.Errorf("parse model response: %w", err)
		}
	}

	profile := &candidate.Profile{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       languageHook,
		Result:           profile,
	})
	if err != nil {
		return nil, fmt.Errorf("build profile decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	return profile, nil
}

// extractJSON strips markdown fences and cuts the response down to the
// outermost object, from the first '{' to the last '}'.
func extractJSON(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

// languageHook accepts the two shapes the model produces for idiomas entries:
// a bare string or an {idioma, nivel} object.
func languageHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(candidate.Language{}) {
		return data, nil
	}

	switch v := data.(type) {
	case string:
		return candidate.Language{Language: strings.TrimSpace(v)}, nil
	case map[string]any:
		lang := candidate.Language{}
		if s, ok := v["idioma"].(string); ok {
			lang.Language = strings.TrimSpace(s)
		}
		if s, ok := v["nivel"].(string); ok {
			lang.Level = strings.TrimSpace(s)
		}
		return lang, nil
	default:
		return data, nil
	}
}

func buildPrompt(text string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "CV:\n{{CV_TEXT}}\n\nJSON Response:"
	}
	return strings.ReplaceAll(template, "{{CV_TEXT}}", text)
}
