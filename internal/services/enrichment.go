package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"alfredoptarigan/resume-extractor/internal/metrics"
	"alfredoptarigan/resume-extractor/internal/models"
)

type EnrichmentState string

const (
	EnrichmentSkipped  EnrichmentState = "skipped"
	EnrichmentEnriched EnrichmentState = "enriched"
	EnrichmentFallback EnrichmentState = "fallback"
)

// DefaultSourceCharLimit bounds the source text sent with each request.
const DefaultSourceCharLimit = 16000

var ErrIncompleteResult = errors.New("enriched result is missing required fields")

// requiredEnrichmentKeys must all be present in a normalized result.
var requiredEnrichmentKeys = []string{
	"name",
	"email",
	"phone",
	"socials",
	"education",
	"experience",
	"projects",
	"skills",
	"achievements",
}

// Normalizer is a generative backend that rewrites a draft record against
// its source text. Implementations must not keep references to draft.
type Normalizer interface {
	Normalize(ctx context.Context, schema string, draft *models.ResumeRecord, sourceText string) (map[string]interface{}, error)
}

type geminiNormalizer struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
	temperature   float32
}

func NewGeminiNormalizer(geminiService GeminiService, temperature float32) Normalizer {
	return &geminiNormalizer{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
		temperature:   temperature,
	}
}

func (g *geminiNormalizer) Normalize(ctx context.Context, schema string, draft *models.ResumeRecord, sourceText string) (map[string]interface{}, error) {
	current, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft: %w", err)
	}

	prompt := g.promptBuilder.BuildNormalizationPrompt(schema, string(current), sourceText)
	log.Printf("📝 Normalization prompt length: %d characters", len(prompt))

	response, err := g.geminiService.GenerateText(ctx, prompt, g.temperature)
	if err != nil {
		return nil, fmt.Errorf("failed to generate normalization: %w", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(extractJSON(response)), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal normalization response: %w", err)
	}
	if result == nil {
		return nil, fmt.Errorf("normalization response is not a JSON object")
	}

	return result, nil
}

// extractJSON tries to extract a JSON object from text that might contain
// markdown fences or commentary.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return text[start : end+1]
	}

	return strings.TrimSpace(text)
}

// ResultValidator checks a normalized result and pins the provenance
// fields to the draft's values.
type ResultValidator struct{}

func NewResultValidator() *ResultValidator {
	return &ResultValidator{}
}

func (v *ResultValidator) ValidateAndClean(enriched map[string]interface{}, draft *models.ResumeRecord) (*models.ResumeRecord, error) {
	var missing []string
	for _, key := range requiredEnrichmentKeys {
		if _, ok := enriched[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrIncompleteResult, strings.Join(missing, ", "))
	}

	enriched["schemaVersion"] = draft.SchemaVersion
	if draft.SourceFile != nil {
		enriched["sourceFile"] = *draft.SourceFile
	} else {
		enriched["sourceFile"] = nil
	}

	record, err := models.FromMap(enriched)
	if err != nil {
		return nil, err
	}
	return record, nil
}

type EnrichmentOrchestrator interface {
	Enrich(ctx context.Context, cleanedText string, draft *models.ResumeRecord) (*models.ResumeRecord, EnrichmentState)
}

type EnrichmentOptions struct {
	SourceCharLimit int
	Timeout         time.Duration
}

type enrichmentOrchestrator struct {
	normalizer Normalizer
	validator  *ResultValidator
	options    EnrichmentOptions
}

// NewEnrichmentOrchestrator returns an orchestrator that always skips when
// normalizer is nil.
func NewEnrichmentOrchestrator(normalizer Normalizer, options EnrichmentOptions) EnrichmentOrchestrator {
	if options.SourceCharLimit <= 0 {
		options.SourceCharLimit = DefaultSourceCharLimit
	}

	return &enrichmentOrchestrator{
		normalizer: normalizer,
		validator:  NewResultValidator(),
		options:    options,
	}
}

// Enrich returns the normalized record, or draft itself when enrichment is
// not configured or fails for any reason. It never returns an error.
func (o *enrichmentOrchestrator) Enrich(ctx context.Context, cleanedText string, draft *models.ResumeRecord) (*models.ResumeRecord, EnrichmentState) {
	if o.normalizer == nil {
		metrics.ObserveEnrichment(string(EnrichmentSkipped))
		return draft, EnrichmentSkipped
	}

	if o.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.options.Timeout)
		defer cancel()
	}

	log.Println("🤖 Normalizing draft with LLM...")
	enriched, err := o.normalizer.Normalize(
		ctx,
		models.ResumeJSONSchema(),
		draft.Clone(),
		truncateRunes(cleanedText, o.options.SourceCharLimit),
	)
	if err != nil {
		log.Printf("⚠️  Enrichment failed, keeping draft: %v\n", err)
		metrics.ObserveEnrichment(string(EnrichmentFallback))
		return draft, EnrichmentFallback
	}

	record, err := o.validator.ValidateAndClean(enriched, draft)
	if err != nil {
		log.Printf("⚠️  Enriched result rejected, keeping draft: %v\n", err)
		metrics.ObserveEnrichment(string(EnrichmentFallback))
		return draft, EnrichmentFallback
	}

	log.Println("✅ Draft normalized successfully")
	metrics.ObserveEnrichment(string(EnrichmentEnriched))
	return record, EnrichmentEnriched
}

// truncateRunes returns at most limit runes of s.
func truncateRunes(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}
	return s
}
