package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildNormalizationPrompt asks the model to repair a heuristic extraction
// using the source text, constrained to the record schema.
func (pb *PromptBuilder) BuildNormalizationPrompt(schema, currentExtraction, sourceText string) string {
	return fmt.Sprintf(`You are a resume normalizer. Return ONLY a valid JSON object that matches the provided schema.
Fix segmentation for experience (role, company, period, details), clean markdown/bold artifacts, and do not hallucinate.
If unknown, leave as null or empty arrays.

SCHEMA:
%s

CURRENT_EXTRACTION (noisy, produced by heuristics; correct it):
%s

SOURCE_TEXT (ground truth; use it to fix the extraction, never invent facts that are not in it):
%s

Rules:
1. Keep every top-level key of the schema, even when the value is null or an empty array.
2. Keep list entries in the order they appear in SOURCE_TEXT.
3. Every experience entry needs a role, every project a name, every education entry a college and every achievement a title.
4. Social links must be absolute URLs starting with https:// or null.
5. Do not wrap the JSON in markdown fences and do not add commentary.`,
		schema, currentExtraction, sourceText)
}
