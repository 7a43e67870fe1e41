package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildNormalizationPrompt(t *testing.T) {
	prompt := NewPromptBuilder().BuildNormalizationPrompt(`{"type":"object"}`, `{"name":"Jane"}`, "Jane Public\nEngineer")

	assert.True(t, strings.HasPrefix(prompt, "You are a resume normalizer."))
	assert.Contains(t, prompt, "SCHEMA:\n{\"type\":\"object\"}")
	assert.Contains(t, prompt, "CURRENT_EXTRACTION (noisy")
	assert.Contains(t, prompt, "{\"name\":\"Jane\"}")
	assert.Contains(t, prompt, "SOURCE_TEXT (ground truth")
	assert.Contains(t, prompt, "Jane Public\nEngineer")
}
