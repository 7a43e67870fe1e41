package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"google.golang.org/genai"
)

const geminiMaxOutputTokens = 8192

var (
	ErrEmptyResponse     = errors.New("model returned no text")
	ErrTruncatedResponse = errors.New("model response hit the output token limit")
)

// GeminiService sends one prompt to a Gemini model and returns the text
// of its answer. Callers own retries and timeouts through ctx.
type GeminiService interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
}

type geminiService struct {
	models    *genai.Models
	modelName string
}

func NewGeminiService(ctx context.Context, apiKey, modelName string) (GeminiService, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		models:    client.Models,
		modelName: modelName,
	}, nil
}

func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.modelName, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(temperature),
		MaxOutputTokens:  geminiMaxOutputTokens,
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	return responseText(resp)
}

// responseText pulls the answer out of a response, rejecting empty and
// truncated ones since neither can hold a complete JSON document.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	if resp.Candidates[0].FinishReason == genai.FinishReasonMaxTokens {
		return "", ErrTruncatedResponse
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}

	if usage := resp.UsageMetadata; usage != nil {
		log.Printf("📊 Gemini response: %d characters, %d tokens\n", len(text), usage.TotalTokenCount)
	} else {
		log.Printf("📊 Gemini response: %d characters\n", len(text))
	}

	return text, nil
}
