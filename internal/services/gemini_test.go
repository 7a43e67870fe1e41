package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func candidate(text string, reason genai.FinishReason) *genai.Candidate {
	return &genai.Candidate{
		Content:      genai.NewContentFromText(text, genai.RoleModel),
		FinishReason: reason,
	}
}

func TestResponseText(t *testing.T) {
	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		want    string
		wantErr error
	}{
		{name: "nil response", resp: nil, wantErr: ErrEmptyResponse},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, wantErr: ErrEmptyResponse},
		{
			name: "truncated",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{candidate(`{"name":`, genai.FinishReasonMaxTokens)},
			},
			wantErr: ErrTruncatedResponse,
		},
		{
			name: "complete",
			resp: &genai.GenerateContentResponse{
				Candidates:    []*genai.Candidate{candidate(`{"name":"Jane"}`, genai.FinishReasonStop)},
				UsageMetadata: &genai.GenerateContentResponseUsageMetadata{TotalTokenCount: 42},
			},
			want: `{"name":"Jane"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := responseText(tt.resp)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewGeminiServiceRequiresKey(t *testing.T) {
	_, err := NewGeminiService(t.Context(), "", "gemini-2.5-flash")
	assert.Error(t, err)
}
