package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessName(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		fallback string
		want     string
	}{
		{name: "first line is a name", header: "Jane Q. Public\njane@x.com", want: "Jane Q. Public"},
		{name: "falls back when header is a contact line", header: "jane@x.com\nJane Public", fallback: "Jane Public", want: "Jane Public"},
		{name: "markdown markers stripped", header: "# **Jane Public**", want: "Jane Public"},
		{name: "leading blank lines", header: "\n\n  Jane Public  \n", want: "Jane Public"},
		{name: "single word", header: "Jane"},
		{name: "too many words", header: "I am a backend engineer who likes Go"},
		{name: "contact token", header: "GitHub Profile Link"},
		{name: "url", header: "see http example dot com"},
		{name: "both rejected", header: "jane@x.com", fallback: "Phone 555 1234"},
		{name: "empty", header: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GuessName(tt.header, tt.fallback)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.Equal(t, tt.want, *got)
			}
		})
	}
}
