package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "nfkc ligature", in: "\ufb01le", want: "file"},
		{name: "non breaking space", in: "Jane\u00a0Public", want: "Jane Public"},
		{name: "replacement character", in: "a\ufffdb", want: "a b"},
		{name: "spaces and tabs", in: "a  \t  b", want: "a b"},
		{name: "excess newlines", in: "a\n\n\n\n\nb", want: "a\n\nb"},
		{name: "crlf", in: "a\r\n\r\n\r\n\r\nb", want: "a\n\nb"},
		{name: "bullet glyphs", in: "• one\n_•_ two\n● three", want: "- one\n- two\n- three"},
		{name: "surrounding whitespace", in: "  \n text \n ", want: "text"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"# Jane\u00a0Public\n\n\n\n• Go\t\tdeveloper",
		"a\ufffd\ufffdb\r\n\r\n\r\nc",
		"_•_ item •\u0301 combining",
		"ＡＢＣ full width ① circled",
		"line one \n\n\n line two\t\n",
	}

	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once), "input %q", in)
	}
}
