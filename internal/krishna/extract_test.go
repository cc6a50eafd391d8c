package krishna

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *Extracted
	}{
		{
			name: "clean json",
			raw:  `{"response":"Hello","reference":"2.47"}`,
			want: &Extracted{Response: "Hello", Reference: "2.47"},
		},
		{
			name: "code fenced json defaults reference",
			raw:  "```json\n{\"response\":\"Hi\"}\n```",
			want: &Extracted{Response: "Hi", Reference: "—"},
		},
		{
			name: "double backtick fence",
			raw:  "``{\"response\":\"Hi\",\"reference\":\"1.1\"}``",
			want: &Extracted{Response: "Hi", Reference: "1.1"},
		},
		{
			name: "nested double-encoded json prefers inner",
			raw:  `{"response":"{\"response\":\"Inner\"}"}`,
			want: &Extracted{Response: "Inner", Reference: "—"},
		},
		{
			name: "nested json keeps inner reference",
			raw:  `{"response":"{\"response\":\"Inner\",\"reference\":\"18.66\"}"}`,
			want: &Extracted{Response: "Inner", Reference: "18.66"},
		},
		{
			name: "json embedded in prose",
			raw:  `Of course, dear one: {"response":"Act without attachment.","reference":"2.47"} May this help.`,
			want: &Extracted{Response: "Act without attachment.", Reference: "2.47"},
		},
		{
			name: "response field scraped from broken json",
			raw:  `{"response": "The \"self\" is eternal", "reference": `,
			want: &Extracted{Response: `The "self" is eternal`, Reference: "—"},
		},
		{
			name: "plain prose",
			raw:  "The path of dharma is stillness.",
			want: &Extracted{Response: "The path of dharma is stillness.", Reference: "—"},
		},
		{
			name: "empty input",
			raw:  "",
			want: nil,
		},
		{
			name: "whitespace only",
			raw:  "   \n\t  ",
			want: nil,
		},
		{
			name: "too short to be an answer",
			raw:  "ok",
			want: nil,
		},
		{
			name: "fences only",
			raw:  "```json\n```",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want.Response, got.Response)
			assert.Equal(t, tt.want.Reference, got.Reference)
		})
	}
}

func TestExtractNestingIsOneLevelOnly(t *testing.T) {
	// Two levels of encoding: the second unwrap is not attempted, so the
	// inner string is surfaced as-is.
	raw := `{"response":"{\"response\":\"{\\\"response\\\":\\\"Deepest\\\"}\"}"}`
	got := Extract(raw)
	require.NotNil(t, got)
	assert.Contains(t, got.Response, "Deepest")
	assert.NotEqual(t, "Deepest", got.Response)
}
