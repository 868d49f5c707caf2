package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parnika15-9/meeting-summarizer/internal/app/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		expected model.AnalysisResult
	}{
		{
			name:  "plain json object",
			reply: `{"summary":"Team sync.","decisions":["Ship v2"],"action_items":["Alice: write docs"],"topics":["Release"]}`,
			expected: model.AnalysisResult{
				Summary:     "Team sync.",
				Decisions:   []string{"Ship v2"},
				ActionItems: []string{"Alice: write docs"},
				Topics:      []string{"Release"},
			},
		},
		{
			name:  "json inside tagged fence",
			reply: "Here is the analysis:\n```json\n{\"summary\":\"Budget review.\",\"decisions\":[],\"action_items\":[],\"topics\":[\"Budget\"]}\n```\nLet me know if you need more.",
			expected: model.AnalysisResult{
				Summary:     "Budget review.",
				Decisions:   []string{},
				ActionItems: []string{},
				Topics:      []string{"Budget"},
			},
		},
		{
			name:  "json inside generic fence",
			reply: "```\n{\"summary\":\"Standup.\",\"decisions\":[\"Adopt trunk-based dev\"],\"action_items\":[],\"topics\":[]}\n```",
			expected: model.AnalysisResult{
				Summary:     "Standup.",
				Decisions:   []string{"Adopt trunk-based dev"},
				ActionItems: []string{},
				Topics:      []string{},
			},
		},
		{
			name:  "missing keys decode to empty",
			reply: `{"summary":"Short meeting."}`,
			expected: model.AnalysisResult{
				Summary:     "Short meeting.",
				Decisions:   []string{},
				ActionItems: []string{},
				Topics:      []string{},
			},
		},
		{
			name:  "arbitrary prose falls back",
			reply: "The meeting covered several topics but I cannot produce JSON.",
			expected: model.AnalysisResult{
				Summary:     FallbackSummary,
				Decisions:   []string{},
				ActionItems: []string{},
				Topics:      []string{},
				RawResponse: "The meeting covered several topics but I cannot produce JSON.",
			},
		},
		{
			name:  "empty reply falls back",
			reply: "",
			expected: model.AnalysisResult{
				Summary:     FallbackSummary,
				Decisions:   []string{},
				ActionItems: []string{},
				Topics:      []string{},
				RawResponse: "",
			},
		},
		{
			name:  "fenced non-json is not retried against raw",
			reply: "```json\nnot actually json\n```",
			expected: model.AnalysisResult{
				Summary:     FallbackSummary,
				Decisions:   []string{},
				ActionItems: []string{},
				Topics:      []string{},
				RawResponse: "```json\nnot actually json\n```",
			},
		},
		{
			name:  "bare null falls back",
			reply: "null",
			expected: model.AnalysisResult{
				Summary:     FallbackSummary,
				Decisions:   []string{},
				ActionItems: []string{},
				Topics:      []string{},
				RawResponse: "null",
			},
		},
		{
			name:  "fenced null falls back",
			reply: "```json\nnull\n```",
			expected: model.AnalysisResult{
				Summary:     FallbackSummary,
				Decisions:   []string{},
				ActionItems: []string{},
				Topics:      []string{},
				RawResponse: "```json\nnull\n```",
			},
		},
		{
			name:  "top-level array falls back",
			reply: `["summary","decisions"]`,
			expected: model.AnalysisResult{
				Summary:     FallbackSummary,
				Decisions:   []string{},
				ActionItems: []string{},
				Topics:      []string{},
				RawResponse: `["summary","decisions"]`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.reply)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNormalizeRoundTrip(t *testing.T) {
	original := model.AnalysisResult{
		Summary:     "Quarterly planning session with engineering leads.",
		Decisions:   []string{"Hire 2 engineers", "Freeze scope for Q3"},
		ActionItems: []string{"Bob: draft job postings"},
		Topics:      []string{"Budget", "Hiring"},
	}

	serialized, err := json.Marshal(original)
	require.NoError(t, err)

	assert.Equal(t, original, Normalize(string(serialized)))
}

func TestNormalizeEmptyReplyMarksFallback(t *testing.T) {
	result := Normalize("")

	assert.True(t, result.Fallback())
	assert.Equal(t, FallbackSummary, result.Summary)
	assert.Empty(t, result.RawResponse)
}

func TestNormalizeFallbackPreservesReply(t *testing.T) {
	reply := "Sure! Here's a summary: we talked about many things."
	result := Normalize(reply)

	assert.True(t, result.Fallback())
	assert.Equal(t, reply, result.RawResponse)
}
