package groq

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are an expert meeting assistant. Analyze meeting transcripts and provide structured summaries."

const userPromptTemplate = `Analyze this meeting transcript and provide:

1. **Meeting Summary**: A concise overview (3-5 sentences)
2. **Key Decisions**: List all important decisions made
3. **Action Items**: List all tasks with responsible parties if mentioned
4. **Key Topics Discussed**: Main discussion points

Transcript:
%s

Format your response as JSON with keys: summary, decisions, action_items, topics`

// Analyst asks a Groq-hosted LLM for a structured meeting analysis. The reply
// is free text; callers normalize it.
type Analyst struct {
	client *openai.Client
}

// NewAnalyst creates a new Analyst instance.
func NewAnalyst(client *openai.Client) *Analyst {
	return &Analyst{client: client}
}

// Analyze runs a chat completion over the transcript with the fixed analysis
// instructions. Temperature is fixed at 0.7; non-deterministic output is
// expected and absorbed downstream.
func (a *Analyst) Analyze(ctx context.Context, transcript string) (string, error) {
	request := openai.ChatCompletionRequest{
		Model:       ChatModel,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(userPromptTemplate, transcript),
			},
		},
	}

	resp, err := a.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", fmt.Errorf("createChatCompletion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("createChatCompletion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
