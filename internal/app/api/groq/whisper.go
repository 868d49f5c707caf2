package groq

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// Transcriber implements remote transcription through the Groq Whisper API.
type Transcriber struct {
	client *openai.Client
}

// NewTranscriber creates a new Transcriber instance.
func NewTranscriber(client *openai.Client) *Transcriber {
	return &Transcriber{client: client}
}

// Transcript submits the stored audio file for transcription and returns the
// plain-text transcript.
func (t *Transcriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	req := openai.AudioRequest{
		Model:    WhisperModel,
		FilePath: inputFilePath,
		Format:   openai.AudioResponseFormatText,
	}
	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %w", err)
	}

	return resp.Text, nil
}
