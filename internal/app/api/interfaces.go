package api

import "context"

// Transcriber defines a transcription interface for converting stored audio
// files to text.
type Transcriber interface {
	Transcript(ctx context.Context, inputFilePath string) (string, error)
}

// Analyst produces a free-text analysis reply for a meeting transcript. The
// reply is expected, but not guaranteed, to be a JSON object; normalization
// of the reply is the caller's concern.
type Analyst interface {
	Analyze(ctx context.Context, transcript string) (string, error)
}
