package speech

import (
	"context"
	"io"
)

// TranscribeRequest carries one audio clip to a speech-to-text backend.
type TranscribeRequest struct {
	Reader   io.Reader
	Filename string
	Language string // BCP-47 hint, e.g. "fa"
	Prompt   string // domain-priming text
}

// Transcriber converts recorded speech to text.
type Transcriber interface {
	Transcribe(ctx context.Context, req TranscribeRequest) (string, error)
}

// Synthesizer converts text to a compressed audio clip (mpeg).
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
