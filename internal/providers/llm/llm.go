package llm

import "context"

type Provider interface {
	// Transcribe sends the audio bytes with their declared MIME type and
	// returns the model's transcript verbatim.
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
	// Generate sends a text prompt and returns the model's answer verbatim.
	Generate(ctx context.Context, prompt string) (string, error)
}
