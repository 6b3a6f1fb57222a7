package outbound

import "context"

type SynthesizeSpeechRequest struct {
	Text    string
	VoiceID string
}

// SpeechSynthesizerPort converts one cleaned dialogue line into a WAV byte
// stream (mono 16-bit PCM at the pipeline sample rate).
type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, req SynthesizeSpeechRequest) ([]byte, error)
}
