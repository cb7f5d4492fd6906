package speech

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAISpeech implements Transcriber and Synthesizer against the OpenAI
// audio endpoints (whisper + tts).
type OpenAISpeech struct {
	client   *openai.Client
	sttModel string
	ttsModel string
	voice    string
}

func NewOpenAISpeech(apiKey, sttModel, ttsModel, voice string) (*OpenAISpeech, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai speech: api key is required")
	}
	return &OpenAISpeech{
		client:   openai.NewClient(apiKey),
		sttModel: sttModel,
		ttsModel: ttsModel,
		voice:    voice,
	}, nil
}

func (s *OpenAISpeech) Transcribe(ctx context.Context, req TranscribeRequest) (string, error) {
	resp, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    s.sttModel,
		Reader:   req.Reader,
		FilePath: req.Filename,
		Language: req.Language,
		Prompt:   req.Prompt,
	})
	if err != nil {
		return "", fmt.Errorf("openai transcription: %w", err)
	}
	return resp.Text, nil
}

func (s *OpenAISpeech) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.SpeechModel(s.ttsModel),
		Input: text,
		Voice: openai.SpeechVoice(s.voice),
	})
	if err != nil {
		return nil, fmt.Errorf("openai speech synthesis: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("openai speech synthesis: read audio: %w", err)
	}
	return audio, nil
}
