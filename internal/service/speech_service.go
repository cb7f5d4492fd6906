package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"med-voice-be/internal/constant"
	"med-voice-be/internal/dto"
	"med-voice-be/internal/pkg/logger"
	"med-voice-be/internal/pkg/serverutils"
	"med-voice-be/internal/repository/memory"
	"med-voice-be/pkg/speech"
)

type ISpeechService interface {
	Transcribe(ctx context.Context, file *multipart.FileHeader) (*dto.TranscribeResponse, error)
	Synthesize(ctx context.Context, request *dto.SynthesizeRequest) ([]byte, error)
}

type speechService struct {
	transcriber speech.Transcriber
	synthesizer speech.Synthesizer
	clipCache   *memory.SpeechCache
	logger      logger.ILogger
}

func NewSpeechService(
	transcriber speech.Transcriber,
	synthesizer speech.Synthesizer,
	clipCache *memory.SpeechCache,
	sysLogger logger.ILogger,
) ISpeechService {
	return &speechService{
		transcriber: transcriber,
		synthesizer: synthesizer,
		clipCache:   clipCache,
		logger:      sysLogger,
	}
}

func (ss *speechService) Transcribe(ctx context.Context, file *multipart.FileHeader) (*dto.TranscribeResponse, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded audio: %w", err)
	}
	defer src.Close()

	text, err := ss.transcriber.Transcribe(ctx, speech.TranscribeRequest{
		Reader:   src,
		Filename: file.Filename,
		Language: constant.TranscribeLanguage,
		Prompt:   constant.TranscribePrimingPromptV1,
	})
	if err != nil {
		return nil, err
	}

	ss.logger.Info(constant.ModuleSpeech, "Audio transcribed", map[string]interface{}{
		"filename": file.Filename,
		"chars":    len(text),
	})
	return &dto.TranscribeResponse{Text: text}, nil
}

func (ss *speechService) Synthesize(ctx context.Context, request *dto.SynthesizeRequest) ([]byte, error) {
	// Reject unusable text here, before the collaborator ever sees it.
	if strings.TrimSpace(request.Text) == "" {
		return nil, fmt.Errorf("text is required: %w", serverutils.ErrValidation)
	}

	if audio, found := ss.clipCache.Get(request.Text); found {
		return audio, nil
	}

	audio, err := ss.synthesizer.Synthesize(ctx, request.Text)
	if err != nil {
		return nil, err
	}

	ss.clipCache.Set(request.Text, audio)
	ss.logger.Info(constant.ModuleSpeech, "Audio synthesized", map[string]interface{}{
		"chars": len(request.Text),
		"bytes": len(audio),
	})
	return audio, nil
}
