package services

import (
	"context"

	"github.com/mjtranscripciones/backend/internal/models"
	"github.com/mjtranscripciones/backend/internal/providers/llm"
	"github.com/mjtranscripciones/backend/internal/utils"
)

type TranscriptionService interface {
	Transcribe(ctx context.Context, audio []byte, mimeType, fileName string) (*models.Transcription, error)
}

type transcriptionService struct {
	llm llm.Provider
}

func NewTranscriptionService(p llm.Provider) TranscriptionService {
	return &transcriptionService{llm: p}
}

func (s *transcriptionService) Transcribe(ctx context.Context, audio []byte, mimeType, fileName string) (*models.Transcription, error) {
	const op = "TranscriptionService.Transcribe"

	if len(audio) == 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "no audio file was supplied", nil)
	}

	// The declared MIME type passes through verbatim; whatever the vendor
	// accepts is accepted.
	text, err := s.llm.Transcribe(ctx, audio, mimeType)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to transcribe audio", err)
	}

	return &models.Transcription{Text: text, FileName: fileName}, nil
}
