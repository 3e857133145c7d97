package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mjtranscripciones/backend/internal/models"
	"github.com/mjtranscripciones/backend/internal/providers/llm"
	"github.com/mjtranscripciones/backend/internal/utils"
)

// Prompt templates are opaque string configuration; the summaries themselves
// are whatever the model answers.
const generalPromptTemplate = `Basado en la siguiente transcripción de una llamada, genera un resumen general claro y conciso. El resumen debe identificar los puntos clave, las acciones a seguir y el sentimiento general de la llamada, sin asumir ningún contexto de negocio específico.

Transcripción:
---
%s
---`

const businessPromptTemplate = `Basado en la siguiente transcripción de una llamada, genera un resumen de negocio claro y conciso. El resumen debe identificar los puntos clave y las acciones a seguir, enfocándose en temas relevantes para un negocio de mariscos.

%s

Transcripción:
---
%s
---`

const improvePromptTemplate = `El siguiente resumen de una llamada necesita ajustes. Genera una versión mejorada del resumen aplicando esta instrucción: %s

%s

Resumen actual:
---
%s
---

Transcripción de la llamada:
---
%s
---`

const directivePrefix = "Para este resumen, aplica estas reglas e instrucciones permanentes en todo momento: "

type SummaryService interface {
	General(ctx context.Context, transcript string) (*models.Summary, error)
	Business(ctx context.Context, transcript string, instructions []string) (*models.Summary, error)
	Improve(ctx context.Context, transcript, summary, instruction string, instructions []string) (*models.Summary, error)
}

type summaryService struct {
	llm llm.Provider
}

func NewSummaryService(p llm.Provider) SummaryService {
	return &summaryService{llm: p}
}

func (s *summaryService) General(ctx context.Context, transcript string) (*models.Summary, error) {
	const op = "SummaryService.General"

	if transcript == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "transcription is required", nil)
	}

	return s.generate(ctx, op, fmt.Sprintf(generalPromptTemplate, transcript))
}

func (s *summaryService) Business(ctx context.Context, transcript string, instructions []string) (*models.Summary, error) {
	const op = "SummaryService.Business"

	if transcript == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "transcription is required", nil)
	}

	prompt := fmt.Sprintf(businessPromptTemplate, directive(instructions), transcript)
	return s.generate(ctx, op, prompt)
}

func (s *summaryService) Improve(ctx context.Context, transcript, summary, instruction string, instructions []string) (*models.Summary, error) {
	const op = "SummaryService.Improve"

	if summary == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "summary is required", nil)
	}
	if instruction == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "instruction_text is required", nil)
	}

	prompt := fmt.Sprintf(improvePromptTemplate, instruction, directive(instructions), summary, transcript)
	return s.generate(ctx, op, prompt)
}

func (s *summaryService) generate(ctx context.Context, op, prompt string) (*models.Summary, error) {
	text, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to generate summary", err)
	}
	return &models.Summary{Text: text}, nil
}

// directive folds the permanent instructions into one sentence; no
// instructions, no directive.
func directive(instructions []string) string {
	if len(instructions) == 0 {
		return ""
	}
	return directivePrefix + strings.Join(instructions, ". ")
}
