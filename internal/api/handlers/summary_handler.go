package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mjtranscripciones/backend/internal/services"
	"github.com/mjtranscripciones/backend/internal/utils"
)

type SummaryHandler struct {
	svc services.SummaryService
}

func NewSummaryHandler(svc services.SummaryService) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

type SummarizeRequest struct {
	Transcription string `json:"transcription"`
}

type BusinessSummarizeRequest struct {
	Transcription string   `json:"transcription"`
	Instructions  []string `json:"instructions"`
}

type ImproveRequest struct {
	Transcription   string   `json:"transcription"`
	Summary         string   `json:"summary"`
	InstructionText string   `json:"instruction_text"`
	Instructions    []string `json:"instructions"`
}

func (h *SummaryHandler) General(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SummaryHandler.General", "invalid request body", err))
		return
	}

	summary, err := h.svc.General(c.Request.Context(), req.Transcription)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *SummaryHandler) Business(c *gin.Context) {
	var req BusinessSummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SummaryHandler.Business", "invalid request body", err))
		return
	}

	summary, err := h.svc.Business(c.Request.Context(), req.Transcription, req.Instructions)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *SummaryHandler) Improve(c *gin.Context) {
	var req ImproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SummaryHandler.Improve", "invalid request body", err))
		return
	}

	summary, err := h.svc.Improve(c.Request.Context(), req.Transcription, req.Summary, req.InstructionText, req.Instructions)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
