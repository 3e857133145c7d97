package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mjtranscripciones/backend/internal/services"
	"github.com/mjtranscripciones/backend/internal/utils"
)

type TranscriptionHandler struct {
	svc services.TranscriptionService
}

func NewTranscriptionHandler(svc services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{svc: svc}
}

func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "TranscriptionHandler.Transcribe", "missing multipart field 'file'", err))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "TranscriptionHandler.Transcribe", "failed to open upload", err))
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "TranscriptionHandler.Transcribe", "failed to read upload", err))
		return
	}

	// The browser-declared content type goes to the model as-is.
	row, err := h.svc.Transcribe(c.Request.Context(), audio, fh.Header.Get("Content-Type"), fh.Filename)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, row)
}
