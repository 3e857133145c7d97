package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mjtranscripciones/backend/internal/services"
	"github.com/mjtranscripciones/backend/internal/utils"
)

// DriveHandler may be built with a nil service when the Drive integration is
// not configured; the endpoint then reports that instead of panicking.
type DriveHandler struct {
	svc services.ArchiveService
}

func NewDriveHandler(svc services.ArchiveService) *DriveHandler {
	return &DriveHandler{svc: svc}
}

type DriveTranscribeRequest struct {
	DriveFileID  string   `json:"drive_file_id"`
	Instructions []string `json:"instructions"`
}

func (h *DriveHandler) Transcribe(c *gin.Context) {
	if h.svc == nil {
		writeError(c, utils.E(utils.CodeInternal, "DriveHandler.Transcribe", "Google Drive integration is not configured", nil))
		return
	}

	var req DriveTranscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "DriveHandler.Transcribe", "invalid request body", err))
		return
	}

	report, err := h.svc.Process(c.Request.Context(), req.DriveFileID, req.Instructions)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
