package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mjtranscripciones/backend/internal/api/handlers"
)

type Deps struct {
	Transcription *handlers.TranscriptionHandler
	Summary       *handlers.SummaryHandler
	Drive         *handlers.DriveHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Liveness
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "MJ Transcripciones backend ¡funcionando!"})
	})

	r.POST("/transcribe", d.Transcription.Transcribe)
	r.POST("/summarize-general", d.Summary.General)
	r.POST("/summarize-business", d.Summary.Business)
	r.POST("/improve", d.Summary.Improve)
	r.POST("/transcribe-from-drive", d.Drive.Transcribe)
}
