package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/mjtranscripciones/backend/internal/api/handlers"
	"github.com/mjtranscripciones/backend/internal/api/middleware"
	"github.com/mjtranscripciones/backend/internal/api/routes"
	"github.com/mjtranscripciones/backend/internal/config"
	"github.com/mjtranscripciones/backend/internal/logger"
	"github.com/mjtranscripciones/backend/internal/providers/llm"
	"github.com/mjtranscripciones/backend/internal/services"
	"github.com/mjtranscripciones/backend/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logg := logger.New(cfg.LogLevel)
	ctx := context.Background()

	// Init Gemini
	gemini, err := llm.NewGemini(ctx, cfg.GeminiAPIKey, cfg.TranscriptionModel, cfg.SummaryModel)
	if err != nil {
		logg.Fatalf("Gemini init error: %v", err)
	}
	logg.Info("Gemini client ready")

	transcriptions := services.NewTranscriptionService(gemini)
	summaries := services.NewSummaryService(gemini)

	// The Drive workflow is optional: without its configuration the endpoint
	// stays registered and reports the missing integration per request.
	var archive services.ArchiveService
	if cfg.DriveConfigured() {
		files, err := storage.NewDriveStore(ctx, cfg.ServiceAccountJSON)
		if err != nil {
			logg.Fatalf("Drive init error: %v", err)
		}
		logg.Info("Drive client ready")

		var mirror storage.Mirror
		if cfg.ReportsBucket != "" {
			m, err := storage.NewReportMirror(ctx, cfg.ReportsBucket)
			if err != nil {
				logg.Fatalf("GCS init error: %v", err)
			}
			defer m.Close()
			mirror = m
			logg.Info("report mirror ready")
		}

		archive = services.NewArchiveService(files, mirror, transcriptions, summaries,
			cfg.AudioFolderID, cfg.ReportsFolderID, logg)
	} else {
		logg.Warn("Google Drive integration is not configured")
	}

	// Start Gin server
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logg))
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	routes.RegisterRoutes(r, routes.Deps{
		Transcription: handlers.NewTranscriptionHandler(transcriptions),
		Summary:       handlers.NewSummaryHandler(summaries),
		Drive:         handlers.NewDriveHandler(archive),
	})

	logg.WithField("port", cfg.Port).Info("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logg.Fatalf("server error: %v", err)
	}
}
