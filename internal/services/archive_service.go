package services

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mjtranscripciones/backend/internal/models"
	"github.com/mjtranscripciones/backend/internal/report"
	"github.com/mjtranscripciones/backend/internal/storage"
	"github.com/mjtranscripciones/backend/internal/utils"
)

type ArchiveService interface {
	// Process runs the whole drive workflow for one recording: metadata,
	// download, transcription, both summaries, report upload, file move.
	Process(ctx context.Context, fileID string, instructions []string) (*models.CallReport, error)
}

type archiveService struct {
	files          storage.FileStore
	mirror         storage.Mirror // optional
	transcriptions TranscriptionService
	summaries      SummaryService

	audioFolderID   string
	reportsFolderID string

	log *logrus.Logger
}

func NewArchiveService(
	files storage.FileStore,
	mirror storage.Mirror,
	transcriptions TranscriptionService,
	summaries SummaryService,
	audioFolderID, reportsFolderID string,
	log *logrus.Logger,
) ArchiveService {
	return &archiveService{
		files:           files,
		mirror:          mirror,
		transcriptions:  transcriptions,
		summaries:       summaries,
		audioFolderID:   audioFolderID,
		reportsFolderID: reportsFolderID,
		log:             log,
	}
}

// Every step runs strictly in sequence and any failure aborts the rest.
// Side effects of completed steps stay in place: there is no rollback, and
// re-running after a success is expected to fail at the parent lookup or to
// produce a duplicate report.
func (s *archiveService) Process(ctx context.Context, fileID string, instructions []string) (*models.CallReport, error) {
	const op = "ArchiveService.Process"

	if fileID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "drive_file_id is required", nil)
	}

	info, err := s.files.FileInfo(ctx, fileID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to read file metadata", err)
	}
	if info.IsFolder() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "the supplied drive_file_id refers to a folder, not a file", nil)
	}
	if len(info.Parents) == 0 {
		return nil, utils.E(utils.CodeInternal, op, "audio file has no parent folder", nil)
	}

	displayName := report.DisplayName(info.Name)
	log := s.log.WithFields(logrus.Fields{"file_id": fileID, "file_name": info.Name})
	log.Info("processing drive recording")

	audio, err := s.files.Download(ctx, fileID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to download audio", err)
	}

	transcription, err := s.transcriptions.Transcribe(ctx, audio, report.NormalizeAudioMIME(info.MIMEType), info.Name)
	if err != nil {
		return nil, err
	}
	log.Debug("transcription done")

	general, err := s.summaries.General(ctx, transcription.Text)
	if err != nil {
		return nil, err
	}
	business, err := s.summaries.Business(ctx, transcription.Text, instructions)
	if err != nil {
		return nil, err
	}
	log.Debug("summaries done")

	doc := report.Document(info.Name, time.Now().UTC(), transcription.Text, general.Text, business.Text)
	reportName := report.FileName(displayName)

	if _, err := s.files.CreateText(ctx, s.reportsFolderID, reportName, doc); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to upload report", err)
	}
	log.WithField("report", reportName).Info("report uploaded")

	if s.mirror != nil {
		if _, err := s.mirror.Upload(ctx, "reports/"+reportName, "text/plain; charset=utf-8", strings.NewReader(doc)); err != nil {
			log.WithError(err).Warn("report mirror upload failed")
		}
	}

	if err := s.files.Move(ctx, fileID, info.Parents[0], s.audioFolderID, displayName); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to move audio file", err)
	}
	log.WithField("display_name", displayName).Info("recording archived")

	return &models.CallReport{
		FileName:        displayName,
		Transcription:   transcription.Text,
		GeneralSummary:  general.Text,
		BusinessSummary: business.Text,
	}, nil
}
