package storage

import (
	"context"
	"io"
)

const folderMIMEType = "application/vnd.google-apps.folder"

// FileInfo is the subset of Drive metadata the archive workflow needs.
type FileInfo struct {
	ID       string
	Name     string
	MIMEType string
	Parents  []string
}

func (f *FileInfo) IsFolder() bool { return f.MIMEType == folderMIMEType }

// FileStore is the Drive surface consumed by the archive workflow.
type FileStore interface {
	FileInfo(ctx context.Context, fileID string) (*FileInfo, error)
	// Download reads the file's bytes fully into memory.
	Download(ctx context.Context, fileID string) ([]byte, error)
	// CreateText writes a text/plain file into folderID and returns its id.
	CreateText(ctx context.Context, folderID, name, content string) (string, error)
	// Move reparents the file and renames it in one update.
	Move(ctx context.Context, fileID, fromFolderID, toFolderID, newName string) error
}

// Mirror receives a best-effort copy of generated reports.
type Mirror interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (storedPath string, err error)
}
