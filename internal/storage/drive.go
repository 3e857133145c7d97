package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveStore talks to Google Drive with a service account. The underlying
// service is safe for concurrent reuse.
type DriveStore struct {
	svc *drive.Service
}

func NewDriveStore(ctx context.Context, serviceAccountJSON string) (*DriveStore, error) {
	svc, err := drive.NewService(ctx,
		option.WithCredentialsJSON([]byte(serviceAccountJSON)),
		option.WithScopes(drive.DriveScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return &DriveStore{svc: svc}, nil
}

func (d *DriveStore) FileInfo(ctx context.Context, fileID string) (*FileInfo, error) {
	f, err := d.svc.Files.Get(fileID).Fields("id, name, mimeType, parents").Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return &FileInfo{
		ID:       f.Id,
		Name:     f.Name,
		MIMEType: f.MimeType,
		Parents:  f.Parents,
	}, nil
}

func (d *DriveStore) Download(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := d.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

func (d *DriveStore) CreateText(ctx context.Context, folderID, name, content string) (string, error) {
	meta := &drive.File{
		Name:     name,
		MimeType: "text/plain",
		Parents:  []string{folderID},
	}
	created, err := d.svc.Files.Create(meta).Media(strings.NewReader(content)).Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return created.Id, nil
}

func (d *DriveStore) Move(ctx context.Context, fileID, fromFolderID, toFolderID, newName string) error {
	_, err := d.svc.Files.Update(fileID, &drive.File{Name: newName}).
		AddParents(toFolderID).
		RemoveParents(fromFolderID).
		Context(ctx).
		Do()
	return err
}
