package storage

import (
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
)

// ReportMirror keeps a second copy of generated reports in a GCS bucket.
// Reports are internal documents, so objects stay private.
type ReportMirror struct {
	client *gcs.Client
	bucket string
}

func NewReportMirror(ctx context.Context, bucket string) (*ReportMirror, error) {
	c, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &ReportMirror{client: c, bucket: bucket}, nil
}

func (m *ReportMirror) Close() error { return m.client.Close() }

func (m *ReportMirror) Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (string, error) {
	obj := m.client.Bucket(m.bucket).Object(objectName)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return fmt.Sprintf("gs://%s/%s", m.bucket, objectName), nil
}
