package services

import (
	"context"
	"io"

	"github.com/mjtranscripciones/backend/internal/storage"
)

// fakeProvider is a scripted llm.Provider that records every call.
type fakeProvider struct {
	transcript    string
	answers       []string // consumed per Generate call; empty means "summary"
	transcribeErr error
	generateErr   error

	transcribeCalls []transcribeCall
	prompts         []string
}

type transcribeCall struct {
	audio    []byte
	mimeType string
}

func (f *fakeProvider) Transcribe(_ context.Context, audio []byte, mimeType string) (string, error) {
	f.transcribeCalls = append(f.transcribeCalls, transcribeCall{audio: audio, mimeType: mimeType})
	if f.transcribeErr != nil {
		return "", f.transcribeErr
	}
	if f.transcript == "" {
		return "transcript", nil
	}
	return f.transcript, nil
}

func (f *fakeProvider) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.generateErr != nil {
		return "", f.generateErr
	}
	if len(f.answers) == 0 {
		return "summary", nil
	}
	answer := f.answers[0]
	f.answers = f.answers[1:]
	return answer, nil
}

// fakeFileStore is a scripted storage.FileStore.
type fakeFileStore struct {
	info        *storage.FileInfo
	infoErr     error
	audio       []byte
	downloadErr error
	createErr   error
	moveErr     error

	downloads int
	created   []createdFile
	moves     []moveCall
}

type createdFile struct {
	folderID string
	name     string
	content  string
}

type moveCall struct {
	fileID  string
	from    string
	to      string
	newName string
}

func (f *fakeFileStore) FileInfo(_ context.Context, _ string) (*storage.FileInfo, error) {
	if f.infoErr != nil {
		return nil, f.infoErr
	}
	return f.info, nil
}

func (f *fakeFileStore) Download(_ context.Context, _ string) ([]byte, error) {
	f.downloads++
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	return f.audio, nil
}

func (f *fakeFileStore) CreateText(_ context.Context, folderID, name, content string) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, createdFile{folderID: folderID, name: name, content: content})
	return "report-file-id", nil
}

func (f *fakeFileStore) Move(_ context.Context, fileID, fromFolderID, toFolderID, newName string) error {
	if f.moveErr != nil {
		return f.moveErr
	}
	f.moves = append(f.moves, moveCall{fileID: fileID, from: fromFolderID, to: toFolderID, newName: newName})
	return nil
}

// fakeMirror is a scripted storage.Mirror.
type fakeMirror struct {
	err     error
	objects []mirrorObject
}

type mirrorObject struct {
	name        string
	contentType string
	content     string
}

func (m *fakeMirror) Upload(_ context.Context, objectName string, contentType string, r io.Reader) (string, error) {
	body, _ := io.ReadAll(r)
	m.objects = append(m.objects, mirrorObject{name: objectName, contentType: contentType, content: string(body)})
	if m.err != nil {
		return "", m.err
	}
	return "gs://test-bucket/" + objectName, nil
}
