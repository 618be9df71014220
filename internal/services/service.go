// Package services composes repository and object storage operations into the
// user-facing use cases: upload a file first, then persist the record that
// references the resulting URL. A failed upload always short-circuits; the
// record is never created.
package services

import (
	"errors"
	"io"
)

var (
	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("not found")
	// ErrUploadFailed indicates the backing file upload did not succeed
	ErrUploadFailed = errors.New("failed to upload image")
	// ErrCreateFailed indicates no record could be persisted
	ErrCreateFailed = errors.New("failed to create record")
)

// UploadedFile carries the raw bytes and metadata of one file supplied by the
// caller. A nil *UploadedFile means no new file was given, e.g. editing a
// record without changing its photo.
type UploadedFile struct {
	Reader      io.Reader
	Size        int64
	Filename    string
	ContentType string
}
