package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trunghoangnt2003/memory/internal/services"
)

// allowedImageTypes limits uploads to browser-displayable image formats
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// formImage extracts an optional uploaded image from the multipart form.
// Returns (nil, nil, nil) when the field is absent; the caller must close the
// returned file when it is non-nil.
func formImage(c *gin.Context, field string, maxSize int64) (*services.UploadedFile, multipart.File, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("invalid file upload: %w", err)
	}

	return openImage(fileHeader, maxSize)
}

// openImage validates a file header and opens it as an UploadedFile
func openImage(fileHeader *multipart.FileHeader, maxSize int64) (*services.UploadedFile, multipart.File, error) {
	if fileHeader.Size > maxSize {
		return nil, nil, fmt.Errorf("file %s exceeds the %d byte limit", fileHeader.Filename, maxSize)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return nil, nil, fmt.Errorf("file type %s not allowed", contentType)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}

	return &services.UploadedFile{
		Reader:      file,
		Size:        fileHeader.Size,
		Filename:    fileHeader.Filename,
		ContentType: contentType,
	}, file, nil
}
