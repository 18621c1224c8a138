package services

import (
	"fmt"
	"io"
	"mime/multipart"

	"ampli5/resume-analyzer/internal/models"
)

type UploadReader interface {
	ReadUpload(file *multipart.FileHeader, role models.DocumentRole) (*models.UploadedFile, error)
}

type uploadReader struct {
	maxFileSize int64
}

// NewUploadReader reads uploads into memory. A maxFileSize of zero disables the size check.
func NewUploadReader(maxFileSize int64) UploadReader {
	return &uploadReader{
		maxFileSize: maxFileSize,
	}
}

// ReadUpload implements UploadReader.
func (u *uploadReader) ReadUpload(file *multipart.FileHeader, role models.DocumentRole) (*models.UploadedFile, error) {
	if u.maxFileSize > 0 && file.Size > u.maxFileSize {
		return nil, newValidationError("%s file too large. Max size: %d bytes", roleNoun(role), u.maxFileSize)
	}

	// Open source file
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return &models.UploadedFile{
		Role:        role,
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}
