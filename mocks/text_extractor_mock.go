package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ampli5/resume-analyzer/internal/models"
)

type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) ExtractText(ctx context.Context, file *models.UploadedFile) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

// WithRole matches an *models.UploadedFile argument by its role.
func WithRole(role models.DocumentRole) interface{} {
	return mock.MatchedBy(func(file *models.UploadedFile) bool {
		return file != nil && file.Role == role
	})
}
