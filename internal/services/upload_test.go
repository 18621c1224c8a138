package services

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ampli5/resume-analyzer/internal/models"
)

func newFileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	require.Len(t, form.File[field], 1)
	return form.File[field][0]
}

func TestReadUpload(t *testing.T) {
	content := []byte("%PDF-1.4 resume bytes")
	header := newFileHeader(t, "resume", "jane.pdf", content)

	file, err := NewUploadReader(1024).ReadUpload(header, models.RoleResume)
	require.NoError(t, err)

	assert.Equal(t, models.RoleResume, file.Role)
	assert.Equal(t, "jane.pdf", file.Filename)
	assert.Equal(t, "application/octet-stream", file.ContentType)
	assert.Equal(t, content, file.Content)
	assert.Equal(t, len(content), file.Size())
}

func TestReadUpload_ZeroByteFileIsAccepted(t *testing.T) {
	header := newFileHeader(t, "file", "empty.pdf", nil)

	file, err := NewUploadReader(1024).ReadUpload(header, models.RoleFile)
	require.NoError(t, err)
	assert.Empty(t, file.Content)
}

func TestReadUpload_TooLarge(t *testing.T) {
	header := newFileHeader(t, "jd", "jd.pdf", bytes.Repeat([]byte("x"), 64))

	file, err := NewUploadReader(32).ReadUpload(header, models.RoleJobDescription)

	assert.Nil(t, file)
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, "Job description file too large. Max size: 32 bytes", err.Error())
}

func TestReadUpload_TooLargeNamesDocument(t *testing.T) {
	for role, want := range map[models.DocumentRole]string{
		models.RoleFile:   "Uploaded file too large. Max size: 32 bytes",
		models.RoleResume: "Resume file too large. Max size: 32 bytes",
	} {
		header := newFileHeader(t, "file", "big.pdf", bytes.Repeat([]byte("x"), 64))

		_, err := NewUploadReader(32).ReadUpload(header, role)

		require.Error(t, err)
		assert.Equal(t, want, err.Error())
		assert.NotContains(t, err.Error(), "file file")
	}
}

func TestReadUpload_NoLimit(t *testing.T) {
	header := newFileHeader(t, "file", "big.pdf", bytes.Repeat([]byte("x"), 4096))

	file, err := NewUploadReader(0).ReadUpload(header, models.RoleFile)
	require.NoError(t, err)
	assert.Len(t, file.Content, 4096)
}
