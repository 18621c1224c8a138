package models

type DocumentRole string

const (
	RoleFile           DocumentRole = "file"
	RoleResume         DocumentRole = "resume"
	RoleJobDescription DocumentRole = "job_description"
)

// UploadedFile holds one multipart upload in memory for the lifetime of a request.
type UploadedFile struct {
	Role        DocumentRole
	Filename    string
	ContentType string
	Content     []byte
}

func (f *UploadedFile) Size() int {
	return len(f.Content)
}
