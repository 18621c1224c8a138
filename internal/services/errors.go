package services

import (
	"context"
	"errors"
	"fmt"

	"ampli5/resume-analyzer/internal/models"
)

type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindExtraction    ErrorKind = "extraction"
	KindRemote        ErrorKind = "remote"
	KindNormalization ErrorKind = "normalization"
	KindInternal      ErrorKind = "internal"
)

// AnalysisError classifies a pipeline failure. Message is safe to show to callers.
type AnalysisError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AnalysisError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind) + " error"
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first AnalysisError in err's chain, or KindInternal.
func KindOf(err error) ErrorKind {
	var analysisErr *AnalysisError
	if errors.As(err, &analysisErr) {
		return analysisErr.Kind
	}
	return KindInternal
}

// IsTimeout reports whether err was caused by an expired deadline.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

func newValidationError(format string, args ...interface{}) *AnalysisError {
	return &AnalysisError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func newExtractionError(role models.DocumentRole, err error) *AnalysisError {
	return &AnalysisError{Kind: KindExtraction, Message: extractionFailureMessage(role), Err: err}
}

func newRemoteError(err error) *AnalysisError {
	return &AnalysisError{Kind: KindRemote, Message: err.Error(), Err: err}
}

func extractionFailureMessage(role models.DocumentRole) string {
	switch role {
	case models.RoleResume:
		return "Failed to extract text from resume PDF"
	case models.RoleJobDescription:
		return "Failed to extract text from job description PDF"
	default:
		return "Failed to extract text from PDF"
	}
}

// roleNoun names the uploaded document at the start of a user-facing message.
func roleNoun(role models.DocumentRole) string {
	switch role {
	case models.RoleResume:
		return "Resume"
	case models.RoleJobDescription:
		return "Job description"
	default:
		return "Uploaded"
	}
}
