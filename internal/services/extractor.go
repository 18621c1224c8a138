package services

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"ampli5/resume-analyzer/internal/config"
	"ampli5/resume-analyzer/internal/models"
)

const (
	mimeTypePDF  = "application/pdf"
	mimeTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	pdfMagic = []byte("%PDF-")
	zipMagic = []byte("PK\x03\x04")
)

// TextExtractor turns an uploaded document into plain text.
// An empty result means nothing could be recovered.
type TextExtractor interface {
	ExtractText(ctx context.Context, file *models.UploadedFile) (string, error)
}

// DetectMimeType sniffs the document format from its leading bytes.
func DetectMimeType(content []byte) string {
	switch {
	case bytes.HasPrefix(content, pdfMagic):
		return mimeTypePDF
	case bytes.HasPrefix(content, zipMagic):
		return mimeTypeDOCX
	default:
		return ""
	}
}

type documentExtractor struct {
	pdfExtractor  TextExtractor
	docxExtractor TextExtractor
}

// NewTextExtractor builds the extractor for the configured PDF backend.
// DOCX uploads are always handled locally.
func NewTextExtractor(backend string, geminiService GeminiService) (TextExtractor, error) {
	var pdfExtractor TextExtractor
	switch backend {
	case config.ExtractorBackendPDF:
		pdfExtractor = NewPDFParserService()
	case config.ExtractorBackendGemini:
		if geminiService == nil {
			return nil, fmt.Errorf("gemini extractor backend requires a gemini service")
		}
		pdfExtractor = NewGeminiExtractor(geminiService)
	default:
		return nil, fmt.Errorf("unknown extractor backend: %q", backend)
	}

	return &documentExtractor{
		pdfExtractor:  pdfExtractor,
		docxExtractor: NewDOCXParserService(),
	}, nil
}

// ExtractText implements TextExtractor.
func (d *documentExtractor) ExtractText(ctx context.Context, file *models.UploadedFile) (string, error) {
	if DetectMimeType(file.Content) == mimeTypeDOCX {
		return d.docxExtractor.ExtractText(ctx, file)
	}
	return d.pdfExtractor.ExtractText(ctx, file)
}

type geminiExtractor struct {
	geminiService GeminiService
}

func NewGeminiExtractor(geminiService GeminiService) TextExtractor {
	return &geminiExtractor{geminiService: geminiService}
}

// ExtractText implements TextExtractor.
func (g *geminiExtractor) ExtractText(ctx context.Context, file *models.UploadedFile) (string, error) {
	if DetectMimeType(file.Content) != mimeTypePDF {
		return "", fmt.Errorf("%s is not a PDF document", file.Filename)
	}

	log.Printf("🤖 Reading %s (%d bytes) with Gemini...", file.Filename, file.Size())
	text, err := g.geminiService.ExtractDocumentText(ctx, file.Content, mimeTypePDF)
	if err != nil {
		// The document may be fine; the model call is what failed.
		return "", newRemoteError(err)
	}
	return text, nil
}
