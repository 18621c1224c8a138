package services

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"ampli5/resume-analyzer/internal/models"
)

type docxParserService struct{}

func NewDOCXParserService() TextExtractor {
	return &docxParserService{}
}

// ExtractText implements TextExtractor.
func (d *docxParserService) ExtractText(_ context.Context, file *models.UploadedFile) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(file.Content), int64(len(file.Content)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	text, err := documentXMLToText(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("failed to read docx body: %w", err)
	}

	return text, nil
}

// documentXMLToText keeps the character data of word/document.xml, one line per paragraph.
func documentXMLToText(documentXML string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var textBuilder strings.Builder
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.CharData:
			textBuilder.Write(t)
		case xml.StartElement:
			if t.Name.Local == "tab" {
				textBuilder.WriteString("\t")
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				textBuilder.WriteString("\n")
			}
		}
	}

	return strings.TrimSpace(textBuilder.String()), nil
}
