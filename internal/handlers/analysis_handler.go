package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"ampli5/resume-analyzer/internal/models"
	"ampli5/resume-analyzer/internal/services"
)

type AnalysisHandler struct {
	analyzer     services.AnalyzerService
	uploadReader services.UploadReader
}

func NewAnalysisHandler(
	analyzer services.AnalyzerService,
	uploadReader services.UploadReader,
) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer:     analyzer,
		uploadReader: uploadReader,
	}
}

// HandleResumeEnhance handles POST /resume_enhance
func (h *AnalysisHandler) HandleResumeEnhance(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file part in the request",
		})
	}

	resume, err := h.uploadReader.ReadUpload(fileHeader, models.RoleFile)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("📥 [%s] Resume enhancement requested for %s (%d bytes)", requestID(c), resume.Filename, resume.Size())

	result, err := h.analyzer.EnhanceResume(c.UserContext(), resume)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("✅ [%s] Resume enhancement completed", requestID(c))
	return c.JSON(result)
}

// HandleCompare handles POST /compare
func (h *AnalysisHandler) HandleCompare(c *fiber.Ctx) error {
	resumeHeader, resumeErr := c.FormFile("resume")
	jdHeader, jdErr := c.FormFile("jd")
	if resumeErr != nil || jdErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Both resume and job description files must be provided",
		})
	}

	resume, err := h.uploadReader.ReadUpload(resumeHeader, models.RoleResume)
	if err != nil {
		return respondError(c, err)
	}

	jobDescription, err := h.uploadReader.ReadUpload(jdHeader, models.RoleJobDescription)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("📥 [%s] Comparison requested for %s against %s", requestID(c), resume.Filename, jobDescription.Filename)

	result, err := h.analyzer.CompareResume(c.UserContext(), resume, jobDescription)
	if err != nil {
		return respondError(c, err)
	}

	log.Printf("✅ [%s] Comparison completed", requestID(c))
	return c.JSON(result)
}
