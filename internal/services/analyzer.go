package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"ampli5/resume-analyzer/internal/models"
)

type AnalyzerService interface {
	EnhanceResume(ctx context.Context, resume *models.UploadedFile) (interface{}, error)
	CompareResume(ctx context.Context, resume, jobDescription *models.UploadedFile) (interface{}, error)
}

// AnalyzerConfig tunes the model calls. Timeout bounds extraction and generation separately; zero waits indefinitely.
type AnalyzerConfig struct {
	TargetRole  string
	Temperature float32
	MaxAttempts int
	Timeout     time.Duration
}

type analyzerService struct {
	extractor     TextExtractor
	geminiService GeminiService
	promptBuilder *PromptBuilder
	temperature   float32
	maxAttempts   int
	timeout       time.Duration
}

func NewAnalyzerService(
	extractor TextExtractor,
	geminiService GeminiService,
	cfg AnalyzerConfig,
) AnalyzerService {
	return &analyzerService{
		extractor:     extractor,
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(cfg.TargetRole),
		temperature:   cfg.Temperature,
		maxAttempts:   cfg.MaxAttempts,
		timeout:       cfg.Timeout,
	}
}

// EnhanceResume implements AnalyzerService.
func (a *analyzerService) EnhanceResume(ctx context.Context, resume *models.UploadedFile) (interface{}, error) {
	log.Println("📄 Extracting resume text...")
	resumeText, err := a.extractText(ctx, resume)
	if err != nil {
		return nil, err
	}

	prompt := a.promptBuilder.BuildResumeEnhancePrompt(resumeText)
	return a.analyze(ctx, "Resume enhancement", prompt)
}

// CompareResume implements AnalyzerService.
func (a *analyzerService) CompareResume(ctx context.Context, resume, jobDescription *models.UploadedFile) (interface{}, error) {
	log.Println("📄 Extracting resume and job description text...")

	var (
		wg                 sync.WaitGroup
		resumeText, jdText string
		resumeErr, jdErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		resumeText, resumeErr = a.extractText(ctx, resume)
	}()
	go func() {
		defer wg.Done()
		jdText, jdErr = a.extractText(ctx, jobDescription)
	}()
	wg.Wait()

	if resumeErr != nil {
		return nil, resumeErr
	}
	if jdErr != nil {
		return nil, jdErr
	}

	prompt := a.promptBuilder.BuildComparePrompt(resumeText, jdText)
	return a.analyze(ctx, "Comparison", prompt)
}

// withTimeout applies the configured model deadline, if any.
func (a *analyzerService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout > 0 {
		return context.WithTimeout(ctx, a.timeout)
	}
	return ctx, func() {}
}

// extractText reports a blank result or an unclassified failure as an extraction error for the file's role.
func (a *analyzerService) extractText(ctx context.Context, file *models.UploadedFile) (string, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	text, err := a.extractor.ExtractText(ctx, file)
	if err != nil {
		log.Printf("❌ Failed to extract text from %s (%s): %v", file.Filename, file.Role, err)
		var analysisErr *AnalysisError
		if errors.As(err, &analysisErr) {
			return "", err
		}
		return "", newExtractionError(file.Role, err)
	}

	if strings.TrimSpace(text) == "" {
		log.Printf("⚠️ No text extracted from %s (%s)", file.Filename, file.Role)
		return "", newExtractionError(file.Role, nil)
	}

	return text, nil
}

func (a *analyzerService) analyze(ctx context.Context, label, prompt string) (interface{}, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	log.Printf("📝 %s prompt length: %d characters", label, len(prompt))

	log.Printf("🤖 Running %s with LLM...", strings.ToLower(label))
	response, err := a.geminiService.GenerateTextWithRetry(ctx, prompt, a.temperature, a.maxAttempts)
	if err != nil {
		log.Printf("❌ %s failed: %v", label, err)
		return nil, newRemoteError(err)
	}

	log.Printf("✅ %s response received: %d characters", label, len(response))

	result, err := ParseModelJSON(response)
	if err != nil {
		log.Printf("❌ Failed to parse %s response: %v", strings.ToLower(label), err)
		return nil, err
	}

	return result, nil
}
