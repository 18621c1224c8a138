package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ampli5/resume-analyzer/internal/models"
	"ampli5/resume-analyzer/mocks"
)

const enhanceResponse = "```json\n" + `{
  "strengths": [{"description": "SQL", "evidence": ["Built dashboards"]}],
  "areas_for_improvement": [{"description": "Projects", "suggestions": ["Add metrics"]}],
  "actionable_suggestions": ["Quantify impact"]
}` + "\n```"

func newTestAnalyzer(extractor TextExtractor, geminiService GeminiService) AnalyzerService {
	return NewAnalyzerService(extractor, geminiService, AnalyzerConfig{
		TargetRole:  "Data Analyst",
		Temperature: 0.3,
		MaxAttempts: 1,
	})
}

func uploaded(role models.DocumentRole) *models.UploadedFile {
	return &models.UploadedFile{Role: role, Filename: string(role) + ".pdf", Content: []byte("%PDF-1.4")}
}

func TestEnhanceResume_Success(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	geminiService := new(mocks.MockGeminiService)

	extractor.On("ExtractText", mock.Anything, mocks.WithRole(models.RoleFile)).Return("Jane Doe, SQL expert", nil).Once()
	geminiService.On("GenerateTextWithRetry",
		mock.Anything,
		mock.MatchedBy(func(prompt string) bool { return strings.Contains(prompt, "Jane Doe, SQL expert") }),
		float32(0.3),
		1,
	).Return(enhanceResponse, nil).Once()

	result, err := newTestAnalyzer(extractor, geminiService).EnhanceResume(context.Background(), uploaded(models.RoleFile))
	require.NoError(t, err)

	body, ok := result.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, body, "strengths")
	assert.Contains(t, body, "areas_for_improvement")
	assert.Equal(t, []interface{}{"Quantify impact"}, body["actionable_suggestions"])

	extractor.AssertExpectations(t)
	geminiService.AssertExpectations(t)
}

func TestEnhanceResume_EmptyTextSkipsModel(t *testing.T) {
	for name, extracted := range map[string]struct {
		text string
		err  error
	}{
		"empty":      {"", nil},
		"whitespace": {"  \n\n ", nil},
		"error":      {"", errors.New("failed to open PDF")},
	} {
		t.Run(name, func(t *testing.T) {
			extractor := new(mocks.MockTextExtractor)
			geminiService := new(mocks.MockGeminiService)
			extractor.On("ExtractText", mock.Anything, mock.Anything).Return(extracted.text, extracted.err)

			result, err := newTestAnalyzer(extractor, geminiService).EnhanceResume(context.Background(), uploaded(models.RoleFile))

			assert.Nil(t, result)
			require.Error(t, err)
			assert.Equal(t, KindExtraction, KindOf(err))
			assert.Equal(t, "Failed to extract text from PDF", err.Error())
			geminiService.AssertNotCalled(t, "GenerateTextWithRetry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestEnhanceResume_RemoteFailure(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	geminiService := new(mocks.MockGeminiService)
	extractor.On("ExtractText", mock.Anything, mock.Anything).Return("resume", nil)
	geminiService.On("GenerateTextWithRetry", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", fmt.Errorf("failed to generate text: %w", errors.New("API key not valid")))

	_, err := newTestAnalyzer(extractor, geminiService).EnhanceResume(context.Background(), uploaded(models.RoleFile))

	require.Error(t, err)
	assert.Equal(t, KindRemote, KindOf(err))
	assert.Contains(t, err.Error(), "API key not valid")
	assert.False(t, IsTimeout(err))
}

func TestEnhanceResume_InvalidModelJSON(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	geminiService := new(mocks.MockGeminiService)
	extractor.On("ExtractText", mock.Anything, mock.Anything).Return("resume", nil)
	geminiService.On("GenerateTextWithRetry", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("Sure! Here is the analysis you asked for.", nil)

	_, err := newTestAnalyzer(extractor, geminiService).EnhanceResume(context.Background(), uploaded(models.RoleFile))

	require.Error(t, err)
	assert.Equal(t, KindNormalization, KindOf(err))
}

func TestEnhanceResume_TimeoutIsApplied(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	geminiService := new(mocks.MockGeminiService)
	extractor.On("ExtractText", mock.Anything, mock.Anything).Return("resume", nil)
	geminiService.On("GenerateTextWithRetry",
		mock.MatchedBy(func(ctx context.Context) bool {
			_, hasDeadline := ctx.Deadline()
			return hasDeadline
		}),
		mock.Anything, mock.Anything, mock.Anything,
	).Return("", fmt.Errorf("failed to generate text: %w", context.DeadlineExceeded))

	analyzer := NewAnalyzerService(extractor, geminiService, AnalyzerConfig{MaxAttempts: 1, Timeout: time.Minute})
	_, err := analyzer.EnhanceResume(context.Background(), uploaded(models.RoleFile))

	require.Error(t, err)
	assert.Equal(t, KindRemote, KindOf(err))
	assert.True(t, IsTimeout(err))
	geminiService.AssertExpectations(t)
}

func TestCompareResume_Success(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	geminiService := new(mocks.MockGeminiService)

	extractor.On("ExtractText", mock.Anything, mocks.WithRole(models.RoleResume)).Return("RESUME: Go, Postgres", nil).Once()
	extractor.On("ExtractText", mock.Anything, mocks.WithRole(models.RoleJobDescription)).Return("JD: Backend Go engineer", nil).Once()
	geminiService.On("GenerateTextWithRetry",
		mock.Anything,
		mock.MatchedBy(func(prompt string) bool {
			return strings.Contains(prompt, "RESUME: Go, Postgres") && strings.Contains(prompt, "JD: Backend Go engineer")
		}),
		mock.Anything, mock.Anything,
	).Return(`{"similarity_score": 0.82, "content": {"improvement_suggestions": [], "strengths": ["Go"], "areas_for_improvement": []}}`, nil).Once()

	result, err := newTestAnalyzer(extractor, geminiService).CompareResume(
		context.Background(), uploaded(models.RoleResume), uploaded(models.RoleJobDescription))
	require.NoError(t, err)

	body := result.(map[string]interface{})
	assert.InDelta(t, 0.82, body["similarity_score"], 0.0001)
	assert.Contains(t, body, "content")

	extractor.AssertNumberOfCalls(t, "ExtractText", 2)
	geminiService.AssertNumberOfCalls(t, "GenerateTextWithRetry", 1)
}

func TestCompareResume_ExtractionFailureNamesDocument(t *testing.T) {
	tests := []struct {
		name       string
		resumeText string
		jdText     string
		wantMsg    string
	}{
		{"resume empty", "", "JD", "Failed to extract text from resume PDF"},
		{"jd empty", "resume", "", "Failed to extract text from job description PDF"},
		{"both empty", "", "", "Failed to extract text from resume PDF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor := new(mocks.MockTextExtractor)
			geminiService := new(mocks.MockGeminiService)
			extractor.On("ExtractText", mock.Anything, mocks.WithRole(models.RoleResume)).Return(tt.resumeText, nil)
			extractor.On("ExtractText", mock.Anything, mocks.WithRole(models.RoleJobDescription)).Return(tt.jdText, nil)

			_, err := newTestAnalyzer(extractor, geminiService).CompareResume(
				context.Background(), uploaded(models.RoleResume), uploaded(models.RoleJobDescription))

			require.Error(t, err)
			assert.Equal(t, KindExtraction, KindOf(err))
			assert.Equal(t, tt.wantMsg, err.Error())
			extractor.AssertNumberOfCalls(t, "ExtractText", 2)
			geminiService.AssertNotCalled(t, "GenerateTextWithRetry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", newValidationError("too large"))

	assert.Equal(t, KindValidation, KindOf(wrapped))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, "extraction error", (&AnalysisError{Kind: KindExtraction}).Error())
}

func TestEnhanceResume_RemoteExtractionFailureKeepsKind(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	geminiService := new(mocks.MockGeminiService)
	extractor.On("ExtractText", mock.Anything, mock.Anything).
		Return("", newRemoteError(errors.New("Error 429: quota exceeded")))

	_, err := newTestAnalyzer(extractor, geminiService).EnhanceResume(context.Background(), uploaded(models.RoleFile))

	require.Error(t, err)
	assert.Equal(t, KindRemote, KindOf(err))
	assert.Equal(t, "Error 429: quota exceeded", err.Error())
	geminiService.AssertNotCalled(t, "GenerateTextWithRetry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExtraction_TimeoutIsApplied(t *testing.T) {
	hasDeadline := mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})

	extractor := new(mocks.MockTextExtractor)
	geminiService := new(mocks.MockGeminiService)
	extractor.On("ExtractText", hasDeadline, mocks.WithRole(models.RoleResume)).Return("resume", nil).Once()
	extractor.On("ExtractText", hasDeadline, mocks.WithRole(models.RoleJobDescription)).Return("jd", nil).Once()
	geminiService.On("GenerateTextWithRetry", hasDeadline, mock.Anything, mock.Anything, mock.Anything).
		Return(`{"similarity_score": 0.5, "content": {}}`, nil).Once()

	analyzer := NewAnalyzerService(extractor, geminiService, AnalyzerConfig{MaxAttempts: 1, Timeout: time.Minute})
	_, err := analyzer.CompareResume(context.Background(), uploaded(models.RoleResume), uploaded(models.RoleJobDescription))

	require.NoError(t, err)
	extractor.AssertExpectations(t)
	geminiService.AssertExpectations(t)
}

func TestExtraction_NoTimeoutByDefault(t *testing.T) {
	extractor := new(mocks.MockTextExtractor)
	extractor.On("ExtractText",
		mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return !ok
		}),
		mock.Anything,
	).Return("", nil).Once()

	_, err := newTestAnalyzer(extractor, new(mocks.MockGeminiService)).EnhanceResume(context.Background(), uploaded(models.RoleFile))

	assert.Equal(t, KindExtraction, KindOf(err))
	extractor.AssertExpectations(t)
}
