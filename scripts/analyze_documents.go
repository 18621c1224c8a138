package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"ampli5/resume-analyzer/internal/config"
	"ampli5/resume-analyzer/internal/models"
	"ampli5/resume-analyzer/internal/services"
)

// Runs the analysis pipeline on local files and prints the model's JSON.
//
//	go run ./scripts -resume ./cv.pdf [-jd ./job.pdf] [-out result.json]
func main() {
	resumePath := flag.String("resume", "", "Path to resume file (pdf or docx)")
	jdPath := flag.String("jd", "", "Path to job description file; enables comparison mode")
	outPath := flag.String("out", "", "Path to write the JSON result (optional)")
	flag.Parse()

	if *resumePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	geminiService, err := services.NewGeminiService(cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini: %v", err)
	}

	extractor, err := services.NewTextExtractor(cfg.Extractor.Backend, geminiService)
	if err != nil {
		log.Fatalf("❌ Failed to initialize text extractor: %v", err)
	}

	analyzer := services.NewAnalyzerService(extractor, geminiService, services.AnalyzerConfig{
		TargetRole:  cfg.Analysis.TargetRole,
		Temperature: cfg.Gemini.Temperature,
		MaxAttempts: cfg.Gemini.MaxAttempts,
		Timeout:     cfg.Gemini.Timeout,
	})

	ctx := context.Background()

	var result interface{}
	if *jdPath == "" {
		log.Printf("🔄 Analyzing %s...", *resumePath)
		result, err = analyzer.EnhanceResume(ctx, readDocument(*resumePath, models.RoleFile))
	} else {
		log.Printf("🔄 Comparing %s against %s...", *resumePath, *jdPath)
		result, err = analyzer.CompareResume(ctx,
			readDocument(*resumePath, models.RoleResume),
			readDocument(*jdPath, models.RoleJobDescription),
		)
	}
	if err != nil {
		log.Fatalf("❌ Analysis failed (%s): %v", services.KindOf(err), err)
	}

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("❌ Failed to format result: %v", err)
	}
	pretty = append(pretty, '\n')

	if *outPath != "" {
		if err := os.WriteFile(*outPath, pretty, 0o644); err != nil {
			log.Fatalf("❌ Failed to write %s: %v", *outPath, err)
		}
		log.Printf("💾 Result written to %s", *outPath)
	}

	if _, err := os.Stdout.Write(pretty); err != nil {
		log.Fatalf("❌ Failed to write result: %v", err)
	}
}

func readDocument(path string, role models.DocumentRole) *models.UploadedFile {
	content, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("❌ Failed to read %s: %v", path, err)
	}

	contentType := services.DetectMimeType(content)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &models.UploadedFile{
		Role:        role,
		Filename:    filepath.Base(path),
		ContentType: contentType,
		Content:     content,
	}
}
