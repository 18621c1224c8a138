package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ampli5/resume-analyzer/internal/config"
	"ampli5/resume-analyzer/internal/handlers"
	"ampli5/resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Printf("✅ Gemini AI initialized successfully (model: %s)", cfg.Gemini.Model)

	// Initialize services
	extractor, err := services.NewTextExtractor(cfg.Extractor.Backend, geminiService)
	if err != nil {
		log.Fatalf("❌ Failed to initialize text extractor: %v", err)
	}
	log.Printf("✅ Text extractor initialized (backend: %s)", cfg.Extractor.Backend)

	analyzerService := services.NewAnalyzerService(extractor, geminiService, services.AnalyzerConfig{
		TargetRole:  cfg.Analysis.TargetRole,
		Temperature: cfg.Gemini.Temperature,
		MaxAttempts: cfg.Gemini.MaxAttempts,
		Timeout:     cfg.Gemini.Timeout,
	})
	uploadReader := services.NewUploadReader(cfg.Upload.MaxFileSize)
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	analysisHandler := handlers.NewAnalysisHandler(analyzerService, uploadReader)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := handlers.NewApp(cfg, analysisHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("🌐 Allowed origins: %s\n", cfg.Server.AllowOrigins)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
