package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resume-tailor/internal/config"
	"alfredoptarigan/resume-tailor/internal/handlers"
	"alfredoptarigan/resume-tailor/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	ctx := context.Background()

	// Initialize storage
	storageService := services.NewStorageService(cfg.Storage.OutputPath)
	if err := storageService.EnsureOutputDir(); err != nil {
		log.Fatalf("❌ Failed to create output directory: %v", err)
	}

	objectStore, err := services.NewObjectStoreService(ctx, cfg.S3)
	if err != nil {
		log.Fatalf("❌ Failed to initialize S3: %v", err)
	}
	if objectStore.Enabled() {
		log.Println("✅ S3 initialized successfully")
	} else {
		log.Println("⚠️  S3 not configured, job descriptions will not be archived")
	}

	// Initialize text generator
	generator, backend, err := services.NewTextGenerator(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize text generator: %v", err)
	}
	if generator != nil {
		log.Printf("✅ %s initialized successfully\n", backend)
	} else {
		log.Println("⚠️  No GEMINI_API_KEY or OPENAI_API_KEY set, resumes will be returned without AI rewriting")
	}

	// Initialize analyzer
	analyzerService := services.NewAnalyzerService(
		services.NewTextExtractorService(),
		services.NewKeywordExtractor(),
		services.NewScorerService(services.ScoringPolicyFromConfig(cfg.Scoring)),
		services.NewResumeRewriter(generator),
		services.NewPDFRendererService(),
		storageService,
		objectStore,
	)
	log.Println("✅ Services initialized successfully")

	// Start output sweeper
	sweeper := services.NewSweeper(storageService, cfg.Storage.OutputTTL, cfg.Storage.SweepInterval)
	sweeper.Start(ctx)

	// Initialize Handlers
	analyzeHandler := handlers.NewAnalyzeHandler(analyzerService, cfg.Storage.MaxFileSize)
	downloadHandler := handlers.NewDownloadHandler(storageService)
	healthHandler := handlers.NewHealthHandler(cfg.GeminiConfigured(), cfg.OpenAIConfigured(), cfg.S3Configured())
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Resume Tailor API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + 1<<20,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	handlers.RegisterRoutes(app, analyzeHandler, downloadHandler, healthHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		sweeper.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
