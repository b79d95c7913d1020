package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"

	"alfredoptarigan/resume-tailor/internal/config"
	"alfredoptarigan/resume-tailor/internal/services"
)

// Runs one analysis against local files and prints the analyze response.
//
//	go run ./scripts -resume cv.pdf -job job.txt
func main() {
	resumePath := flag.String("resume", "", "path to the resume (.pdf, .docx, .doc)")
	jobPath := flag.String("job", "", "path to a plain-text job description")
	outDir := flag.String("out", "", "directory for the tailored PDF (defaults to OUTPUT_DIR)")
	flag.Parse()

	if *resumePath == "" || *jobPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	if *outDir != "" {
		cfg.Storage.OutputPath = *outDir
	}

	resumeData, err := os.ReadFile(*resumePath)
	if err != nil {
		log.Fatalf("❌ Failed to read resume: %v", err)
	}
	jobDescription, err := os.ReadFile(*jobPath)
	if err != nil {
		log.Fatalf("❌ Failed to read job description: %v", err)
	}

	ctx := context.Background()

	storageService := services.NewStorageService(cfg.Storage.OutputPath)
	if err := storageService.EnsureOutputDir(); err != nil {
		log.Fatalf("❌ Failed to create output directory: %v", err)
	}

	objectStore, err := services.NewObjectStoreService(ctx, cfg.S3)
	if err != nil {
		log.Fatalf("❌ Failed to initialize S3: %v", err)
	}

	generator, _, err := services.NewTextGenerator(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize text generator: %v", err)
	}

	analyzer := services.NewAnalyzerService(
		services.NewTextExtractorService(),
		services.NewKeywordExtractor(),
		services.NewScorerService(services.ScoringPolicyFromConfig(cfg.Scoring)),
		services.NewResumeRewriter(generator),
		services.NewPDFRendererService(),
		storageService,
		objectStore,
	)

	filename := filepath.Base(*resumePath)
	result, err := analyzer.Analyze(ctx, services.AnalyzeInput{
		JobDescription: string(jobDescription),
		Filename:       filename,
		Data:           resumeData,
	})
	if err != nil {
		log.Fatalf("❌ Analysis failed: %v", err)
	}

	for _, d := range result.Degradations {
		log.Printf("⚠️  %s degraded: %s", d.Step, d.Reason)
	}
	log.Printf("📄 Tailored resume: %s", storageService.GetFilePath(result.RenderedFilename))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result.Response(filename)); err != nil {
		log.Fatalf("❌ Failed to write response: %v", err)
	}
}
