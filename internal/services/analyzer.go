package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"alfredoptarigan/resume-tailor/internal/models"
)

type AnalyzerService interface {
	Analyze(ctx context.Context, input AnalyzeInput) (*AnalysisResult, error)
}

type AnalyzeInput struct {
	JobDescription string
	Filename       string
	Data           []byte
}

type AnalysisResult struct {
	RequestID         string
	Score             models.ScoreResult
	Suggestions       []string
	Rewrite           RewriteOutcome
	RenderedFilename  string
	JobDescriptionKey string
	Degradations      []Degradation
}

// Response converts the result into the public analyze payload.
func (r *AnalysisResult) Response(originalFilename string) models.AnalysisResponse {
	return models.AnalysisResponse{
		ATSScore:          r.Score.Score,
		KeywordMatches:    r.Score.MatchCount(),
		TotalKeywords:     r.Score.TotalKeywords,
		MissingKeywords:   r.Score.Missing,
		Suggestions:       r.Suggestions,
		TailoredResumeURL: DownloadURL(r.RenderedFilename),
		OriginalFilename:  originalFilename,
	}
}

func RenderedFilename(requestID string) string {
	return fmt.Sprintf("tailored_resume_%s.pdf", requestID)
}

func DownloadURL(filename string) string {
	return "/api/download/" + filename
}

type analyzerService struct {
	extractor   TextExtractorService
	keywords    KeywordExtractor
	scorer      ScorerService
	rewriter    ResumeRewriter
	renderer    PDFRendererService
	storage     StorageService
	objectStore ObjectStoreService
	newID       func() string
}

func NewAnalyzerService(
	extractor TextExtractorService,
	keywords KeywordExtractor,
	scorer ScorerService,
	rewriter ResumeRewriter,
	renderer PDFRendererService,
	storage StorageService,
	objectStore ObjectStoreService,
) AnalyzerService {
	return &analyzerService{
		extractor:   extractor,
		keywords:    keywords,
		scorer:      scorer,
		rewriter:    rewriter,
		renderer:    renderer,
		storage:     storage,
		objectStore: objectStore,
		newID:       func() string { return uuid.New().String() },
	}
}

func (a *analyzerService) Analyze(ctx context.Context, input AnalyzeInput) (*AnalysisResult, error) {
	if !IsSupportedFile(input.Filename) {
		return nil, ErrUnsupportedFormat
	}

	// Step 1: Extract resume text
	resumeText, err := a.extractor.ExtractText(input.Filename, input.Data)
	if err != nil {
		return nil, err
	}
	log.Printf("📄 Extracted %d characters from %s", len(resumeText), input.Filename)

	result := &AnalysisResult{RequestID: a.newID()}

	// Step 2: Mirror the job description, best effort
	if a.objectStore != nil && a.objectStore.Enabled() {
		key, err := a.objectStore.PutJobDescription(ctx, result.RequestID, input.JobDescription)
		if err != nil {
			log.Printf("⚠️  Error saving job description to S3: %v", err)
			result.Degradations = append(result.Degradations, Degradation{Step: StepArchive, Reason: err.Error()})
		} else {
			result.JobDescriptionKey = key
		}
	}

	// Step 3: Score
	jobKeywords := a.keywords.Extract(input.JobDescription)
	result.Score = a.scorer.Score(resumeText, jobKeywords)
	result.Suggestions = Suggestions(result.Score)
	log.Printf("📊 ATS score %d (%d/%d keywords)", result.Score.Score, result.Score.MatchCount(), result.Score.TotalKeywords)

	// Step 4: Rewrite, best effort
	result.Rewrite = a.rewriter.Rewrite(ctx, resumeText, input.JobDescription, result.Score.Missing)
	if result.Rewrite.Degraded {
		result.Degradations = append(result.Degradations, Degradation{Step: StepRewrite, Reason: result.Rewrite.Reason})
	}

	// Step 5: Render and persist
	pdfBytes, err := a.renderer.Render(result.Rewrite.Text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderOrPersist, err)
	}

	result.RenderedFilename = RenderedFilename(result.RequestID)
	if _, err := a.storage.SaveFile(result.RenderedFilename, pdfBytes); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderOrPersist, err)
	}

	log.Printf("✅ Analysis %s completed", result.RequestID)
	return result, nil
}
