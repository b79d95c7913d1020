package services

import "errors"

var (
	ErrUnsupportedFormat = errors.New("only PDF, DOC, and DOCX files are supported")
	ErrExtraction        = errors.New("could not extract text from resume")
	ErrRenderOrPersist   = errors.New("failed to produce tailored resume")
	ErrFileNotFound      = errors.New("file not found")
)

// Degradation records a best-effort step that fell back instead of failing
// the request.
type Degradation struct {
	Step   string
	Reason string
}

const (
	StepRewrite = "rewrite"
	StepArchive = "archive"
)
