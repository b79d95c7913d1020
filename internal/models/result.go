package models

import "time"

type AnalysisResponse struct {
	ATSScore          int      `json:"ats_score"`
	KeywordMatches    int      `json:"keyword_matches"`
	TotalKeywords     int      `json:"total_keywords"`
	MissingKeywords   []string `json:"missing_keywords"`
	Suggestions       []string `json:"suggestions"`
	TailoredResumeURL string   `json:"tailored_resume_url"`
	OriginalFilename  string   `json:"original_filename"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
