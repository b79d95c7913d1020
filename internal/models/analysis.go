package models

// ScoreResult is the keyword-overlap score of a resume against a job description.
// Missing is capped; MissingTotal keeps the uncapped count so that
// len(Matched)+MissingTotal == TotalKeywords.
type ScoreResult struct {
	Score         int      `json:"ats_score"`
	Matched       []string `json:"matched_keywords"`
	Missing       []string `json:"missing_keywords"`
	MissingTotal  int      `json:"missing_total"`
	TotalKeywords int      `json:"total_keywords"`
}

func (s ScoreResult) MatchCount() int {
	return len(s.Matched)
}
