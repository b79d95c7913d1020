package services

import "alfredoptarigan/resume-tailor/internal/models"

const (
	lowScoreThreshold     = 60
	manyMissingThreshold  = 5
	lowScoreSuggestion    = "Your ATS score is below average. Focus on incorporating more relevant keywords from the job description."
	manyMissingSuggestion = "Add missing technical skills and keywords to your skills section and experience descriptions."
)

var genericSuggestions = []string{
	"Use action verbs to start bullet points in your experience section",
	"Quantify your achievements with specific numbers and percentages",
	"Ensure your resume format is ATS-friendly with clear section headers",
	"Include a professional summary that matches the job requirements",
}

// Suggestions turns a score into advice: up to two conditional messages
// followed by the generic ones.
func Suggestions(result models.ScoreResult) []string {
	suggestions := make([]string, 0, len(genericSuggestions)+2)

	if result.Score < lowScoreThreshold {
		suggestions = append(suggestions, lowScoreSuggestion)
	}
	if len(result.Missing) > manyMissingThreshold {
		suggestions = append(suggestions, manyMissingSuggestion)
	}

	return append(suggestions, genericSuggestions...)
}
