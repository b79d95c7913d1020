package services

import (
	"strings"

	"alfredoptarigan/resume-tailor/internal/config"
	"alfredoptarigan/resume-tailor/internal/models"
)

// ScoringPolicy is the ATS score split: KeywordWeight scales the matched
// ratio, FormatScore and CompletenessScore are flat bonuses.
type ScoringPolicy struct {
	KeywordWeight     float64
	FormatScore       float64
	CompletenessScore float64
	MaxScore          int
	MissingLimit      int
}

func DefaultScoringPolicy() ScoringPolicy {
	return ScoringPolicy{
		KeywordWeight:     70,
		FormatScore:       20,
		CompletenessScore: 10,
		MaxScore:          100,
		MissingLimit:      10,
	}
}

func ScoringPolicyFromConfig(cfg config.ScoringConfig) ScoringPolicy {
	policy := DefaultScoringPolicy()
	policy.KeywordWeight = cfg.KeywordWeight
	policy.FormatScore = cfg.FormatBonus
	policy.CompletenessScore = cfg.CompletenessBonus
	policy.MissingLimit = cfg.MaxMissing
	return policy
}

type ScorerService interface {
	Score(resumeText string, keywords []string) models.ScoreResult
}

type scorerService struct {
	policy ScoringPolicy
}

func NewScorerService(policy ScoringPolicy) ScorerService {
	return &scorerService{policy: policy}
}

func (s *scorerService) Score(resumeText string, keywords []string) models.ScoreResult {
	resumeLower := strings.ToLower(resumeText)

	matched := make([]string, 0, len(keywords))
	missing := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if strings.Contains(resumeLower, strings.ToLower(keyword)) {
			matched = append(matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}

	var keywordScore float64
	if len(keywords) > 0 {
		keywordScore = float64(len(matched)) / float64(len(keywords)) * s.policy.KeywordWeight
	}

	score := int(keywordScore + s.policy.FormatScore + s.policy.CompletenessScore)
	if score > s.policy.MaxScore {
		score = s.policy.MaxScore
	}
	if score < 0 {
		score = 0
	}

	missingTotal := len(missing)
	if s.policy.MissingLimit >= 0 && len(missing) > s.policy.MissingLimit {
		missing = missing[:s.policy.MissingLimit]
	}

	return models.ScoreResult{
		Score:         score,
		Matched:       matched,
		Missing:       missing,
		MissingTotal:  missingTotal,
		TotalKeywords: len(keywords),
	}
}
