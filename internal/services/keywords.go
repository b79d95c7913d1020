package services

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var technicalKeywords = []string{
	"python", "java", "javascript", "react", "node.js", "sql", "aws", "docker",
	"kubernetes", "machine learning", "ai", "data science", "analytics",
	"project management", "agile", "scrum", "leadership", "communication",
}

var skillPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:skills?|requirements?|qualifications?)[:\s]*([^.]+)`),
	regexp.MustCompile(`(?i)(?:experience with|proficient in|knowledge of)[:\s]*([^.]+)`),
	regexp.MustCompile(`(?i)(?:must have|required)[:\s]*([^.]+)`),
}

var skillSeparator = regexp.MustCompile(`[,;•\n]`)

const (
	maxSkillsPerMatch = 5
	minSkillLength    = 2
	maxSkillLength    = 30
)

type KeywordExtractor interface {
	Extract(jobDescription string) []string
}

type keywordExtractor struct {
	vocabulary []string
	patterns   []*regexp.Regexp
}

func NewKeywordExtractor() KeywordExtractor {
	return &keywordExtractor{
		vocabulary: technicalKeywords,
		patterns:   skillPatterns,
	}
}

// Extract returns the deduplicated, title-cased keyword set of a job
// description, sorted so that repeated runs agree on order.
func (k *keywordExtractor) Extract(jobDescription string) []string {
	caser := cases.Title(language.English)
	seen := make(map[string]struct{})
	add := func(keyword string) {
		seen[caser.String(keyword)] = struct{}{}
	}

	jobLower := strings.ToLower(jobDescription)
	for _, keyword := range k.vocabulary {
		if strings.Contains(jobLower, keyword) {
			add(keyword)
		}
	}

	for _, pattern := range k.patterns {
		for _, match := range pattern.FindAllStringSubmatch(jobDescription, -1) {
			skills := skillSeparator.Split(match[1], -1)
			if len(skills) > maxSkillsPerMatch {
				skills = skills[:maxSkillsPerMatch]
			}
			for _, skill := range skills {
				skill = strings.TrimSpace(skill)
				if n := utf8.RuneCountInString(skill); n > minSkillLength && n < maxSkillLength {
					add(skill)
				}
			}
		}
	}

	keywords := make([]string, 0, len(seen))
	for keyword := range seen {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)

	return keywords
}
