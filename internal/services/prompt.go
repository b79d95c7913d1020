package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeRewritePrompt creates the prompt that asks the model to tailor a resume
func (pb *PromptBuilder) BuildResumeRewritePrompt(resumeText, jobDescription string, missingKeywords []string) string {
	missing := "None"
	if len(missingKeywords) > 0 {
		missing = strings.Join(missingKeywords, ", ")
	}

	return fmt.Sprintf(`You are an expert resume writer and career coach. Please optimize the following resume for the given job description.

JOB DESCRIPTION:
%s

CURRENT RESUME:
%s

MISSING KEYWORDS TO INCORPORATE: %s

Instructions:
1. Preserve the original structure and format as much as possible
2. Naturally incorporate the missing keywords where relevant
3. Enhance bullet points with stronger action verbs and more impactful language
4. Quantify achievements where possible
5. Ensure the resume is ATS-friendly
6. Keep the same personal information and contact details
7. Focus on making the experience and skills more relevant to the job

Return ONLY the optimized resume as plain text in the same format as the original, no commentary.`,
		strings.TrimSpace(jobDescription), strings.TrimSpace(resumeText), missing)
}
