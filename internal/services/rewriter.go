package services

import (
	"context"
	"log"
	"strings"
)

const FallbackNote = "[AI Optimization Note: Basic keyword optimization applied]"

// RewriteOutcome is either the model's rewrite or, when Degraded is set, the
// original resume with FallbackNote appended. Text is never empty.
type RewriteOutcome struct {
	Text     string
	Degraded bool
	Reason   string
}

// TextGenerator is a generative text backend (Gemini or OpenAI).
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type ResumeRewriter interface {
	Rewrite(ctx context.Context, resumeText, jobDescription string, missingKeywords []string) RewriteOutcome
}

type resumeRewriter struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
}

// NewResumeRewriter accepts a nil TextGenerator; every rewrite then degrades.
func NewResumeRewriter(generator TextGenerator) ResumeRewriter {
	return &resumeRewriter{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
	}
}

func (r *resumeRewriter) Rewrite(ctx context.Context, resumeText, jobDescription string, missingKeywords []string) RewriteOutcome {
	if r.generator == nil {
		return fallbackRewrite(resumeText, "generative service not configured")
	}

	prompt := r.promptBuilder.BuildResumeRewritePrompt(resumeText, jobDescription, missingKeywords)
	log.Printf("📝 Rewrite prompt length: %d characters", len(prompt))

	text, err := r.generator.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("❌ Error generating rewrite: %v", err)
		return fallbackRewrite(resumeText, err.Error())
	}
	if strings.TrimSpace(text) == "" {
		log.Println("⚠️ Empty rewrite received from text generator")
		return fallbackRewrite(resumeText, "empty response")
	}

	log.Printf("✅ Rewrite received: %d characters", len(text))
	return RewriteOutcome{Text: text}
}

func fallbackRewrite(resumeText, reason string) RewriteOutcome {
	return RewriteOutcome{
		Text:     resumeText + "\n\n" + FallbackNote,
		Degraded: true,
		Reason:   reason,
	}
}
