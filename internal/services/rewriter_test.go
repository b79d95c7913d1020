package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRewriter_Success(t *testing.T) {
	gemini := &fakeGemini{text: "Tailored resume body"}
	rewriter := NewResumeRewriter(gemini)

	outcome := rewriter.Rewrite(context.Background(), "Original resume", "Go developer wanted", []string{"Kubernetes", "Terraform"})

	if outcome.Degraded {
		t.Fatalf("Rewrite() degraded unexpectedly: %s", outcome.Reason)
	}
	if outcome.Text != "Tailored resume body" {
		t.Errorf("Text = %q, want model output verbatim", outcome.Text)
	}
	if len(gemini.prompts) != 1 {
		t.Fatalf("GenerateText called %d times, want 1", len(gemini.prompts))
	}

	prompt := gemini.prompts[0]
	for _, want := range []string{"Original resume", "Go developer wanted", "Kubernetes, Terraform", "ATS-friendly", "action verbs", "Quantify"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestRewriter_Fallbacks(t *testing.T) {
	tests := []struct {
		name   string
		gemini TextGenerator
	}{
		{name: "Service error", gemini: &fakeGemini{err: errors.New("quota exceeded")}},
		{name: "Empty output", gemini: &fakeGemini{text: "  \n "}},
		{name: "Not configured", gemini: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := NewResumeRewriter(tt.gemini).Rewrite(context.Background(), "Original resume", "jd", nil)

			if !outcome.Degraded {
				t.Fatal("Rewrite() not degraded")
			}
			if want := "Original resume\n\n" + FallbackNote; outcome.Text != want {
				t.Errorf("Text = %q, want %q", outcome.Text, want)
			}
			if outcome.Reason == "" {
				t.Error("Reason is empty")
			}
		})
	}
}

func TestBuildResumeRewritePrompt_NoMissingKeywords(t *testing.T) {
	prompt := NewPromptBuilder().BuildResumeRewritePrompt("resume", "jd", nil)

	if !strings.Contains(prompt, "MISSING KEYWORDS TO INCORPORATE: None") {
		t.Errorf("prompt does not mark missing keywords as none:\n%s", prompt)
	}
}
