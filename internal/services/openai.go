package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const rewriteSystemPrompt = "You are an expert resume writer. Return only the optimized resume as plain text."

type openAIService struct {
	client      *openai.Client
	model       string
	temperature float64
	maxTokens   int64
}

func NewOpenAIService(apiKey, model string, temperature float64, maxTokens int64, opts ...option.RequestOption) TextGenerator {
	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)

	return &openAIService{
		client:      &client,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// GenerateText implements TextGenerator.
func (o *openAIService) GenerateText(ctx context.Context, prompt string) (string, error) {
	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(rewriteSystemPrompt),
			openai.UserMessage(prompt),
		},
		Model:       openai.ChatModel(o.model),
		Temperature: openai.Float(o.temperature),
		MaxTokens:   openai.Int(o.maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("no response from openai")
	}

	return completion.Choices[0].Message.Content, nil
}
