package utils

import (
	"context"
	"errors"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"travigo/internal/config"
)

// OpenAICompletionProvider talks to any OpenAI-compatible chat completions host (Cerebras, OpenAI, ...).
type OpenAICompletionProvider struct {
	client *openai.Client
}

func NewOpenAICompletionProvider(cfg config.CompletionConfig) *OpenAICompletionProvider {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		// accept both ".../v1" and the full ".../v1/chat/completions" form
		oc.BaseURL = strings.TrimSuffix(strings.TrimRight(cfg.BaseURL, "/"), "/chat/completions")
	}
	oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	return &OpenAICompletionProvider{client: openai.NewClientWithConfig(oc)}
}

func (p *OpenAICompletionProvider) Name() string { return "openai" }

func (p *OpenAICompletionProvider) CreateCompletion(ctx context.Context, req CompletionRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     req.Model,
		MaxTokens: req.MaxTokens,
		Messages:  messages,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("response has no choices")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", errors.New("response has empty message content")
	}
	return content, nil
}
