package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"travigo/internal/config"
)

// GeminiCompletionProvider maps the system message onto Gemini's system instruction.
type GeminiCompletionProvider struct {
	client *genai.Client
}

func NewGeminiCompletionProvider(ctx context.Context, cfg config.CompletionConfig) (*GeminiCompletionProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiCompletionProvider{client: client}, nil
}

func (p *GeminiCompletionProvider) Name() string { return "gemini" }

func (p *GeminiCompletionProvider) CreateCompletion(ctx context.Context, req CompletionRequest) (string, error) {
	m := p.client.GenerativeModel(req.Model)
	m.ResponseMIMEType = "application/json"
	if req.MaxTokens > 0 {
		m.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	var parts []genai.Part
	for _, msg := range req.Messages {
		if msg.Role == "system" {
			m.SystemInstruction = genai.NewUserContent(genai.Text(msg.Content))
			continue
		}
		parts = append(parts, genai.Text(msg.Content))
	}

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no content generated by Gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String(), nil
}

func (p *GeminiCompletionProvider) Close() error {
	return p.client.Close()
}
