package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"travigo/internal/config"
	"travigo/internal/models/request_models"
	"travigo/internal/models/response_models"
	"travigo/pkg/observability"
)

const itinerarySystemPrompt = `You are an expert travel planner AI.
Generate a JSON itinerary in the exact structure expected by the frontend:
{
  tripName: string,
  destination: string,
  duration: number,
  travelers: number,
  totalBudget: number,
  startDate: string (YYYY-MM-DD),
  endDate: string (YYYY-MM-DD),
  summary: {
    flights: number,
    accommodation: number,
    activities: number,
    meals: number,
    transport: number
  },
  dailyItinerary: [
    {
      day: number,
      date: string (YYYY-MM-DD),
      city: string,
      title: string,
      activities: [
        {
          time: string,
          type: string,
          title: string,
          duration: string,
          cost: number
        }
      ]
    }
  ],
  accommodations: [
    {
      city: string,
      name: string,
      rating: number,
      pricePerNight: number,
      nights: number,
      amenities: string[]
    }
  ],
  transportation: [
    {
      from: string,
      to: string,
      type: string,
      cost: number
    }
  ]
}
Respond ONLY with valid JSON, no extra text.`

const itineraryUserPromptPrefix = "Generate a complete itinerary based on the following input:\n"

type CompletionMessage struct {
	Role    string
	Content string
}

type CompletionRequest struct {
	Model     string
	MaxTokens int
	Messages  []CompletionMessage
}

// CompletionProvider sends one chat-style request and returns the raw text of the first answer.
type CompletionProvider interface {
	Name() string
	CreateCompletion(ctx context.Context, req CompletionRequest) (string, error)
}

type CompletionClientInterface interface {
	Complete(ctx context.Context, input request_models.AIItineraryInput) (*response_models.AIItineraryResult, error)
}

type CompletionClient struct {
	provider CompletionProvider
	cfg      config.CompletionConfig
	logger   zerolog.Logger
}

func NewCompletionClient(cfg config.CompletionConfig, provider CompletionProvider, logger zerolog.Logger) *CompletionClient {
	return &CompletionClient{
		provider: provider,
		cfg:      cfg,
		logger:   logger.With().Str("component", "completion_client").Logger(),
	}
}

// Complete asks the provider for an itinerary, extracts the JSON object from the reply
// and fills duration, travelers and totalBudget from the input when the model left them out.
// Counts that are zero or negative are treated as left out.
func (c *CompletionClient) Complete(ctx context.Context, input request_models.AIItineraryInput) (*response_models.AIItineraryResult, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("encode itinerary input: %w", err)
	}

	req := CompletionRequest{
		Model:     c.cfg.Model,
		MaxTokens: c.cfg.MaxTokens,
		Messages: []CompletionMessage{
			{Role: "system", Content: itinerarySystemPrompt},
			{Role: "user", Content: itineraryUserPromptPrefix + string(payload)},
		},
	}

	provider := c.provider.Name()
	c.logger.Info().
		Str("provider", provider).
		Str("model", c.cfg.Model).
		Str("destination", input.Destination).
		Msg("sending itinerary request to AI provider")

	callCtx := ctx
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	content, err := c.provider.CreateCompletion(callCtx, req)
	elapsed := time.Since(start)
	if err != nil {
		observability.ObserveAI(provider, "upstream_error", elapsed)
		c.logger.Error().Err(err).Str("provider", provider).Dur("latency", elapsed).Msg("AI provider call failed")
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if strings.TrimSpace(content) == "" {
		observability.ObserveAI(provider, "upstream_error", elapsed)
		c.logger.Error().Str("provider", provider).Msg("AI response missing content")
		return nil, fmt.Errorf("%w: empty content", ErrUpstream)
	}

	result, err := ExtractItinerary(content)
	if err != nil {
		observability.ObserveAI(provider, "parse_error", elapsed)
		c.logger.Error().Err(err).Int("content_length", len(content)).Msg("failed to parse AI response JSON")
		return nil, err
	}

	observability.ObserveAI(provider, "ok", elapsed)
	c.logger.Info().Str("provider", provider).Dur("latency", elapsed).Msg("received response from AI provider")

	coalesceDefaults(result, input)
	return result, nil
}

func coalesceDefaults(r *response_models.AIItineraryResult, in request_models.AIItineraryInput) {
	r.Duration = response_models.NumberOf(r.Duration.PositiveOrElse(positiveOr(in.Duration, 1)))
	r.Travelers = response_models.NumberOf(r.Travelers.PositiveOrElse(positiveOr(in.Travelers, 1)))
	r.TotalBudget = response_models.NumberOf(r.TotalBudget.OrElse(in.TotalBudget))
	if r.TravelType.OrElse("") == "" && in.TravelType != "" {
		r.TravelType = response_models.TextOf(in.TravelType)
	}
}

func positiveOr(v int, fallback float64) float64 {
	if v > 0 {
		return float64(v)
	}
	return fallback
}
