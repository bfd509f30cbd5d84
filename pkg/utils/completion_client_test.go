package utils

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"travigo/internal/config"
	"travigo/internal/models/request_models"
)

type capturedRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	Messages  []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func chatResponse(content string) []byte {
	body, _ := json.Marshal(map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"choices": []map[string]any{
			{"index": 0, "message": map[string]any{"role": "assistant", "content": content}, "finish_reason": "stop"},
		},
	})
	return body
}

func newTestCompletionClient(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *CompletionClient {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	cfg := config.CompletionConfig{
		Provider:  "openai",
		BaseURL:   ts.URL,
		APIKey:    "test-key",
		Model:     "llama3.1-8b",
		MaxTokens: 3000,
		Timeout:   timeout,
	}
	return NewCompletionClient(cfg, NewOpenAICompletionProvider(cfg), zerolog.Nop())
}

func sampleInput() request_models.AIItineraryInput {
	return request_models.AIItineraryInput{
		TripName:    "My Trip",
		Destination: "Goa",
		StartDate:   "2025-01-10",
		EndDate:     "2025-01-12",
		TotalBudget: 1500,
		Duration:    5,
		TravelType:  "relaxed",
		Activities:  []string{},
		Travelers:   2,
	}
}

func TestComplete_SendsFixedPromptContract(t *testing.T) {
	var got capturedRequest
	var auth string
	client := newTestCompletionClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			http.NotFound(w, r)
			return
		}
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(chatResponse(`{"tripName":"Goa Getaway","duration":3}`))
	}, 5*time.Second)

	res, err := client.Complete(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth != "Bearer test-key" {
		t.Fatalf("authorization header: %q", auth)
	}
	if got.Model != "llama3.1-8b" || got.MaxTokens != 3000 {
		t.Fatalf("model/max_tokens not forwarded: %+v", got)
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Role != "user" {
		t.Fatalf("expected system+user messages, got %+v", got.Messages)
	}
	if !strings.HasSuffix(got.Messages[0].Content, "Respond ONLY with valid JSON, no extra text.") {
		t.Fatalf("system prompt must end with the JSON-only instruction")
	}
	if !strings.HasPrefix(got.Messages[1].Content, itineraryUserPromptPrefix) ||
		!strings.Contains(got.Messages[1].Content, `"destination":"Goa"`) {
		t.Fatalf("user message should carry the serialized input: %s", got.Messages[1].Content)
	}
	if res.TripName.Value != "Goa Getaway" || res.Duration.Value != 3 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestComplete_CoalescesZeroAndMissingFields(t *testing.T) {
	client := newTestCompletionClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatResponse(`Here you go: {"duration":0,"travelers":null,"tripName":"Goa"}`))
	}, 5*time.Second)

	res, err := client.Complete(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Duration.Value != 5 {
		t.Fatalf("duration 0 should fall back to request duration, got %v", res.Duration.Value)
	}
	if res.Travelers.Value != 2 {
		t.Fatalf("travelers: got %v", res.Travelers.Value)
	}
	if res.TotalBudget.Value != 1500 {
		t.Fatalf("totalBudget: got %v", res.TotalBudget.Value)
	}
	if res.TravelType.Value != "relaxed" {
		t.Fatalf("travelType: got %q", res.TravelType.Value)
	}
}

func TestComplete_DefaultsWhenInputAlsoMissing(t *testing.T) {
	client := newTestCompletionClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatResponse(`{}`))
	}, 5*time.Second)

	res, err := client.Complete(context.Background(), request_models.AIItineraryInput{Destination: "Goa"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Duration.Value != 1 || res.Travelers.Value != 1 || res.TotalBudget.Value != 0 {
		t.Fatalf("unexpected defaults: %+v", res)
	}
}

func TestComplete_UpstreamFailures(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
		},
		"no choices": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id":"x","choices":[]}`))
		},
		"empty content": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(chatResponse(""))
		},
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			client := newTestCompletionClient(t, h, 5*time.Second)
			_, err := client.Complete(context.Background(), sampleInput())
			if !errors.Is(err, ErrUpstream) {
				t.Fatalf("expected ErrUpstream, got %v", err)
			}
			if errors.Is(err, ErrParse) {
				t.Fatalf("upstream failure must not be reported as a parse failure")
			}
		})
	}
}

func TestComplete_Timeout(t *testing.T) {
	client := newTestCompletionClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, 50*time.Millisecond)

	_, err := client.Complete(context.Background(), sampleInput())
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream on timeout, got %v", err)
	}
}

func TestComplete_GarbageContentIsParseError(t *testing.T) {
	client := newTestCompletionClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatResponse("I'm sorry, I can't plan that trip."))
	}, 5*time.Second)

	_, err := client.Complete(context.Background(), sampleInput())
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestOpenAIProvider_AcceptsFullEndpointURL(t *testing.T) {
	var path string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write(chatResponse(`{"tripName":"x"}`))
	}))
	defer ts.Close()

	p := NewOpenAICompletionProvider(config.CompletionConfig{BaseURL: ts.URL + "/v1/chat/completions", APIKey: "k", Timeout: time.Second})
	if _, err := p.CreateCompletion(context.Background(), CompletionRequest{Model: "m"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "/v1/chat/completions" {
		t.Fatalf("unexpected request path %q", path)
	}
}

func TestComplete_NegativeCountsFallBackToInput(t *testing.T) {
	client := newTestCompletionClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatResponse(`{"duration":-3,"travelers":-1}`))
	}, 5*time.Second)

	res, err := client.Complete(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Duration.Value != 5 || res.Travelers.Value != 2 {
		t.Fatalf("negative counts should fall back to the request: duration=%v travelers=%v",
			res.Duration.Value, res.Travelers.Value)
	}
}
