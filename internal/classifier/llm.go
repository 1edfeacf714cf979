package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/DathaCode/moody-backend/internal/mood"
)

const systemPrompt = `You are a mood classification engine. Classify the emotional content of the user's text into exactly these six categories: happy, sad, energetic, calm, anxious, nostalgic.

Return ONLY a valid JSON object, no conversational text:
{"primaryEmotion": "<category>", "emotions": {"happy": 0.0, "sad": 0.0, "energetic": 0.0, "calm": 0.0, "anxious": 0.0, "nostalgic": 0.0}, "confidence": 0.0}

The emotions values must sum to roughly 1.0. confidence is your overall certainty in [0, 1].`

// Client classifies mood text via an OpenAI-compatible chat completions
// endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatError struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Error   *chatError   `json:"error,omitempty"`
}

// llmResult is the JSON shape the model is instructed to return.
type llmResult struct {
	PrimaryEmotion string             `json:"primaryEmotion"`
	Emotions       map[string]float64 `json:"emotions"`
	Confidence     float64            `json:"confidence"`
}

// NewClient creates an LLM classifier client.
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Analyze sends the text to the model and parses the structured response.
func (c *Client) Analyze(ctx context.Context, text string) (mood.Analysis, error) {
	payload := chatRequest{
		Model:       c.model,
		Temperature: 0.2,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return mood.Analysis{}, fmt.Errorf("classifier: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return mood.Analysis{}, fmt.Errorf("classifier: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return mood.Analysis{}, fmt.Errorf("classifier: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return mood.Analysis{}, fmt.Errorf("classifier: unexpected status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return mood.Analysis{}, fmt.Errorf("classifier: decode response: %w", err)
	}
	if parsed.Error != nil {
		return mood.Analysis{}, fmt.Errorf("classifier: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return mood.Analysis{}, fmt.Errorf("classifier: empty response")
	}

	return parseResult(parsed.Choices[0].Message.Content, text)
}

// parseResult decodes the model's JSON payload into a mood.Analysis,
// validating the primary emotion against the recognized set.
func parseResult(content, rawText string) (mood.Analysis, error) {
	var result llmResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return mood.Analysis{}, fmt.Errorf("classifier: decode classification: %w", err)
	}

	primary, err := mood.ParseEmotion(result.PrimaryEmotion)
	if err != nil {
		return mood.Analysis{}, fmt.Errorf("classifier: %w", err)
	}

	emotions := make(map[mood.Emotion]float64, len(mood.Emotions))
	for _, e := range mood.Emotions {
		emotions[e] = clamp01(result.Emotions[string(e)])
	}

	return mood.Analysis{
		PrimaryEmotion: primary,
		Emotions:       emotions,
		Confidence:     clamp01(result.Confidence),
		RawText:        rawText,
	}, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
