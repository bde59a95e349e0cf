package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/bandhitl/prod-plan/internal/config"
)

// Provider generates a completion for a system/user prompt pair. The
// analyzer works without one configured; everything it produces then
// comes from the deterministic fallback.
type Provider interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ErrNoAPIKey means no OPENAI_API_KEY is set.
var ErrNoAPIKey = errors.New("OPENAI_API_KEY not set")

// OpenAIProvider calls an OpenAI-compatible chat-completions endpoint.
type OpenAIProvider struct {
	cfg    config.AIConfig
	apiKey string
	client *http.Client
}

// NewOpenAIProvider builds a provider from config, reading the API key
// from the environment. Returns ErrNoAPIKey when the key is absent.
func NewOpenAIProvider(cfg config.AIConfig) (*OpenAIProvider, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	return &OpenAIProvider{
		cfg:    cfg,
		apiKey: apiKey,
		client: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends one chat completion request.
func (p *OpenAIProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := chatRequest{
		Model: p.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	res, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion call: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion status %d: %s", res.StatusCode, string(body))
	}

	var response chatResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", errors.New("chat response has no choices")
	}

	return response.Choices[0].Message.Content, nil
}
