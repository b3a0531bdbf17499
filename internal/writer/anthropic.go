package writer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/HartBrook/moanote/internal/errors"
	"github.com/HartBrook/moanote/internal/prompt"
)

const (
	anthropicBaseURL    = "https://api.anthropic.com/v1"
	anthropicAPIVersion = "2023-06-01"
)

// Anthropic handles communication with the Claude messages API.
type Anthropic struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// ClientOption configures an Anthropic client.
type ClientOption func(*Anthropic)

// WithAPIKey sets the API key instead of reading ANTHROPIC_API_KEY.
func WithAPIKey(key string) ClientOption {
	return func(c *Anthropic) {
		c.apiKey = key
	}
}

// WithModel sets the model to use.
func WithModel(model string) ClientOption {
	return func(c *Anthropic) {
		c.model = model
	}
}

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) ClientOption {
	return func(c *Anthropic) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Anthropic) {
		c.httpClient = client
	}
}

// NewAnthropic creates a Claude API client.
// Without WithAPIKey it reads the key from the ANTHROPIC_API_KEY environment variable.
func NewAnthropic(opts ...ClientOption) (*Anthropic, error) {
	info, _ := LookupProvider("anthropic")

	c := &Anthropic{
		apiKey:  os.Getenv(info.EnvVar),
		baseURL: anthropicBaseURL,
		model:   info.DefaultModel,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.apiKey == "" {
		return nil, errors.ProviderAuthFailed(info.Label, info.EnvVar)
	}
	return c, nil
}

// Name implements Provider.
func (c *Anthropic) Name() string { return "anthropic" }

// Model implements Provider.
func (c *Anthropic) Model() string { return c.model }

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	System      string             `json:"system,omitempty"`
	Temperature float64            `json:"temperature"`
	Messages    []anthropicMessage `json:"messages"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messagesResponse struct {
	ID         string         `json:"id"`
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

type apiError struct {
	Type  string `json:"type"`
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends req to Claude and returns the concatenated text blocks.
func (c *Anthropic) Complete(ctx context.Context, req prompt.Request) (string, error) {
	req = withDefaults(req)

	resp, err := c.sendRequest(ctx, messagesRequest{
		Model:       c.model,
		MaxTokens:   req.MaxTokens,
		System:      req.System,
		Temperature: req.Temperature,
		Messages: []anthropicMessage{
			{Role: "user", Content: req.User},
		},
	})
	if err != nil {
		return "", err
	}

	var result string
	for _, block := range resp.Content {
		if block.Type == "text" {
			result += block.Text
		}
	}
	return result, nil
}

func (c *Anthropic) sendRequest(ctx context.Context, req messagesRequest) (*messagesResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.GenerationFailed("failed to encode request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return nil, errors.GenerationFailed("failed to create request", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicAPIVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.GenerationFailed("Anthropic API request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.GenerationFailed("failed to read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, errors.GenerationFailed(
				fmt.Sprintf("Anthropic API error (%d): %s", resp.StatusCode, apiErr.Error.Message),
				nil,
			)
		}
		return nil, errors.GenerationFailed(
			fmt.Sprintf("Anthropic API returned status %d", resp.StatusCode),
			nil,
		)
	}

	var result messagesResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, errors.GenerationFailed("failed to decode response", err)
	}
	return &result, nil
}
