package writer

import (
	"context"
	"net/http"

	"github.com/HartBrook/moanote/internal/errors"
	"github.com/HartBrook/moanote/internal/prompt"
	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Penalties sent with every OpenAI request to discourage repetitive prose.
const (
	openAIFrequencyPenalty = 0.5
	openAIPresencePenalty  = 0.3
)

// OpenAI writes articles with the chat completions API.
type OpenAI struct {
	model  string
	client openai.Client
}

// NewOpenAI creates an OpenAI provider. baseURL and httpClient are optional.
func NewOpenAI(apiKey, model, baseURL string, httpClient *http.Client) *OpenAI {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	return &OpenAI{model: model, client: openai.NewClient(opts...)}
}

// Name implements Provider.
func (o *OpenAI) Name() string { return "openai" }

// Model implements Provider.
func (o *OpenAI) Model() string { return o.model }

// Complete implements Provider.
func (o *OpenAI) Complete(ctx context.Context, req prompt.Request) (string, error) {
	req = withDefaults(req)

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage(req.User),
		},
		Temperature:      openai.Float(req.Temperature),
		MaxTokens:        openai.Int(int64(req.MaxTokens)),
		TopP:             openai.Float(req.TopP),
		FrequencyPenalty: openai.Float(openAIFrequencyPenalty),
		PresencePenalty:  openai.Float(openAIPresencePenalty),
	})
	if err != nil {
		return "", errors.GenerationFailed("OpenAI API error", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.GenerationFailed("OpenAI returned no choices", nil)
	}
	return resp.Choices[0].Message.Content, nil
}
