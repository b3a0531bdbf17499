package writer

import (
	"context"
	"net/http"

	"github.com/HartBrook/moanote/internal/errors"
	"github.com/HartBrook/moanote/internal/prompt"
	"google.golang.org/genai"
)

// geminiTopK matches the sampling used for both Gemini models.
const geminiTopK = 40

var geminiSafety = []*genai.SafetySetting{
	{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
	{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockMediumAndAbove},
}

// Gemini writes articles with the Gemini API.
type Gemini struct {
	name   string
	model  string
	client *genai.Client
}

// NewGemini creates a Gemini provider. name is "gemini" or "gemini-pro".
func NewGemini(ctx context.Context, name, apiKey, model, baseURL string, httpClient *http.Client) (*Gemini, error) {
	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, errors.GenerationFailed("failed to create Gemini client", err)
	}
	return &Gemini{name: name, model: model, client: client}, nil
}

// Name implements Provider.
func (g *Gemini) Name() string { return g.name }

// Model implements Provider.
func (g *Gemini) Model() string { return g.model }

// Complete implements Provider.
func (g *Gemini) Complete(ctx context.Context, req prompt.Request) (string, error) {
	req = withDefaults(req)

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		TopP:            genai.Ptr(float32(req.TopP)),
		TopK:            genai.Ptr(float32(geminiTopK)),
		MaxOutputTokens: int32(req.MaxTokens),
		SafetySettings:  geminiSafety,
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.User), cfg)
	if err != nil {
		return "", errors.GenerationFailed("Gemini API error", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.GenerationFailed("unexpected Gemini API response format", nil)
	}
	return text, nil
}
