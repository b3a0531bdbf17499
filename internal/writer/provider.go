// Package writer turns generated prompts into articles through an LLM provider.
package writer

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/HartBrook/moanote/internal/errors"
	"github.com/HartBrook/moanote/internal/prompt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Provider completes a prompt request into text.
type Provider interface {
	Name() string
	Model() string
	Complete(ctx context.Context, req prompt.Request) (string, error)
}

// ProviderInfo describes an entry of the provider catalogue.
type ProviderInfo struct {
	Name         string
	Label        string
	DefaultModel string
	EnvVar       string
	Description  string
}

var catalogue = []ProviderInfo{
	{
		Name:         "openai",
		Label:        "OpenAI GPT-4",
		DefaultModel: "gpt-4o",
		EnvVar:       "OPENAI_API_KEY",
		Description:  "高品質で安定した出力",
	},
	{
		Name:         "gemini",
		Label:        "Google Gemini 2.0 Flash",
		DefaultModel: "gemini-2.0-flash-exp",
		EnvVar:       "GEMINI_API_KEY",
		Description:  "高速で創造性豊かな文章生成",
	},
	{
		Name:         "gemini-pro",
		Label:        "Google Gemini 1.5 Pro",
		DefaultModel: "gemini-1.5-pro-latest",
		EnvVar:       "GEMINI_API_KEY",
		Description:  "最新の高性能モデル",
	},
	{
		Name:         "anthropic",
		Label:        "Anthropic Claude",
		DefaultModel: "claude-sonnet-4-20250514",
		EnvVar:       "ANTHROPIC_API_KEY",
		Description:  "長文でも構成が崩れにくい",
	},
	{
		Name:         "mock",
		Label:        "Mock",
		DefaultModel: "mock",
		Description:  "API を呼ばずにダミー記事を返す（動作確認用）",
	},
}

// Providers returns the provider catalogue.
func Providers() []ProviderInfo {
	out := make([]ProviderInfo, len(catalogue))
	copy(out, catalogue)
	return out
}

// LookupProvider returns the catalogue entry for name.
func LookupProvider(name string) (ProviderInfo, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, p := range catalogue {
		if p.Name == name {
			return p, true
		}
	}
	return ProviderInfo{}, false
}

// DisplayName renders a provider name for progress output, e.g. "OPENAI".
func DisplayName(name string) string {
	return cases.Upper(language.Und).String(name)
}

// Settings selects and configures a provider.
type Settings struct {
	Provider   string
	Model      string // provider default when empty
	APIKey     string // read from the provider's env var when empty
	BaseURL    string // API endpoint override
	HTTPClient *http.Client
}

// NewProvider builds the provider named in s.
func NewProvider(ctx context.Context, s Settings) (Provider, error) {
	info, ok := LookupProvider(s.Provider)
	if !ok {
		return nil, errors.UnsupportedProvider(s.Provider)
	}

	model := s.Model
	if model == "" {
		model = info.DefaultModel
	}

	if info.Name == "mock" {
		return NewMock(model), nil
	}

	apiKey := s.APIKey
	if apiKey == "" {
		apiKey = lookupAPIKey(info)
	}
	if apiKey == "" {
		return nil, errors.ProviderAuthFailed(info.Label, info.EnvVar)
	}

	switch info.Name {
	case "openai":
		return NewOpenAI(apiKey, model, s.BaseURL, s.HTTPClient), nil
	case "gemini", "gemini-pro":
		return NewGemini(ctx, info.Name, apiKey, model, s.BaseURL, s.HTTPClient)
	default:
		opts := []ClientOption{WithAPIKey(apiKey), WithModel(model)}
		if s.BaseURL != "" {
			opts = append(opts, WithBaseURL(s.BaseURL))
		}
		if s.HTTPClient != nil {
			opts = append(opts, WithHTTPClient(s.HTTPClient))
		}
		return NewAnthropic(opts...)
	}
}

func lookupAPIKey(info ProviderInfo) string {
	if key := os.Getenv(info.EnvVar); key != "" {
		return key
	}
	if info.EnvVar == "GEMINI_API_KEY" {
		return os.Getenv("GOOGLE_API_KEY")
	}
	return ""
}

// withDefaults fills zero sampling parameters with the generator defaults.
func withDefaults(req prompt.Request) prompt.Request {
	if req.Temperature == 0 {
		req.Temperature = prompt.DefaultTemperature
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = prompt.DefaultMaxTokens
	}
	if req.TopP == 0 {
		req.TopP = prompt.DefaultTopP
	}
	return req
}
