package writer

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/HartBrook/moanote/internal/brief"
	"github.com/HartBrook/moanote/internal/cache"
	"github.com/HartBrook/moanote/internal/errors"
	"github.com/HartBrook/moanote/internal/optimize"
	"github.com/HartBrook/moanote/internal/prompt"
	"github.com/HartBrook/moanote/internal/textutil"
)

// MinArticleLength is the shortest article, in characters, accepted from a provider.
const MinArticleLength = 500

const (
	pingSystem      = "簡潔に応答してください。"
	pingUser        = "「テスト」と返してください。"
	pingTemperature = 0.1
	pingMaxTokens   = 10

	rewriteSystem = "あなたは経験豊富な編集者です。与えられた記事を指定された方針に従って適切にリライトしてください。"
)

// Result is a generated article plus what is known about how it was made.
type Result struct {
	Article    string
	Provider   string
	Model      string
	PromptUsed string
	CharCount  int
	Anchors    *optimize.AnchorResult
	Tidy       TidyStats
	Cached     bool
}

// Writer drives a Provider: connection test, completion, quality checks.
type Writer struct {
	provider Provider
	cache    *cache.Cache
	ttl      time.Duration
	skipPing bool
	progress func(string)
}

// Option configures a Writer.
type Option func(*Writer)

// WithCache reuses articles younger than ttl for identical prompts.
func WithCache(c *cache.Cache, ttl time.Duration) Option {
	return func(w *Writer) {
		w.cache = c
		w.ttl = ttl
	}
}

// WithoutPing skips the connection test before each article.
func WithoutPing() Option {
	return func(w *Writer) {
		w.skipPing = true
	}
}

// WithProgress receives a line for each pipeline step.
func WithProgress(fn func(string)) Option {
	return func(w *Writer) {
		w.progress = fn
	}
}

// New creates a Writer around p.
func New(p Provider, opts ...Option) *Writer {
	w := &Writer{provider: p}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Provider returns the wrapped provider.
func (w *Writer) Provider() Provider {
	return w.provider
}

// Ping runs a tiny completion to confirm the provider answers.
func (w *Writer) Ping(ctx context.Context) (string, error) {
	resp, err := w.provider.Complete(ctx, prompt.Request{
		System:      pingSystem,
		User:        pingUser,
		Temperature: pingTemperature,
		MaxTokens:   pingMaxTokens,
		TopP:        prompt.DefaultTopP,
	})
	if err != nil {
		return "", errors.Wrap(
			errors.ErrGenerationFailed,
			fmt.Sprintf("%s API connection test failed", DisplayName(w.provider.Name())),
			"Check your API key and provider",
			err,
		)
	}
	return strings.TrimSpace(resp), nil
}

// Write generates the prompt for b and turns it into an article.
func (w *Writer) Write(ctx context.Context, b *brief.Brief) (*Result, error) {
	if b == nil {
		return nil, errors.BriefMissing()
	}
	req := prompt.APIRequest(b)
	if v := prompt.Check(req.User); !v.OK() {
		w.report(fmt.Sprintf("prompt check failed (%d chars, %d sections missing)",
			v.Length, len(v.MissingHeaders)+len(v.MissingMarkers)))
	}
	return w.WriteRequest(ctx, b, req)
}

// WriteRequest sends a prepared request, such as one carrying an optimized
// prompt, and checks the article against b's keywords.
func (w *Writer) WriteRequest(ctx context.Context, b *brief.Brief, req prompt.Request) (*Result, error) {
	key := cache.Key(w.provider.Name(), w.provider.Model(), req.System+"\n"+req.User)
	if res := w.fromCache(key, b, req); res != nil {
		return res, nil
	}

	if !w.skipPing {
		w.report(fmt.Sprintf("testing %s connection", DisplayName(w.provider.Name())))
		if _, err := w.Ping(ctx); err != nil {
			return nil, err
		}
	}

	w.report(fmt.Sprintf("sending to %s API (%s)", DisplayName(w.provider.Name()), w.provider.Model()))
	raw, err := w.provider.Complete(ctx, req)
	if err != nil {
		return nil, err
	}

	article, stats := Tidy(raw)
	n := textutil.CharCount(strings.TrimSpace(article))
	if n < MinArticleLength {
		return nil, errors.ArticleTooShort(n, MinArticleLength)
	}

	res := &Result{
		Article:    article,
		Provider:   w.provider.Name(),
		Model:      w.provider.Model(),
		PromptUsed: req.User,
		CharCount:  n,
		Anchors:    optimize.ValidateAnchors(b, article),
		Tidy:       stats,
	}

	if w.cache != nil {
		meta := &cache.Metadata{
			Provider:  res.Provider,
			Model:     res.Model,
			CharCount: n,
		}
		if b != nil {
			meta.MainKeyword = b.MainKeyword()
		}
		if err := w.cache.Write(key, article, meta); err != nil {
			log.Printf("debug: failed to cache article: %v", err)
		}
	}

	return res, nil
}

// RewriteRequest builds the editor prompt that rewrites article according to policy.
func RewriteRequest(article, policy, extra string) prompt.Request {
	var sb strings.Builder
	sb.WriteString("以下の記事を、指定された方針に従ってリライトしてください。\n")
	fmt.Fprintf(&sb, "原文: %s\n\n", article)
	fmt.Fprintf(&sb, "リライト方針: %s\n", policy)
	if strings.TrimSpace(extra) != "" {
		fmt.Fprintf(&sb, "追加指示:\n%s", extra)
	}
	sb.WriteString("\n\nリライト時の注意点:\n")
	sb.WriteString(textutil.Bullets(
		"元の記事の核となるメッセージは保持する",
		"指定された方針に従って文体や内容を調整する",
		"読みやすさと一貫性を保つ",
		"文字数は元の記事と同程度に保つ",
	))
	sb.WriteString("\nリライトした記事:")

	return prompt.Request{
		System:      rewriteSystem,
		User:        sb.String(),
		Temperature: prompt.DefaultTemperature,
		MaxTokens:   prompt.DefaultMaxTokens,
		TopP:        prompt.DefaultTopP,
	}
}

// Rewrite asks the provider to rewrite article according to policy.
func (w *Writer) Rewrite(ctx context.Context, article, policy, extra string) (string, error) {
	if strings.TrimSpace(article) == "" {
		return "", errors.GenerationFailed("nothing to rewrite", nil)
	}
	w.report(fmt.Sprintf("sending rewrite to %s API", DisplayName(w.provider.Name())))
	raw, err := w.provider.Complete(ctx, RewriteRequest(article, policy, extra))
	if err != nil {
		return "", err
	}
	out, _ := Tidy(raw)
	return out, nil
}

func (w *Writer) fromCache(key string, b *brief.Brief, req prompt.Request) *Result {
	if w.cache == nil {
		return nil
	}
	content, meta, err := w.cache.Read(key)
	if err != nil {
		log.Printf("debug: failed to read article cache: %v", err)
		return nil
	}
	if meta == nil || meta.IsStale(w.ttl) {
		return nil
	}

	w.report(fmt.Sprintf("using cached article %s (%s)", meta.ShortKey(), meta.Age()))
	return &Result{
		Article:    content,
		Provider:   meta.Provider,
		Model:      meta.Model,
		PromptUsed: req.User,
		CharCount:  textutil.CharCount(strings.TrimSpace(content)),
		Anchors:    optimize.ValidateAnchors(b, content),
		Cached:     true,
	}
}

func (w *Writer) report(msg string) {
	if w.progress != nil {
		w.progress(msg)
	}
}
