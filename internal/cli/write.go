package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/HartBrook/moanote/internal/cache"
	"github.com/HartBrook/moanote/internal/optimize"
	"github.com/HartBrook/moanote/internal/prompt"
	"github.com/HartBrook/moanote/internal/writer"
	"github.com/spf13/cobra"
)

// writeTimeout bounds a whole write or rewrite, connection test included.
const writeTimeout = 5 * time.Minute

type providerOptions struct {
	provider string
	model    string
	noPing   bool
	verbose  bool
}

func (o *providerOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.provider, "provider", "p", "", "Provider: openai, gemini, gemini-pro, anthropic or mock (default from config)")
	cmd.Flags().StringVarP(&o.model, "model", "m", "", "Model name (default depends on provider)")
	cmd.Flags().BoolVar(&o.noPing, "no-ping", false, "Skip the connection test")
	cmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "Show detailed progress")
}

// newWriter resolves the provider from flags and config and wraps it in a
// Writer. The article cache is used unless useCache is false.
func (o *providerOptions) newWriter(ctx context.Context, s *session, useCache bool) (*writer.Writer, error) {
	if err := s.cfg.LoadEnv(); err != nil {
		return nil, err
	}

	name := o.provider
	if name == "" {
		name = s.cfg.Provider
	}
	model := o.model
	if model == "" && name == s.cfg.Provider {
		model = s.cfg.Model
	}

	p, err := writer.NewProvider(ctx, writer.Settings{Provider: name, Model: model})
	if err != nil {
		return nil, err
	}

	opts := []writer.Option{writer.WithProgress(progress(o.verbose))}
	if useCache {
		opts = append(opts, writer.WithCache(cache.New(s.paths), s.cfg.Cache.TTLDuration()))
	}
	if o.noPing {
		opts = append(opts, writer.WithoutPing())
	}
	return writer.New(p, opts...), nil
}

type writeOptions struct {
	briefOptions
	providerOptions
	optimized bool
	noCache   bool
	output    string
	html      bool
}

// NewWriteCmd creates the write command.
func NewWriteCmd() *cobra.Command {
	opts := &writeOptions{}

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Write the article with an LLM provider",
		Long: `Generates the prompt for a brief and sends it to an LLM provider to write the
article. A short connection test runs first. Articles under 500 characters
are rejected, and the article is checked for the brief's keywords.

API keys are read from the provider's environment variable (OPENAI_API_KEY,
GEMINI_API_KEY, ANTHROPIC_API_KEY). A .env file, or the env_file in your
config, is loaded first.

Written articles are cached by prompt; use --no-cache to always regenerate.`,
		Example: `  moanote write --brief brief.yaml
  moanote write --brief brief.yaml --provider gemini -o article.md
  moanote write --brief brief.yaml --optimized
  moanote write --defaults --provider mock`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), writeTimeout)
			defer cancel()
			return runWrite(ctx, cmd.OutOrStdout(), opts)
		},
	}

	opts.briefOptions.addFlags(cmd)
	opts.providerOptions.addFlags(cmd)
	cmd.Flags().BoolVar(&opts.optimized, "optimized", false, "Send the optimized prompt instead of the standard one")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "Skip cache read/write")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the article to a file")
	cmd.Flags().BoolVar(&opts.html, "html", false, "Render the article as HTML")

	return cmd
}

func runWrite(ctx context.Context, out io.Writer, opts *writeOptions) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	b, err := opts.load(s)
	if err != nil {
		return err
	}

	w, err := opts.newWriter(ctx, s, !opts.noCache)
	if err != nil {
		return err
	}

	var res *writer.Result
	if opts.optimized {
		report := optimize.Optimize(prompt.Generate(b), b)
		res, err = w.WriteRequest(ctx, b, prompt.NewRequest(report.OptimizedPrompt))
	} else {
		res, err = w.Write(ctx, b)
	}
	if err != nil {
		return err
	}

	if res.Cached {
		fmt.Fprintln(os.Stderr, dim("(from cache - use --no-cache to regenerate)"))
	}
	if res.Anchors != nil {
		if res.Anchors.HasStrictFailures() {
			printWarning("Article does not mention the main keyword: %s", strings.Join(res.Anchors.MissingStrict, ", "))
		}
		if len(res.Anchors.MissingSoft) > 0 {
			printWarning("Article does not mention: %s", strings.Join(res.Anchors.MissingSoft, ", "))
		}
	}
	progress(opts.verbose)(fmt.Sprintf("%d chars from %s (%s)", res.CharCount, writer.DisplayName(res.Provider), res.Model))

	content := res.Article
	if opts.html {
		content, err = prompt.RenderHTML(res.Article)
		if err != nil {
			return fmt.Errorf("failed to render HTML: %w", err)
		}
	}
	return writeOutput(out, opts.output, content)
}

type rewriteOptions struct {
	providerOptions
	policy string
	extra  string
	output string
}

// NewRewriteCmd creates the rewrite command.
func NewRewriteCmd() *cobra.Command {
	opts := &rewriteOptions{}

	cmd := &cobra.Command{
		Use:   "rewrite <article>",
		Short: "Rewrite an article following an editing policy",
		Long: `Sends an existing article to an LLM provider acting as an editor, together
with a rewrite policy and optional extra instructions.`,
		Example: `  moanote rewrite article.md --policy "もっと親しみやすく"
  moanote rewrite article.md --policy "結論を先に" --extra "見出しは5つまで" -o rewritten.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), writeTimeout)
			defer cancel()
			return runRewrite(ctx, cmd.OutOrStdout(), args[0], opts)
		},
	}

	opts.providerOptions.addFlags(cmd)
	cmd.Flags().StringVar(&opts.policy, "policy", "", "Rewrite policy (required)")
	cmd.Flags().StringVar(&opts.extra, "extra", "", "Additional instructions")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the rewritten article to a file")
	_ = cmd.MarkFlagRequired("policy")

	return cmd
}

func runRewrite(ctx context.Context, out io.Writer, articlePath string, opts *rewriteOptions) error {
	data, err := os.ReadFile(articlePath)
	if err != nil {
		return fmt.Errorf("failed to read article: %w", err)
	}

	s, err := loadSession()
	if err != nil {
		return err
	}
	w, err := opts.newWriter(ctx, s, false)
	if err != nil {
		return err
	}

	rewritten, err := w.Rewrite(ctx, string(data), opts.policy, opts.extra)
	if err != nil {
		return err
	}
	return writeOutput(out, opts.output, ensureTrailingNewline(rewritten))
}

// NewProvidersCmd creates the providers command.
func NewProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the article-writing providers",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}
			if err := s.cfg.LoadEnv(); err != nil {
				return err
			}
			listProviders(cmd.OutOrStdout(), s.cfg.Provider)
			return nil
		},
	}
}

func listProviders(out io.Writer, current string) {
	for _, p := range writer.Providers() {
		marker := " "
		if p.Name == current {
			marker = success("*")
		}
		fmt.Fprintf(out, "%s %-11s %s\n", marker, p.Name, p.Label)
		fmt.Fprintf(out, "    %s %s\n", dim("model:"), p.DefaultModel)
		if p.EnvVar != "" {
			status := danger("not set")
			if os.Getenv(p.EnvVar) != "" {
				status = success("set")
			}
			fmt.Fprintf(out, "    %s %s (%s)\n", dim("key:"), p.EnvVar, status)
		}
		if p.Description != "" {
			fmt.Fprintf(out, "    %s\n", dim(p.Description))
		}
	}
}
