package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/HartBrook/moanote/internal/brief"
	"github.com/HartBrook/moanote/internal/prompt"
	"github.com/HartBrook/moanote/internal/textutil"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	briefOptions
	output  string
	html    bool
	json    bool
	verbose bool
}

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an article prompt from a brief",
		Long: `Generates the Japanese article prompt for a brief.

The brief comes from a YAML/JSON file (--brief) or a free-text draft (--draft).
Templates and personas are applied on top, in the order given. Fields still
empty after that use documented defaults.

The prompt is printed to stdout unless -o is given. Use --json to emit the full
API request (system instruction plus sampling parameters) instead.`,
		Example: `  moanote generate --brief brief.yaml
  moanote generate --brief brief.yaml -o prompt.md
  moanote generate --draft notes.txt --template 20代IT系女性
  moanote generate --brief brief.yaml --json
  moanote generate --defaults --html -o prompt.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the prompt to a file")
	cmd.Flags().BoolVar(&opts.html, "html", false, "Render the prompt as HTML")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Emit the API request as JSON")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show prompt statistics")
	cmd.MarkFlagsMutuallyExclusive("html", "json")

	return cmd
}

func runGenerate(out io.Writer, opts *generateOptions) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	b, err := opts.load(s)
	if err != nil {
		return err
	}

	text := prompt.Generate(b)
	warnPromptCheck(b, text)

	if opts.verbose {
		report := progress(true)
		chars := textutil.CharCount(text)
		report(fmt.Sprintf("%d chars, ~%d tokens, %d sections", chars, textutil.EstimateTokens(text), len(prompt.Sections(b))))
	}

	content, err := renderPrompt(text, opts.html, opts.json)
	if err != nil {
		return err
	}
	return writeOutput(out, opts.output, content)
}

func renderPrompt(text string, html, asJSON bool) (string, error) {
	switch {
	case asJSON:
		req := prompt.NewRequest(text)
		data, err := json.MarshalIndent(req, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode request: %w", err)
		}
		return string(data) + "\n", nil
	case html:
		rendered, err := prompt.RenderHTML(text)
		if err != nil {
			return "", fmt.Errorf("failed to render HTML: %w", err)
		}
		return rendered, nil
	default:
		return ensureTrailingNewline(text), nil
	}
}

// warnPromptCheck prints structural warnings for a generated prompt. Custom
// prompts are the user's own text and are not checked.
func warnPromptCheck(b *brief.Brief, text string) {
	if _, custom := b.CustomOverride(); custom {
		return
	}
	v := prompt.Check(text)
	if len(v.MissingHeaders) > 0 {
		printWarning("Prompt is missing sections: %s", strings.Join(v.MissingHeaders, ", "))
	}
	if len(v.MissingMarkers) > 0 {
		printWarning("Prompt is missing markers: %s", strings.Join(v.MissingMarkers, ", "))
	}
	if v.TooShort() {
		printWarning("Prompt is only %d chars (minimum %d)", v.Length, prompt.MinLength)
	}
}
