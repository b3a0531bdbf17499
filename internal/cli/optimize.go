package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/HartBrook/moanote/internal/optimize"
	"github.com/HartBrook/moanote/internal/prompt"
	"github.com/spf13/cobra"
)

type optimizeOptions struct {
	briefOptions
	output   string
	json     bool
	noReport bool
}

// NewOptimizeCmd creates the optimize command.
func NewOptimizeCmd() *cobra.Command {
	opts := &optimizeOptions{}

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Build an optimized prompt and score the brief",
		Long: `Runs the four-stage optimizer (deconstruct, diagnose, develop, deliver) over a
brief. It prints a report panel with specificity and completeness scores,
the improvements applied and tips for a better brief, then the optimized
prompt.

The report goes to stderr so the prompt can be piped or redirected.
Use --json for the full report as JSON.`,
		Example: `  moanote optimize --brief brief.yaml
  moanote optimize --brief brief.yaml -o optimized.md
  moanote optimize --brief brief.yaml --json > report.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(cmd.OutOrStdout(), opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the optimized prompt to a file")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Emit the full report as JSON")
	cmd.Flags().BoolVar(&opts.noReport, "no-report", false, "Do not print the report panel")

	return cmd
}

func runOptimize(out io.Writer, opts *optimizeOptions) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	b, err := opts.load(s)
	if err != nil {
		return err
	}

	report := optimize.Optimize(prompt.Generate(b), b)

	if opts.json {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return writeOutput(out, opts.output, string(data)+"\n")
	}

	if !opts.noReport {
		fmt.Fprintln(os.Stderr, renderReport(report))
	}
	if missing := anchorSummary(report.Anchors); missing != "" {
		printWarning("Optimized prompt does not mention: %s", missing)
	}

	return writeOutput(out, opts.output, ensureTrailingNewline(report.OptimizedPrompt))
}
