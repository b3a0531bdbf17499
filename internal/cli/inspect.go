package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/HartBrook/moanote/internal/prompt"
	"github.com/HartBrook/moanote/internal/textutil"
	"github.com/spf13/cobra"
)

type inspectOptions struct {
	briefOptions
	section string
}

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the sections and heading outline of a generated prompt",
		Long: `Lists the sections a brief produces with their sizes, followed by the Markdown
heading outline of the whole prompt. Use --section to print one section.`,
		Example: `  moanote inspect --brief brief.yaml
  moanote inspect --brief brief.yaml --section structure`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.OutOrStdout(), opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&opts.section, "section", "", "Print only the named section")

	return cmd
}

func runInspect(out io.Writer, opts *inspectOptions) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	b, err := opts.load(s)
	if err != nil {
		return err
	}

	sections := prompt.Sections(b)
	if opts.section != "" {
		for _, sec := range sections {
			if sec.Name == opts.section {
				_, err := io.WriteString(out, ensureTrailingNewline(sec.Body))
				return err
			}
		}
		names := make([]string, 0, len(sections))
		for _, sec := range sections {
			names = append(names, sec.Name)
		}
		return fmt.Errorf("section %q not present (have: %s)", opts.section, strings.Join(names, ", "))
	}

	fmt.Fprintln(out, "Sections:")
	for _, sec := range sections {
		fmt.Fprintf(out, "  %-14s %5d chars  %s\n", sec.Name, textutil.CharCount(sec.Body), dim(sec.Title))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Outline:")
	for _, h := range prompt.Outline(prompt.Generate(b)) {
		fmt.Fprintf(out, "  %s%s\n", strings.Repeat("  ", h.Level-1), h.Text)
	}
	return nil
}
