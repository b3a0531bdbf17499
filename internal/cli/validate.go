package cli

import (
	"fmt"
	"os"

	"github.com/HartBrook/moanote/internal/prompt"
	"github.com/spf13/cobra"
)

type validateOptions struct {
	briefOptions
	promptPath string
}

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a brief and the prompt it generates",
		Long: `Checks a brief against its field rules, then generates the prompt and checks
that it carries every required section, the keyword and purpose markers and
at least the minimum length.

With --prompt, an existing prompt file is checked instead.`,
		Example: `  moanote validate --brief brief.yaml
  moanote validate --prompt prompt.md`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&opts.promptPath, "prompt", "", "Check an existing prompt file")

	return cmd
}

func runValidate(opts *validateOptions) error {
	var text string
	if opts.promptPath != "" {
		data, err := os.ReadFile(opts.promptPath)
		if err != nil {
			return fmt.Errorf("failed to read prompt: %w", err)
		}
		text = string(data)
	} else {
		s, err := loadSession()
		if err != nil {
			return err
		}
		b, err := opts.load(s)
		if err != nil {
			return err
		}
		printSuccess("Brief is valid")
		text = prompt.Generate(b)
	}

	v := prompt.Check(text)
	for _, h := range prompt.RequiredHeaders {
		checkLine(!contains(v.MissingHeaders, h), "section %s", h)
	}
	for _, m := range []string{prompt.MarkerKeywords, prompt.MarkerPurpose} {
		checkLine(!contains(v.MissingMarkers, m), "marker %s", m)
	}
	checkLine(!v.TooShort(), "length %d chars (minimum %d)", v.Length, prompt.MinLength)

	if !v.OK() {
		return fmt.Errorf("prompt check failed")
	}
	fmt.Println()
	printSuccess("Prompt passes all checks")
	return nil
}

func checkLine(ok bool, format string, args ...interface{}) {
	icon := successIcon
	if !ok {
		icon = errorIcon
	}
	fmt.Printf("  %s %s\n", icon, fmt.Sprintf(format, args...))
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
