// Package cli implements the moanote command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "dev"

	// Output helpers.
	successIcon = color.New(color.FgGreen).Sprint("✓")
	warningIcon = color.New(color.FgYellow).Sprint("⚠")
	errorIcon   = color.New(color.FgRed).Sprint("✗")

	success = color.New(color.FgGreen).SprintFunc()
	warning = color.New(color.FgYellow).SprintFunc()
	danger  = color.New(color.FgRed).SprintFunc()
	info    = color.New(color.FgCyan).SprintFunc()
	dim     = color.New(color.Faint).SprintFunc()
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "moanote",
		Short: "Generate Japanese article prompts from a structured brief",
		Long: `Moanote turns an article brief (target reader, writer character, tone,
keywords, goal) into a detailed Japanese prompt for an LLM.

It can optimize the prompt, check it, write the article with OpenAI, Gemini
or Anthropic, and manage reusable templates and personas.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewOptimizeCmd())
	rootCmd.AddCommand(NewValidateCmd())
	rootCmd.AddCommand(NewInspectCmd())
	rootCmd.AddCommand(NewWriteCmd())
	rootCmd.AddCommand(NewRewriteCmd())
	rootCmd.AddCommand(NewProvidersCmd())
	rootCmd.AddCommand(NewTemplatesCmd())
	rootCmd.AddCommand(NewPersonasCmd())
	rootCmd.AddCommand(NewCacheCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "moanote %s\n", Version)
		},
	}
}

// Execute runs the CLI.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", errorIcon, err.Error())
		if he, ok := err.(interface{ HintText() string }); ok {
			if hint := he.HintText(); hint != "" {
				fmt.Fprintf(os.Stderr, "  %s\n", dim(hint))
			}
		}
		return err
	}
	return nil
}

// printSuccess prints a success message.
func printSuccess(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", successIcon, fmt.Sprintf(format, args...))
}

// printWarning prints a warning message. Warnings go to stderr so they never
// end up in a piped prompt or article.
func printWarning(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", warningIcon, fmt.Sprintf(format, args...))
}

// printError prints an error message.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorIcon, fmt.Sprintf(format, args...))
}

// printInfo prints an info line.
func printInfo(label, value string) {
	fmt.Printf("  %s: %s\n", dim(label), value)
}

// progress prints a verbose pipeline step to stderr.
func progress(verbose bool) func(string) {
	return func(msg string) {
		if verbose {
			fmt.Fprintf(os.Stderr, "  %s\n", dim(msg))
		}
	}
}
