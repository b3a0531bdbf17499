package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/HartBrook/moanote/internal/brief"
	"github.com/HartBrook/moanote/internal/config"
	"github.com/HartBrook/moanote/internal/errors"
	"github.com/HartBrook/moanote/internal/starter"
	"github.com/HartBrook/moanote/internal/writer"
	"github.com/spf13/cobra"
)

// DefaultBriefFile is the sample brief written by init.
const DefaultBriefFile = "brief.yaml"

type initOptions struct {
	provider  string
	force     bool
	briefPath string
	noBrief   bool
}

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the config, starter templates and a sample brief",
		Long: `Sets up moanote:

  - writes ~/.config/moanote/config.yaml
  - copies the starter templates into ~/.config/moanote/templates
  - writes a sample brief to ./brief.yaml

Existing files are kept unless --force is given for the config.`,
		Example: `  moanote init
  moanote init --provider gemini
  moanote init --brief-path briefs/first.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.provider, "provider", config.DefaultProvider, "Default article-writing provider")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing config without asking")
	cmd.Flags().StringVar(&opts.briefPath, "brief-path", DefaultBriefFile, "Where to write the sample brief")
	cmd.Flags().BoolVar(&opts.noBrief, "no-brief", false, "Do not write a sample brief")

	return cmd
}

func runInit(opts *initOptions) error {
	paths := config.NewPaths()

	provider := strings.ToLower(strings.TrimSpace(opts.provider))
	if !config.IsKnownProvider(provider) {
		return errors.UnsupportedProvider(provider)
	}

	if err := writeInitConfig(paths, provider, opts.force); err != nil {
		return err
	}

	count, err := starter.BootstrapTemplates(paths.TemplatesDir)
	if err != nil {
		return err
	}
	if count > 0 {
		printSuccess("Installed %d starter templates to %s", count, paths.TemplatesDir)
	}

	if !opts.noBrief {
		if err := writeSampleBrief(opts.briefPath); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  %s\n", info("moanote generate --brief "+opts.briefPath))
	fmt.Printf("  %s\n", info("moanote optimize --brief "+opts.briefPath))
	if p, ok := writer.LookupProvider(provider); ok && p.EnvVar != "" {
		fmt.Printf("  %s\n", info(fmt.Sprintf("export %s=<your-api-key> && moanote write --brief %s", p.EnvVar, opts.briefPath)))
	}
	return nil
}

func writeInitConfig(paths *config.Paths, provider string, force bool) error {
	if _, err := os.Stat(paths.ConfigFile); err == nil && !force {
		printWarning("Config already exists at %s", paths.ConfigFile)
		if !promptYesNo("Do you want to overwrite it?") {
			return nil
		}
	}

	cfg := config.NewDefaultConfig()
	cfg.Provider = provider
	if err := config.SaveTo(cfg, paths.ConfigFile); err != nil {
		return err
	}
	printSuccess("Wrote config to %s", paths.ConfigFile)
	return nil
}

// writeSampleBrief writes the sample brief to path unless a file is already there.
func writeSampleBrief(path string) error {
	if _, err := os.Stat(path); err == nil {
		printInfo("Brief", path+" already exists, keeping it")
		return nil
	}

	sample := brief.Defaults()
	if err := brief.Save(&sample, path); err != nil {
		return err
	}
	printSuccess("Wrote sample brief to %s", path)
	return nil
}

// promptYesNo prompts for a yes/no input.
func promptYesNo(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes"
}
