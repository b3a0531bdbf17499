package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/HartBrook/moanote/internal/brief"
	"github.com/HartBrook/moanote/internal/config"
	"github.com/HartBrook/moanote/internal/github"
	"github.com/HartBrook/moanote/internal/store"
	"github.com/HartBrook/moanote/internal/textutil"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	// searchTimeout is the maximum time allowed for search operations.
	searchTimeout = 30 * time.Second

	// pullTimeout is the maximum time allowed to download a template repo.
	pullTimeout = 2 * time.Minute
)

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"template", "tpl"},
		Short:   "Manage reusable brief templates",
		Long: `Templates are named fragments of a brief: a reader persona, a writer
character, additional settings, or a whole brief.

Templates come from three places. Later sources shadow earlier ones by name:
  starter   built into moanote
  shared    pulled from a GitHub repo (templates.source in config)
  personal  ~/.config/moanote/templates`,
	}

	cmd.AddCommand(newTemplatesListCmd())
	cmd.AddCommand(newTemplatesShowCmd())
	cmd.AddCommand(newTemplatesCreateCmd())
	cmd.AddCommand(newTemplatesImportCmd())
	cmd.AddCommand(newTemplatesDeleteCmd())
	cmd.AddCommand(newTemplatesApplyCmd())
	cmd.AddCommand(newTemplatesCombineCmd())
	cmd.AddCommand(newTemplatesPullCmd())
	cmd.AddCommand(newTemplatesSearchCmd())

	return cmd
}

func newTemplatesListCmd() *cobra.Command {
	var kind, tag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}
			reg, err := s.registry()
			if err != nil {
				return err
			}
			return listTemplates(cmd.OutOrStdout(), reg, store.Kind(kind), tag)
		},
	}

	cmd.Flags().StringVar(&kind, "type", "", "Only show one type: reader, writer, settings or brief")
	cmd.Flags().StringVar(&tag, "tag", "", "Only show templates with this tag")

	return cmd
}

func listTemplates(out io.Writer, reg *store.Registry, kind store.Kind, tag string) error {
	if kind != "" && !kind.IsValid() {
		return fmt.Errorf("unknown template type %q", kind)
	}

	shown := 0
	for _, k := range store.Kinds {
		if kind != "" && k != kind {
			continue
		}

		var rows []*store.Template
		for _, t := range reg.ByType(k) {
			if tag == "" || t.HasTag(tag) {
				rows = append(rows, t)
			}
		}
		if len(rows) == 0 {
			continue
		}

		if shown > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s %s\n", k.Label(), dim("("+string(k)+")"))
		for _, t := range rows {
			fmt.Fprintf(out, "  %s  %s\n", info(t.Name), dim("["+string(t.Source)+"]"))
			if t.Description != "" {
				fmt.Fprintf(out, "     %s\n", t.Description)
			}
			if len(t.Tags) > 0 {
				fmt.Fprintf(out, "     %s\n", dim("#"+strings.Join(t.Tags, " #")))
			}
		}
		shown += len(rows)
	}

	if shown == 0 {
		fmt.Fprintln(out, "No templates found.")
	}
	return nil
}

func newTemplatesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name-or-id>",
		Short: "Show a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}
			reg, err := s.registry()
			if err != nil {
				return err
			}
			t, err := reg.Get(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# source: %s", t.Source)
			if t.Path != "" {
				fmt.Fprintf(out, " (%s)", t.Path)
			}
			fmt.Fprintln(out)

			data, err := yaml.Marshal(t)
			if err != nil {
				return fmt.Errorf("failed to encode template: %w", err)
			}
			_, err = out.Write(data)
			return err
		},
	}
}

type templateCreateOptions struct {
	name        string
	kind        string
	description string
	tags        []string
	promptText  string
	promptFile  string
}

func newTemplatesCreateCmd() *cobra.Command {
	opts := &templateCreateOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a personal template from prompt text",
		Long: `Creates a personal template. Reader and writer data is derived from
"key: value" lines of the prompt text, for example:

  年齢: 20代後半
  職業: IT企業のマーケター
  課題: 時間不足、情報過多`,
		Example: `  moanote templates create --name 30代会社員男性 --type reader --prompt-file reader.txt
  moanote templates create --name データ重視 --type settings --prompt "データ重視要件:" --tags データ`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplatesCreate(opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "Template name (required)")
	cmd.Flags().StringVar(&opts.kind, "type", "", "Template type: reader, writer, settings or brief (required)")
	cmd.Flags().StringVar(&opts.description, "description", "", "Short description")
	cmd.Flags().StringSliceVar(&opts.tags, "tags", nil, "Comma-separated tags")
	cmd.Flags().StringVar(&opts.promptText, "prompt", "", "Prompt text")
	cmd.Flags().StringVar(&opts.promptFile, "prompt-file", "", "Read prompt text from a file")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("type")
	cmd.MarkFlagsMutuallyExclusive("prompt", "prompt-file")

	return cmd
}

func runTemplatesCreate(opts *templateCreateOptions) error {
	text := opts.promptText
	if opts.promptFile != "" {
		data, err := os.ReadFile(opts.promptFile)
		if err != nil {
			return fmt.Errorf("failed to read prompt file: %w", err)
		}
		text = string(data)
	}

	kind := store.Kind(strings.ToLower(opts.kind))
	t := &store.Template{
		Name:        strings.TrimSpace(opts.name),
		Description: strings.TrimSpace(opts.description),
		Type:        kind,
		PromptText:  strings.TrimSpace(text),
		Tags:        opts.tags,
		Data:        store.FromPromptText(kind, text),
	}

	s, err := loadSession()
	if err != nil {
		return err
	}
	reg, err := s.registry()
	if err != nil {
		return err
	}
	if err := reg.Save(t); err != nil {
		return err
	}

	printSuccess("Created template %s", t.Name)
	printInfo("ID", t.ID)
	printInfo("Path", t.Path)
	return nil
}

func newTemplatesImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a template YAML file into your personal templates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := store.LoadTemplate(args[0])
			if err != nil {
				return err
			}
			t.Path = ""

			s, err := loadSession()
			if err != nil {
				return err
			}
			reg, err := s.registry()
			if err != nil {
				return err
			}
			if err := reg.Save(t); err != nil {
				return err
			}
			printSuccess("Imported template %s", t.Name)
			return nil
		},
	}
}

func newTemplatesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name-or-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a personal template",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}
			reg, err := s.registry()
			if err != nil {
				return err
			}
			t, err := reg.Delete(args[0])
			if err != nil {
				return err
			}
			printSuccess("Deleted template %s", t.Name)
			return nil
		},
	}
}

type templateApplyOptions struct {
	briefOptions
	output string
}

func newTemplatesApplyCmd() *cobra.Command {
	opts := &templateApplyOptions{}

	cmd := &cobra.Command{
		Use:   "apply <name-or-id>...",
		Short: "Apply templates to a brief and write the result",
		Example: `  moanote templates apply 20代IT系女性 親しみやすい先輩 --brief brief.yaml -o brief.yaml
  moanote templates apply SEO重視設定 --draft notes.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.templates = append(opts.templates, args...)
			s, err := loadSession()
			if err != nil {
				return err
			}
			b, err := opts.load(s)
			if err != nil {
				return err
			}
			return writeBrief(cmd.OutOrStdout(), opts.output, b)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the brief to a file")

	return cmd
}

type templateCombineOptions struct {
	briefOptions
	output      string
	savePersona bool
}

func newTemplatesCombineCmd() *cobra.Command {
	opts := &templateCombineOptions{}

	cmd := &cobra.Command{
		Use:   "combine <reader> <writer> [settings]",
		Short: "Combine reader, writer and settings templates into a custom prompt",
		Long: `Applies a reader and a writer template (plus optional settings) to a brief
and stores their combined prompt text as the brief's custom prompt.
Generating from the resulting brief returns that combined prompt.

Use --save-persona to also save the reader and writer as personas.`,
		Example: `  moanote templates combine 20代IT系女性 親しみやすい先輩 SEO重視設定 --brief brief.yaml -o combined.yaml`,
		Args:    cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplatesCombine(cmd.OutOrStdout(), args, opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the brief to a file")
	cmd.Flags().BoolVar(&opts.savePersona, "save-persona", false, "Also save the reader and writer as personas")

	return cmd
}

func runTemplatesCombine(out io.Writer, args []string, opts *templateCombineOptions) error {
	s, err := loadSession()
	if err != nil {
		return err
	}
	reg, err := s.registry()
	if err != nil {
		return err
	}

	picked := make([]*store.Template, 3)
	for i, ref := range args {
		if picked[i], err = reg.Get(ref); err != nil {
			return err
		}
	}

	base := &brief.Brief{}
	if opts.briefPath != "" || opts.draftPath != "" || len(opts.templates) > 0 || len(opts.personas) > 0 || opts.defaults {
		if base, err = opts.load(s); err != nil {
			return err
		}
	}

	combined, err := store.Combine(picked[0], picked[1], picked[2], *base)
	if err != nil {
		return err
	}

	if opts.savePersona {
		ps := s.personas()
		for _, t := range picked[:2] {
			p, err := store.PersonaFromTemplate(t)
			if err != nil {
				return err
			}
			if err := ps.Save(p); err != nil {
				return err
			}
			printSuccess("Saved persona %s", p.Name)
		}
	}

	return writeBrief(out, opts.output, &combined)
}

func writeBrief(out io.Writer, path string, b *brief.Brief) error {
	data, err := brief.Marshal(b)
	if err != nil {
		return err
	}
	return writeOutput(out, path, string(data))
}

type templatePullOptions struct {
	yes bool
}

func newTemplatesPullCmd() *cobra.Command {
	opts := &templatePullOptions{}

	cmd := &cobra.Command{
		Use:   "pull [owner/repo]",
		Short: "Download shared templates from a GitHub repo",
		Long: `Downloads every templates/*.yaml file from a GitHub repository into the
shared templates cache, replacing the previous copy.

Without an argument the configured templates.source is pulled. Pulling a new
repo makes it the configured source. Untrusted sources ask for confirmation.`,
		Example: `  moanote templates pull
  moanote templates pull HartBrook/moanote-templates
  moanote templates pull acme/writing-templates --yes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := ""
			if len(args) > 0 {
				repo = args[0]
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), pullTimeout)
			defer cancel()
			return runTemplatesPull(ctx, repo, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Pull untrusted sources without asking")

	return cmd
}

func runTemplatesPull(ctx context.Context, repoArg string, opts *templatePullOptions) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	source := repoArg
	if source == "" {
		source = s.cfg.Templates.Source
	}
	if source == "" {
		return fmt.Errorf("no template source given and templates.source is not configured")
	}

	owner, repo, err := config.ParseRepo(source)
	if err != nil {
		return err
	}
	fullName := owner + "/" + repo

	if !s.cfg.IsTrustedSource(fullName) {
		printWarning("%s", config.TrustWarning(fullName))
		if !opts.yes && !promptYesNo("Continue?") {
			return fmt.Errorf("pull cancelled")
		}
	}

	client, err := github.NewClient()
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	fmt.Printf("Pulling templates from %s...\n", fullName)
	result, err := store.Pull(ctx, client, owner, repo, s.paths.SharedTemplatesDir(owner, repo))
	if err != nil {
		return err
	}

	for _, skipped := range result.Skipped {
		printWarning("Skipped %s", skipped)
	}
	printSuccess("Pulled %d templates from %s (%s)", len(result.Written), fullName, result.Branch)

	if s.cfg.Templates.Source != fullName {
		s.cfg.Templates.Source = fullName
		if err := config.SaveTo(s.cfg, s.paths.ConfigFile); err != nil {
			return err
		}
		printInfo("templates.source", fullName)
	}
	return nil
}

type templateSearchOptions struct {
	tag   string
	limit int
}

func newTemplatesSearchCmd() *cobra.Command {
	opts := &templateSearchOptions{}

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search GitHub for public template repos",
		Long: `Searches GitHub for repositories with the 'moanote-templates' topic. Results
are sorted by star count.`,
		Example: `  moanote templates search
  moanote templates search SEO
  moanote templates search --tag ビジネス`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), searchTimeout)
			defer cancel()
			return runTemplatesSearch(ctx, cmd.OutOrStdout(), query, opts)
		},
	}

	cmd.Flags().StringVar(&opts.tag, "tag", "", "Filter by topic/tag")
	cmd.Flags().IntVar(&opts.limit, "limit", 20, "Maximum results to show")

	return cmd
}

func runTemplatesSearch(ctx context.Context, out io.Writer, query string, opts *templateSearchOptions) error {
	// Try unauthenticated first for public repos
	client, err := github.NewUnauthenticatedClient()
	if err != nil {
		client, err = github.NewClient()
		if err != nil {
			return fmt.Errorf("failed to create GitHub client: %w", err)
		}
	}

	results, err := client.SearchTemplates(ctx, query)
	if err != nil {
		return err
	}
	results = github.FilterByTag(results, opts.tag)
	github.SortByStars(results)

	if len(results) == 0 {
		fmt.Fprintln(out, "No template repos found.")
		fmt.Fprintln(out, dim("Repos must have the '"+github.TemplatesTopic+"' topic to be discoverable."))
		return nil
	}
	if opts.limit > 0 && len(results) > opts.limit {
		results = results[:opts.limit]
	}

	printSearchResults(out, results)

	fmt.Fprintln(out, "Pull with:")
	fmt.Fprintf(out, "  %s\n", info("moanote templates pull owner/repo"))
	return nil
}

func printSearchResults(out io.Writer, results []github.SearchResult) {
	fmt.Fprintf(out, "Found %d template repos:\n\n", len(results))
	for i, r := range results {
		fmt.Fprintf(out, "  %d. %s", i+1, r.FullName())
		if r.Stars > 0 {
			fmt.Fprintf(out, " ★ %d", r.Stars)
		}
		fmt.Fprintln(out)

		if r.Description != "" {
			fmt.Fprintf(out, "     %s\n", textutil.Truncate(r.Description, 65, "..."))
		}

		topics := make([]string, 0, len(r.Topics))
		for _, t := range r.Topics {
			if t != github.TemplatesTopic {
				topics = append(topics, t)
			}
		}
		if len(topics) > 0 {
			fmt.Fprintf(out, "     %s\n", dim(strings.Join(topics, ", ")))
		}
		fmt.Fprintln(out)
	}
}
