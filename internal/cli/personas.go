package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/HartBrook/moanote/internal/store"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewPersonasCmd creates the personas command.
func NewPersonasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "personas",
		Aliases: []string{"persona"},
		Short:   "Manage saved reader and writer personas",
		Long: `Personas are saved reader or writer profiles. Apply one to any brief with
--persona <name>.`,
	}

	cmd.AddCommand(newPersonasListCmd())
	cmd.AddCommand(newPersonasShowCmd())
	cmd.AddCommand(newPersonasSaveCmd())
	cmd.AddCommand(newPersonasDeleteCmd())

	return cmd
}

func newPersonasListCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved personas",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}
			personas, err := s.personas().List(store.Kind(kind))
			if err != nil {
				return err
			}
			listPersonas(cmd.OutOrStdout(), personas)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "type", "", "Only show reader or writer personas")

	return cmd
}

func listPersonas(out io.Writer, personas []*store.Persona) {
	if len(personas) == 0 {
		fmt.Fprintln(out, "No personas saved.")
		fmt.Fprintln(out, dim("Save one with: moanote personas save --from-template <name>"))
		return
	}
	for _, p := range personas {
		fmt.Fprintf(out, "  %s  %s  %s\n", info(p.Name), dim(p.Type.Label()), dim(p.ID))
		if p.Description != "" {
			fmt.Fprintf(out, "     %s\n", p.Description)
		}
	}
}

func newPersonasShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name-or-id>",
		Short: "Show a persona",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}
			p, err := s.personas().Get(args[0])
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(p)
			if err != nil {
				return fmt.Errorf("failed to encode persona: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

type personaSaveOptions struct {
	fromTemplate string
	file         string
	name         string
}

func newPersonasSaveCmd() *cobra.Command {
	opts := &personaSaveOptions{}

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a persona from a template or a YAML file",
		Example: `  moanote personas save --from-template 20代IT系女性
  moanote personas save --from-template 親しみやすい先輩 --name 先輩ライター
  moanote personas save --file persona.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPersonasSave(opts)
		},
	}

	cmd.Flags().StringVar(&opts.fromTemplate, "from-template", "", "Reader or writer template to save")
	cmd.Flags().StringVar(&opts.file, "file", "", "Persona YAML file")
	cmd.Flags().StringVar(&opts.name, "name", "", "Override the persona name")
	cmd.MarkFlagsMutuallyExclusive("from-template", "file")

	return cmd
}

func runPersonasSave(opts *personaSaveOptions) error {
	s, err := loadSession()
	if err != nil {
		return err
	}

	var p *store.Persona
	switch {
	case opts.fromTemplate != "":
		reg, err := s.registry()
		if err != nil {
			return err
		}
		t, err := reg.Get(opts.fromTemplate)
		if err != nil {
			return err
		}
		if p, err = store.PersonaFromTemplate(t); err != nil {
			return err
		}
	case opts.file != "":
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return fmt.Errorf("failed to read persona: %w", err)
		}
		p = &store.Persona{}
		if err := yaml.Unmarshal(data, p); err != nil {
			return fmt.Errorf("failed to parse persona: %w", err)
		}
	default:
		return fmt.Errorf("either --from-template or --file is required")
	}

	if opts.name != "" {
		p.Name = opts.name
	}
	if err := s.personas().Save(p); err != nil {
		return err
	}

	printSuccess("Saved persona %s", p.Name)
	printInfo("ID", p.ID)
	return nil
}

func newPersonasDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name-or-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a saved persona",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession()
			if err != nil {
				return err
			}
			p, err := s.personas().Delete(args[0])
			if err != nil {
				return err
			}
			printSuccess("Deleted persona %s", p.Name)
			return nil
		},
	}
}
