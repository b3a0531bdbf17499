package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/HartBrook/moanote/internal/brief"
	"github.com/HartBrook/moanote/internal/config"
	"github.com/HartBrook/moanote/internal/errors"
	"github.com/HartBrook/moanote/internal/store"
	"github.com/spf13/cobra"
)

// session is the config and filesystem layout a command runs with.
type session struct {
	cfg   *config.Config
	paths *config.Paths
}

func loadSession() (*session, error) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, paths: config.NewPaths()}, nil
}

// sharedTemplatesDir returns the pulled templates directory, or "" when no
// shared source is configured.
func (s *session) sharedTemplatesDir() (string, error) {
	if s.cfg.Templates.Source == "" {
		return "", nil
	}
	owner, repo, err := s.cfg.TemplatesOwnerRepo()
	if err != nil {
		return "", err
	}
	return s.paths.SharedTemplatesDir(owner, repo), nil
}

func (s *session) registry() (*store.Registry, error) {
	shared, err := s.sharedTemplatesDir()
	if err != nil {
		return nil, err
	}

	var dirs []string
	if shared != "" {
		dirs = append(dirs, shared)
	}
	reg, err := store.LoadRegistry(s.paths, dirs...)
	if err != nil {
		return nil, err
	}
	for _, w := range reg.Warnings {
		printWarning("Skipped template: %s", w)
	}
	return reg, nil
}

func (s *session) personas() *store.PersonaStore {
	return store.NewPersonaStore(s.paths.PersonasDir)
}

// briefOptions are the flags every brief-consuming command shares.
type briefOptions struct {
	briefPath string
	draftPath string
	templates []string
	personas  []string
	defaults  bool
}

func (o *briefOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.briefPath, "brief", "b", "", "Brief file (YAML or JSON)")
	cmd.Flags().StringVar(&o.draftPath, "draft", "", "Derive the brief from a free-text draft file")
	cmd.Flags().StringArrayVarP(&o.templates, "template", "t", nil, "Apply a template by name or ID (repeatable)")
	cmd.Flags().StringArrayVar(&o.personas, "persona", nil, "Apply a saved persona by name or ID (repeatable)")
	cmd.Flags().BoolVar(&o.defaults, "defaults", false, "Fill empty fields from the sample brief")
}

// load assembles the brief: file or draft first, then templates, then
// personas, then config and sample defaults. The result is normalized and
// validated.
func (o *briefOptions) load(s *session) (*brief.Brief, error) {
	var b brief.Brief
	switch {
	case o.briefPath != "":
		loaded, err := brief.Load(o.briefPath)
		if err != nil {
			return nil, errors.Wrap(errors.ErrBriefInvalid, err.Error(), "Check the brief file path and syntax", err)
		}
		b = *loaded
	case o.draftPath != "":
		data, err := os.ReadFile(o.draftPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read draft: %w", err)
		}
		b = brief.FromDraft(string(data), s.cfg.WordCount)
	case len(o.templates) == 0 && len(o.personas) == 0 && !o.defaults:
		return nil, errors.BriefMissing()
	}

	if len(o.templates) > 0 {
		reg, err := s.registry()
		if err != nil {
			return nil, err
		}
		for _, ref := range o.templates {
			t, err := reg.Get(ref)
			if err != nil {
				return nil, err
			}
			b = store.Apply(t, b)
		}
	}

	if len(o.personas) > 0 {
		ps := s.personas()
		for _, ref := range o.personas {
			p, err := ps.Get(ref)
			if err != nil {
				return nil, err
			}
			b = p.Apply(b)
		}
	}

	if b.WordCount == 0 {
		b.WordCount = s.cfg.WordCount
	}
	if o.defaults {
		b = brief.WithDefaults(&b)
	}

	b = brief.Normalize(&b)
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// writeOutput writes content to path, or to out when path is empty.
func writeOutput(out io.Writer, path, content string) error {
	if path == "" {
		_, err := io.WriteString(out, content)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, config.DefaultDirMode); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), config.DefaultFileMode); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	printSuccess("Wrote %s", path)
	return nil
}

func ensureTrailingNewline(s string) string {
	if s == "" || s[len(s)-1] == '\n' {
		return s
	}
	return s + "\n"
}
