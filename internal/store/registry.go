package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/HartBrook/moanote/internal/config"
	"github.com/HartBrook/moanote/internal/errors"
	"github.com/HartBrook/moanote/internal/starter"
	"github.com/google/uuid"
)

// Registry holds every template visible to the user. Templates are keyed by
// name: personal templates shadow shared ones, which shadow starters.
type Registry struct {
	personalDir string
	templates   map[string]*Template

	// Warnings collects files that could not be loaded.
	Warnings []string
}

// LoadRegistry loads starter templates, then every shared directory, then
// the personal templates directory.
func LoadRegistry(paths *config.Paths, sharedDirs ...string) (*Registry, error) {
	r := &Registry{
		personalDir: paths.TemplatesDir,
		templates:   make(map[string]*Template),
	}

	for _, name := range starter.TemplateNames() {
		data, err := starter.GetTemplate(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read starter template %s: %w", name, err)
		}
		t, err := ParseTemplate(data)
		if err != nil {
			return nil, fmt.Errorf("starter template %s: %w", name, err)
		}
		t.Source = SourceStarter
		r.add(t)
	}

	for _, dir := range sharedDirs {
		if err := r.loadDir(dir, SourceShared); err != nil {
			return nil, err
		}
	}
	if err := r.loadDir(paths.TemplatesDir, SourcePersonal); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Registry) loadDir(dir string, source Source) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return fmt.Errorf("failed to list templates in %s: %w", dir, err)
	}
	sort.Strings(files)

	for _, path := range files {
		t, err := LoadTemplate(path)
		if err != nil {
			log.Printf("debug: skipping template %s: %v", path, err)
			r.Warnings = append(r.Warnings, err.Error())
			continue
		}
		t.Source = source
		r.add(t)
	}
	return nil
}

func (r *Registry) add(t *Template) {
	r.templates[t.Name] = t
}

// Get finds a template by name or ID.
func (r *Registry) Get(ref string) (*Template, error) {
	ref = strings.TrimSpace(ref)
	if t, ok := r.templates[ref]; ok {
		return t, nil
	}
	for _, t := range r.templates {
		if t.ID != "" && t.ID == ref {
			return t, nil
		}
	}
	return nil, errors.TemplateNotFound(ref)
}

// List returns all templates ordered by kind, then name.
func (r *Registry) List() []*Template {
	var out []*Template
	for _, k := range Kinds {
		out = append(out, r.ByType(k)...)
	}
	return out
}

// ByType returns the templates of one kind, sorted by name.
func (r *Registry) ByType(k Kind) []*Template {
	var out []*Template
	for _, t := range r.templates {
		if t.Type == k {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Filter returns templates carrying tag, in List order.
func (r *Registry) Filter(tag string) []*Template {
	var out []*Template
	for _, t := range r.List() {
		if t.HasTag(tag) {
			out = append(out, t)
		}
	}
	return out
}

// Save writes t to the personal templates directory. A missing ID is
// generated and timestamps are stamped.
func (r *Registry) Save(t *Template) error {
	if err := t.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now

	if t.Source != SourcePersonal || t.Path == "" {
		t.Path = filepath.Join(r.personalDir, t.ID+".yaml")
	}
	if err := WriteTemplate(t, t.Path); err != nil {
		return err
	}

	t.Source = SourcePersonal
	r.add(t)
	return nil
}

// Delete removes a personal template. Starter and shared templates cannot
// be deleted.
func (r *Registry) Delete(ref string) (*Template, error) {
	t, err := r.Get(ref)
	if err != nil {
		return nil, err
	}
	if t.Source != SourcePersonal {
		return nil, fmt.Errorf("template %q is a %s template and cannot be deleted", t.Name, t.Source)
	}
	if err := os.Remove(t.Path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to delete template: %w", err)
	}
	delete(r.templates, t.Name)
	return t, nil
}
