package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/HartBrook/moanote/internal/brief"
	"github.com/HartBrook/moanote/internal/config"
	"github.com/HartBrook/moanote/internal/errors"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Persona is a saved reader or writer profile.
type Persona struct {
	ID          string                `yaml:"id"`
	Name        string                `yaml:"name"`
	Type        Kind                  `yaml:"type"`
	Description string                `yaml:"description,omitempty"`
	Tags        []string              `yaml:"tags,omitempty"`
	Reader      brief.ReaderPersona   `yaml:"reader,omitempty"`
	Writer      brief.WriterCharacter `yaml:"writer,omitempty"`
	CreatedAt   time.Time             `yaml:"created_at,omitempty"`
	UpdatedAt   time.Time             `yaml:"updated_at,omitempty"`

	Path string `yaml:"-"`
}

// Validate checks the persona is a named reader or writer with data.
func (p *Persona) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("persona name is required")
	}
	switch p.Type {
	case KindReader:
		if p.Reader.IsZero() {
			return fmt.Errorf("persona %q has no reader data", p.Name)
		}
	case KindWriter:
		if p.Writer.IsZero() {
			return fmt.Errorf("persona %q has no writer data", p.Name)
		}
	default:
		return fmt.Errorf("persona %q: type must be reader or writer, got %q", p.Name, p.Type)
	}
	return nil
}

// Apply sets the matching persona of b.
func (p *Persona) Apply(b brief.Brief) brief.Brief {
	switch p.Type {
	case KindReader:
		b.ReaderPersona = cloneReader(p.Reader)
	case KindWriter:
		b.WriterCharacter = cloneWriter(p.Writer)
	}
	return b
}

// PersonaFromTemplate turns a reader or writer template into a persona.
func PersonaFromTemplate(t *Template) (*Persona, error) {
	if t.Type != KindReader && t.Type != KindWriter {
		return nil, fmt.Errorf("template %q is a %s template; only reader and writer templates become personas", t.Name, t.Type)
	}
	applied := Apply(t, brief.Brief{})
	p := &Persona{
		Name:        t.Name,
		Type:        t.Type,
		Description: t.Description,
		Tags:        append([]string(nil), t.Tags...),
		Reader:      applied.ReaderPersona,
		Writer:      applied.WriterCharacter,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// PersonaStore keeps personas as YAML files in one directory.
type PersonaStore struct {
	dir string
}

// NewPersonaStore creates a store rooted at dir.
func NewPersonaStore(dir string) *PersonaStore {
	return &PersonaStore{dir: dir}
}

// List returns personas of kind, or all personas when kind is empty,
// sorted by type, then name.
func (s *PersonaStore) List(kind Kind) ([]*Persona, error) {
	files, err := filepath.Glob(filepath.Join(s.dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list personas: %w", err)
	}

	var out []*Persona
	for _, path := range files {
		p, err := loadPersona(path)
		if err != nil {
			log.Printf("debug: skipping persona %s: %v", path, err)
			continue
		}
		if kind == "" || p.Type == kind {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Get finds a persona by name or ID.
func (s *PersonaStore) Get(ref string) (*Persona, error) {
	all, err := s.List("")
	if err != nil {
		return nil, err
	}
	ref = strings.TrimSpace(ref)
	for _, p := range all {
		if p.Name == ref || p.ID == ref {
			return p, nil
		}
	}
	return nil, errors.TemplateNotFound(ref)
}

// Save validates and writes p, assigning an ID on first save.
func (s *PersonaStore) Save(p *Persona) error {
	if err := p.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	if p.Path == "" {
		p.Path = filepath.Join(s.dir, p.ID+".yaml")
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal persona: %w", err)
	}
	if err := os.MkdirAll(s.dir, config.DefaultDirMode); err != nil {
		return fmt.Errorf("failed to create personas directory: %w", err)
	}
	if err := os.WriteFile(p.Path, data, config.DefaultFileMode); err != nil {
		return fmt.Errorf("failed to write persona: %w", err)
	}
	return nil
}

// Delete removes a persona by name or ID.
func (s *PersonaStore) Delete(ref string) (*Persona, error) {
	p, err := s.Get(ref)
	if err != nil {
		return nil, err
	}
	if err := os.Remove(p.Path); err != nil {
		return nil, fmt.Errorf("failed to delete persona: %w", err)
	}
	return p, nil
}

func loadPersona(path string) (*Persona, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Persona
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse persona: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.Path = path
	return &p, nil
}
