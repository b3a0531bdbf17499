// Package store manages reusable prompt templates and saved personas.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HartBrook/moanote/internal/brief"
	"github.com/HartBrook/moanote/internal/config"
	"gopkg.in/yaml.v3"
)

// Kind is what part of a brief a template fills in.
type Kind string

const (
	KindReader   Kind = "reader"
	KindWriter   Kind = "writer"
	KindSettings Kind = "settings"
	KindBrief    Kind = "brief"
)

// Kinds lists every template kind in display order.
var Kinds = []Kind{KindReader, KindWriter, KindSettings, KindBrief}

// Label returns the Japanese display label for k.
func (k Kind) Label() string {
	switch k {
	case KindReader:
		return "読者ペルソナ"
	case KindWriter:
		return "書き手キャラクター"
	case KindSettings:
		return "追加設定"
	case KindBrief:
		return "ブリーフ"
	}
	return string(k)
}

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Source is where a template was loaded from.
type Source string

const (
	SourceStarter  Source = "starter"
	SourceShared   Source = "shared"
	SourcePersonal Source = "personal"
)

// Template is a named, reusable fragment of a brief.
type Template struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Type        Kind        `yaml:"type"`
	PromptText  string      `yaml:"prompt_text,omitempty"`
	Tags        []string    `yaml:"tags,omitempty"`
	Data        brief.Brief `yaml:"data,omitempty"`
	CreatedAt   time.Time   `yaml:"created_at,omitempty"`
	UpdatedAt   time.Time   `yaml:"updated_at,omitempty"`

	Source Source `yaml:"-"`
	Path   string `yaml:"-"`
}

// Validate checks the template has a name, a known type and some content.
func (t *Template) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("template name is required")
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("template %q: unknown type %q", t.Name, t.Type)
	}
	if strings.TrimSpace(t.PromptText) == "" && isZeroBrief(t.Data) {
		return fmt.Errorf("template %q: prompt_text or data is required", t.Name)
	}
	return nil
}

// HasTag reports whether the template carries tag, ignoring case.
func (t *Template) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if strings.EqualFold(existing, tag) {
			return true
		}
	}
	return false
}

// ParseTemplate parses and validates a YAML template.
func ParseTemplate(data []byte) (*Template, error) {
	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	t.Type = Kind(strings.ToLower(strings.TrimSpace(string(t.Type))))
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadTemplate reads a template file.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	t, err := ParseTemplate(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	t.Path = path
	return t, nil
}

// WriteTemplate writes t as YAML to path, creating parent directories.
func WriteTemplate(t *Template, path string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal template: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), config.DefaultDirMode); err != nil {
		return fmt.Errorf("failed to create templates directory: %w", err)
	}
	if err := os.WriteFile(path, data, config.DefaultFileMode); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	return nil
}

func isZeroBrief(b brief.Brief) bool {
	return len(b.Keywords) == 0 &&
		b.Purpose == "" &&
		b.ReaderPersona.IsZero() &&
		b.WriterCharacter.IsZero() &&
		b.WritingStyle == (brief.WritingStyle{}) &&
		b.PrimaryInfo == (brief.PrimaryInfo{}) &&
		b.PsychologyEffects == (brief.PsychologyEffects{}) &&
		b.ReferenceStyle == "" &&
		b.Goal == "" &&
		b.WordCount == 0 &&
		b.CustomPrompt == "" &&
		!b.UseCustomPrompt
}
