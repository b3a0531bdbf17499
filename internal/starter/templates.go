// Package starter provides the built-in prompt templates that ship with moanote.
package starter

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed templates/*.yaml
var templatesFS embed.FS

const templateExt = ".yaml"

// TemplateNames returns the file names (without extension) of the starter templates.
func TemplateNames() []string {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == templateExt {
			names = append(names, strings.TrimSuffix(entry.Name(), templateExt))
		}
	}
	return names
}

// GetTemplate returns the raw YAML of a starter template by file name.
func GetTemplate(name string) ([]byte, error) {
	return templatesFS.ReadFile(path.Join("templates", name+templateExt))
}

// BootstrapTemplates copies starter templates to the target directory.
// It skips files that already exist. Returns the number of templates copied.
func BootstrapTemplates(targetDir string) (int, error) {
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create templates directory: %w", err)
	}

	copied := 0
	for _, name := range TemplateNames() {
		targetPath := filepath.Join(targetDir, name+templateExt)
		if _, err := os.Stat(targetPath); err == nil {
			continue
		}

		content, err := GetTemplate(name)
		if err != nil {
			return copied, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if err := os.WriteFile(targetPath, content, 0644); err != nil {
			return copied, fmt.Errorf("failed to write %s: %w", name, err)
		}
		copied++
	}

	return copied, nil
}
