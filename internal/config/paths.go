package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants for consistent file creation.
const (
	DefaultFileMode = 0644
	DefaultDirMode  = 0755
)

// Paths provides all moanote-related filesystem paths.
type Paths struct {
	ConfigDir    string // ~/.config/moanote
	CacheDir     string // ~/.cache/moanote
	ConfigFile   string // ~/.config/moanote/config.yaml
	TemplatesDir string // ~/.config/moanote/templates
	PersonasDir  string // ~/.config/moanote/personas
	ArticlesDir  string // ~/.cache/moanote/articles
}

// NewPaths creates Paths using ~/.config and ~/.cache directories.
// We use these paths explicitly for cross-platform consistency rather than
// platform-specific defaults (like ~/Library/Application Support on macOS).
func NewPaths() *Paths {
	home := os.Getenv("HOME")
	return NewPathsWithOverrides(
		filepath.Join(home, ".config", "moanote"),
		filepath.Join(home, ".cache", "moanote"),
	)
}

// NewPathsWithOverrides allows overriding directories for testing.
func NewPathsWithOverrides(configDir, cacheDir string) *Paths {
	return &Paths{
		ConfigDir:    configDir,
		CacheDir:     cacheDir,
		ConfigFile:   filepath.Join(configDir, "config.yaml"),
		TemplatesDir: filepath.Join(configDir, "templates"),
		PersonasDir:  filepath.Join(configDir, "personas"),
		ArticlesDir:  filepath.Join(cacheDir, "articles"),
	}
}

// SharedTemplatesDir returns the path for templates pulled from a GitHub repo.
func (p *Paths) SharedTemplatesDir(owner, repo string) string {
	return filepath.Join(p.CacheDir, fmt.Sprintf("%s-%s-templates", owner, repo))
}

// ArticleFile returns the path for a cached article.
func (p *Paths) ArticleFile(key string) string {
	return filepath.Join(p.ArticlesDir, key+".md")
}

// ArticleMetaFile returns the path for a cached article's metadata sidecar.
func (p *Paths) ArticleMetaFile(key string) string {
	return filepath.Join(p.ArticlesDir, key+".meta.json")
}
