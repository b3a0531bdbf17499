package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/HartBrook/moanote/internal/config"
)

// Cache manages locally cached articles.
type Cache struct {
	paths *config.Paths
}

// New creates a cache manager.
func New(paths *config.Paths) *Cache {
	return &Cache{paths: paths}
}

// HashContent generates a SHA256 hash for content.
func HashContent(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// Key derives the cache key for a prompt sent to a provider/model pair.
func Key(provider, model, prompt string) string {
	return HashContent(provider + "\x00" + model + "\x00" + prompt)
}

// Read returns the cached article and its metadata.
// Returns empty string and nil metadata if not found.
// If content exists but metadata is missing or corrupted, the orphaned
// content is removed.
func (c *Cache) Read(key string) (string, *Metadata, error) {
	content, err := os.ReadFile(c.paths.ArticleFile(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, nil
		}
		return "", nil, err
	}

	meta, err := c.GetMetadata(key)
	if err != nil {
		_ = c.Clear(key)
		return "", nil, nil
	}

	return string(content), meta, nil
}

// Write stores an article and its metadata.
func (c *Cache) Write(key, content string, meta *Metadata) error {
	if err := os.MkdirAll(c.paths.ArticlesDir, config.DefaultDirMode); err != nil {
		return err
	}

	if meta.GeneratedAt.IsZero() {
		meta.GeneratedAt = time.Now()
	}
	meta.Key = key

	if err := os.WriteFile(c.paths.ArticleFile(key), []byte(content), config.DefaultFileMode); err != nil {
		return err
	}

	metaBytes, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.paths.ArticleMetaFile(key), metaBytes, config.DefaultFileMode)
}

// Exists checks if both the article and its metadata are cached.
func (c *Cache) Exists(key string) bool {
	if _, err := os.Stat(c.paths.ArticleFile(key)); err != nil {
		return false
	}
	_, err := os.Stat(c.paths.ArticleMetaFile(key))
	return err == nil
}

// Clear removes a cached article.
// Returns nil even if files don't exist (idempotent operation).
func (c *Cache) Clear(key string) error {
	if err := os.Remove(c.paths.ArticleFile(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cached article: %w", err)
	}
	if err := os.Remove(c.paths.ArticleMetaFile(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove article metadata: %w", err)
	}
	return nil
}

// ClearAll removes every cached article and returns how many were removed.
func (c *Cache) ClearAll() (int, error) {
	keys, err := c.keys()
	if err != nil {
		return 0, err
	}
	for _, key := range keys {
		if err := c.Clear(key); err != nil {
			return 0, err
		}
	}
	return len(keys), nil
}

// GetMetadata returns only the metadata without reading content.
func (c *Cache) GetMetadata(key string) (*Metadata, error) {
	metaBytes, err := os.ReadFile(c.paths.ArticleMetaFile(key))
	if err != nil {
		return nil, err
	}

	meta := &Metadata{}
	if err := json.Unmarshal(metaBytes, meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// Dir returns the article cache directory.
func (c *Cache) Dir() string {
	return c.paths.ArticlesDir
}

// List returns metadata for every cached article, newest first.
// Articles without readable metadata are skipped.
func (c *Cache) List() ([]*Metadata, error) {
	keys, err := c.keys()
	if err != nil {
		return nil, err
	}

	var metas []*Metadata
	for _, key := range keys {
		meta, err := c.GetMetadata(key)
		if err != nil {
			continue
		}
		metas = append(metas, meta)
	}

	sort.SliceStable(metas, func(i, j int) bool {
		return metas[i].GeneratedAt.After(metas[j].GeneratedAt)
	})
	return metas, nil
}

func (c *Cache) keys() ([]string, error) {
	entries, err := os.ReadDir(c.paths.ArticlesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if filepath.Ext(name) == ".md" {
			keys = append(keys, strings.TrimSuffix(name, ".md"))
		}
	}
	return keys, nil
}
