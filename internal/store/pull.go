package store

import (
	"context"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/HartBrook/moanote/internal/config"
	"github.com/HartBrook/moanote/internal/errors"
	"github.com/HartBrook/moanote/internal/github"
)

// RemoteTemplatesDir is the directory of a templates repo holding the YAML files.
const RemoteTemplatesDir = "templates"

// Fetcher reads files from a GitHub repository.
type Fetcher interface {
	GetDefaultBranch(ctx context.Context, owner, repo string) (string, error)
	ListDirectory(ctx context.Context, owner, repo, path, branch string) ([]github.DirectoryEntry, error)
	FetchFile(ctx context.Context, owner, repo, path, branch string) (*github.FetchResult, error)
}

// PullResult reports what a pull wrote.
type PullResult struct {
	Branch  string
	Written []string
	Skipped []string
}

// Pull downloads every valid template from owner/repo into dest, replacing
// its previous contents. Invalid files are skipped and reported. dest is left
// untouched when nothing valid was fetched.
func Pull(ctx context.Context, f Fetcher, owner, repo, dest string) (*PullResult, error) {
	fullName := owner + "/" + repo

	branch, err := f.GetDefaultBranch(ctx, owner, repo)
	if err != nil {
		return nil, errors.GitHubFetchFailed(fullName, err)
	}

	entries, err := f.ListDirectory(ctx, owner, repo, RemoteTemplatesDir, branch)
	if err != nil {
		return nil, errors.GitHubFetchFailed(fullName, err)
	}
	if entries == nil {
		return nil, errors.GitHubFetchFailed(fullName, fmt.Errorf("no %s/ directory in repository", RemoteTemplatesDir))
	}

	result := &PullResult{Branch: branch}
	fetched := make(map[string]*Template)
	for _, entry := range entries {
		if entry.Type != "file" || path.Ext(entry.Name) != ".yaml" {
			continue
		}

		file, err := f.FetchFile(ctx, owner, repo, entry.Path, branch)
		if err != nil {
			return nil, errors.GitHubFetchFailed(fullName, err)
		}
		t, err := ParseTemplate([]byte(file.Content))
		if err != nil {
			log.Printf("debug: skipping remote template %s: %v", entry.Path, err)
			result.Skipped = append(result.Skipped, fmt.Sprintf("%s: %v", entry.Name, err))
			continue
		}
		fetched[entry.Name] = t
	}
	if len(fetched) == 0 {
		return nil, errors.GitHubFetchFailed(fullName, fmt.Errorf("no valid templates in %s/ (skipped %d)", RemoteTemplatesDir, len(result.Skipped)))
	}

	if err := os.RemoveAll(dest); err != nil {
		return nil, fmt.Errorf("failed to clear %s: %w", dest, err)
	}
	if err := os.MkdirAll(dest, config.DefaultDirMode); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dest, err)
	}
	for name, t := range fetched {
		if err := WriteTemplate(t, filepath.Join(dest, name)); err != nil {
			return nil, err
		}
		result.Written = append(result.Written, strings.TrimSuffix(name, ".yaml"))
	}
	sort.Strings(result.Written)
	return result, nil
}
