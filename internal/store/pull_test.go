package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/HartBrook/moanote/internal/errors"
	"github.com/HartBrook/moanote/internal/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	branch  string
	entries []github.DirectoryEntry
	files   map[string]string
	listErr error
}

func (f *fakeFetcher) GetDefaultBranch(ctx context.Context, owner, repo string) (string, error) {
	return f.branch, nil
}

func (f *fakeFetcher) ListDirectory(ctx context.Context, owner, repo, path, branch string) ([]github.DirectoryEntry, error) {
	return f.entries, f.listErr
}

func (f *fakeFetcher) FetchFile(ctx context.Context, owner, repo, path, branch string) (*github.FetchResult, error) {
	content, ok := f.files[path]
	if !ok {
		return nil, fmt.Errorf("not found: %s", path)
	}
	return &github.FetchResult{Content: content}, nil
}

func TestPull(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "acme-templates")
	writeFile(t, filepath.Join(dest, "stale.yaml"), "name: old\ntype: settings\nprompt_text: x\n")

	f := &fakeFetcher{
		branch: "main",
		entries: []github.DirectoryEntry{
			{Name: "data.yaml", Path: "templates/data.yaml", Type: "file"},
			{Name: "broken.yaml", Path: "templates/broken.yaml", Type: "file"},
			{Name: "README.md", Path: "templates/README.md", Type: "file"},
			{Name: "nested", Path: "templates/nested", Type: "dir"},
		},
		files: map[string]string{
			"templates/data.yaml":   "name: データ重視\ntype: settings\nprompt_text: \"データ重視要件:\"\n",
			"templates/broken.yaml": "name: broken\ntype: settings\n",
		},
	}

	result, err := Pull(context.Background(), f, "acme", "templates", dest)
	require.NoError(t, err)

	assert.Equal(t, "main", result.Branch)
	assert.Equal(t, []string{"data"}, result.Written)
	require.Len(t, result.Skipped, 1)
	assert.Contains(t, result.Skipped[0], "broken.yaml")

	assert.FileExists(t, filepath.Join(dest, "data.yaml"))
	assert.NoFileExists(t, filepath.Join(dest, "stale.yaml"))

	tmpl, err := LoadTemplate(filepath.Join(dest, "data.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "データ重視", tmpl.Name)
}

func TestPull_MissingDirectory(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "dest")
	_, err := Pull(context.Background(), &fakeFetcher{branch: "main"}, "acme", "templates", dest)

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrGitHubFetchFailed))
	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPull_FetchErrorKeepsExisting(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "dest")
	writeFile(t, filepath.Join(dest, "keep.yaml"), "name: keep\ntype: settings\nprompt_text: x\n")

	f := &fakeFetcher{
		branch:  "main",
		entries: []github.DirectoryEntry{{Name: "gone.yaml", Path: "templates/gone.yaml", Type: "file"}},
	}
	_, err := Pull(context.Background(), f, "acme", "templates", dest)

	require.Error(t, err)
	assert.FileExists(t, filepath.Join(dest, "keep.yaml"))
}

func TestPull_OnlyInvalidKeepsExisting(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "dest")
	writeFile(t, filepath.Join(dest, "keep.yaml"), "name: keep\ntype: settings\nprompt_text: x\n")

	f := &fakeFetcher{
		branch:  "main",
		entries: []github.DirectoryEntry{{Name: "broken.yaml", Path: "templates/broken.yaml", Type: "file"}},
		files:   map[string]string{"templates/broken.yaml": "name: broken\ntype: settings\n"},
	}
	result, err := Pull(context.Background(), f, "acme", "templates", dest)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.HasCode(err, errors.ErrGitHubFetchFailed))
	assert.FileExists(t, filepath.Join(dest, "keep.yaml"))
}
