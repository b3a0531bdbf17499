package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/HartBrook/moanote/internal/config"
	"github.com/HartBrook/moanote/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPaths(t *testing.T) *config.Paths {
	t.Helper()
	root := t.TempDir()
	return config.NewPathsWithOverrides(filepath.Join(root, "config"), filepath.Join(root, "cache"))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadRegistry_Starters(t *testing.T) {
	r, err := LoadRegistry(testPaths(t))
	require.NoError(t, err)

	all := r.List()
	require.Len(t, all, 3)
	assert.Equal(t, KindReader, all[0].Type)
	assert.Equal(t, KindWriter, all[1].Type)
	assert.Equal(t, KindSettings, all[2].Type)

	reader, err := r.Get("20代IT系女性")
	require.NoError(t, err)
	assert.Equal(t, SourceStarter, reader.Source)
	assert.Equal(t, "マーケター", reader.Data.ReaderPersona.Occupation)

	byID, err := r.Get(reader.ID)
	require.NoError(t, err)
	assert.Same(t, reader, byID)
}

func TestLoadRegistry_Precedence(t *testing.T) {
	paths := testPaths(t)
	shared := paths.SharedTemplatesDir("acme", "templates")

	writeFile(t, filepath.Join(shared, "seo.yaml"), "name: SEO重視設定\ntype: settings\nprompt_text: shared\n")
	writeFile(t, filepath.Join(shared, "team.yaml"), "name: チーム設定\ntype: settings\nprompt_text: team\n")
	writeFile(t, filepath.Join(paths.TemplatesDir, "team.yaml"), "name: チーム設定\ntype: settings\nprompt_text: mine\n")

	r, err := LoadRegistry(paths, shared)
	require.NoError(t, err)

	seo, err := r.Get("SEO重視設定")
	require.NoError(t, err)
	assert.Equal(t, SourceShared, seo.Source)
	assert.Equal(t, "shared", seo.PromptText)

	team, err := r.Get("チーム設定")
	require.NoError(t, err)
	assert.Equal(t, SourcePersonal, team.Source)
	assert.Equal(t, "mine", team.PromptText)

	assert.Len(t, r.ByType(KindSettings), 2)
}

func TestLoadRegistry_SkipsInvalidFiles(t *testing.T) {
	paths := testPaths(t)
	writeFile(t, filepath.Join(paths.TemplatesDir, "broken.yaml"), "name: [unterminated")

	r, err := LoadRegistry(paths)
	require.NoError(t, err)
	assert.Len(t, r.List(), 3)
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0], "broken.yaml")
}

func TestRegistry_GetNotFound(t *testing.T) {
	r, err := LoadRegistry(testPaths(t))
	require.NoError(t, err)

	_, err = r.Get("missing")
	assert.True(t, errors.HasCode(err, errors.ErrTemplateNotFound))
}

func TestRegistry_SaveAndDelete(t *testing.T) {
	paths := testPaths(t)
	r, err := LoadRegistry(paths)
	require.NoError(t, err)

	tmpl := &Template{Name: "専門的な講師", Type: KindWriter, PromptText: "年齢: 45歳\n口調: である調"}
	require.NoError(t, r.Save(tmpl))

	assert.NotEmpty(t, tmpl.ID)
	assert.False(t, tmpl.CreatedAt.IsZero())
	assert.Equal(t, SourcePersonal, tmpl.Source)
	assert.FileExists(t, filepath.Join(paths.TemplatesDir, tmpl.ID+".yaml"))

	reloaded, err := LoadRegistry(paths)
	require.NoError(t, err)
	got, err := reloaded.Get("専門的な講師")
	require.NoError(t, err)
	assert.Equal(t, tmpl.ID, got.ID)

	deleted, err := reloaded.Delete(tmpl.ID)
	require.NoError(t, err)
	assert.Equal(t, "専門的な講師", deleted.Name)
	assert.NoFileExists(t, tmpl.Path)

	_, err = reloaded.Get("専門的な講師")
	assert.Error(t, err)
}

func TestRegistry_SaveRejectsInvalid(t *testing.T) {
	r, err := LoadRegistry(testPaths(t))
	require.NoError(t, err)
	assert.Error(t, r.Save(&Template{Name: "x", Type: KindReader}))
}

func TestRegistry_DeleteStarterFails(t *testing.T) {
	r, err := LoadRegistry(testPaths(t))
	require.NoError(t, err)

	_, err = r.Delete("SEO重視設定")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "starter")
}

func TestRegistry_Filter(t *testing.T) {
	r, err := LoadRegistry(testPaths(t))
	require.NoError(t, err)

	got := r.Filter("seo")
	require.Len(t, got, 1)
	assert.Equal(t, "SEO重視設定", got[0].Name)
}
