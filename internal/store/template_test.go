package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/HartBrook/moanote/internal/brief"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	data := []byte(`
name: 30代会社員男性
type: Reader
prompt_text: |
  年齢: 30代前半
  職業: 一般企業の営業職
tags: [会社員]
data:
  reader_persona:
    age: 30代
    occupation: 営業
`)
	tmpl, err := ParseTemplate(data)
	require.NoError(t, err)

	assert.Equal(t, "30代会社員男性", tmpl.Name)
	assert.Equal(t, KindReader, tmpl.Type)
	assert.Equal(t, "営業", tmpl.Data.ReaderPersona.Occupation)
	assert.True(t, tmpl.HasTag("会社員"))
}

func TestTemplate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    Template
		wantErr string
	}{
		{"ok with prompt text", Template{Name: "a", Type: KindSettings, PromptText: "x"}, ""},
		{"ok with data", Template{Name: "a", Type: KindBrief, Data: brief.Brief{WordCount: 2000}}, ""},
		{"missing name", Template{Type: KindReader, PromptText: "x"}, "name is required"},
		{"unknown type", Template{Name: "a", Type: "other", PromptText: "x"}, "unknown type"},
		{"no content", Template{Name: "a", Type: KindWriter}, "prompt_text or data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tmpl.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWriteAndLoadTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "t.yaml")
	tmpl := &Template{
		ID:         "abc",
		Name:       "感情重視",
		Type:       KindSettings,
		PromptText: "感情訴求要件:",
		Data:       brief.Brief{PsychologyEffects: brief.PsychologyEffects{Empathy: true}},
	}
	require.NoError(t, WriteTemplate(tmpl, path))

	loaded, err := LoadTemplate(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", loaded.ID)
	assert.Equal(t, path, loaded.Path)
	assert.True(t, loaded.Data.PsychologyEffects.Empathy)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "created_at")
}

func TestLoadTemplate_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x\ntype: reader\n"), 0644))

	_, err := LoadTemplate(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}
