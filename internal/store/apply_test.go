package store

import (
	"testing"

	"github.com/HartBrook/moanote/internal/brief"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func starterTemplates(t *testing.T) (reader, writer, settings *Template) {
	t.Helper()
	r, err := LoadRegistry(testPaths(t))
	require.NoError(t, err)

	reader, err = r.Get("20代IT系女性")
	require.NoError(t, err)
	writer, err = r.Get("親しみやすい先輩")
	require.NoError(t, err)
	settings, err = r.Get("SEO重視設定")
	require.NoError(t, err)
	return reader, writer, settings
}

func TestApply_ReaderReplacesPersona(t *testing.T) {
	reader, _, _ := starterTemplates(t)
	b := brief.Brief{ReaderPersona: brief.ReaderPersona{Age: "50代", Challenges: []string{"老後"}}}

	got := Apply(reader, b)

	assert.Equal(t, brief.ReaderPersona{
		Age:        "20代",
		Occupation: "マーケター",
		Interests:  []string{"SaaS", "マーケティング自動化"},
	}, got.ReaderPersona)
	assert.Equal(t, "50代", b.ReaderPersona.Age)
}

func TestApply_FallsBackToPromptText(t *testing.T) {
	tmpl := &Template{Name: "講師", Type: KindWriter, PromptText: "年齢: 45歳\n口調: である調\n性格: 真面目、論理的"}

	got := Apply(tmpl, brief.Brief{})

	assert.Equal(t, "45歳", got.WriterCharacter.Age)
	assert.Equal(t, "である調", got.WriterCharacter.Tone)
	assert.Equal(t, []string{"真面目", "論理的"}, got.WriterCharacter.Personalities)
}

func TestApply_SettingsMerge(t *testing.T) {
	tmpl := &Template{
		Name: "感情重視",
		Type: KindSettings,
		Data: brief.Brief{
			WritingStyle:      brief.WritingStyle{Template: "story"},
			PsychologyEffects: brief.PsychologyEffects{Empathy: true},
			WordCount:         2500,
		},
	}
	b := brief.Brief{
		Keywords:          []string{"副業"},
		WritingStyle:      brief.WritingStyle{EmojiFrequency: "none", Conversational: true},
		PsychologyEffects: brief.PsychologyEffects{Urgency: true},
		WordCount:         4000,
	}

	got := Apply(tmpl, b)

	assert.Equal(t, []string{"副業"}, got.Keywords)
	assert.Equal(t, brief.WritingStyle{Conversational: true, Template: "story", EmojiFrequency: "none"}, got.WritingStyle)
	assert.Equal(t, brief.PsychologyEffects{Empathy: true, Urgency: true}, got.PsychologyEffects)
	assert.Equal(t, 2500, got.WordCount)
}

func TestCombine(t *testing.T) {
	reader, writer, settings := starterTemplates(t)
	b := brief.Brief{Keywords: []string{"SaaS", " ", "時短"}, Purpose: "ツール選びを助ける"}

	got, err := Combine(reader, writer, settings, b)
	require.NoError(t, err)

	assert.True(t, got.UseCustomPrompt)
	assert.Equal(t, "マーケター", got.ReaderPersona.Occupation)
	assert.Equal(t, "ライター", got.WriterCharacter.Occupation)
	assert.Equal(t, "prep", got.WritingStyle.Template)

	assert.Contains(t, got.CustomPrompt, "# 記事作成プロンプト\n\n## ターゲット読者設定\n年齢: 20代後半\n")
	assert.Contains(t, got.CustomPrompt, "## 書き手キャラクター設定\n年齢: 32歳\n")
	assert.Contains(t, got.CustomPrompt, "## 追加設定\nSEO要件:\n")
	assert.Contains(t, got.CustomPrompt, "## キーワード\nSaaS、時短\n\n")
	assert.Contains(t, got.CustomPrompt, "## 記事の目的\nツール選びを助ける\n\n")
	assert.Contains(t, got.CustomPrompt, "- 読みやすい構成と文体\n\n")
}

func TestCombine_WithoutSettingsOrKeywords(t *testing.T) {
	reader, writer, _ := starterTemplates(t)

	got, err := Combine(reader, writer, nil, brief.Brief{})
	require.NoError(t, err)

	assert.NotContains(t, got.CustomPrompt, "## 追加設定")
	assert.NotContains(t, got.CustomPrompt, "## キーワード")
	assert.NotContains(t, got.CustomPrompt, "## 記事の目的")
}

func TestCombine_RequiresReaderAndWriter(t *testing.T) {
	reader, writer, settings := starterTemplates(t)

	_, err := Combine(nil, writer, nil, brief.Brief{})
	assert.Error(t, err)

	_, err = Combine(reader, reader, nil, brief.Brief{})
	assert.Error(t, err)

	_, err = Combine(reader, writer, writer, brief.Brief{})
	assert.Error(t, err)

	_, err = Combine(reader, writer, settings, brief.Brief{})
	assert.NoError(t, err)
}

func TestFromPromptText(t *testing.T) {
	text := "年齢: 20代後半\n職業：IT企業のマーケター\n- 課題: 時間不足、情報過多\n興味: SaaS, 自動化\nメモ\n読み方:\n"

	got := FromPromptText(KindReader, text).ReaderPersona

	assert.Equal(t, brief.ReaderPersona{
		Age:        "20代後半",
		Occupation: "IT企業のマーケター",
		Interests:  []string{"SaaS", "自動化"},
		Challenges: []string{"時間不足", "情報過多"},
	}, got)

	assert.True(t, FromPromptText(KindSettings, text).ReaderPersona.IsZero())
}
