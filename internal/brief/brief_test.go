package brief

import (
	"os"
	"path/filepath"
	"testing"

	moerrors "github.com/HartBrook/moanote/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrief_Accessors_Empty(t *testing.T) {
	var b Brief

	assert.False(t, b.HasKeywords())
	assert.Equal(t, PlaceholderKeyword, b.MainKeyword())
	assert.Nil(t, b.SubKeywords())
	assert.False(t, b.HasPurpose())
	assert.Equal(t, DefaultWordCount, b.EffectiveWordCount())
	assert.Equal(t, DefaultTone, b.Tone())
	assert.Equal(t, DefaultTemplate, b.TemplateName())
	assert.Equal(t, DefaultEmoji, b.EmojiFrequencyName())

	_, ok := b.CustomOverride()
	assert.False(t, ok)
}

func TestBrief_Accessors_Populated(t *testing.T) {
	b := Brief{
		Keywords:  []string{"React", "学習法", "初心者"},
		Purpose:   "  基礎を伝える ",
		WordCount: 1500,
		WriterCharacter: WriterCharacter{
			Tone: "だ・である調",
		},
		WritingStyle: WritingStyle{Template: "how-to", EmojiFrequency: "none"},
	}

	assert.Equal(t, "React", b.MainKeyword())
	assert.Equal(t, []string{"学習法", "初心者"}, b.SubKeywords())
	assert.True(t, b.HasPurpose())
	assert.Equal(t, 1500, b.EffectiveWordCount())
	assert.Equal(t, "だ・である調", b.Tone())
	assert.Equal(t, "how-to", b.TemplateName())
	assert.Equal(t, "none", b.EmojiFrequencyName())
}

func TestBrief_CustomOverride(t *testing.T) {
	b := Brief{CustomPrompt: "自由なプロンプト"}
	_, ok := b.CustomOverride()
	assert.False(t, ok, "disabled override must be ignored")

	b.UseCustomPrompt = true
	got, ok := b.CustomOverride()
	assert.True(t, ok)
	assert.Equal(t, "自由なプロンプト", got)

	b.CustomPrompt = "   "
	_, ok = b.CustomOverride()
	assert.False(t, ok, "blank override must be ignored")
}

func TestBrief_Validate(t *testing.T) {
	tests := []struct {
		name    string
		brief   *Brief
		wantErr string
	}{
		{name: "empty brief is valid", brief: &Brief{}},
		{name: "defaults are valid", brief: ptr(Defaults())},
		{
			name:    "too many keywords",
			brief:   &Brief{Keywords: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"}},
			wantErr: "at most 10 keywords",
		},
		{
			name:    "blank keyword",
			brief:   &Brief{Keywords: []string{"React", " "}},
			wantErr: "keyword 2 is empty",
		},
		{
			name:    "negative word count",
			brief:   &Brief{WordCount: -1},
			wantErr: "word_count must be positive",
		},
		{
			name:    "unknown template",
			brief:   &Brief{WritingStyle: WritingStyle{Template: "essay"}},
			wantErr: `unknown template "essay"`,
		},
		{
			name:    "unknown emoji frequency",
			brief:   &Brief{WritingStyle: WritingStyle{EmojiFrequency: "always"}},
			wantErr: `unknown emoji_frequency "always"`,
		},
		{
			name:    "unknown goal",
			brief:   &Brief{Goal: "sell"},
			wantErr: `unknown goal "sell"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.brief.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var me *moerrors.MoanoteError
			require.ErrorAs(t, err, &me)
			assert.Equal(t, moerrors.ErrBriefInvalid, me.Code)
		})
	}
}

func TestBrief_Validate_Nil(t *testing.T) {
	var b *Brief
	err := b.Validate()

	var me *moerrors.MoanoteError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, moerrors.ErrBriefMissing, me.Code)
}

func TestNormalize(t *testing.T) {
	in := &Brief{
		Keywords: []string{" ＲＥＡＣＴ ", "", "学習法"},
		Purpose:  "  目的  ",
		ReaderPersona: ReaderPersona{
			Age:       "２０代",
			Interests: []string{" ", ""},
		},
		WritingStyle: WritingStyle{Template: "ＰＲＥＰ", EmojiFrequency: "Minimal"},
		Goal:         "Learn",
	}

	out := Normalize(in)

	assert.Equal(t, []string{"REACT", "学習法"}, out.Keywords)
	assert.Equal(t, "目的", out.Purpose)
	assert.Equal(t, "20代", out.ReaderPersona.Age)
	assert.Nil(t, out.ReaderPersona.Interests)
	assert.Equal(t, "prep", out.WritingStyle.Template)
	assert.Equal(t, "minimal", out.WritingStyle.EmojiFrequency)
	assert.Equal(t, GoalLearn, out.Goal)

	// Input untouched
	assert.Equal(t, " ＲＥＡＣＴ ", in.Keywords[0])
	assert.Len(t, in.Keywords, 3)
}

func TestNormalize_KeepsCaseAndDuplicates(t *testing.T) {
	out := Normalize(&Brief{Keywords: []string{"ＲＥＡＣＴ", "React", "React"}})
	assert.Equal(t, []string{"REACT", "React", "React"}, out.Keywords)
}

func TestNormalize_Nil(t *testing.T) {
	assert.Equal(t, Brief{}, Normalize(nil))
}

func TestWithDefaults(t *testing.T) {
	t.Run("nil brief", func(t *testing.T) {
		assert.Equal(t, Defaults(), WithDefaults(nil))
	})

	t.Run("keeps partial persona", func(t *testing.T) {
		in := &Brief{
			Keywords:      []string{"投資"},
			ReaderPersona: ReaderPersona{Age: "40代"},
		}
		out := WithDefaults(in)

		assert.Equal(t, []string{"投資"}, out.Keywords)
		assert.Equal(t, ReaderPersona{Age: "40代"}, out.ReaderPersona)
		assert.Equal(t, Defaults().WriterCharacter, out.WriterCharacter)
		assert.Equal(t, Defaults().Purpose, out.Purpose)
		assert.Equal(t, DefaultWordCount, out.WordCount)
	})
}

func TestParse_YAML(t *testing.T) {
	data := []byte(`
keywords: [プログラミング]
purpose: 初心者に基本を伝えたい
reader_persona:
  age: 20代
  occupation: 学生
writer_character:
  age: "28"
  occupation: エンジニア
  tone: です・ます調
  personalities: [親しみやすい]
writing_style:
  template: prep
  conversational: true
  emoji_frequency: moderate
word_count: 1500
`)

	b, err := Parse(data, ".yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"プログラミング"}, b.Keywords)
	assert.Equal(t, "20代", b.ReaderPersona.Age)
	assert.Equal(t, "28", b.WriterCharacter.Age)
	assert.True(t, b.WritingStyle.Conversational)
	assert.Equal(t, 1500, b.WordCount)
}

func TestParse_JSON(t *testing.T) {
	data := []byte(`{"keywords":["React","学習法"],"readerPersona":{"age":"30代"},"wordCount":3000,"goal":"learn"}`)

	b, err := Parse(data, ".json")
	require.NoError(t, err)
	assert.Equal(t, []string{"React", "学習法"}, b.Keywords)
	assert.Equal(t, "30代", b.ReaderPersona.Age)
	assert.Equal(t, GoalLearn, b.Goal)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("{not json"), ".json")
	assert.Error(t, err)

	_, err = Parse([]byte("keywords: [unterminated"), ".yaml")
	assert.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "brief.yaml")
	original := Defaults()
	original.Goal = GoalShare

	require.NoError(t, Save(&original, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, *loaded)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func ptr(b Brief) *Brief {
	return &b
}
