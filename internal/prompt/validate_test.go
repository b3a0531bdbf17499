package prompt

import (
	"strings"
	"testing"

	"github.com/HartBrook/moanote/internal/brief"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	assert.True(t, Validate(&brief.Brief{}))
	assert.True(t, Validate(nil))
	assert.True(t, Validate(beginnerProgrammingBrief()))
	assert.True(t, Validate(fullHowToBrief()))
}

func TestValidate_EndToEndExample(t *testing.T) {
	out := Generate(beginnerProgrammingBrief())

	assert.GreaterOrEqual(t, len([]rune(out)), MinLength)
	assert.Contains(t, out, "プログラミング")
	assert.Contains(t, out, "初心者に基本を伝えたい")
	assert.Contains(t, out, "PREP")
	assert.Contains(t, out, "1. **結論**")
	assert.Contains(t, out, "2. **理由**")
	assert.Contains(t, out, "3. **具体例**")
	assert.Contains(t, out, "親しみやすい")
	assert.True(t, Check(out).OK())
}

func TestValidate_CustomPromptTooShort(t *testing.T) {
	b := &brief.Brief{CustomPrompt: "記事を書いて", UseCustomPrompt: true}
	assert.False(t, Validate(b))
}

// Dropping any required section must flip the check.
func TestCheck_StrippedSection(t *testing.T) {
	b := fullHowToBrief()
	required := map[string]bool{"role": true, "target": true, "tone": true, "keyword": true, "structure": true}

	for _, skip := range Sections(b) {
		if !required[skip.Name] {
			continue
		}
		t.Run(skip.Name, func(t *testing.T) {
			var kept []string
			for _, s := range Sections(b) {
				if s.Name != skip.Name {
					kept = append(kept, s.Body)
				}
			}
			text := strings.Join(kept, "\n\n")

			v := Check(text)
			assert.False(t, v.OK())
			assert.Contains(t, v.MissingHeaders, skip.Title)
		})
	}
}

func TestCheck_OptionalSectionsDoNotMatter(t *testing.T) {
	var kept []string
	for _, s := range Sections(fullHowToBrief()) {
		if s.Name == "primary" || s.Name == "quality" {
			continue
		}
		kept = append(kept, s.Body)
	}

	assert.True(t, Check(strings.Join(kept, "\n\n")).OK())
}

func TestCheck_Markers(t *testing.T) {
	text := strings.Join([]string{
		"# " + HeaderRole, "# " + HeaderTarget, "# " + HeaderTone,
		"# " + HeaderKeyword, "# " + HeaderStructure,
		strings.Repeat("あ", MinLength),
	}, "\n")

	v := Check(text)
	assert.Empty(t, v.MissingHeaders)
	assert.Equal(t, []string{MarkerKeywords, MarkerPurpose}, v.MissingMarkers)
	assert.False(t, v.TooShort())
	assert.False(t, v.OK())

	v = Check(text + "\n" + MarkerKeywords + "\n" + MarkerPurpose)
	assert.True(t, v.OK())
}

func TestCheck_LengthCountsRunes(t *testing.T) {
	// 500 three-byte runes is 1500 bytes but only 500 characters.
	v := Check(strings.Repeat("あ", 500))
	assert.Equal(t, 500, v.Length)
	assert.True(t, v.TooShort())
}
