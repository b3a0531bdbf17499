package prompt

import (
	"testing"

	"github.com/HartBrook/moanote/internal/brief"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutline(t *testing.T) {
	headings := Outline(Generate(&brief.Brief{Keywords: []string{"React"}}))
	require.NotEmpty(t, headings)

	var top []string
	for _, h := range headings {
		if h.Level == 1 {
			top = append(top, h.Text)
		}
	}
	assert.Equal(t, []string{
		HeaderRole, HeaderTarget, HeaderTone, HeaderKeyword,
		HeaderStructure, HeaderQuality, HeaderConcrete,
	}, top)

	assert.Contains(t, headings, Heading{Level: 2, Text: MarkerKeywords})
	assert.Contains(t, headings, Heading{Level: 2, Text: MarkerPurpose})
}

func TestOutline_Plain(t *testing.T) {
	assert.Empty(t, Outline("just text\n\n- a list"))
	assert.Equal(t, []Heading{{Level: 3, Text: "Deep"}}, Outline("### Deep\nbody"))
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML("# タイトル\n\n- 項目")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>タイトル</h1>")
	assert.Contains(t, html, "<li>項目</li>")
}
