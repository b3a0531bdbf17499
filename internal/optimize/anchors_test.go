package optimize

import (
	"testing"

	"github.com/HartBrook/moanote/internal/brief"
	"github.com/stretchr/testify/assert"
)

func TestExtractAnchors(t *testing.T) {
	b := &brief.Brief{Keywords: []string{" React ", "", "学習法", "react", "初心者"}}
	a := ExtractAnchors(b)

	assert.Equal(t, []string{"React"}, a.Strict)
	assert.Equal(t, []string{"学習法", "初心者"}, a.Soft)
	assert.Equal(t, []string{"React", "初心者", "学習法"}, a.All())
}

func TestExtractAnchors_Empty(t *testing.T) {
	assert.Empty(t, ExtractAnchors(nil).All())
	assert.Empty(t, ExtractAnchors(&brief.Brief{}).All())
}

func TestValidateAnchors(t *testing.T) {
	b := &brief.Brief{Keywords: []string{"React", "学習法", "初心者"}}

	tests := []struct {
		name          string
		text          string
		wantStrict    []string
		wantSoft      []string
		strictFailure bool
	}{
		{
			name: "all present",
			text: "# reactの学習法\n初心者向け",
		},
		{
			name:     "sub keyword missing",
			text:     "React入門。学習法を紹介",
			wantSoft: []string{"初心者"},
		},
		{
			name:          "main keyword missing",
			text:          "学習法と初心者",
			wantStrict:    []string{"React"},
			strictFailure: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidateAnchors(b, tt.text)
			assert.Equal(t, tt.wantStrict, r.MissingStrict)
			assert.Equal(t, tt.wantSoft, r.MissingSoft)
			assert.Equal(t, tt.strictFailure, r.HasStrictFailures())
		})
	}
}

func TestAnchorResult_AllMissing(t *testing.T) {
	r := &AnchorResult{MissingStrict: []string{"b"}, MissingSoft: []string{"c", "a"}}
	assert.Equal(t, []string{"a", "b", "c"}, r.AllMissing())
}
