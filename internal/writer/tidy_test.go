package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTidy(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantStats TidyStats
	}{
		{
			name:  "already clean",
			input: "# タイトル\n\n本文\n",
			want:  "# タイトル\n\n本文\n",
		},
		{
			name:  "CRLF and trailing spaces",
			input: "# タイトル  \r\n\r\n本文\t\r\n",
			want:  "# タイトル\n\n本文\n",
		},
		{
			name:      "blank runs collapsed",
			input:     "# タイトル\n\n\n\n本文\n \n\n続き",
			want:      "# タイトル\n\n本文\n\n続き\n",
			wantStats: TidyStats{BlankLinesRemoved: 3},
		},
		{
			name:      "preamble stripped",
			input:     "以下が記事です。\n\n# タイトル\n本文",
			want:      "# タイトル\n本文\n",
			wantStats: TidyStats{PreambleStripped: true},
		},
		{
			name:      "polite preamble stripped",
			input:     "はい、承知しました。\n# タイトル",
			want:      "# タイトル\n",
			wantStats: TidyStats{PreambleStripped: true},
		},
		{
			name:      "fence stripped",
			input:     "```markdown\n# タイトル\n本文\n```",
			want:      "# タイトル\n本文\n",
			wantStats: TidyStats{FenceStripped: true},
		},
		{
			name:      "preamble then fence",
			input:     "Here is the article:\n```\n# Title\n```\n",
			want:      "# Title\n",
			wantStats: TidyStats{PreambleStripped: true, FenceStripped: true},
		},
		{
			name:  "unclosed fence kept",
			input: "```go\nfmt.Println()\n",
			want:  "```go\nfmt.Println()\n",
		},
		{
			name:  "body sentence starting with 以下 kept",
			input: "以下の3つのポイントを押さえれば、誰でも継続できるようになりますので順番に見ていきましょう。\n本文",
			want:  "以下の3つのポイントを押さえれば、誰でも継続できるようになりますので順番に見ていきましょう。\n本文\n",
		},
		{
			name:  "empty",
			input: "  \n\n",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stats := Tidy(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantStats, stats)
			assert.Equal(t, tt.wantStats != TidyStats{}, stats.Changed())
		})
	}
}
