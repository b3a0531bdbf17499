// Package prompt turns a brief into the article-writing prompt sent to an LLM.
//
// Generation is a fixed sequence of section builders joined by a blank line.
// Every builder is a pure function of the brief, so equal briefs always
// produce byte-identical prompts.
package prompt

import (
	"github.com/HartBrook/moanote/internal/brief"
	"github.com/HartBrook/moanote/internal/textutil"
)

// Sampling defaults handed to the article writer.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 4000
	DefaultTopP        = 0.9
)

// Section is one rendered block of a generated prompt.
type Section struct {
	Name  string // stable identifier: role, target, tone, ...
	Title string // Markdown heading text without the leading "# "
	Body  string // full rendered text including the heading
}

// Sections renders every present section in generation order. A nil brief is
// treated as empty.
func Sections(b *brief.Brief) []Section {
	if b == nil {
		b = &brief.Brief{}
	}

	out := make([]Section, 0, len(sectionDefs))
	for _, def := range sectionDefs {
		text, ok := def.render(b)
		if !ok {
			continue
		}
		out = append(out, Section{Name: def.name, Title: def.title, Body: text})
	}
	return out
}

// Generate returns the full prompt for b. An enabled custom prompt replaces
// the generated text verbatim.
func Generate(b *brief.Brief) string {
	if b != nil {
		if custom, ok := b.CustomOverride(); ok {
			return custom
		}
	}

	sections := Sections(b)
	bodies := make([]string, len(sections))
	for i, s := range sections {
		bodies[i] = s.Body
	}
	return textutil.JoinSections(bodies...)
}

const systemPrompt = `あなたは経験豊富で個性的なWebライターです。以下の詳細な設定に基づいて、読者の心に響く高品質な記事を作成してください。

重要な指針:
1. 設定されたキャラクターの個性を文章の隅々まで反映させる
2. 読者のペルソナを具体的にイメージし、その人に直接語りかける
3. 一次情報（体験談）を効果的に活用して説得力を高める
4. テンプレート的な表現を避け、独自性のある文章を作成
5. 指定された文字数を厳守する
6. キーワードと目的を最優先で記事に組み込む（必須）

品質基準:
- 具体的で実用的な内容
- 読者が最後まで飽きない構成
- 人間味と温かみのある文体
- 行動を起こしたくなる説得力
- キーワードの自然な活用
- 記事目的の確実な達成`

// SystemPrompt returns the fixed system instruction paired with every prompt.
func SystemPrompt() string {
	return systemPrompt
}

// Request is the provider-agnostic payload for the article writer.
type Request struct {
	System      string  `json:"system"`
	User        string  `json:"user"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	TopP        float64 `json:"top_p"`
}

// APIRequest wraps the generated prompt with the system instruction and the
// default sampling parameters.
func APIRequest(b *brief.Brief) Request {
	return NewRequest(Generate(b))
}

// NewRequest wraps an arbitrary user prompt, such as an optimized one, the
// same way APIRequest does.
func NewRequest(user string) Request {
	return Request{
		System:      systemPrompt,
		User:        user,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		TopP:        DefaultTopP,
	}
}
