package store

import (
	"fmt"
	"slices"
	"strings"

	"github.com/HartBrook/moanote/internal/brief"
)

// Apply fills b with the template's data. Reader and writer templates
// replace the whole persona; other kinds merge field by field. A reader or
// writer template without data falls back to its prompt text.
func Apply(t *Template, b brief.Brief) brief.Brief {
	switch t.Type {
	case KindReader:
		r := t.Data.ReaderPersona
		if r.IsZero() {
			r = FromPromptText(KindReader, t.PromptText).ReaderPersona
		}
		if !r.IsZero() {
			b.ReaderPersona = cloneReader(r)
		}
	case KindWriter:
		w := t.Data.WriterCharacter
		if w.IsZero() {
			w = FromPromptText(KindWriter, t.PromptText).WriterCharacter
		}
		if !w.IsZero() {
			b.WriterCharacter = cloneWriter(w)
		}
	default:
		b = Merge(b, t.Data)
	}
	return b
}

// Merge overlays the set fields of src onto dst.
func Merge(dst, src brief.Brief) brief.Brief {
	if len(src.Keywords) > 0 {
		dst.Keywords = slices.Clone(src.Keywords)
	}
	if src.Purpose != "" {
		dst.Purpose = src.Purpose
	}
	if !src.ReaderPersona.IsZero() {
		dst.ReaderPersona = cloneReader(src.ReaderPersona)
	}
	if !src.WriterCharacter.IsZero() {
		dst.WriterCharacter = cloneWriter(src.WriterCharacter)
	}

	if src.WritingStyle.Conversational {
		dst.WritingStyle.Conversational = true
	}
	if src.WritingStyle.Template != "" {
		dst.WritingStyle.Template = src.WritingStyle.Template
	}
	if src.WritingStyle.EmojiFrequency != "" {
		dst.WritingStyle.EmojiFrequency = src.WritingStyle.EmojiFrequency
	}

	if src.PrimaryInfo.Facts != "" {
		dst.PrimaryInfo.Facts = src.PrimaryInfo.Facts
	}
	if src.PrimaryInfo.Feelings != "" {
		dst.PrimaryInfo.Feelings = src.PrimaryInfo.Feelings
	}

	dst.PsychologyEffects.Empathy = dst.PsychologyEffects.Empathy || src.PsychologyEffects.Empathy
	dst.PsychologyEffects.Urgency = dst.PsychologyEffects.Urgency || src.PsychologyEffects.Urgency
	dst.PsychologyEffects.Authority = dst.PsychologyEffects.Authority || src.PsychologyEffects.Authority
	dst.PsychologyEffects.Scarcity = dst.PsychologyEffects.Scarcity || src.PsychologyEffects.Scarcity

	if src.ReferenceStyle != "" {
		dst.ReferenceStyle = src.ReferenceStyle
	}
	if src.Goal != "" {
		dst.Goal = src.Goal
	}
	if src.WordCount > 0 {
		dst.WordCount = src.WordCount
	}
	if src.CustomPrompt != "" {
		dst.CustomPrompt = src.CustomPrompt
	}
	if src.UseCustomPrompt {
		dst.UseCustomPrompt = true
	}
	return dst
}

// Combine applies a reader, a writer and an optional settings template to b
// and installs their combined prompt text as the brief's custom prompt.
func Combine(reader, writer, settings *Template, b brief.Brief) (brief.Brief, error) {
	if reader == nil || reader.Type != KindReader {
		return b, fmt.Errorf("a reader template is required")
	}
	if writer == nil || writer.Type != KindWriter {
		return b, fmt.Errorf("a writer template is required")
	}
	if settings != nil && settings.Type != KindSettings {
		return b, fmt.Errorf("template %q is not a settings template", settings.Name)
	}

	b = Apply(reader, b)
	b = Apply(writer, b)
	if settings != nil {
		b = Apply(settings, b)
	}

	b.CustomPrompt = CombinedPrompt(reader, writer, settings, b.Keywords, b.Purpose)
	b.UseCustomPrompt = true
	return b, nil
}

// CombinedPrompt renders the prompt text of a template combination.
func CombinedPrompt(reader, writer, settings *Template, keywords []string, purpose string) string {
	var sb strings.Builder
	sb.WriteString("# 記事作成プロンプト\n\n")
	fmt.Fprintf(&sb, "## ターゲット読者設定\n%s\n\n", strings.TrimSpace(reader.PromptText))
	fmt.Fprintf(&sb, "## 書き手キャラクター設定\n%s\n\n", strings.TrimSpace(writer.PromptText))
	if settings != nil {
		fmt.Fprintf(&sb, "## 追加設定\n%s\n\n", strings.TrimSpace(settings.PromptText))
	}

	var kws []string
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			kws = append(kws, kw)
		}
	}
	if len(kws) > 0 {
		fmt.Fprintf(&sb, "## キーワード\n%s\n\n", strings.Join(kws, "、"))
	}
	if p := strings.TrimSpace(purpose); p != "" {
		fmt.Fprintf(&sb, "## 記事の目的\n%s\n\n", p)
	}

	sb.WriteString("## 記事作成指示\n")
	sb.WriteString("上記の設定に基づいて、以下の要件で記事を作成してください：\n")
	sb.WriteString("- 読者の心に響く個性的な文章\n")
	sb.WriteString("- 設定されたキャラクターの特徴を反映\n")
	sb.WriteString("- 具体的で実用的な内容\n")
	sb.WriteString("- 読みやすい構成と文体\n\n")
	return sb.String()
}

func cloneReader(r brief.ReaderPersona) brief.ReaderPersona {
	r.Interests = slices.Clone(r.Interests)
	r.Challenges = slices.Clone(r.Challenges)
	return r
}

func cloneWriter(w brief.WriterCharacter) brief.WriterCharacter {
	w.Personalities = slices.Clone(w.Personalities)
	w.Motivations = slices.Clone(w.Motivations)
	return w
}
