package optimize

import (
	"fmt"
	"strings"

	"github.com/HartBrook/moanote/internal/brief"
)

// Deconstruct derives an Analysis from the brief alone. The generated prompt
// is never parsed.
func Deconstruct(b *brief.Brief) *Analysis {
	return &Analysis{
		CoreIntent:         coreIntent(b),
		KeyEntities:        keyEntities(b),
		Context:            writingContext(b),
		OutputRequirements: outputRequirements(b),
		Constraints:        constraints(b),
		ProvidedElements:   providedElements(b),
		MissingElements:    missingElements(b),
	}
}

func coreIntent(b *brief.Brief) string {
	switch {
	case b.HasPurpose():
		return "記事作成: " + b.Purpose
	case b.Goal != "":
		return goalIntent(b.Goal)
	case b.HasKeywords():
		return fmt.Sprintf("「%s」に関する価値ある情報提供", b.MainKeyword())
	default:
		return "読者に響く魅力的なコンテンツ作成"
	}
}

// keyEntities always carries one audience and one writer entity after the
// keywords, even when the personas are empty.
func keyEntities(b *brief.Brief) []Entity {
	entities := make([]Entity, 0, len(b.Keywords)+2)
	for _, kw := range b.Keywords {
		entities = append(entities, Entity{Type: EntityKeyword, Value: kw})
	}

	r := b.ReaderPersona
	entities = append(entities, Entity{Type: EntityTargetAudience, Value: r.Age + r.Occupation})

	w := b.WriterCharacter
	entities = append(entities, Entity{Type: EntityWriterPersona, Value: fmt.Sprintf("%s (%s)", w.Occupation, w.Tone)})
	return entities
}

func writingContext(b *brief.Brief) Context {
	style := b.WritingStyle.Template
	if style == "" {
		style = "PREP"
	}
	return Context{
		Platform:     "note/ブログ",
		ContentType:  "記事",
		WordCount:    b.EffectiveWordCount(),
		WritingStyle: style,
		Tone:         b.Tone(),
		Audience:     b.ReaderPersona,
		PrimaryInfo:  b.PrimaryInfo,
	}
}

func outputRequirements(b *brief.Brief) OutputRequirements {
	structure := b.WritingStyle.Template
	if structure == "" {
		structure = "PREP法"
	}
	cta := string(b.Goal)
	if cta == "" {
		cta = "engagement"
	}
	return OutputRequirements{
		Format:             "記事形式",
		Length:             fmt.Sprintf("%d文字", b.EffectiveWordCount()),
		Structure:          structure,
		Tone:               b.Tone(),
		KeywordIntegration: len(b.Keywords),
		CallToAction:       cta,
	}
}

func constraints(b *brief.Brief) []string {
	var out []string
	if b.WordCount > 0 {
		out = append(out, fmt.Sprintf("文字数: %d文字以内", b.WordCount))
	}
	if b.HasKeywords() {
		out = append(out, "必須キーワード: "+strings.Join(b.Keywords, ", "))
	}
	if b.WritingStyle.EmojiFrequency != "" {
		out = append(out, "絵文字使用: "+b.WritingStyle.EmojiFrequency)
	}
	return out
}

func providedElements(b *brief.Brief) []string {
	var out []string
	if b.HasKeywords() {
		out = append(out, ElemKeywords)
	}
	if b.ReaderPersona.Age != "" {
		out = append(out, ElemReader)
	}
	if b.WriterCharacter.Occupation != "" {
		out = append(out, ElemWriter)
	}
	if hasPrimaryInfo(b.PrimaryInfo) {
		out = append(out, ElemPrimaryInfo)
	}
	if b.HasPurpose() {
		out = append(out, ElemPurpose)
	}
	if b.WritingStyle.Template != "" {
		out = append(out, ElemTemplate)
	}
	return out
}

func missingElements(b *brief.Brief) []string {
	var out []string
	if !b.HasKeywords() {
		out = append(out, MissingKeywords)
	}
	if !b.HasPurpose() {
		out = append(out, MissingPurpose)
	}
	if len(b.ReaderPersona.Challenges) == 0 {
		out = append(out, MissingChallenges)
	}
	if !hasPrimaryInfo(b.PrimaryInfo) {
		out = append(out, MissingPrimaryInfo)
	}
	if !b.PsychologyEffects.Any() {
		out = append(out, MissingPsychology)
	}
	return out
}

func hasPrimaryInfo(p brief.PrimaryInfo) bool {
	return p.Facts != "" || p.Feelings != ""
}
