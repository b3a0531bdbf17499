package brief

// Defaults returns a fully populated sample brief. It is what a user gets from
// `moanote init` and what WithDefaults falls back to per top-level field.
func Defaults() Brief {
	return Brief{
		Keywords: []string{PlaceholderKeyword},
		Purpose:  "読者に価値ある情報を提供する",
		ReaderPersona: ReaderPersona{
			Age:          "30代",
			Occupation:   "会社員",
			ReadingStyle: "じっくり読む",
			Interests:    []string{"自己成長"},
			Challenges:   []string{"時間がない"},
		},
		WriterCharacter: WriterCharacter{
			Age:           "30",
			Occupation:    "ライター",
			Personalities: []string{"親しみやすい"},
			Tone:          DefaultTone,
			Motivations:   []string{"知識を共有したい"},
		},
		WritingStyle: WritingStyle{
			Conversational: true,
			Template:       DefaultTemplate,
			EmojiFrequency: DefaultEmoji,
		},
		WordCount: DefaultWordCount,
	}
}

// WithDefaults fills every empty top-level field of b from Defaults. Nested
// structs are replaced wholesale only when they are entirely empty, so a
// partially filled persona is kept as the user wrote it.
func WithDefaults(b *Brief) Brief {
	d := Defaults()
	if b == nil {
		return d
	}

	out := *b
	if len(out.Keywords) == 0 {
		out.Keywords = d.Keywords
	}
	if out.Purpose == "" {
		out.Purpose = d.Purpose
	}
	if out.ReaderPersona.IsZero() {
		out.ReaderPersona = d.ReaderPersona
	}
	if out.WriterCharacter.IsZero() {
		out.WriterCharacter = d.WriterCharacter
	}
	if out.WritingStyle == (WritingStyle{}) {
		out.WritingStyle = d.WritingStyle
	}
	if out.WordCount == 0 {
		out.WordCount = d.WordCount
	}
	return out
}
