package brief

import (
	"strings"

	"golang.org/x/text/width"
)

// Normalize returns a cleaned copy of b. Keywords are trimmed, full-width ASCII
// is folded to half-width ("ＲＥＡＣＴ" becomes "REACT"; case is kept) and empty
// keywords are dropped. Duplicates are kept in order. Free-text fields are
// trimmed. The input is never modified.
//
// A nil brief normalizes to the empty brief.
func Normalize(b *Brief) Brief {
	if b == nil {
		return Brief{}
	}

	out := *b
	out.Keywords = normalizeList(b.Keywords)
	out.Purpose = strings.TrimSpace(b.Purpose)

	out.ReaderPersona.Age = fold(b.ReaderPersona.Age)
	out.ReaderPersona.Occupation = strings.TrimSpace(b.ReaderPersona.Occupation)
	out.ReaderPersona.ReadingStyle = strings.TrimSpace(b.ReaderPersona.ReadingStyle)
	out.ReaderPersona.Interests = normalizeList(b.ReaderPersona.Interests)
	out.ReaderPersona.Challenges = normalizeList(b.ReaderPersona.Challenges)

	out.WriterCharacter.Age = fold(b.WriterCharacter.Age)
	out.WriterCharacter.Occupation = strings.TrimSpace(b.WriterCharacter.Occupation)
	out.WriterCharacter.Personalities = normalizeList(b.WriterCharacter.Personalities)
	out.WriterCharacter.Tone = strings.TrimSpace(b.WriterCharacter.Tone)
	out.WriterCharacter.Motivations = normalizeList(b.WriterCharacter.Motivations)

	out.WritingStyle.Template = strings.ToLower(fold(b.WritingStyle.Template))
	out.WritingStyle.EmojiFrequency = strings.ToLower(fold(b.WritingStyle.EmojiFrequency))
	out.Goal = Goal(strings.ToLower(fold(string(b.Goal))))

	out.PrimaryInfo.Facts = strings.TrimSpace(b.PrimaryInfo.Facts)
	out.PrimaryInfo.Feelings = strings.TrimSpace(b.PrimaryInfo.Feelings)

	return out
}

// fold maps full-width ASCII to half-width and half-width katakana to
// full-width, then trims surrounding space.
func fold(s string) string {
	return strings.TrimSpace(width.Fold.String(s))
}

func normalizeList(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if v := fold(item); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
