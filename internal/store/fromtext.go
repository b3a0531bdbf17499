package store

import (
	"strings"

	"github.com/HartBrook/moanote/internal/brief"
)

// FromPromptText derives persona data from "key: value" lines such as
// "年齢: 20代後半". Unknown keys are ignored. Only reader and writer kinds
// produce data.
func FromPromptText(kind Kind, text string) brief.Brief {
	var b brief.Brief
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := splitLine(line)
		if !ok {
			continue
		}

		switch kind {
		case KindReader:
			r := &b.ReaderPersona
			switch key {
			case "年齢":
				r.Age = value
			case "職業":
				r.Occupation = value
			case "読み方":
				r.ReadingStyle = value
			case "興味", "関心":
				r.Interests = splitList(value)
			case "課題", "悩み":
				r.Challenges = splitList(value)
			}
		case KindWriter:
			w := &b.WriterCharacter
			switch key {
			case "年齢":
				w.Age = value
			case "職業":
				w.Occupation = value
			case "性格":
				w.Personalities = splitList(value)
			case "口調":
				w.Tone = value
			case "動機":
				w.Motivations = splitList(value)
			}
		}
	}
	return b
}

func splitLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
	idx := strings.IndexAny(line, ":：")
	if idx <= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:idx])
	rest := line[idx:]
	if strings.HasPrefix(rest, "：") {
		rest = strings.TrimPrefix(rest, "：")
	} else {
		rest = strings.TrimPrefix(rest, ":")
	}
	value = strings.TrimSpace(rest)
	return key, value, value != ""
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.FieldsFunc(value, func(r rune) bool {
		return r == '、' || r == ',' || r == '，'
	}) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
