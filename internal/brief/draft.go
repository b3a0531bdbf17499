package brief

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/HartBrook/moanote/internal/textutil"
)

const (
	draftKeywordLimit  = 5
	draftSentenceLimit = 3
	draftPurposeLimit  = 100
)

var (
	sentenceSplit = regexp.MustCompile(`[.。]`)
	digitPattern  = regexp.MustCompile(`\d`)

	// Sentences mentioning dates, durations or counts read as facts.
	factMarkers = []string{"年", "月", "日", "時間", "回"}

	// Sentences mentioning these read as feelings.
	feelingMarkers = []string{"思い", "感じ", "嬉しい", "悲しい", "楽しい", "不安"}
)

// FromDraft seeds a brief from a free-text draft: keywords from the longest
// leading words, the purpose from the first line, and facts/feelings from
// sentences that look like first-hand experience.
func FromDraft(text string, wordCount int) Brief {
	return Brief{
		Keywords: draftKeywords(text),
		Purpose:  draftPurpose(text),
		PrimaryInfo: PrimaryInfo{
			Facts:    draftSentences(text, isFactSentence),
			Feelings: draftSentences(text, isFeelingSentence),
		},
		WordCount: wordCount,
	}
}

func draftKeywords(text string) []string {
	var keywords []string
	for _, word := range strings.Fields(text) {
		word = strings.Trim(word, "、。,.!?！？「」()（）")
		if utf8.RuneCountInString(word) <= 3 {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == draftKeywordLimit {
			break
		}
	}
	return keywords
}

func draftPurpose(text string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return textutil.Truncate(strings.TrimSpace(first), draftPurposeLimit, "...")
}

func draftSentences(text string, keep func(string) bool) string {
	var picked []string
	for _, s := range sentenceSplit.Split(text, -1) {
		s = strings.TrimSpace(s)
		if s == "" || !keep(s) {
			continue
		}
		picked = append(picked, s)
		if len(picked) == draftSentenceLimit {
			break
		}
	}
	return strings.Join(picked, "。")
}

func isFactSentence(s string) bool {
	return textutil.ContainsAny(s, factMarkers...) || digitPattern.MatchString(s)
}

func isFeelingSentence(s string) bool {
	return textutil.ContainsAny(s, feelingMarkers...)
}
