// Package textutil holds the small rune-aware string helpers shared by the
// prompt generator and optimizer.
package textutil

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SectionSeparator joins prompt sections.
const SectionSeparator = "\n\n"

// CharsPerMinute is the Japanese reading speed used for reading-time estimates.
const CharsPerMinute = 400

// CharCount returns the number of characters in s. Japanese text is counted in
// runes, never bytes.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// EstimateTokens estimates the token count for content using a runes/4
// approximation.
func EstimateTokens(content string) int {
	if len(content) == 0 {
		return 0
	}
	return utf8.RuneCountInString(content) / 4
}

// ReadingMinutes returns ceil(chars / CharsPerMinute).
func ReadingMinutes(chars int) int {
	if chars <= 0 {
		return 0
	}
	return (chars + CharsPerMinute - 1) / CharsPerMinute
}

// Portion returns floor(total * percent / 100).
func Portion(total, percent int) int {
	return total * percent / 100
}

// JoinSections drops empty sections and joins the rest with a blank line.
func JoinSections(sections ...string) string {
	kept := make([]string, 0, len(sections))
	for _, s := range sections {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, SectionSeparator)
}

// Bullets renders items as "- item" lines, each terminated by a newline.
func Bullets(items ...string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return b.String()
}

// Numbered renders items as "1. item" lines, each terminated by a newline.
func Numbered(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	return b.String()
}

// JoinJa joins items with the Japanese enumeration comma.
func JoinJa(items []string) string {
	return strings.Join(items, "、")
}

// Truncate cuts s to at most n runes, appending suffix when it was cut.
func Truncate(s string, n int, suffix string) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + suffix
}

// ContainsAny reports whether s contains any of the substrings.
func ContainsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
