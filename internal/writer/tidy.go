package writer

import (
	"regexp"
	"strings"
)

// TidyStats tracks what changes were made while tidying an article.
type TidyStats struct {
	BlankLinesRemoved int
	PreambleStripped  bool
	FenceStripped     bool
}

// Changed reports whether tidying modified anything worth mentioning.
func (s TidyStats) Changed() bool {
	return s.BlankLinesRemoved > 0 || s.PreambleStripped || s.FenceStripped
}

var (
	blankRun = regexp.MustCompile(`\n{3,}`)

	// preamblePattern matches chatty lead-ins such as "以下が記事です。" or
	// "はい、承知しました。" that models put before the article body.
	preamblePattern = regexp.MustCompile(`^(以下(が|は|に).{0,40}(です|ます|します)[。：:！]?|はい、.{0,40}[。！]|承知(しました|いたしました)[。！]?|Here is .{0,80}:?)$`)

	fenceOpen = regexp.MustCompile("^```(markdown|md)?$")
)

// Tidy performs deterministic cleanup on a generated article.
// Line endings are normalized and trailing whitespace trimmed; a chatty
// preamble line, a wrapping Markdown fence and runs of blank lines are removed.
func Tidy(article string) (string, TidyStats) {
	var stats TidyStats

	article = strings.ReplaceAll(article, "\r\n", "\n")
	article = strings.TrimSpace(article)

	article, stats.PreambleStripped = stripPreamble(article)
	article, stats.FenceStripped = stripFence(article)

	article = trimTrailingWhitespace(article)

	blanksBefore := countBlankLines(article)
	article = blankRun.ReplaceAllString(article, "\n\n")
	stats.BlankLinesRemoved = blanksBefore - countBlankLines(article)

	if article == "" {
		return "", stats
	}
	return strings.TrimRight(article, "\n") + "\n", stats
}

func stripPreamble(article string) (string, bool) {
	first, rest, found := strings.Cut(article, "\n")
	if !found || !preamblePattern.MatchString(strings.TrimSpace(first)) {
		return article, false
	}
	return strings.TrimLeft(rest, "\n"), true
}

func stripFence(article string) (string, bool) {
	lines := strings.Split(article, "\n")
	if len(lines) < 2 || !fenceOpen.MatchString(strings.TrimSpace(lines[0])) {
		return article, false
	}
	if strings.TrimSpace(lines[len(lines)-1]) != "```" {
		return article, false
	}
	return strings.Join(lines[1:len(lines)-1], "\n"), true
}

// countBlankLines counts the number of blank lines in content.
func countBlankLines(content string) int {
	count := 0
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			count++
		}
	}
	return count
}

func trimTrailingWhitespace(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
