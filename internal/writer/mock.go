package writer

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/HartBrook/moanote/internal/prompt"
)

// Mock is an offline provider. It echoes a canned article built from the
// request so the whole pipeline can run without an API key.
type Mock struct {
	model string

	// Response, when set, is returned verbatim instead of the canned article.
	Response string
	// Err, when set, is returned from every call.
	Err error

	// Requests records every request received.
	Requests []prompt.Request
}

// NewMock creates a mock provider.
func NewMock(model string) *Mock {
	return &Mock{model: model}
}

// Name implements Provider.
func (m *Mock) Name() string { return "mock" }

// Model implements Provider.
func (m *Mock) Model() string { return m.model }

// Complete implements Provider.
func (m *Mock) Complete(_ context.Context, req prompt.Request) (string, error) {
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return "", m.Err
	}
	if m.Response != "" {
		return m.Response, nil
	}
	if req.MaxTokens <= pingMaxTokens {
		return "テスト", nil
	}
	return cannedArticle(req.User), nil
}

// numberedItem matches "1. React" style list lines.
var numberedItem = regexp.MustCompile(`^\d+\.\s+(.+)$`)

// cannedArticle builds a long-enough placeholder article that repeats the
// keyword list of the prompt so keyword checks pass.
func cannedArticle(user string) string {
	var keywords []string
	inKeywords := false
	for _, line := range strings.Split(user, "\n") {
		if strings.HasSuffix(line, prompt.MarkerKeywords) {
			inKeywords = true
			continue
		}
		if !inKeywords {
			continue
		}
		m := numberedItem.FindStringSubmatch(line)
		if m == nil {
			break
		}
		keywords = append(keywords, m[1])
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", orDefault(strings.Join(keywords, " "), "サンプル記事"))
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&sb, "## 見出し%d\n\n", i)
		sb.WriteString(strings.Repeat("これはモックプロバイダーが返すダミーの本文です。実際の記事ではありません。", 3))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
