package config

import (
	"fmt"
	"regexp"
	"strings"
)

// repoPattern matches owner/repo format.
var repoPattern = regexp.MustCompile(`^([a-zA-Z0-9_.-]+)/([a-zA-Z0-9_.-]+)$`)

// ParseRepo extracts owner and repo name from a repository string.
// Accepts formats:
//   - "https://github.com/owner/repo"
//   - "https://github.com/owner/repo.git"
//   - "https://github.com/owner/repo/tree/main"
//   - "github.com/owner/repo"
//   - "owner/repo"
func ParseRepo(repoStr string) (owner, repo string, err error) {
	repoStr = strings.TrimSpace(repoStr)
	if repoStr == "" {
		return "", "", fmt.Errorf("repository string is empty")
	}

	repoStr = strings.TrimPrefix(repoStr, "https://")
	repoStr = strings.TrimPrefix(repoStr, "http://")
	repoStr = strings.TrimPrefix(repoStr, "github.com/")
	repoStr = strings.TrimSuffix(repoStr, "/")
	repoStr = strings.TrimSuffix(repoStr, ".git")

	// owner/repo/tree/main and similar browser URLs keep only the first two parts.
	parts := strings.Split(repoStr, "/")
	if len(parts) >= 2 {
		repoStr = parts[0] + "/" + parts[1]
	}

	matches := repoPattern.FindStringSubmatch(repoStr)
	if matches == nil {
		return "", "", fmt.Errorf("invalid repository format: %s (expected owner/repo)", repoStr)
	}

	return matches[1], matches[2], nil
}
