package config

import "strings"

// DefaultTrustedSources contains template sources that are trusted by default.
var DefaultTrustedSources = []string{
	"HartBrook/moanote-templates",
}

// IsTrusted checks if a repository is in the trusted list.
// The trusted list can contain:
//   - Full repo references: "owner/repo"
//   - Org-level trust: "owner" (trusts all repos from that owner)
func IsTrusted(repo string, trusted []string) bool {
	if len(trusted) == 0 {
		return false
	}

	repoOwner, repoName, err := ParseRepo(repo)
	if err != nil {
		return false
	}

	for _, t := range trusted {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}

		if !strings.Contains(t, "/") {
			if strings.EqualFold(repoOwner, t) {
				return true
			}
			continue
		}

		tOwner, tRepo, err := ParseRepo(t)
		if err == nil && strings.EqualFold(tOwner, repoOwner) && strings.EqualFold(tRepo, repoName) {
			return true
		}
	}

	return false
}

// TrustWarning returns a warning message for untrusted template sources.
func TrustWarning(repo string) string {
	return `You're pulling templates from an untrusted source: ` + repo + `

    Templates are merged into your briefs and end up in generated prompts.
    Review the source before proceeding: https://github.com/` + repo + `

    To trust this source, add it to your config:
      trusted:
        - ` + repo + `
`
}
