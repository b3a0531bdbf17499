// Package cache stores generated articles on disk, keyed by prompt hash.
package cache

import (
	"fmt"
	"time"
)

// Metadata describes a cached article.
type Metadata struct {
	Key         string    `json:"key"`
	Provider    string    `json:"provider"`
	Model       string    `json:"model"`
	MainKeyword string    `json:"main_keyword,omitempty"`
	CharCount   int       `json:"char_count"`
	GeneratedAt time.Time `json:"generated_at"`
}

// IsStale returns true if the article is at or older than the TTL.
func (m *Metadata) IsStale(ttl time.Duration) bool {
	return time.Since(m.GeneratedAt) >= ttl
}

// Age returns human-readable age string.
func (m *Metadata) Age() string {
	duration := time.Since(m.GeneratedAt)

	switch {
	case duration < time.Minute:
		return "just now"
	case duration < time.Hour:
		mins := int(duration.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	case duration < 24*time.Hour:
		hours := int(duration.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	default:
		days := int(duration.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	}
}

// ShortKey returns the first 12 characters of the key for display.
func (m *Metadata) ShortKey() string {
	if len(m.Key) <= 12 {
		return m.Key
	}
	return m.Key[:12]
}
