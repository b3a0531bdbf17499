package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterByTag(t *testing.T) {
	results := []SearchResult{
		{Owner: "a", Repo: "seo", Topics: []string{"moanote-templates", "SEO"}},
		{Owner: "b", Repo: "essay", Topics: []string{"moanote-templates", "essay"}},
		{Owner: "c", Repo: "none"},
	}

	assert.Len(t, FilterByTag(results, ""), 3)

	filtered := FilterByTag(results, "seo")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "a/seo", filtered[0].FullName())

	assert.Empty(t, FilterByTag(results, "missing"))
}

func TestSortByStars(t *testing.T) {
	results := []SearchResult{
		{Repo: "low", Stars: 1},
		{Repo: "high", Stars: 50},
		{Repo: "mid", Stars: 10},
	}

	SortByStars(results)

	assert.Equal(t, "high", results[0].Repo)
	assert.Equal(t, "mid", results[1].Repo)
	assert.Equal(t, "low", results[2].Repo)
}
