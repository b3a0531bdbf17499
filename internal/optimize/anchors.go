package optimize

import (
	"sort"
	"strings"

	"github.com/HartBrook/moanote/internal/brief"
)

// AnchorCategory indicates how strictly an anchor is enforced.
type AnchorCategory int

const (
	// AnchorStrict anchors must appear (the main keyword).
	AnchorStrict AnchorCategory = iota
	// AnchorSoft anchors only warn when absent (sub-keywords).
	AnchorSoft
)

// Anchors are brief terms a prompt or article has to carry.
type Anchors struct {
	Strict []string
	Soft   []string
}

// All returns every anchor, sorted.
func (a *Anchors) All() []string {
	all := make([]string, 0, len(a.Strict)+len(a.Soft))
	all = append(all, a.Strict...)
	all = append(all, a.Soft...)
	sort.Strings(all)
	return all
}

// ExtractAnchors collects the keyword anchors of b. Duplicates and blank
// keywords are skipped.
func ExtractAnchors(b *brief.Brief) *Anchors {
	result := &Anchors{}
	if b == nil {
		return result
	}

	seen := make(map[string]bool)
	for _, kw := range b.Keywords {
		kw = strings.TrimSpace(kw)
		key := strings.ToLower(kw)
		if kw == "" || seen[key] {
			continue
		}
		seen[key] = true
		if len(result.Strict) == 0 {
			result.Strict = append(result.Strict, kw)
		} else {
			result.Soft = append(result.Soft, kw)
		}
	}
	return result
}

// AnchorResult reports which anchors a text preserved.
type AnchorResult struct {
	Preserved     []string `json:"preserved,omitempty"`
	MissingStrict []string `json:"missingStrict,omitempty"`
	MissingSoft   []string `json:"missingSoft,omitempty"`
}

// HasStrictFailures returns true if the main keyword is missing.
func (r *AnchorResult) HasStrictFailures() bool {
	return len(r.MissingStrict) > 0
}

// AllMissing returns every missing anchor, sorted.
func (r *AnchorResult) AllMissing() []string {
	all := make([]string, 0, len(r.MissingStrict)+len(r.MissingSoft))
	all = append(all, r.MissingStrict...)
	all = append(all, r.MissingSoft...)
	sort.Strings(all)
	return all
}

// ValidateAnchors checks text for the keyword anchors of b. Matching is
// case-insensitive.
func ValidateAnchors(b *brief.Brief, text string) *AnchorResult {
	anchors := ExtractAnchors(b)
	lower := strings.ToLower(text)
	result := &AnchorResult{}

	for _, a := range anchors.Strict {
		if strings.Contains(lower, strings.ToLower(a)) {
			result.Preserved = append(result.Preserved, a)
		} else {
			result.MissingStrict = append(result.MissingStrict, a)
		}
	}
	for _, a := range anchors.Soft {
		if strings.Contains(lower, strings.ToLower(a)) {
			result.Preserved = append(result.Preserved, a)
		} else {
			result.MissingSoft = append(result.MissingSoft, a)
		}
	}
	return result
}
