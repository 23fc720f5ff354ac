package docindex

import (
	"strconv"
	"strings"
	"unicode"
)

// Section represents a sub-heading (rank 2 to 6) of a page's article.
// Sections are indexed as separate search entries so that headings can be
// found on their own.
type Section struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// Ref returns the search entry key of the section within the page at pageURL.
func (s Section) Ref(pageURL string) string {
	if s.Anchor == "" {
		return pageURL
	}
	return pageURL + "#" + s.Anchor
}

// Anchors hands out unique anchors for the headings of a single page.
// Duplicates get numeric suffixes: "setup", "setup-1", "setup-2".
type Anchors struct {
	counts map[string]int
}

// NewAnchors returns an empty anchor set.
func NewAnchors() *Anchors {
	return &Anchors{counts: make(map[string]int)}
}

// Reserve records an anchor taken from the markup (an id attribute) so that
// generated anchors never collide with it.
func (a *Anchors) Reserve(anchor string) {
	if _, ok := a.counts[anchor]; !ok {
		a.counts[anchor] = 1
	}
}

// Next generates a unique anchor for the given heading title.
// Titles without any letter or digit get the anchor "section".
func (a *Anchors) Next(title string) string {
	base := GenerateAnchor(title)
	if base == "" {
		base = "section"
	}
	if count, ok := a.counts[base]; ok {
		a.counts[base]++
		return base + "-" + strconv.Itoa(count)
	}
	a.counts[base] = 1
	return base
}

// GenerateAnchor creates a URL-safe anchor from a title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func GenerateAnchor(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' || r == '_' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
