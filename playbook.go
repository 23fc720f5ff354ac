package docindex

import "strings"

// Playbook is the site configuration an index is built for.
type Playbook struct {
	Site Site `yaml:"site"`
}

// Site holds the site-wide settings of a playbook.
type Site struct {
	// URL is the optional base URL of the published site. When empty,
	// resolved page URLs stay relative.
	URL   string `yaml:"url"`
	Title string `yaml:"title"`
}

// ResolveURL computes the canonical URL of a page. When siteURL is empty the
// publish path is returned unchanged; otherwise both are joined with exactly
// one slash at the join point. It never fails.
func ResolveURL(siteURL, pubURL string) string {
	if siteURL == "" {
		return pubURL
	}
	if pubURL == "" {
		return siteURL
	}
	return strings.TrimRight(siteURL, "/") + "/" + strings.TrimLeft(pubURL, "/")
}
