package goquery

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// headingRank returns 1 to 6 for h1 to h6 elements and 0 otherwise.
func headingRank(n *html.Node) int {
	switch n.DataAtom {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	return 0
}

// isTextBlock reports whether n is a paragraph-level block whose whole text
// is one piece. List items and cells count only when they do not wrap
// paragraphs of their own, as Asciidoctor output usually does.
func isTextBlock(n *html.Node) bool {
	switch n.DataAtom {
	case atom.P, atom.Pre:
		return true
	case atom.Li, atom.Td, atom.Th, atom.Dt, atom.Dd:
		return !containsBlock(n)
	}
	return false
}

// containsBlock reports whether n has a descendant paragraph or listing.
func containsBlock(n *html.Node) bool {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		if child.DataAtom == atom.P || child.DataAtom == atom.Pre || containsBlock(child) {
			return true
		}
	}
	return false
}

// isIgnored reports whether n never carries readable content.
func isIgnored(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Template, atom.Noscript:
		return true
	}
	return false
}

// isInline reports whether n is phrasing content that continues the
// surrounding text without a break.
func isInline(n *html.Node) bool {
	switch n.DataAtom {
	case atom.A, atom.Abbr, atom.B, atom.Bdi, atom.Bdo, atom.Cite, atom.Code,
		atom.Data, atom.Del, atom.Dfn, atom.Em, atom.I, atom.Ins, atom.Kbd,
		atom.Mark, atom.Q, atom.S, atom.Samp, atom.Small, atom.Span,
		atom.Strong, atom.Sub, atom.Sup, atom.Time, atom.U, atom.Var:
		return true
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}
