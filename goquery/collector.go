package goquery

import (
	"strings"

	"github.com/fwojciec/docindex"
	"golang.org/x/net/html"
)

// collector accumulates the indexable content of an article while walking it.
type collector struct {
	extractor *Extractor
	anchors   *docindex.Anchors

	title    string
	hasTitle bool
	pieces   []string
	sections []docindex.Section
}

// walk visits the children of n depth-first. Navigation subtrees are
// skipped; headings and text blocks are collected and not descended into.
// Text sitting directly in a container, such as an Asciidoctor block title,
// forms one piece per run of inline content.
func (c *collector) walk(n *html.Node) {
	var run strings.Builder
	flush := func() {
		c.addPiece(strings.Join(strings.Fields(run.String()), " "))
		run.Reset()
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch {
		case child.Type == html.TextNode:
			run.WriteString(child.Data)
			continue
		case child.Type != html.ElementNode || c.extractor.isNavigation(child) || isIgnored(child):
			continue
		case isInline(child):
			c.appendText(&run, child)
			continue
		}

		flush()

		if rank := headingRank(child); rank > 0 {
			c.heading(child, rank)
			continue
		}

		if isTextBlock(child) {
			c.addPiece(c.text(child))
			continue
		}

		c.walk(child)
	}
	flush()
}

// heading records a heading. The first rank 1 heading is the page title,
// later rank 1 headings are running text, lower ranks become sections.
func (c *collector) heading(n *html.Node, rank int) {
	text := c.text(n)

	if rank == 1 {
		if !c.hasTitle {
			c.title = text
			c.hasTitle = true
			return
		}
		c.addPiece(text)
		return
	}

	if text == "" {
		return
	}

	anchor := attr(n, "id")
	if anchor == "" {
		anchor = c.anchors.Next(text)
	} else {
		c.anchors.Reserve(anchor)
	}

	c.sections = append(c.sections, docindex.Section{
		Level:  rank,
		Title:  text,
		Anchor: anchor,
	})
}

func (c *collector) addPiece(text string) {
	if text != "" {
		c.pieces = append(c.pieces, text)
	}
}

// text returns the whitespace-collapsed text under n, leaving out
// navigation regions and non-content elements.
func (c *collector) text(n *html.Node) string {
	var b strings.Builder
	c.appendText(&b, n)
	return strings.Join(strings.Fields(b.String()), " ")
}

func (c *collector) appendText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode:
		if c.extractor.isNavigation(n) || isIgnored(n) {
			return
		}
		inline := isInline(n)
		// Block boundaries must not glue words together.
		if !inline {
			b.WriteByte(' ')
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			c.appendText(b, child)
		}
		if !inline {
			b.WriteByte(' ')
		}
	}
}
