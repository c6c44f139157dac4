package semantic

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"github.com/morozRed/appledict2html/internal/dom"
	"github.com/morozRed/appledict2html/internal/match"
)

// wrapBracketSpans wraps the rendered content of language-group nodes
// in literal square brackets. Nodes under an ancestor carrying a skip
// class (verb groups by default) are left untouched.
func wrapBracketSpans(root *html.Node, opts Options) {
	targets := dom.FindAll(root, func(n *html.Node) bool {
		return match.HasAny(dom.Classes(n), opts.BracketClasses)
	})

	for _, n := range targets {
		if dom.HasAncestorClass(n, opts.BracketSkipClasses...) {
			continue
		}
		wrapInBrackets(n, opts.BracketTrailingSpace)
	}
}

func wrapInBrackets(n *html.Node, trailingSpace bool) {
	contents := dom.ChildNodes(n)

	// Drop whitespace-only edge children on both sides.
	for len(contents) > 0 && isWhitespaceNode(contents[0]) {
		contents = contents[1:]
	}
	for len(contents) > 0 && isWhitespaceNode(contents[len(contents)-1]) {
		contents = contents[:len(contents)-1]
	}

	// Trim the outermost text edges so the brackets sit flush against
	// the content.
	if len(contents) > 0 {
		trimEdge(contents[0], true)
		trimEdge(contents[len(contents)-1], false)
	}

	wrapper := dom.NewElement("span")
	wrapper.AppendChild(dom.NewText("["))
	for _, c := range contents {
		dom.Append(wrapper, c)
	}
	closing := "]"
	if trailingSpace {
		closing = "] "
	}
	wrapper.AppendChild(dom.NewText(closing))

	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	n.AppendChild(wrapper)
}

// isWhitespaceNode reports whether a node renders as pure whitespace:
// a whitespace text leaf, or an element whose sole string is
// whitespace.
func isWhitespaceNode(n *html.Node) bool {
	if n.Type == html.TextNode {
		return strings.TrimSpace(n.Data) == ""
	}
	if n.Type != html.ElementNode {
		return true
	}
	if text, ok := dom.SoleText(n); ok {
		return strings.TrimSpace(text.Data) == ""
	}
	return false
}

func trimEdge(n *html.Node, leading bool) {
	text := n
	if n.Type != html.TextNode {
		sole, ok := dom.SoleText(n)
		if !ok {
			return
		}
		text = sole
	}
	if leading {
		text.Data = strings.TrimLeftFunc(text.Data, unicode.IsSpace)
	} else {
		text.Data = strings.TrimRightFunc(text.Data, unicode.IsSpace)
	}
}
