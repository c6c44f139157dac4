// Package dom wraps golang.org/x/net/html with the fragment parsing,
// serialization, and node surgery the markup rewriter needs.
package dom

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Apple dictionary markup uses self-closing tags in the d: namespace,
// e.g. <d:index d:value="..."/>. The HTML parser ignores the trailing
// slash on unknown elements and would leave them open, swallowing
// everything that follows as children.
var selfClosingForeignTag = regexp.MustCompile(`<(d:[a-zA-Z]+)([^>]*?)\s*/>`)

func expandSelfClosing(markup string) string {
	return selfClosingForeignTag.ReplaceAllString(markup, "<$1$2></$1>")
}

// Parse parses dictionary markup as a body fragment and returns a
// detached container element holding the parsed nodes as children.
// The container itself is never serialized.
func Parse(markup string) (*html.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(expandSelfClosing(markup)), context)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}

	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

// Render serializes the children of a container produced by Parse,
// leaving the container element itself out of the output.
func Render(root *html.Node) (string, error) {
	var b strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", fmt.Errorf("failed to render markup: %w", err)
		}
	}
	return b.String(), nil
}

// NewElement returns a parentless element with the given tag name.
func NewElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// NewText returns a parentless text node.
func NewText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// Rename changes the tag name of an element in place. Attributes and
// children are untouched.
func Rename(n *html.Node, tag string) {
	n.Data = tag
	n.DataAtom = atom.Lookup([]byte(tag))
}

// IsElement reports whether n is a non-nil element node.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// IsElementNamed reports whether n is an element with the given tag.
func IsElementNamed(n *html.Node, tag string) bool {
	return IsElement(n) && n.Data == tag
}

// Detach removes n from its parent. Detaching a parentless node is a
// no-op, so moves can always detach first.
func Detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Append detaches child and appends it to parent. The html package
// panics on double-parenting, so every move goes through a detach.
func Append(parent, child *html.Node) {
	Detach(child)
	parent.AppendChild(child)
}

// InsertBefore detaches n and inserts it under parent, immediately
// before ref. A nil ref appends.
func InsertBefore(parent, n, ref *html.Node) {
	Detach(n)
	parent.InsertBefore(n, ref)
}

// InsertAfter detaches n and inserts it under parent, immediately
// after ref.
func InsertAfter(parent, n, ref *html.Node) {
	Detach(n)
	parent.InsertBefore(n, ref.NextSibling)
}

// ReplaceWith swaps old for repl in the tree. old is detached and can
// be discarded; its children stay with it.
func ReplaceWith(old, repl *html.Node) {
	parent := old.Parent
	Detach(repl)
	parent.InsertBefore(repl, old)
	parent.RemoveChild(old)
}

// MoveChildren appends every child of src to dst, preserving order.
// src ends up empty but stays in the tree.
func MoveChildren(dst, src *html.Node) {
	for src.FirstChild != nil {
		Append(dst, src.FirstChild)
	}
}

// Unwrap splices the children of n into its parent at n's position and
// removes n.
func Unwrap(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for n.FirstChild != nil {
		c := n.FirstChild
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
	}
	parent.RemoveChild(n)
}

// Text concatenates every text node in the subtree of n, in document
// order.
func Text(n *html.Node) string {
	var b strings.Builder
	appendText(&b, n)
	return b.String()
}

func appendText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(b, c)
	}
}

// VisibleText returns the subtree text with surrounding whitespace
// trimmed. Empty means the node renders no text at all.
func VisibleText(n *html.Node) string {
	return strings.TrimSpace(Text(n))
}

// SoleText follows single-child chains downward and returns the text
// node at the end, if the chain terminates in exactly one text node.
// This mirrors how a node "is just a string" even when wrapped.
func SoleText(n *html.Node) (*html.Node, bool) {
	for n != nil {
		first := n.FirstChild
		if first == nil || first.NextSibling != nil {
			return nil, false
		}
		if first.Type == html.TextNode {
			return first, true
		}
		if first.Type != html.ElementNode {
			return nil, false
		}
		n = first
	}
	return nil, false
}
