package dom

import (
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// MustSelector compiles a CSS selector at package init time.
func MustSelector(expr string) cascadia.Selector {
	return cascadia.MustCompile(expr)
}

// Select returns every node in the subtree of root matching the
// selector, in document order. The result is a snapshot: callers can
// mutate the tree while ranging over it.
func Select(root *html.Node, sel cascadia.Selector) []*html.Node {
	return sel.MatchAll(root)
}

// FindAll returns every element in the subtree of root, root excluded,
// for which pred returns true, in document order.
func FindAll(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				if pred(c) {
					out = append(out, c)
				}
				walk(c)
			}
		}
	}
	walk(root)
	return out
}

// FindFirst returns the first element in the subtree of root, root
// excluded, for which pred returns true, in document order.
func FindFirst(root *html.Node, pred func(*html.Node) bool) *html.Node {
	var found *html.Node
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				if pred(c) {
					found = c
					return true
				}
				if walk(c) {
					return true
				}
			}
		}
		return false
	}
	walk(root)
	return found
}

// ChildNodes returns a snapshot of the direct children of n, text
// nodes included.
func ChildNodes(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// ChildElements returns a snapshot of the direct element children of n.
func ChildElements(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// Ancestor walks up from n and returns the nearest ancestor for which
// pred returns true, or nil.
func Ancestor(n *html.Node, pred func(*html.Node) bool) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && pred(p) {
			return p
		}
	}
	return nil
}

// HasAncestorClass reports whether any ancestor of n carries one of
// the given class tokens.
func HasAncestorClass(n *html.Node, names ...string) bool {
	return Ancestor(n, func(p *html.Node) bool {
		for _, name := range names {
			if HasClass(p, name) {
				return true
			}
		}
		return false
	}) != nil
}
