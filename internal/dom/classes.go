package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// GetAttr returns the value of the named attribute on n.
func GetAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces the named attribute on n.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes the named attribute on n if present.
func RemoveAttr(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// ClearAttrs removes every attribute on n.
func ClearAttrs(n *html.Node) {
	n.Attr = nil
}

// Classes returns the class tokens of n in attribute order. A missing
// or empty class attribute yields nil.
func Classes(n *html.Node) []string {
	raw, ok := GetAttr(n, "class")
	if !ok {
		return nil
	}
	return strings.Fields(raw)
}

// SetClasses replaces the class attribute with the given tokens,
// preserving their order. An empty list removes the attribute.
func SetClasses(n *html.Node, classes []string) {
	if len(classes) == 0 {
		RemoveAttr(n, "class")
		return
	}
	SetAttr(n, "class", strings.Join(classes, " "))
}

// HasClass reports whether n carries the class token.
func HasClass(n *html.Node, name string) bool {
	if !IsElement(n) {
		return false
	}
	for _, c := range Classes(n) {
		if c == name {
			return true
		}
	}
	return false
}

// ReplaceClassToken swaps one token for a replacement sequence inside
// a class list, keeping every other token in place.
func ReplaceClassToken(classes []string, from string, to ...string) []string {
	out := make([]string, 0, len(classes)+len(to))
	for _, c := range classes {
		if c == from {
			out = append(out, to...)
			continue
		}
		out = append(out, c)
	}
	return out
}
