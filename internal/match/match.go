// Package match holds the class-set predicates and rule table types
// the rewrite passes are driven by.
package match

import (
	"golang.org/x/net/html"

	"github.com/morozRed/appledict2html/internal/dom"
)

// TagSpec describes the replacement for a matched node: one or more
// wrapper tags, outermost first, and an optional class applied to the
// wrappers. {Tags: ["em", "strong"]} produces <em><strong>...</strong></em>.
type TagSpec struct {
	Tags  []string
	Class string
}

// Rule binds a single trigger class to its output spec.
type Rule struct {
	Class string
	Out   TagSpec
}

// CompositeRule binds a full class-set requirement to its output spec.
// The node must carry every listed class; extra classes are allowed.
type CompositeRule struct {
	Classes []string
	Out     TagSpec
}

// Has reports whether token is among the class tokens.
func Has(classes []string, token string) bool {
	for _, c := range classes {
		if c == token {
			return true
		}
	}
	return false
}

// HasAll reports whether every required token is among the class
// tokens. Extra tokens never disqualify a node.
func HasAll(classes []string, required []string) bool {
	for _, r := range required {
		if !Has(classes, r) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one candidate token is among the
// class tokens.
func HasAny(classes []string, candidates []string) bool {
	for _, c := range candidates {
		if Has(classes, c) {
			return true
		}
	}
	return false
}

// Matches reports whether n is an element with the given tag carrying
// every required class. An empty tag matches any element.
func Matches(n *html.Node, tag string, required ...string) bool {
	if !dom.IsElement(n) {
		return false
	}
	if tag != "" && n.Data != tag {
		return false
	}
	return HasAll(dom.Classes(n), required)
}

// FirstRule returns the first rule, in table order, whose trigger
// class is among the node's class tokens.
func FirstRule(rules []Rule, classes []string) (Rule, bool) {
	for _, r := range rules {
		if Has(classes, r.Class) {
			return r, true
		}
	}
	return Rule{}, false
}

// FirstComposite returns the first composite rule, in table order,
// whose full class set is satisfied by the node's class tokens.
func FirstComposite(rules []CompositeRule, classes []string) (CompositeRule, bool) {
	for _, r := range rules {
		if HasAll(classes, r.Classes) {
			return r, true
		}
	}
	return CompositeRule{}, false
}
