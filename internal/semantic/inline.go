package semantic

import (
	"golang.org/x/net/html"

	"github.com/morozRed/appledict2html/internal/dom"
	"github.com/morozRed/appledict2html/internal/match"
)

// Generic presentational styles. Applied in table order; the first
// rule whose trigger class is on the span wins.
var styleRules = []match.Rule{
	{Class: "bold", Out: match.TagSpec{Tags: []string{"strong"}}},
	{Class: "italic", Out: match.TagSpec{Tags: []string{"em"}}},
	{Class: "underline", Out: match.TagSpec{Tags: []string{"u"}}},
	{Class: "sup", Out: match.TagSpec{Tags: []string{"sup"}}},
	{Class: "sub", Out: match.TagSpec{Tags: []string{"sub"}}},
	{Class: "sc", Out: match.TagSpec{Tags: []string{"span"}, Class: "small-caps"}},
	{Class: "bi", Out: match.TagSpec{Tags: []string{"em", "strong"}}},
	{Class: "sui", Out: match.TagSpec{Tags: []string{"sup", "em"}}},
	{Class: "ini", Out: match.TagSpec{Tags: []string{"sub", "em"}}},
}

// Homograph number markers render as superscripts whether they sit on
// a headword or inside a cross-reference.
var compositeStyleRules = []match.CompositeRule{
	{Classes: []string{"gp", "ty_hom", "tg_hw"}, Out: match.TagSpec{Tags: []string{"sup"}}},
	{Classes: []string{"gp", "ty_hom", "tg_xr"}, Out: match.TagSpec{Tags: []string{"sup"}}},
}

// The Apple dictionary span vocabulary: verb forms, labels, language
// names, sense markers and so on.
var sourceStyleRules = []match.Rule{
	{Class: "sy_underline", Out: match.TagSpec{Tags: []string{"u"}}},
	{Class: "str", Out: match.TagSpec{Tags: []string{"span"}, Class: "stress"}},
	{Class: "ex", Out: match.TagSpec{Tags: []string{"em"}}},
	{Class: "v", Out: match.TagSpec{Tags: []string{"strong"}}},
	{Class: "l", Out: match.TagSpec{Tags: []string{"strong"}}},
	{Class: "f", Out: match.TagSpec{Tags: []string{"strong"}}},
	{Class: "lg", Out: match.TagSpec{Tags: []string{"em"}}},
	{Class: "ff", Out: match.TagSpec{Tags: []string{"em", "strong"}}},
	{Class: "gg", Out: match.TagSpec{Tags: []string{"em"}}},
	{Class: "subEnt", Out: match.TagSpec{Tags: []string{"sub"}}},
	{Class: "inf", Out: match.TagSpec{Tags: []string{"strong"}}},
	{Class: "sy", Out: match.TagSpec{Tags: []string{"em"}}},
	{Class: "nu", Out: match.TagSpec{Tags: []string{"sup"}}},
	{Class: "dn", Out: match.TagSpec{Tags: []string{"sub"}}},
	{Class: "work", Out: match.TagSpec{Tags: []string{"em", "code"}}},
}

var spanSel = dom.MustSelector("span")

// convertInlineStyles rewrites presentational spans into semantic
// inline tags.
func convertInlineStyles(root *html.Node) {
	applyStyleTable(root, styleRules, compositeStyleRules, nil)
}

// convertSourceStyles rewrites the Apple-specific span vocabulary.
func convertSourceStyles(root *html.Node) {
	applyStyleTable(root, sourceStyleRules, nil, grammarContext)
}

// grammarContext picks <code> over <em> for grammar markers that sit
// inside an example sentence.
func grammarContext(span *html.Node, r match.Rule) (match.TagSpec, bool) {
	if r.Class == "gg" && dom.HasAncestorClass(span, "eg") {
		return match.TagSpec{Tags: []string{"code"}}, true
	}
	return match.TagSpec{}, false
}

// applyStyleTable visits spans innermost-first (reverse document
// order) so that replacing a nested span never invalidates the nodes
// still to be visited, and nested styles wrap correctly.
func applyStyleTable(root *html.Node, rules []match.Rule, composites []match.CompositeRule, override func(*html.Node, match.Rule) (match.TagSpec, bool)) {
	spans := dom.Select(root, spanSel)
	for i := len(spans) - 1; i >= 0; i-- {
		span := spans[i]
		classes := dom.Classes(span)

		if r, ok := match.FirstComposite(composites, classes); ok {
			replaceWithWrapper(span, r.Out)
			continue
		}

		r, ok := match.FirstRule(rules, classes)
		if !ok {
			continue
		}
		out := r.Out
		if override != nil {
			if spec, hit := override(span, r); hit {
				out = spec
			}
		}
		replaceWithWrapper(span, out)
	}
}

// buildWrapper materializes a wrapper chain from a spec, outermost
// first, and returns both ends. A spec with no tags is a programming
// error in the rule tables.
func buildWrapper(spec match.TagSpec) (outer, inner *html.Node) {
	if len(spec.Tags) == 0 {
		panic("semantic: style rule with empty tag list")
	}
	for _, tag := range spec.Tags {
		n := dom.NewElement(tag)
		if spec.Class != "" {
			dom.SetClasses(n, []string{spec.Class})
		}
		if outer == nil {
			outer = n
		} else {
			dom.Append(inner, n)
		}
		inner = n
	}
	return outer, inner
}

// replaceWithWrapper swaps n for the wrapper chain, moving n's
// children into the innermost wrapper.
func replaceWithWrapper(n *html.Node, spec match.TagSpec) {
	outer, inner := buildWrapper(spec)
	dom.MoveChildren(inner, n)
	dom.ReplaceWith(n, outer)
}
