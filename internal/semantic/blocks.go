package semantic

import (
	"golang.org/x/net/html"

	"github.com/morozRed/appledict2html/internal/dom"
	"github.com/morozRed/appledict2html/internal/match"
)

// blockKind describes one named block family: the class set that
// identifies the container and the ordered child rules applied to the
// spans inside it. Containers are matched by class set regardless of
// their current tag, since grouped markers arrive as sections while
// ungrouped ones may still be divs or spans.
type blockKind struct {
	container []string
	classes   []string
	children  []blockChildRule
}

// blockChildRule renames a matching span descendant to <p>. An empty
// class leaves the paragraph classless; either way the original
// attributes are dropped.
type blockChildRule struct {
	required []string
	class    string
}

var subEntryLabelClasses = []string{"gp", "x_xoLblBlk", "ty_label", "tg_subEntryBlock"}

var (
	originKind = blockKind{
		container: []string{"etym", "x_xo0"},
		classes:   []string{"origin_block"},
		children: []blockChildRule{
			{required: []string{"x_xo1"}},
			{required: []string{"gp", "x_xoLblBlk", "ty_label", "tg_etym"}, class: "origin_title"},
		},
	}

	// Etymology fragments embedded in running text carry an inline
	// modifier next to the base class.
	inlineOriginKind = blockKind{
		container: []string{"x_xdt"},
		classes:   []string{"origin_block", "inline"},
	}

	derivativesKind = blockKind{
		container: []string{"subEntryBlock", "x_xo0", "t_derivatives"},
		classes:   []string{"derivatives_block"},
		children: []blockChildRule{
			{required: subEntryLabelClasses, class: "derivatives_title"},
			{required: []string{"x_xoh"}},
		},
	}

	usageKind = blockKind{
		container: []string{"note", "x_xo0"},
		classes:   []string{"usage_block"},
		children: []blockChildRule{
			{required: []string{"lbl", "x_blk"}, class: "usage_title"},
		},
	}

	phrasalVerbsKind = blockKind{
		container: []string{"subEntryBlock", "x_xo0", "t_phrasalVerbs"},
		classes:   []string{"phrasalverbs_block"},
		children: []blockChildRule{
			{required: subEntryLabelClasses, class: "phrasalverbs_title"},
		},
	}

	phrasesKind = blockKind{
		container: []string{"subEntryBlock", "x_xo0", "t_phrases"},
		classes:   []string{"phrases_block"},
		children: []blockChildRule{
			{required: subEntryLabelClasses, class: "phrases_title"},
		},
	}
)

// renameBlocks applies one block kind across the whole tree.
func renameBlocks(root *html.Node, kind blockKind) {
	containers := dom.FindAll(root, func(n *html.Node) bool {
		return match.HasAll(dom.Classes(n), kind.container)
	})
	for _, container := range containers {
		dom.Rename(container, "section")
		dom.SetClasses(container, kind.classes)
		if len(kind.children) == 0 {
			continue
		}
		for _, span := range dom.FindAll(container, func(n *html.Node) bool {
			return n.Data == "span"
		}) {
			applyBlockChildRule(span, kind.children)
		}
	}
}

func applyBlockChildRule(span *html.Node, rules []blockChildRule) {
	classes := dom.Classes(span)
	for _, r := range rules {
		if !match.HasAll(classes, r.required) {
			continue
		}
		dom.Rename(span, "p")
		dom.ClearAttrs(span)
		if r.class != "" {
			dom.SetClasses(span, []string{r.class})
		}
		return
	}
}
