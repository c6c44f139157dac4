package semantic

import (
	"golang.org/x/net/html"

	"github.com/morozRed/appledict2html/internal/dom"
	"github.com/morozRed/appledict2html/internal/match"
)

// Class-set patterns of the sense vocabulary. Every pattern requires
// the span tag as well, which keeps the consolidation stage from
// re-wrapping rows an earlier stage already converted.
var (
	coreSenseClasses        = []string{"msDict", "x_xd1", "t_core"}
	subsenseClasses         = []string{"msDict", "x_xd1", "hasSn", "t_subsense"}
	secondLevelSenseClasses = []string{"se2", "x_xd1", "hasSn"}
	firstDefinitionClasses  = []string{"msDict", "x_xd1sub", "t_first"}
	nestedSubsenseClasses   = []string{"msDict", "x_xd1sub", "hasSn", "t_subsense"}
	senseLabelClasses       = []string{"gp", "x_xdh", "sn", "ty_label", "tg_se2"}
)

// Named blocks that can sit between senses inside a sense section. The
// marker class is swapped for its semantic name, in place.
var senseBlockRenames = []struct {
	from string
	to   []string
}{
	{"note", []string{"note_block"}},
	{"etym", []string{"origin_block"}},
	{"x_xdt", []string{"origin_block", "inline"}},
}

var (
	senseSel = dom.MustSelector("span.se1")
	posSel   = dom.MustSelector("span.x_xdh")
)

func isSenseLabel(n *html.Node) bool {
	return match.Matches(n, "span", senseLabelClasses...)
}

// renameUnlessLabel renames n in place. Sense-number label markers
// keep their tag so they never turn into sections or list items.
func renameUnlessLabel(n *html.Node, tag string) {
	if isSenseLabel(n) {
		return
	}
	dom.Rename(n, tag)
}

// convertSenseBlocks rewrites every sense section: part-of-speech rows
// become paragraphs, sense rows become list items grouped into lists,
// and two consolidation sweeps pick up rows irregular entries leave
// outside the normal child positions.
func convertSenseBlocks(root *html.Node) {
	for _, sense := range dom.Select(root, senseSel) {
		renameUnlessLabel(sense, "section")
		for _, pos := range dom.Select(sense, posSel) {
			renameUnlessLabel(pos, "p")
		}
		convertSenseChildren(sense)
		foldStrayCoreSenses(sense)
		foldStraySecondLevel(sense)
	}
}

// isSenseItem reports whether a direct child of a sense section is a
// sense row: anything tagged t_core or t_subsense, or a span carrying
// the full second-level set.
func isSenseItem(n *html.Node, classes []string) bool {
	return match.Has(classes, "t_core") ||
		match.Has(classes, "t_subsense") ||
		match.Matches(n, "span", secondLevelSenseClasses...)
}

// convertSenseChildren walks the direct children of a sense section in
// original order. Consecutive sense rows are buffered and flushed
// together as one list at the position of the first row; named blocks
// and everything else, text included, stay exactly where they are.
func convertSenseChildren(sense *html.Node) {
	var buffered []*html.Node

	flush := func() {
		if len(buffered) == 0 {
			return
		}
		list := dom.NewElement("ul")
		dom.InsertBefore(sense, list, buffered[0])
		for _, item := range buffered {
			dom.Append(list, item)
		}
		buffered = buffered[:0]
	}

	for _, child := range dom.ChildNodes(sense) {
		if !dom.IsElement(child) {
			flush()
			continue
		}
		classes := dom.Classes(child)
		if isSenseItem(child, classes) {
			convertSenseItem(child)
			buffered = append(buffered, child)
			continue
		}
		flush()
		renameSenseBlock(child, classes)
	}
	flush()
}

// convertSenseItem turns one sense row into a list item: the row is
// renamed, its first-definition wrapper is spliced into the row, and
// direct nested subsenses fold into a child list.
func convertSenseItem(item *html.Node) {
	renameUnlessLabel(item, "li")
	spliceFirstDefinition(item)
	foldDirectSubsenses(item)
}

// spliceFirstDefinition moves the contents of the row's first
// definition wrapper to the row's end and drops the wrapper.
func spliceFirstDefinition(row *html.Node) {
	def := dom.FindFirst(row, func(n *html.Node) bool {
		return match.Matches(n, "span", firstDefinitionClasses...)
	})
	if def == nil {
		return
	}
	dom.MoveChildren(row, def)
	dom.Detach(def)
}

// foldDirectSubsenses collects direct children matching the nested
// subsense set into a list appended at the row's end.
func foldDirectSubsenses(row *html.Node) {
	var subs []*html.Node
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if match.Matches(c, "span", nestedSubsenseClasses...) {
			subs = append(subs, c)
		}
	}
	if len(subs) == 0 {
		return
	}
	list := dom.NewElement("ul")
	for _, sub := range subs {
		li := dom.NewElement("li")
		dom.MoveChildren(li, sub)
		dom.Detach(sub)
		dom.Append(list, li)
	}
	dom.Append(row, list)
}

// renameSenseBlock rewrites a recognized named block (usage note,
// etymology, inline etymology) into a section, swapping the marker
// class for its semantic name at the marker's position in the class
// list.
func renameSenseBlock(n *html.Node, classes []string) {
	for _, r := range senseBlockRenames {
		if !match.Has(classes, r.from) {
			continue
		}
		dom.SetClasses(n, dom.ReplaceClassToken(classes, r.from, r.to...))
		dom.Rename(n, "section")
		return
	}
}

// foldStrayCoreSenses is the consolidation net for irregular entries:
// any core sense still left as a span anywhere under the sense section
// is folded, together with its trailing subsense siblings, into one
// list appended at the end. Rows already converted are list items and
// no longer match.
func foldStrayCoreSenses(sense *html.Node) {
	cores := dom.FindAll(sense, func(n *html.Node) bool {
		return match.Matches(n, "span", coreSenseClasses...)
	})
	if len(cores) == 0 {
		return
	}

	list := dom.NewElement("ul")
	for _, core := range cores {
		li := dom.NewElement("li")
		dom.MoveChildren(li, core)

		var subs []*html.Node
		for sib := core.NextSibling; sib != nil; sib = sib.NextSibling {
			if !dom.IsElement(sib) {
				continue
			}
			if match.Matches(sib, "span", coreSenseClasses...) {
				break
			}
			if match.Matches(sib, "span", subsenseClasses...) {
				subs = append(subs, sib)
			}
		}
		if len(subs) > 0 {
			nested := dom.NewElement("ul")
			for _, s := range subs {
				sli := dom.NewElement("li")
				dom.MoveChildren(sli, s)
				dom.Detach(s)
				dom.Append(nested, sli)
			}
			dom.Append(li, nested)
		}

		dom.Append(list, li)
		dom.Detach(core)
	}
	dom.Append(sense, list)
}

// foldStraySecondLevel folds direct-child second-level groups that the
// document-order walk did not reach into one more trailing list.
func foldStraySecondLevel(sense *html.Node) {
	var groups []*html.Node
	for c := sense.FirstChild; c != nil; c = c.NextSibling {
		if match.Matches(c, "span", secondLevelSenseClasses...) {
			groups = append(groups, c)
		}
	}
	if len(groups) == 0 {
		return
	}

	list := dom.NewElement("ul")
	for _, group := range groups {
		convertSenseItem(group)
		dom.Append(list, group)
	}
	dom.Append(sense, list)
}
