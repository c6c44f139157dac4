package semantic

import (
	"golang.org/x/net/html"

	"github.com/morozRed/appledict2html/internal/dom"
	"github.com/morozRed/appledict2html/internal/match"
)

// groupSectionMarkers merges every x_xo0 marker with its following
// element siblings, up to the next marker, into one grouped block.
// The source data is flat: a marker span announces a section and its
// content trails after it as siblings.
func groupSectionMarkers(root *html.Node) {
	markers := dom.FindAll(root, func(n *html.Node) bool {
		return dom.HasClass(n, "x_xo0")
	})

	for _, marker := range markers {
		var collected []*html.Node
		for sib := marker.NextSibling; sib != nil; sib = sib.NextSibling {
			// Text siblings are skipped while scanning and stay put.
			if sib.Type != html.ElementNode {
				continue
			}
			if dom.HasClass(sib, "x_xo0") {
				break
			}
			collected = append(collected, sib)
		}
		for _, c := range collected {
			dom.Append(marker, c)
		}
		dom.Rename(marker, "section")
	}
}

var (
	subEntryRowSel = dom.MustSelector("span.x_xo1")
	secondLevelSel = dom.MustSelector("span.se2")
)

// convertSubEntryLists rewrites x_xo1 sub-entry rows under a
// subEntryBlock into sub-entry divs with their x_xo2 runs turned into
// lists. Children that are not x_xo2 rows keep their original
// position around the inserted list.
func convertSubEntryLists(root *html.Node) {
	rows := dom.Select(root, subEntryRowSel)

	for _, row := range rows {
		if !dom.HasAncestorClass(row, "subEntryBlock") {
			continue
		}

		dom.Rename(row, "div")
		dom.SetClasses(row, []string{"subEntry"})

		var list *html.Node
		for _, child := range dom.ChildNodes(row) {
			if !match.Matches(child, "span", "x_xo2") {
				continue
			}
			if !hasRenderableContent(child) {
				dom.Detach(child)
				continue
			}
			if list == nil {
				// The list takes over the position of the first
				// convertible row.
				list = dom.NewElement("ul")
				dom.InsertBefore(row, list, child)
			}
			li := dom.NewElement("li")
			dom.Append(li, child)
			dom.Append(list, li)
		}
	}
}

// hasRenderableContent reports whether n would contribute anything to
// the output: visible text or at least one element descendant.
func hasRenderableContent(n *html.Node) bool {
	if dom.VisibleText(n) != "" {
		return true
	}
	return dom.FindFirst(n, func(*html.Node) bool { return true }) != nil
}

var (
	subsenseRowClasses    = []string{"msDict", "x_xo2sub", "hasSn", "t_subsense"}
	subsenseAnchorClasses = []string{"msDict", "x_xo2sub", "t_first"}
)

// convertSubsenseLists collects the subsense rows that are direct
// children of a second-level sense group into one list, placed right
// after the group's first definition when it has one.
func convertSubsenseLists(root *html.Node) {
	groups := dom.Select(root, secondLevelSel)

	for _, group := range groups {
		var rows []*html.Node
		for c := group.FirstChild; c != nil; c = c.NextSibling {
			if match.Matches(c, "span", subsenseRowClasses...) {
				rows = append(rows, c)
			}
		}
		if len(rows) == 0 {
			continue
		}

		list := dom.NewElement("ul")
		for _, row := range rows {
			li := dom.NewElement("li")
			dom.MoveChildren(li, row)
			dom.Detach(row)
			dom.Append(list, li)
		}

		var anchor *html.Node
		for c := group.FirstChild; c != nil; c = c.NextSibling {
			if dom.IsElement(c) && match.HasAll(dom.Classes(c), subsenseAnchorClasses) {
				anchor = c
				break
			}
		}
		if anchor != nil {
			dom.InsertAfter(group, list, anchor)
		} else {
			dom.Append(group, list)
		}
	}
}
