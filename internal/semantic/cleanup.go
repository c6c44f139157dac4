package semantic

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/morozRed/appledict2html/internal/dom"
	"github.com/morozRed/appledict2html/internal/match"
)

// cleanupTree runs the normalization chain that turns the rewritten
// tree into its final shape. The whole chain is idempotent: running it
// twice yields the same tree as running it once.
func cleanupTree(root *html.Node) {
	removeBulletSpans(root)
	renameBlocks(root, originKind)
	renameBlocks(root, inlineOriginKind)
	renameBlocks(root, derivativesKind)
	renameBlocks(root, usageKind)
	injectHeadwordBreaks(root)
	pruneEmptyNodes(root)
	convertHeadingSpans(root)
	renameBlocks(root, phrasalVerbsKind)
	renameBlocks(root, phrasesKind)
	unwrapResidualSpans(root)
	stripAttributes(root)
	ensureSpaceAfterTags(root, "strong", "em")
	trimTitleText(root)
}

var bulletMarkerClasses = []string{"gp", "sn", "tg_msDict"}

// removeBulletSpans drops decorative bullet markers; list rendering
// supplies its own bullets. A marker whose text is anything other than
// the bullet character stays.
func removeBulletSpans(root *html.Node) {
	for _, span := range dom.Select(root, spanSel) {
		if !match.HasAll(dom.Classes(span), bulletMarkerClasses) {
			continue
		}
		if text, ok := dom.SoleText(span); ok && strings.TrimSpace(text.Data) == "•" {
			dom.Detach(span)
		}
	}
}

var headwordSel = dom.MustSelector("span.hw")

// injectHeadwordBreaks copies the syllabification hint into the text
// before the linebreaks attribute is stripped.
func injectHeadwordBreaks(root *html.Node) {
	for _, span := range dom.Select(root, headwordSel) {
		breaks, ok := dom.GetAttr(span, "linebreaks")
		if !ok || !strings.Contains(breaks, "|") || !strings.Contains(breaks, "¦") {
			continue
		}
		for c := span.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
				dom.InsertAfter(span, dom.NewText(" ["+breaks+"]"), c)
				break
			}
		}
	}
}

const protectedIndexTag = "d:index"

// pruneEmptyNodes removes effectively-empty nodes bottom-up, so a
// wrapper whose children were all pruned goes too.
func pruneEmptyNodes(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode {
			pruneEmptyNodes(c)
			if effectivelyEmpty(c) {
				dom.Detach(c)
			}
		}
		c = next
	}
}

// effectivelyEmpty reports whether n renders nothing: no visible text
// and no protected index marker anywhere below. Index markers carry
// their payload in attributes, so an empty one is still meaningful.
func effectivelyEmpty(n *html.Node) bool {
	if n.Data == protectedIndexTag {
		return false
	}
	if dom.VisibleText(n) != "" {
		return false
	}
	return dom.FindFirst(n, func(d *html.Node) bool { return d.Data == protectedIndexTag }) == nil
}

// convertHeadingSpans rewrites entry headings into plain paragraphs.
func convertHeadingSpans(root *html.Node) {
	for _, span := range dom.Select(root, spanSel) {
		classes := dom.Classes(span)
		if !match.Has(classes, "hg") || !match.Has(classes, "x_xh0") {
			continue
		}
		p := dom.NewElement("p")
		dom.MoveChildren(p, span)
		dom.ReplaceWith(span, p)
	}
}

// Classes that survive into the output; every other class is stripped
// and every span not carrying one of these is unwrapped.
var retainedClasses = []string{
	"origin_block", "origin_title",
	"derivatives_block", "derivatives_title",
	"usage_block", "usage_title",
	"phrasalverbs_block", "phrasalverbs_title",
	"phrases_block", "phrases_title",
	"note_block", "inline",
	"small-caps", "stress",
}

// unwrapResidualSpans splices away the spans that carry no retained
// class, then removes the d: markers whose information was absorbed by
// earlier passes.
func unwrapResidualSpans(root *html.Node) {
	for _, span := range dom.Select(root, spanSel) {
		if match.HasAny(dom.Classes(span), retainedClasses) {
			continue
		}
		dom.Unwrap(span)
	}
	for _, tag := range []string{"d:prn", "d:def", "d:pos"} {
		for _, n := range dom.FindAll(root, matchTag(tag)) {
			dom.Detach(n)
		}
	}
	for _, n := range dom.FindAll(root, matchTag("d:entry")) {
		dom.Unwrap(n)
	}
}

func matchTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == tag }
}

// stripAttributes filters every class list against the retained set
// and drops the source-only attributes.
func stripAttributes(root *html.Node) {
	for _, n := range dom.FindAll(root, dom.IsElement) {
		var kept []string
		for _, c := range dom.Classes(n) {
			if match.Has(retainedClasses, c) {
				kept = append(kept, c)
			}
		}
		dom.SetClasses(n, kept)
		dom.RemoveAttr(n, "id")
		dom.RemoveAttr(n, "linebreaks")
	}
}

// ensureSpaceAfterTags inserts a space between an inline tag and a
// following text run that starts with a letter. Unwrapping can leave
// the two flush against each other.
func ensureSpaceAfterTags(root *html.Node, tags ...string) {
	for _, tag := range tags {
		for _, n := range dom.FindAll(root, matchTag(tag)) {
			next := n.NextSibling
			if next == nil || next.Type != html.TextNode || next.Data == "" {
				continue
			}
			if strings.HasPrefix(next.Data, " ") {
				continue
			}
			if r, _ := utf8.DecodeRuneInString(next.Data); unicode.IsLetter(r) {
				next.Data = " " + next.Data
			}
		}
	}
}

var titleClasses = []string{
	"usage_title",
	"origin_title",
	"derivatives_title",
	"phrases_title",
	"phrasalverbs_title",
}

// trimTitleText trims title nodes whose sole content is one text leaf.
func trimTitleText(root *html.Node) {
	for _, n := range dom.FindAll(root, func(n *html.Node) bool {
		return match.HasAny(dom.Classes(n), titleClasses)
	}) {
		only := n.FirstChild
		if only == nil || only.NextSibling != nil || only.Type != html.TextNode {
			continue
		}
		only.Data = strings.TrimSpace(only.Data)
	}
}
