// Package semantic rewrites presentation-class dictionary markup into
// semantic HTML. Transform is the only entry point; the passes share
// one mutable tree and run in a fixed order.
package semantic

import (
	"fmt"

	"github.com/morozRed/appledict2html/internal/dom"
	"github.com/morozRed/appledict2html/internal/fileutil"
)

// Options are the policy knobs of the rewrite. The zero value disables
// bracket wrapping entirely; use Default for the standard corpus
// behavior.
type Options struct {
	// BracketClasses marks the nodes whose rendered content is wrapped
	// in square brackets.
	BracketClasses []string

	// BracketSkipClasses disables bracket wrapping under any ancestor
	// carrying one of these classes.
	BracketSkipClasses []string

	// BracketTrailingSpace appends a space after the closing bracket.
	BracketTrailingSpace bool
}

// Default returns the options matching the Apple dictionary corpus:
// language groups bracketed, verb groups excluded, trailing space on.
func Default() Options {
	return Options{
		BracketClasses:       []string{"lg"},
		BracketSkipClasses:   []string{"vg"},
		BracketTrailingSpace: true,
	}
}

// Transform rewrites one document with default options.
func Transform(markup string) (string, error) {
	return Default().Transform(markup)
}

// Transform rewrites one document: parse, run every pass over the
// shared tree, serialize. It performs no I/O and keeps no state, so
// equal inputs always produce equal outputs. A violated programming
// invariant inside a pass aborts only the current document.
func (o Options) Transform(markup string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transform aborted: %v", r)
		}
	}()

	root, err := dom.Parse(markup)
	if err != nil {
		return "", err
	}

	groupSectionMarkers(root)
	convertSubEntryLists(root)
	convertInlineStyles(root)
	wrapBracketSpans(root, o)
	convertSourceStyles(root)
	convertSubsenseLists(root)
	convertSenseBlocks(root)
	cleanupTree(root)

	return dom.Render(root)
}

// KnownClasses returns every class token the rule tables act on,
// sorted. The audit uses it to tell handled vocabulary from unknown
// classes.
func KnownClasses() []string {
	set := make(map[string]bool)
	add := func(tokens ...string) {
		for _, t := range tokens {
			set[t] = true
		}
	}

	for _, r := range styleRules {
		add(r.Class)
	}
	for _, r := range sourceStyleRules {
		add(r.Class)
	}
	for _, r := range compositeStyleRules {
		add(r.Classes...)
	}

	add(coreSenseClasses...)
	add(subsenseClasses...)
	add(secondLevelSenseClasses...)
	add(firstDefinitionClasses...)
	add(nestedSubsenseClasses...)
	add(senseLabelClasses...)
	add(subsenseRowClasses...)
	add(subsenseAnchorClasses...)
	add(bulletMarkerClasses...)

	for _, kind := range []blockKind{originKind, inlineOriginKind, derivativesKind, usageKind, phrasalVerbsKind, phrasesKind} {
		add(kind.container...)
		for _, c := range kind.children {
			add(c.required...)
		}
	}

	// Markers the structural passes select on directly.
	add("x_xo0", "x_xo1", "x_xo2", "se1", "se2", "hw", "hg", "x_xh0", "eg")

	return fileutil.MapKeysSorted(set)
}
