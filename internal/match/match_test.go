package match

import (
	"testing"

	"github.com/morozRed/appledict2html/internal/dom"
	"golang.org/x/net/html"
)

func parseFirstElement(t *testing.T, markup string) *html.Node {
	t.Helper()
	root, err := dom.Parse(markup)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	el := dom.FindFirst(root, func(n *html.Node) bool { return true })
	if el == nil {
		t.Fatalf("no element in %q", markup)
	}
	return el
}

func TestHasAll_SubsetSemantics(t *testing.T) {
	cases := []struct {
		name     string
		classes  []string
		required []string
		want     bool
	}{
		{"superset matches", []string{"A", "B", "C", "D"}, []string{"A", "B"}, true},
		{"exact set matches", []string{"A", "B"}, []string{"A", "B"}, true},
		{"missing token fails", []string{"A", "C"}, []string{"A", "B"}, false},
		{"empty requirement matches", []string{"A"}, nil, true},
		{"empty classes fail", nil, []string{"A"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasAll(tc.classes, tc.required); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestMatches_TagAndClasses(t *testing.T) {
	cases := []struct {
		markup   string
		tag      string
		required []string
		want     bool
	}{
		{`<span class="msDict x_xd1 t_core extra">x</span>`, "span", []string{"msDict", "x_xd1", "t_core"}, true},
		{`<div class="msDict x_xd1 t_core">x</div>`, "span", []string{"msDict", "x_xd1", "t_core"}, false},
		{`<div class="etym x_xo0">x</div>`, "", []string{"etym", "x_xo0"}, true},
		{`<span class="msDict">x</span>`, "span", []string{"msDict", "t_core"}, false},
		{`<span>x</span>`, "span", nil, true},
	}

	for _, tc := range cases {
		n := parseFirstElement(t, tc.markup)
		if got := Matches(n, tc.tag, tc.required...); got != tc.want {
			t.Fatalf("markup %s tag %q: expected %v, got %v", tc.markup, tc.tag, tc.want, got)
		}
	}
}

func TestMatches_NonElement(t *testing.T) {
	if Matches(nil, "span") {
		t.Fatalf("nil node must not match")
	}
	text := dom.NewText("x")
	if Matches(text, "") {
		t.Fatalf("text node must not match")
	}
}

func TestFirstRule_TableOrderWins(t *testing.T) {
	rules := []Rule{
		{Class: "bold", Out: TagSpec{Tags: []string{"strong"}}},
		{Class: "italic", Out: TagSpec{Tags: []string{"em"}}},
	}

	// Node carries both trigger classes; the earlier table entry wins
	// regardless of attribute order.
	r, ok := FirstRule(rules, []string{"italic", "bold"})
	if !ok {
		t.Fatalf("expected a rule match")
	}
	if r.Class != "bold" {
		t.Fatalf("expected bold to win by table order, got %s", r.Class)
	}

	if _, ok := FirstRule(rules, []string{"plain"}); ok {
		t.Fatalf("expected no match for unknown class")
	}
}

func TestFirstComposite(t *testing.T) {
	rules := []CompositeRule{
		{Classes: []string{"gp", "ty_hom", "tg_hw"}, Out: TagSpec{Tags: []string{"sup"}}},
		{Classes: []string{"gp", "ty_hom", "tg_xr"}, Out: TagSpec{Tags: []string{"sup"}}},
	}

	if _, ok := FirstComposite(rules, []string{"gp", "ty_hom", "tg_xr", "x"}); !ok {
		t.Fatalf("expected composite match with extra class")
	}
	if _, ok := FirstComposite(rules, []string{"gp", "ty_hom"}); ok {
		t.Fatalf("partial class set must not match")
	}
}
