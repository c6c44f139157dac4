package semantic

import (
	"sort"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/morozRed/appledict2html/internal/dom"
	"github.com/morozRed/appledict2html/internal/match"
)

func parseFragment(t *testing.T, markup string) *html.Node {
	t.Helper()
	root, err := dom.Parse(markup)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return root
}

func renderTree(t *testing.T, root *html.Node) string {
	t.Helper()
	out, err := dom.Render(root)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return out
}

func TestTransform_BoldSpan(t *testing.T) {
	got, err := Transform(`<span class="bold">hi</span>`)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	if got != `<strong>hi</strong>` {
		t.Fatalf("expected <strong>hi</strong>, got %q", got)
	}
}

func TestTransform_EtymologyBlock(t *testing.T) {
	got, err := Transform(`<div class="etym x_xo0"><span class="x_xo1">Latin</span></div>`)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	want := `<section class="origin_block"><p>Latin</p></section>`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTransform_EmptyInput(t *testing.T) {
	got, err := Transform("")
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestTransform_Deterministic(t *testing.T) {
	in := `<d:entry><span class="hg x_xh0"><span class="hw" linebreaks="dic¦tion|ary">dictionary</span></span>` +
		`<span class="sg"><span class="se1"><span class="x_xdh posg">noun</span>` +
		`<span class="msDict x_xd1 t_core"><span class="gp sn tg_msDict">•</span>a book of words</span>` +
		`<span class="msDict x_xd1 t_core">a reference work</span></span></span></d:entry>`

	first, err := Transform(in)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	second, err := Transform(in)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical output on repeated runs:\n%q\n%q", first, second)
	}
}

func TestTransform_FullEntry(t *testing.T) {
	in := `<d:entry><d:index d:value="lead"/>` +
		`<span class="hg x_xh0"><span class="hw" linebreaks="lead¦er|ship">lead</span>` +
		`<span class="gp ty_hom tg_hw">1</span></span>` +
		`<span class="sg"><span class="se1">` +
		`<span class="x_xdh posg">verb</span>` +
		`<span class="msDict x_xd1 t_core"><span class="gp sn tg_msDict">•</span>` +
		`<span class="lg">chiefly Brit.</span>cause to go with one</span>` +
		`<span class="msDict x_xd1 hasSn t_subsense">be a route or means of access</span>` +
		`</span></span>` +
		`<span class="etym x_xo0"><span class="x_xo1">Old English</span></span>` +
		`</d:entry>`

	got, err := Transform(in)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}

	// The index marker carries its payload in attributes and must
	// survive even though it has no text.
	if !strings.Contains(got, `<d:index d:value="lead"></d:index>`) {
		t.Fatalf("expected protected d:index in output, got %q", got)
	}
	if strings.Contains(got, "d:entry") {
		t.Fatalf("d:entry wrapper should be unwrapped, got %q", got)
	}
	if !strings.Contains(got, `<sup>1</sup>`) {
		t.Fatalf("expected homograph superscript, got %q", got)
	}
	if !strings.Contains(got, "[lead¦er|ship]") {
		t.Fatalf("expected syllabification hint, got %q", got)
	}
	if !strings.Contains(got, "[chiefly Brit.] ") {
		t.Fatalf("expected bracketed language group, got %q", got)
	}
	if !strings.Contains(got, `<section class="origin_block"><p>Old English</p></section>`) {
		t.Fatalf("expected origin block, got %q", got)
	}
	if !strings.Contains(got, "<ul><li>") {
		t.Fatalf("expected sense list, got %q", got)
	}
	if strings.Contains(got, "•") {
		t.Fatalf("bullet markers should be removed, got %q", got)
	}
	if strings.Contains(got, "msDict") || strings.Contains(got, "x_xdh") {
		t.Fatalf("source classes should be stripped, got %q", got)
	}
}

func TestTransform_InputNotMutated(t *testing.T) {
	in := `<span class="bold">hi</span>`
	orig := strings.Clone(in)
	if _, err := Transform(in); err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	if in != orig {
		t.Fatalf("input string mutated")
	}
}

func TestBuildWrapper_EmptySpecPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on empty tag list")
		}
	}()
	buildWrapper(match.TagSpec{})
}

func TestKnownClasses(t *testing.T) {
	classes := KnownClasses()

	if !sort.StringsAreSorted(classes) {
		t.Fatalf("expected sorted class list")
	}

	set := make(map[string]bool, len(classes))
	for _, c := range classes {
		if set[c] {
			t.Fatalf("duplicate class %q", c)
		}
		set[c] = true
	}

	for _, want := range []string{"bold", "lg", "t_core", "x_xo2sub", "etym", "se2", "hw", "eg"} {
		if !set[want] {
			t.Fatalf("expected %q in known classes", want)
		}
	}
	// Output vocabulary is not input vocabulary.
	if set["origin_block"] {
		t.Fatalf("semantic output classes do not belong in the known set")
	}
}
