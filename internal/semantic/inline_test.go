package semantic

import (
	"testing"

	"github.com/morozRed/appledict2html/internal/dom"
)

func TestConvertInlineStyles(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bold to strong",
			in:   `<span class="bold">hi</span>`,
			want: `<strong>hi</strong>`,
		},
		{
			name: "italic to em",
			in:   `<span class="italic">vox</span>`,
			want: `<em>vox</em>`,
		},
		{
			name: "small caps keeps marker class",
			in:   `<span class="sc">nato</span>`,
			want: `<span class="small-caps">nato</span>`,
		},
		{
			name: "bold italic nests outermost first",
			in:   `<span class="bi">word</span>`,
			want: `<em><strong>word</strong></em>`,
		},
		{
			name: "superscript italic",
			in:   `<span class="sui">th</span>`,
			want: `<sup><em>th</em></sup>`,
		},
		{
			name: "nested spans converted innermost first",
			in:   `<span class="bold">a<span class="italic">b</span></span>`,
			want: `<strong>a<em>b</em></strong>`,
		},
		{
			name: "unknown class passes through",
			in:   `<span class="pr">x</span>`,
			want: `<span class="pr">x</span>`,
		},
		{
			name: "table order beats attribute order",
			in:   `<span class="italic bold">x</span>`,
			want: `<strong>x</strong>`,
		},
		{
			name: "composite homograph beats single-class rule",
			in:   `<span class="gp ty_hom tg_hw bold">1</span>`,
			want: `<sup>1</sup>`,
		},
		{
			name: "cross reference homograph",
			in:   `<span class="gp ty_hom tg_xr">2</span>`,
			want: `<sup>2</sup>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := parseFragment(t, tc.in)
			convertInlineStyles(root)
			if got := renderTree(t, root); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestConvertSourceStyles(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "verb form to strong",
			in:   `<span class="v">led</span>`,
			want: `<strong>led</strong>`,
		},
		{
			name: "stress keeps marker class",
			in:   `<span class="str">re</span>`,
			want: `<span class="stress">re</span>`,
		},
		{
			name: "work title nests em code",
			in:   `<span class="work">Hamlet</span>`,
			want: `<em><code>Hamlet</code></em>`,
		},
		{
			name: "grammar marker defaults to em",
			in:   `<span class="gg">no object</span>`,
			want: `<em>no object</em>`,
		},
		{
			name: "grammar marker inside example becomes code",
			in:   `<span class="eg"><span class="gg">as noun</span> running</span>`,
			want: `<span class="eg"><code>as noun</code> running</span>`,
		},
		{
			name: "grammar marker under deep example ancestor",
			in:   `<span class="eg"><span><span class="gg">x</span></span></span>`,
			want: `<span class="eg"><span><code>x</code></span></span>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := parseFragment(t, tc.in)
			convertSourceStyles(root)
			if got := renderTree(t, root); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestInlineStyles_TextConserved(t *testing.T) {
	in := `<span class="bold">a<span class="sui">b</span></span><span class="bi">c</span>d<span class="sc">e</span>`
	root := parseFragment(t, in)

	before := dom.Text(root)
	convertInlineStyles(root)
	after := dom.Text(root)

	if before != after {
		t.Fatalf("inline pass must conserve text: %q != %q", before, after)
	}
	if before != "abcde" {
		t.Fatalf("expected abcde, got %q", before)
	}
}
