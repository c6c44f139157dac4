package semantic

import "testing"

func TestWrapBracketSpans(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text wrapped",
			in:   `<span class="lg">informal</span>`,
			want: `<span class="lg"><span>[informal] </span></span>`,
		},
		{
			name: "text edges trimmed",
			in:   `<span class="lg">  chiefly Brit.  </span>`,
			want: `<span class="lg"><span>[chiefly Brit.] </span></span>`,
		},
		{
			name: "whitespace edge children dropped",
			in:   `<span class="lg"> <em>dialect</em> </span>`,
			want: `<span class="lg"><span>[<em>dialect</em>] </span></span>`,
		},
		{
			name: "element edge trimmed through sole string",
			in:   `<span class="lg"><em> archaic</em></span>`,
			want: `<span class="lg"><span>[<em>archaic</em>] </span></span>`,
		},
		{
			name: "skipped under excluded ancestor",
			in:   `<span class="vg"><span class="lg"> x </span></span>`,
			want: `<span class="vg"><span class="lg"> x </span></span>`,
		},
		{
			name: "skipped under deep excluded ancestor",
			in:   `<span class="vg"><span><span class="lg">x</span></span></span>`,
			want: `<span class="vg"><span><span class="lg">x</span></span></span>`,
		},
		{
			name: "mixed content kept in order",
			in:   `<span class="lg">N. <em>Amer.</em></span>`,
			want: `<span class="lg"><span>[N. <em>Amer.</em>] </span></span>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := parseFragment(t, tc.in)
			wrapBracketSpans(root, Default())
			if got := renderTree(t, root); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestWrapBracketSpans_NoTrailingSpace(t *testing.T) {
	opts := Default()
	opts.BracketTrailingSpace = false

	root := parseFragment(t, `<span class="lg">rare</span>`)
	wrapBracketSpans(root, opts)

	want := `<span class="lg"><span>[rare]</span></span>`
	if got := renderTree(t, root); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestWrapBracketSpans_CustomTargets(t *testing.T) {
	opts := Options{
		BracketClasses:       []string{"reg"},
		BracketSkipClasses:   []string{"fg"},
		BracketTrailingSpace: true,
	}

	root := parseFragment(t, `<span class="reg">slang</span><span class="lg">ignored</span>`)
	wrapBracketSpans(root, opts)

	want := `<span class="reg"><span>[slang] </span></span><span class="lg">ignored</span>`
	if got := renderTree(t, root); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
