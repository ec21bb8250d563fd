package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomd2html/pkg/render"
)

func TestRenderString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "heading level three",
			input: "### Title",
			want:  "<h3>Title</h3>",
		},
		{
			name:  "heading level seven is accepted",
			input: "####### Deep",
			want:  "<h7>Deep</h7>",
		},
		{
			name:  "heading without space",
			input: "##Tight",
			want:  "<h2>Tight</h2>",
		},
		{
			name:  "bare hash",
			input: "#",
			want:  "<h1></h1>",
		},
		{
			name:  "inner hashes are not counted",
			input: "# C# and F#",
			want:  "<h1>C# and F#</h1>",
		},
		{
			name:  "unordered list",
			input: "- item1\n- item2\n",
			want:  "<ul>\n    <li>item1</li>\n    <li>item2</li>\n</ul>",
		},
		{
			name:  "ordered list closed before paragraph",
			input: "1. first\n2. second\nEnd\n",
			want:  "<ol>\n    <li>first</li>\n    <li>second</li>\n</ol>\n<p>End</p>",
		},
		{
			name:  "inline markers in paragraph",
			input: "Check [[secret]] and ((cocoa))\n",
			want:  "<p>Check " + md5Secret + " and ooa</p>",
		},
		{
			name:  "single item list is closed at end",
			input: "- a\n",
			want:  "<ul>\n    <li>a</li>\n</ul>",
		},
		{
			name:  "heading closes list",
			input: "- a\n# Next",
			want:  "<ul>\n    <li>a</li>\n</ul>\n<h1>Next</h1>",
		},
		{
			name:  "blank lines keep list open",
			input: "- a\n\n\n- b",
			want:  "<ul>\n    <li>a</li>\n    <li>b</li>\n</ul>",
		},
		{
			name:  "switching list kind closes previous list",
			input: "- a\n1. b\n- c",
			want:  "<ul>\n    <li>a</li>\n</ul>\n<ol>\n    <li>b</li>\n</ol>\n<ul>\n    <li>c</li>\n</ul>",
		},
		{
			name:  "paragraph splits list runs",
			input: "- a\nmid\n- b",
			want:  "<ul>\n    <li>a</li>\n</ul>\n<p>mid</p>\n<ul>\n    <li>b</li>\n</ul>",
		},
		{
			name:  "ordered remainder starts after first dot",
			input: "10. v1.2 release",
			want:  "<ol>\n    <li>v1.2 release</li>\n</ol>",
		},
		{
			name:  "ordered item with tab",
			input: "3.\tthird",
			want:  "<ol>\n    <li>third</li>\n</ol>",
		},
		{
			name:  "number without space is a paragraph",
			input: "1.5 liters",
			want:  "<p>1.5 liters</p>",
		},
		{
			name:  "dash without space is a paragraph",
			input: "-dash",
			want:  "<p>-dash</p>",
		},
		{
			name:  "indented lines are trimmed",
			input: "   - a  \n\t## b\t",
			want:  "<ul>\n    <li>a</li>\n</ul>\n<h2>b</h2>",
		},
		{
			name:  "marker producing a heading",
			input: "((c))# Title",
			want:  "<h1>Title</h1>",
		},
		{
			name:  "CRLF input",
			input: "# A\r\n- b\r\n",
			want:  "<h1>A</h1>\n<ul>\n    <li>b</li>\n</ul>",
		},
		{
			name:  "empty document",
			input: "",
			want:  "",
		},
		{
			name:  "only blank lines",
			input: "\n  \n\t\n",
			want:  "",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.want, render.RenderString(testCase.input))
		})
	}
}

func TestRender_PureFunction(t *testing.T) {
	t.Parallel()

	lines := []string{"- a", "- b"}
	first := render.Render(lines)
	second := render.Render(lines)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"- a", "- b"}, lines, "input must not be modified")
}

func TestRenderer_State(t *testing.T) {
	t.Parallel()

	r := render.NewRenderer()
	assert.Equal(t, render.ListNone, r.Open())

	r.Line("- a")
	assert.Equal(t, render.ListUnordered, r.Open())

	r.Line("")
	assert.Equal(t, render.ListUnordered, r.Open(), "blank line keeps the list open")

	r.Line("2. b")
	assert.Equal(t, render.ListOrdered, r.Open())

	r.Line("text")
	assert.Equal(t, render.ListNone, r.Open())

	r.Line("1. c")
	fragments := r.Finish()
	assert.Equal(t, render.ListNone, r.Open())
	assert.Equal(t, "</ol>", fragments[len(fragments)-1])

	again := r.Finish()
	assert.Equal(t, fragments, again, "second Finish must not emit another closing tag")
}

func TestRenderer_ZeroValue(t *testing.T) {
	t.Parallel()

	var r render.Renderer
	r.Line("# ok")
	assert.Equal(t, []string{"<h1>ok</h1>"}, r.Finish())
}

func TestRenderer_Stats(t *testing.T) {
	t.Parallel()

	r := render.NewRenderer()
	for _, line := range []string{
		"# Title [[a]]",
		"",
		"- one ((c))",
		"- two",
		"1. three",
		"para ((cc)) ((x))",
	} {
		r.Line(line)
	}
	r.Finish()

	assert.Equal(t, render.Stats{
		Lines:        6,
		Headings:     1,
		Paragraphs:   1,
		Lists:        2,
		ListItems:    3,
		BlankLines:   1,
		HashMarkers:  1,
		StripMarkers: 3,
	}, r.Stats())
}

func TestListKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", render.ListNone.String())
	assert.Equal(t, "unordered", render.ListUnordered.String())
	assert.Equal(t, "ordered", render.ListOrdered.String())
}

func TestRender_ListsAlwaysBalanced(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"- a",
		"1. a",
		"- a\n1. b\n\n# c\n- d",
		"1. a\n\n\n",
		"- a\n- b\n2. c\n3. d\ntext\n- e",
	}

	for _, input := range inputs {
		out := render.RenderString(input)
		assert.Equal(t, strings.Count(out, "<ul>"), strings.Count(out, "</ul>"), "input %q", input)
		assert.Equal(t, strings.Count(out, "<ol>"), strings.Count(out, "</ol>"), "input %q", input)
	}
}

func TestRender_OwnOutputDoesNotPanic(t *testing.T) {
	t.Parallel()

	input := "# Title\n- a\n- b\n1. c\nText [[x]] ((y))\n"
	out := render.RenderString(input)

	require.NotPanics(t, func() {
		twice := render.RenderString(out)
		_ = render.RenderString(twice)
	})
}

func TestJoin(t *testing.T) {
	t.Parallel()

	assert.Empty(t, render.Join(nil))
	assert.Equal(t, "<p>a</p>", render.Join([]string{"<p>a</p>"}))
	assert.Equal(t, "<p>a</p>\n<p>b</p>", render.Join([]string{"<p>a</p>", "<p>b</p>"}))
}
