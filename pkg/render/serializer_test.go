package render

import (
	"testing"

	"github.com/vango-dev/htmlcomp/pkg/dom"
)

func TestSerializeElement(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{
			name: "empty element",
			in:   dom.New("div"),
			want: "<div></div>",
		},
		{
			name: "text child",
			in:   dom.New("p", "Hi there!"),
			want: "<p>Hi there!</p>",
		},
		{
			name: "nested elements",
			in:   dom.New("div", "Hello, ", dom.New("strong", "world"), "!"),
			want: "<div>Hello, <strong>world</strong>!</div>",
		},
		{
			name: "attributes sorted by key",
			in:   dom.New("a", dom.A("title", "t"), dom.A("href", "/x"), dom.A("id", "link")),
			want: `<a href="/x" id="link" title="t"></a>`,
		},
		{
			name: "class tokens sorted",
			in:   dom.New("p", dom.A("class", dom.Classes("foo", "bar")), "Hi there!"),
			want: `<p class="bar foo">Hi there!</p>`,
		},
		{
			name: "empty class omitted",
			in:   dom.New("p", "x"),
			want: "<p>x</p>",
		},
		{
			name: "void element",
			in:   dom.New("img", dom.A("src", "apple.png"), dom.A("alt", "An apple")),
			want: `<img alt="An apple" src="apple.png">`,
		},
		{
			name: "void element ignores children",
			in:   dom.New("br", "never shown"),
			want: "<br>",
		},
		{
			name: "fragment concatenates children",
			in:   dom.Fragment(dom.New("p", "a"), dom.New("p", "b")),
			want: "<p>a</p><p>b</p>",
		},
		{
			name: "integer child",
			in:   dom.New("span", 42),
			want: "<span>42</span>",
		},
		{
			name: "typed attribute values",
			in:   dom.New("input", dom.A("tabindex", 3), dom.A("value", 1.5)),
			want: `<input tabindex="3" value="1.5">`,
		},
		{
			name: "scalar top level",
			in:   42,
			want: "42",
		},
		{
			name: "string top level",
			in:   "plain",
			want: "plain",
		},
		{
			name: "nil",
			in:   nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Serialize(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSerializeEscaping(t *testing.T) {
	el := dom.New("p", dom.A("title", `"quoted" & <b>`), "a < b & c > d")
	got, err := Serialize(el)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `<p title="&quot;quoted&quot; &amp; &lt;b&gt;">a &lt; b &amp; c &gt; d</p>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSerializeRawTextElements(t *testing.T) {
	tests := []struct {
		name string
		in   *dom.Element
		want string
	}{
		{
			"script content is verbatim",
			dom.New("script", "if (a < b && c) go();"),
			`<script>if (a < b && c) go();</script>`,
		},
		{
			"style content is verbatim",
			dom.New("style", "a > b { color: red; }"),
			`<style>a > b { color: red; }</style>`,
		},
		{
			"title content is verbatim",
			dom.New("title", "Fish & Chips"),
			`<title>Fish & Chips</title>`,
		},
		{
			"attributes still escape",
			dom.New("script", dom.A("src", "/a?x=1&y=2"), "x && y"),
			`<script src="/a?x=1&amp;y=2">x && y</script>`,
		},
		{
			"non-raw siblings still escape",
			dom.New("div", dom.New("script", "a & b"), "a & b"),
			`<div><script>a & b</script>a &amp; b</div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Serialize(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSerializeClassDeterminism(t *testing.T) {
	// Insertion order must not show in the output.
	a := dom.New("p", dom.A("class", dom.Classes("b", "a")))
	b := dom.New("p", dom.A("class", dom.Classes("a", "b")))

	sa, err := Serialize(a)
	if err != nil {
		t.Fatal(err)
	}
	sb, err := Serialize(b)
	if err != nil {
		t.Fatal(err)
	}

	if sa != sb || sa != `<p class="a b"></p>` {
		t.Errorf("got %q and %q, want %q", sa, sb, `<p class="a b"></p>`)
	}
}
