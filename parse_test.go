// Copyright 2026 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package sitemark

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "TitleAndParagraph",
			markdown: "# Title\n\nSome **bold** and *italic* text",
			want:     "<div><h1>Title</h1><p>Some <b>bold</b> and <i>italic</i> text</p></div>",
		},
		{
			name:     "Quote",
			markdown: "> line one\n> line two",
			want:     "<div><blockquote>line one line two</blockquote></div>",
		},
		{
			name:     "OrderedListGap",
			markdown: "1. a\n3. b",
			want:     "<div><p>1. a\n3. b</p></div>",
		},
		{
			name:     "SpaceOnlyLineKeepsParagraph",
			markdown: "line one\n  \nline two",
			want:     "<div><p>line one\n  \nline two</p></div>",
		},
		{
			name: "Document",
			markdown: "# Tolkien Fan Club\n\n" +
				"![JRR Tolkien sitting](/images/tolkien.png)\n\n" +
				"Here's the deal, **I like Tolkien**.\n\n" +
				"> \"I am in fact a Hobbit in all but size.\"\n>\n> -- J.R.R. Tolkien\n\n" +
				"## Blog posts\n\n" +
				"- [Why Glorfindel is More Impressive than Legolas](/blog/glorfindel)\n" +
				"- [Why Tom Bombadil Was a Mistake](/blog/tom)\n\n" +
				"```\nfunc main() {\n    fmt.Println(\"Hello\")\n}\n```",
			want: "<div>" +
				"<h1>Tolkien Fan Club</h1>" +
				`<p><img src="/images/tolkien.png" alt="JRR Tolkien sitting"></p>` +
				"<p>Here's the deal, <b>I like Tolkien</b>.</p>" +
				"<blockquote>\"I am in fact a Hobbit in all but size.\"  -- J.R.R. Tolkien</blockquote>" +
				"<h2>Blog posts</h2>" +
				`<ul><li><a href="/blog/glorfindel">Why Glorfindel is More Impressive than Legolas</a></li>` +
				`<li><a href="/blog/tom">Why Tom Bombadil Was a Mistake</a></li></ul>` +
				"<pre><code>func main() {\n    fmt.Println(\"Hello\")\n}</code></pre>" +
				"</div>",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ToHTML(test.markdown)
			if err != nil {
				t.Fatal("ToHTML:", err)
			}
			if got != test.want {
				t.Errorf("ToHTML(%q) =\n%q\nwant\n%q", test.markdown, got, test.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		root, err := Parse("  \n\n ")
		if err != nil {
			t.Fatal("Parse:", err)
		}
		if len(root.Children) != 0 {
			t.Errorf("len(root.Children) = %d; want 0", len(root.Children))
		}
		html, err := root.HTML()
		if !errors.As(err, new(*StructuralError)) {
			t.Errorf("root.HTML() = %q, %v; want _, *StructuralError", html, err)
		}
	})

	t.Run("UnmatchedBacktick", func(t *testing.T) {
		root, err := Parse("# Title\n\na `b")
		var delimErr *DelimiterError
		if !errors.As(err, &delimErr) {
			t.Fatalf("Parse(...) = %v, %v; want _, *DelimiterError", root, err)
		}
		if delimErr.Delimiter != "`" {
			t.Errorf("delimiter = %q; want %q", delimErr.Delimiter, "`")
		}
		if root != nil {
			t.Errorf("root = %v; want nil", root)
		}
	})
}

func TestParseStructure(t *testing.T) {
	const markdown = "# Title\n\n" +
		"Intro with a [link](/about) and ![pic](/p.png).\n\n" +
		"## Steps\n### Details\n\n" +
		"1. one\n2. two\n3. three\n\n" +
		"- x\n- y\n\n" +
		"```sh\ngo test ./...\n```"
	html, err := ToHTML(markdown)
	if err != nil {
		t.Fatal("ToHTML:", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}

	if got, want := doc.Find("body > div").Children().Length(), 7; got != want {
		t.Errorf("root children = %d; want %d", got, want)
	}
	if got := doc.Find("div > h1").Text(); got != "Title" {
		t.Errorf("h1 text = %q; want %q", got, "Title")
	}
	if got := doc.Find("h2 + h3").Text(); got != "Details" {
		t.Errorf("h3 after h2 = %q; want %q", got, "Details")
	}
	if got, want := doc.Find("ol > li").Length(), 3; got != want {
		t.Errorf("ordered items = %d; want %d", got, want)
	}
	if got, want := doc.Find("ul > li").Length(), 2; got != want {
		t.Errorf("unordered items = %d; want %d", got, want)
	}
	if got := doc.Find("p a").AttrOr("href", ""); got != "/about" {
		t.Errorf("link href = %q; want %q", got, "/about")
	}
	if got := doc.Find("p img").AttrOr("alt", ""); got != "pic" {
		t.Errorf("image alt = %q; want %q", got, "pic")
	}
	if got := doc.Find("pre > code").AttrOr("class", ""); got != "language-sh" {
		t.Errorf("code class = %q; want %q", got, "language-sh")
	}
}

func TestParseReader(t *testing.T) {
	root, err := ParseReader(strings.NewReader("# Hi"))
	if err != nil {
		t.Fatal("ParseReader:", err)
	}
	got, err := root.HTML()
	if err != nil {
		t.Fatal("HTML:", err)
	}
	if want := "<div><h1>Hi</h1></div>"; got != want {
		t.Errorf("HTML() = %q; want %q", got, want)
	}
}

func FuzzParse(f *testing.F) {
	f.Add("# Title\n\nSome **bold** and *italic* text")
	f.Add("> quote\n\n- a\n- b\n\n1. x\n2. y")
	f.Add("![alt](u) [t](u) `c`")

	f.Fuzz(func(t *testing.T, markdown string) {
		if !utf8.ValidString(markdown) {
			t.Skip("Invalid UTF-8")
		}
		root, err := Parse(markdown)
		if err != nil {
			if !errors.As(err, new(*DelimiterError)) {
				t.Fatalf("Parse: unexpected error type %T: %v", err, err)
			}
			return
		}
		if root.Tag != "div" {
			t.Errorf("root.Tag = %q; want div", root.Tag)
		}
		first, err1 := root.HTML()
		second, err2 := root.HTML()
		if first != second || (err1 == nil) != (err2 == nil) {
			t.Errorf("serialization is not deterministic: %q, %v vs. %q, %v", first, err1, second, err2)
		}
	})
}
