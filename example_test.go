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

package sitemark_test

import (
	"fmt"
	"os"

	"zombiezen.com/go/sitemark"
)

func Example() {
	html, err := sitemark.ToHTML("# Title\n\nSome **bold** and *italic* text")
	if err != nil {
		panic(err)
	}
	fmt.Println(html)
	// Output:
	// <div><h1>Title</h1><p>Some <b>bold</b> and <i>italic</i> text</p></div>
}

func ExampleSegment() {
	blocks := sitemark.Segment(`
    # Shopping

    1. eggs
    2. milk

    > Don't forget the bread.
    `)
	for _, b := range blocks {
		fmt.Printf("%v: %q\n", b.Kind, b.Raw)
	}
	// Output:
	// HeadingKind: "# Shopping"
	// OrderedListKind: "1. eggs\n2. milk"
	// QuoteKind: "> Don't forget the bread."
}

func ExampleParseInline() {
	spans, err := sitemark.ParseInline("See [the docs](https://go.dev) or run `go doc`.")
	if err != nil {
		panic(err)
	}
	for _, span := range spans {
		if span.HasTarget() {
			fmt.Printf("%v %q -> %s\n", span.Kind, span.Text, span.Target)
		} else {
			fmt.Printf("%v %q\n", span.Kind, span.Text)
		}
	}
	// Output:
	// PlainSpan "See "
	// LinkSpan "the docs" -> https://go.dev
	// PlainSpan " or run "
	// CodeSpan "go doc"
	// PlainSpan "."
}

func ExampleRenderHTML() {
	root := sitemark.NewContainer("p",
		sitemark.NewText("Hello, ").AsNode(),
		sitemark.NewLeaf("b", "World").AsNode(),
		sitemark.NewText("!").AsNode(),
	)
	if err := sitemark.RenderHTML(os.Stdout, root.AsNode()); err != nil {
		panic(err)
	}
	fmt.Println()
	// Output:
	// <p>Hello, <b>World</b>!</p>
}
