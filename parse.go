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

// Package sitemark converts a small dialect of Markdown
// into a tree of HTML elements.
//
// Parsing happens in two stages.
// [Segment] splits a document into blank-line-delimited [Block] values
// and classifies each one as a heading, fenced code block, block quote,
// unordered list, ordered list, or paragraph.
// [Lower] then turns each block into [Node] values,
// using [ParseInline] to find bold, italic, code, link, and image spans
// in the block's text.
//
// The dialect is deliberately small:
// emphasis does not nest, there are no extensions like tables,
// and text is copied into the output without escaping.
// Callers that render untrusted input should sanitize the result.
package sitemark

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/atom"
)

// Parse converts a Markdown document into a tree rooted at a <div> container
// whose children are the document's blocks in source order.
// Parse returns a [*DelimiterError] if any inline delimiter is left open.
// Parse does not retain markdown.
func Parse(markdown string) (*Container, error) {
	root := NewContainer(atom.Div.String())
	for _, b := range Segment(markdown) {
		nodes, err := Lower(b)
		if err != nil {
			return nil, err
		}
		root.Append(nodes...)
	}
	return root, nil
}

// ParseReader reads all of r and converts it with [Parse].
func ParseReader(r io.Reader) (*Container, error) {
	sb := new(strings.Builder)
	if _, err := io.Copy(sb, r); err != nil {
		return nil, fmt.Errorf("parse markdown: %w", err)
	}
	return Parse(sb.String())
}

// ToHTML parses a Markdown document and serializes the resulting tree.
// An empty document has no blocks and fails with a [*StructuralError].
func ToHTML(markdown string) (string, error) {
	root, err := Parse(markdown)
	if err != nil {
		return "", err
	}
	return root.HTML()
}
