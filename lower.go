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
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html/atom"
)

var orderedItemRE = regexp.MustCompile(`^\d+[.)] `)

var headingTags = [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// Lower converts a block into document nodes.
// Most blocks produce exactly one node,
// but a heading block produces one node per heading line.
// A block with a zero Kind is classified first.
func Lower(b Block) ([]Node, error) {
	if b.Kind == 0 {
		b.Kind = Classify(b.Raw)
	}
	switch b.Kind {
	case ParagraphKind:
		return singleNode(inlineContainer(atom.P, b.Raw))
	case HeadingKind:
		return lowerHeadings(b.Raw)
	case CodeKind:
		return []Node{lowerCode(b.Raw).AsNode()}, nil
	case QuoteKind:
		return singleNode(lowerQuote(b.Raw))
	case UnorderedListKind:
		return singleNode(lowerList(atom.Ul, b.Raw, cutBulletMarker))
	case OrderedListKind:
		return singleNode(lowerList(atom.Ol, b.Raw, cutNumberMarker))
	default:
		panic(fmt.Sprintf("unhandled block kind %v", b.Kind))
	}
}

func singleNode(c *Container, err error) ([]Node, error) {
	if err != nil {
		return nil, err
	}
	return []Node{c.AsNode()}, nil
}

func lowerHeadings(raw string) ([]Node, error) {
	var nodes []Node
	for _, line := range strings.Split(raw, "\n") {
		if !strings.HasPrefix(line, "#") {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, "#"))
		content := strings.TrimSpace(line[n:])
		if n > len(headingTags) {
			n = len(headingTags)
		}
		heading, err := inlineContainer(headingTags[n-1], content)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, heading.AsNode())
	}
	return nodes, nil
}

// lowerCode strips the fences from a fenced code block.
// The body is kept as a single text leaf and is never inline-parsed.
// The first word of the opening fence's info string, if any,
// is recorded as a language class.
func lowerCode(raw string) *Container {
	body := strings.TrimSuffix(strings.TrimPrefix(raw, codeFence), codeFence)
	var info string
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		info = strings.TrimSpace(body[:i])
		body = body[i+1:]
	}
	body = strings.TrimSuffix(body, "\n")
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}

	code := NewContainer(atom.Code.String(), NewText(strings.Join(lines, "\n")).AsNode())
	if words := strings.Fields(info); len(words) > 0 {
		code.Attrs = append(code.Attrs, Attribute{Key: "class", Value: "language-" + words[0]})
	}
	return NewContainer(atom.Pre.String(), code.AsNode())
}

// lowerQuote joins the quoted lines with spaces into a single blockquote.
func lowerQuote(raw string) (*Container, error) {
	var parts []string
	for _, line := range strings.Split(raw, "\n") {
		rest, ok := strings.CutPrefix(line, ">")
		if !ok {
			continue
		}
		parts = append(parts, strings.TrimPrefix(rest, " "))
	}
	return inlineContainer(atom.Blockquote, strings.Join(parts, " "))
}

func lowerList(tag atom.Atom, raw string, cutMarker func(string) (string, bool)) (*Container, error) {
	list := NewContainer(tag.String())
	for _, line := range strings.Split(raw, "\n") {
		content, ok := cutMarker(strings.TrimSpace(line))
		if !ok {
			continue
		}
		item, err := inlineContainer(atom.Li, content)
		if err != nil {
			return nil, err
		}
		list.Append(item.AsNode())
	}
	return list, nil
}

func cutBulletMarker(line string) (string, bool) {
	for _, marker := range []string{"- ", "* ", "+ "} {
		if rest, ok := strings.CutPrefix(line, marker); ok {
			return rest, true
		}
	}
	return "", false
}

func cutNumberMarker(line string) (string, bool) {
	marker := orderedItemRE.FindString(line)
	if marker == "" {
		return "", false
	}
	return line[len(marker):], true
}

// inlineContainer returns a container whose children are the parsed spans of text.
func inlineContainer(tag atom.Atom, text string) (*Container, error) {
	spans, err := ParseInline(text)
	if err != nil {
		return nil, err
	}
	c := &Container{
		Tag:      tag.String(),
		Children: make([]Node, 0, len(spans)),
	}
	for _, span := range spans {
		c.Children = append(c.Children, SpanNode(span))
	}
	return c, nil
}

// SpanNode converts an inline span into a leaf node.
func SpanNode(span Span) Node {
	switch span.Kind {
	case PlainSpan:
		return NewText(span.Text).AsNode()
	case BoldSpan:
		return NewLeaf(atom.B.String(), span.Text).AsNode()
	case ItalicSpan:
		return NewLeaf(atom.I.String(), span.Text).AsNode()
	case CodeSpan:
		return NewLeaf(atom.Code.String(), span.Text).AsNode()
	case LinkSpan:
		return NewLeaf(atom.A.String(), span.Text, Attribute{Key: "href", Value: span.Target}).AsNode()
	case ImageSpan:
		return NewVoid(atom.Img.String(),
			Attribute{Key: "src", Value: span.Target},
			Attribute{Key: "alt", Value: span.Text},
		).AsNode()
	default:
		panic(fmt.Sprintf("unhandled span kind %v", span.Kind))
	}
}
