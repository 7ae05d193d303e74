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

// Package normhtml normalizes HTML fragments
// so that tests can compare rendered documents
// without depending on attribute order, entity spelling,
// or insignificant whitespace.
package normhtml

import (
	"bytes"
	"regexp"
	"sort"
	"strings"

	"go4.org/bytereplacer"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

var textEscaper = bytereplacer.New(
	"&", "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
)

// NormalizeHTML returns a canonical form of the HTML fragment b.
// Tag and attribute names are lowercased,
// attributes are sorted by name,
// runs of whitespace outside <pre> collapse to a single space,
// and whitespace next to block-level tags is dropped.
func NormalizeHTML(b []byte) []byte {
	type htmlAttribute struct {
		key   string
		value string
	}

	tok := html.NewTokenizerFragment(bytes.NewReader(b), "div")
	var output []byte
	preDepth := 0
	for {
		tt := tok.Next()
		switch tt {
		case html.ErrorToken:
			return bytes.TrimSpace(output)
		case html.TextToken:
			data := bytes.Clone(tok.Text())
			if preDepth == 0 {
				data = whitespaceRE.ReplaceAll(data, []byte(" "))
				if endsWithBlockTag(output) {
					data = bytes.TrimLeft(data, " ")
				}
			}
			output = append(output, textEscaper.Replace(data)...)
		case html.EndTagToken:
			name, _ := tok.TagName()
			a := atom.Lookup(name)
			if a == atom.Pre {
				preDepth--
			}
			if isBlockTag(a) && preDepth == 0 {
				output = bytes.TrimRight(output, " ")
			}
			output = append(output, "</"...)
			output = append(output, name...)
			output = append(output, '>')
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := tok.TagName()
			tag := string(name)
			a := atom.Lookup(name)
			if isBlockTag(a) && preDepth == 0 {
				output = bytes.TrimRight(output, " ")
			}
			if a == atom.Pre {
				preDepth++
			}
			var attrs []htmlAttribute
			for hasAttr {
				var k, v []byte
				k, v, hasAttr = tok.TagAttr()
				attrs = append(attrs, htmlAttribute{string(k), string(v)})
			}
			sort.Slice(attrs, func(i, j int) bool {
				return attrs[i].key < attrs[j].key
			})
			output = append(output, '<')
			output = append(output, tag...)
			for _, attr := range attrs {
				output = append(output, ' ')
				output = append(output, attr.key...)
				output = append(output, `="`...)
				output = append(output, attrEscaper.Replace(attr.value)...)
				output = append(output, '"')
			}
			output = append(output, '>')
		}
	}
}

// endsWithBlockTag reports whether output ends with an opening or closing block-level tag.
func endsWithBlockTag(output []byte) bool {
	if len(output) == 0 {
		return true
	}
	if output[len(output)-1] != '>' {
		return false
	}
	start := bytes.LastIndexByte(output, '<')
	if start < 0 {
		return false
	}
	name := bytes.TrimPrefix(output[start+1:len(output)-1], []byte("/"))
	if i := bytes.IndexByte(name, ' '); i >= 0 {
		name = name[:i]
	}
	return isBlockTag(atom.Lookup(name))
}

var blockTags = map[atom.Atom]struct{}{
	atom.Blockquote: {},
	atom.Div:        {},
	atom.H1:         {},
	atom.H2:         {},
	atom.H3:         {},
	atom.H4:         {},
	atom.H5:         {},
	atom.H6:         {},
	atom.Hr:         {},
	atom.Li:         {},
	atom.Ol:         {},
	atom.P:          {},
	atom.Pre:        {},
	atom.Section:    {},
	atom.Ul:         {},
}

func isBlockTag(a atom.Atom) bool {
	_, ok := blockTags[a]
	return ok
}
