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

	"github.com/dlclark/regexp2"
)

// Inline delimiters, in the order they are processed.
const (
	boldDelimiter       = "**"
	italicStarDelimiter = "*"
	italicLineDelimiter = "_"
	codeDelimiter       = "`"
)

var imageRE = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)

// linkRE is the same bracket/paren pattern as imageRE,
// but rejects a leading "!" with a lookbehind,
// which the standard library's RE2 syntax cannot express.
var linkRE = regexp2.MustCompile(`(?<!!)\[([^\[\]]*)\]\(([^\(\)]*)\)`, regexp2.None)

// A DelimiterError is returned when an inline delimiter
// is opened but never closed.
type DelimiterError struct {
	// Delimiter is the unmatched delimiter, like "**" or "`".
	Delimiter string
	// Text is the text in which the delimiter appeared.
	Text string
}

func (e *DelimiterError) Error() string {
	return fmt.Sprintf("unmatched %q delimiter in %q", e.Delimiter, e.Text)
}

// ParseInline splits text into typed spans.
//
// Bold runs are split out first and are never parsed further.
// The remaining plain text is then split on italic, code,
// image, and link syntax, in that order.
// Emphasis does not nest.
// ParseInline returns a [*DelimiterError]
// if any delimiter is missing its closing counterpart.
func ParseInline(text string) ([]Span, error) {
	spans := []Span{PlainText(text)}
	var err error
	for _, d := range []struct {
		delim string
		kind  SpanKind
	}{
		{boldDelimiter, BoldSpan},
		{italicStarDelimiter, ItalicSpan},
		{italicLineDelimiter, ItalicSpan},
		{codeDelimiter, CodeSpan},
	} {
		spans, err = splitDelimiter(spans, d.delim, d.kind)
		if err != nil {
			return nil, err
		}
	}
	spans = splitPlain(spans, splitImages)
	spans = splitPlain(spans, splitLinks)
	return spans, nil
}

// splitDelimiter splits every plain span in spans on pairs of delim.
// Text between a pair becomes a span of the given kind;
// the text around it stays plain (and may be empty).
// Matching is on the literal delimiter string:
// the closer is the next occurrence of delim after the end of the opener.
func splitDelimiter(spans []Span, delim string, kind SpanKind) ([]Span, error) {
	result := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != PlainSpan {
			result = append(result, span)
			continue
		}
		text := span.Text
		for {
			openStart := strings.Index(text, delim)
			if openStart < 0 {
				break
			}
			contentStart := openStart + len(delim)
			n := strings.Index(text[contentStart:], delim)
			if n < 0 {
				return nil, &DelimiterError{Delimiter: delim, Text: span.Text}
			}
			contentEnd := contentStart + n
			result = append(result,
				PlainText(text[:openStart]),
				Span{Text: text[contentStart:contentEnd], Kind: kind},
			)
			text = text[contentEnd+len(delim):]
		}
		result = append(result, PlainText(text))
	}
	return result, nil
}

// splitPlain replaces every plain span in spans with the result of f.
func splitPlain(spans []Span, f func(Span) []Span) []Span {
	result := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != PlainSpan {
			result = append(result, span)
			continue
		}
		result = append(result, f(span)...)
	}
	return result
}

// reference is a parsed "[text](target)" or "![text](target)".
type reference struct {
	text   string
	target string
}

func splitImages(span Span) []Span {
	var refs []reference
	for _, m := range imageRE.FindAllStringSubmatch(span.Text, -1) {
		refs = append(refs, reference{text: m[1], target: m[2]})
	}
	return splitReferences(span, refs, ImageSpan)
}

func splitLinks(span Span) []Span {
	var refs []reference
	m, err := linkRE.FindStringMatch(span.Text)
	for ; m != nil && err == nil; m, err = linkRE.FindNextMatch(m) {
		refs = append(refs, reference{
			text:   m.GroupByNumber(1).String(),
			target: m.GroupByNumber(2).String(),
		})
	}
	return splitReferences(span, refs, LinkSpan)
}

// splitReferences cuts each reference's source text out of span in order.
// A lone reference is always followed by a plain span, even an empty one;
// with more than one reference, the trailing plain span is only kept if non-empty.
func splitReferences(span Span, refs []reference, kind SpanKind) []Span {
	if len(refs) == 0 {
		return []Span{span}
	}
	prefix := "["
	if kind == ImageSpan {
		prefix = "!["
	}
	result := make([]Span, 0, 2*len(refs)+1)
	remaining := span.Text
	for _, ref := range refs {
		before, after, _ := strings.Cut(remaining, prefix+ref.text+"]("+ref.target+")")
		if before != "" {
			result = append(result, PlainText(before))
		}
		result = append(result, Span{
			Text:   ref.text,
			Kind:   kind,
			Target: ref.target,
		})
		remaining = after
	}
	if len(refs) == 1 || remaining != "" {
		result = append(result, PlainText(remaining))
	}
	return result
}
