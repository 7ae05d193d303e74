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

//go:generate stringer -type=BlockKind,SpanKind -output=kind_string.go

package sitemark

// A Block is a top-level structural element in a Markdown document:
// a blank-line-delimited run of lines with its shared indentation removed.
type Block struct {
	// Raw is the block's source text.
	// It never begins or ends with a blank line.
	Raw  string
	Kind BlockKind
}

// BlockKind is an enumeration of values returned by [Classify].
type BlockKind uint16

const (
	ParagraphKind BlockKind = 1 + iota
	HeadingKind
	CodeKind
	QuoteKind
	UnorderedListKind
	OrderedListKind
)

// A Span is a typed run of inline text.
type Span struct {
	Text string
	Kind SpanKind
	// Target is the destination URL of a [LinkSpan] or [ImageSpan].
	// It is empty for all other kinds.
	Target string
}

// PlainText returns a [PlainSpan] with the given text.
func PlainText(s string) Span {
	return Span{Text: s, Kind: PlainSpan}
}

// HasTarget reports whether the span's kind carries a [Span.Target].
func (span Span) HasTarget() bool {
	return span.Kind == LinkSpan || span.Kind == ImageSpan
}

// SpanKind is an enumeration of inline span types.
type SpanKind uint16

const (
	PlainSpan SpanKind = 1 + iota
	BoldSpan
	ItalicSpan
	CodeSpan
	LinkSpan
	ImageSpan
)
