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
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// blockSeparatorRE matches a run of two or more line endings.
var blockSeparatorRE = regexp.MustCompile(`\n\n+`)

var headingRE = regexp.MustCompile(`^#{1,6} `)

const codeFence = "```"

// Segment splits a Markdown document into blocks.
// The document is trimmed, then split on runs of two or more newlines.
// A line holding only spaces does not separate blocks.
// Indentation shared by all non-blank lines of a block is removed,
// so Segment is idempotent on a single normalized block.
// Empty input produces an empty result.
func Segment(document string) []Block {
	document = normalizeNewlines(document)
	if strings.IndexByte(document, 0) >= 0 {
		// Contains one or more NUL bytes.
		// Replace with Unicode replacement character.
		document = strings.ReplaceAll(document, "\x00", "\ufffd")
	}
	document = strings.TrimSpace(document)
	if document == "" {
		return nil
	}

	var blocks []Block
	for _, chunk := range blockSeparatorRE.Split(document, -1) {
		raw := dedent(chunk)
		if raw == "" {
			continue
		}
		blocks = append(blocks, Block{
			Raw:  raw,
			Kind: Classify(raw),
		})
	}
	return blocks
}

// dedent strips the longest leading whitespace width common to all non-blank lines
// of chunk and trims the result.
func dedent(chunk string) string {
	lines := strings.Split(chunk, "\n")
	minIndent := -1
	for _, line := range lines {
		if isBlankLine(line) {
			continue
		}
		if n := indentWidth(line); minIndent < 0 || n < minIndent {
			minIndent = n
		}
	}
	if minIndent < 0 {
		return ""
	}
	if minIndent > 0 {
		for i, line := range lines {
			lines[i] = cutIndent(line, minIndent)
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Classify reports the kind of a normalized block.
// The first matching rule wins:
// headings, fenced code, block quotes,
// unordered lists, ordered lists, and finally paragraphs.
func Classify(raw string) BlockKind {
	if raw == "" {
		return ParagraphKind
	}
	if headingRE.MatchString(raw) {
		return HeadingKind
	}
	if len(raw) >= 2*len(codeFence) && strings.HasPrefix(raw, codeFence) && strings.HasSuffix(raw, codeFence) {
		return CodeKind
	}
	lines := strings.Split(raw, "\n")
	if allLines(lines, func(_ int, line string) bool { return strings.HasPrefix(line, ">") }) {
		return QuoteKind
	}
	if allLines(lines, func(_ int, line string) bool { return strings.HasPrefix(line, "- ") }) {
		return UnorderedListKind
	}
	if allLines(lines, isOrderedListLine) {
		return OrderedListKind
	}
	return ParagraphKind
}

// isOrderedListLine reports whether the i'th line (0-based)
// starts with the 1-based list number i+1 followed by ". ".
func isOrderedListLine(i int, line string) bool {
	rest, ok := strings.CutPrefix(line, strconv.Itoa(i+1))
	return ok && strings.HasPrefix(rest, ". ")
}

func allLines(lines []string, f func(i int, line string) bool) bool {
	if len(lines) == 0 {
		return false
	}
	for i, line := range lines {
		if !f(i, line) {
			return false
		}
	}
	return true
}

// normalizeNewlines converts CRLF and lone CR line endings to LF.
func normalizeNewlines(s string) string {
	if strings.IndexByte(s, '\r') < 0 {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// indentWidth returns the number of leading whitespace characters in line.
func indentWidth(line string) int {
	return utf8.RuneCountInString(line) - utf8.RuneCountInString(trimIndent(line))
}

func trimIndent(line string) string {
	return strings.TrimLeftFunc(line, unicode.IsSpace)
}

// cutIndent removes at most n leading whitespace characters from line.
func cutIndent(line string, n int) string {
	i := 0
	for ; n > 0 && i < len(line); n-- {
		r, size := utf8.DecodeRuneInString(line[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return line[i:]
}

func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}
