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

// Package format provides a function to format a Markdown file
// that is equivalent to the original Markdown.
package format

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"zombiezen.com/go/sitemark"
)

var orderedMarkerRE = regexp.MustCompile(`^\d+[.)] `)

const maxHeadingLevel = 6

// Format writes the given blocks as Markdown to the given writer.
// Blocks are separated by a single blank line.
// Heading, quote, and list markers are rewritten in a canonical form;
// paragraphs and code blocks are written unchanged.
// Parsing the output produces the same tree as parsing the blocks.
func Format(w io.Writer, blocks []sitemark.Block) error {
	ww := &errWriter{w: w}
	for _, b := range blocks {
		if b.Raw == "" {
			continue
		}
		if ww.hasWritten {
			ww.WriteString("\n")
		}
		kind := b.Kind
		if kind == 0 {
			kind = sitemark.Classify(b.Raw)
		}
		lines := strings.Split(b.Raw, "\n")
		for i, line := range lines {
			ww.WriteString(formatLine(kind, i, line))
			ww.WriteString("\n")
		}
	}
	return ww.err
}

// formatLine returns the canonical form of the i'th line of a block.
func formatLine(kind sitemark.BlockKind, i int, line string) string {
	switch kind {
	case sitemark.HeadingKind:
		if !strings.HasPrefix(line, "#") {
			return line
		}
		rest := strings.TrimLeft(line, "#")
		level := min(len(line)-len(rest), maxHeadingLevel)
		return strings.Repeat("#", level) + " " + strings.TrimSpace(rest)
	case sitemark.QuoteKind:
		rest := strings.TrimPrefix(line, ">")
		return "> " + strings.TrimPrefix(rest, " ")
	case sitemark.UnorderedListKind:
		item := strings.TrimSpace(line)
		for _, marker := range []string{"- ", "* ", "+ "} {
			if rest, ok := strings.CutPrefix(item, marker); ok {
				return "- " + rest
			}
		}
		return "- "
	case sitemark.OrderedListKind:
		item := strings.TrimSpace(line)
		marker := strconv.Itoa(i+1) + ". "
		if m := orderedMarkerRE.FindString(item); m != "" {
			return marker + item[len(m):]
		}
		return marker
	default:
		return line
	}
}

type errWriter struct {
	w          io.Writer
	hasWritten bool
	err        error
}

func (w *errWriter) WriteString(s string) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = io.WriteString(w.w, s)
	w.hasWritten = w.hasWritten || n > 0
	return n, w.err
}
