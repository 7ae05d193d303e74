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

package page

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
	"zombiezen.com/go/sitemark"
)

// RenderOptions is the set of optional parameters to [Render].
type RenderOptions struct {
	// Rewriter adjusts root-relative URLs in the rendered page.
	// A nil Rewriter leaves URLs unchanged.
	Rewriter *BasePathRewriter
	// NormalizeUnicode converts the Markdown body to Unicode NFC
	// before parsing.
	NormalizeUnicode bool
}

// Result is a rendered page.
type Result struct {
	Meta  Meta
	Title string
	// HTML is the complete page: the template with placeholders filled in.
	HTML []byte
}

// Render converts a Markdown source file into a page.
// The title comes from the front matter if present
// and from the first level-one heading otherwise.
func Render(src []byte, tmpl *Template, opts *RenderOptions) (*Result, error) {
	if opts == nil {
		opts = new(RenderOptions)
	}
	meta, body, err := SplitFrontMatter(src)
	if err != nil {
		return nil, err
	}
	markdown := string(body)
	if opts.NormalizeUnicode {
		markdown = norm.NFC.String(markdown)
	}
	title := meta.Title
	if title == "" {
		title, err = ExtractTitle(markdown)
		if err != nil {
			return nil, fmt.Errorf("render page: %w", err)
		}
	}
	root, err := sitemark.Parse(markdown)
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	content, err := root.HTML()
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	html := []byte(tmpl.Render(title, content))
	return &Result{
		Meta:  meta,
		Title: title,
		HTML:  opts.Rewriter.Rewrite(html),
	}, nil
}
