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
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"
)

// Meta is the optional front matter at the top of a page.
type Meta struct {
	// Title overrides the title found by [ExtractTitle].
	Title string `yaml:"title" toml:"title"`
	// Template is a template path relative to the content directory.
	Template string `yaml:"template" toml:"template"`
	// Draft pages are not generated.
	Draft bool `yaml:"draft" toml:"draft"`
}

// SplitFrontMatter separates YAML or TOML front matter from the Markdown body.
// A source without front matter is returned unchanged with a zero Meta.
func SplitFrontMatter(src []byte) (Meta, []byte, error) {
	var meta Meta
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return Meta{}, nil, fmt.Errorf("parse front matter: %w", err)
	}
	return meta, body, nil
}
