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
	"os"
	"strings"
)

// Placeholders recognized in a [Template].
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// Template is an HTML page skeleton with literal placeholders.
// It is not an html/template: nothing is escaped.
type Template struct {
	text string
}

// ParseTemplate returns a template for text.
// text must contain [ContentPlaceholder].
func ParseTemplate(text string) (*Template, error) {
	if !strings.Contains(text, ContentPlaceholder) {
		return nil, fmt.Errorf("parse template: missing %s", ContentPlaceholder)
	}
	return &Template{text: text}, nil
}

// LoadTemplate reads and parses the template file at path.
func LoadTemplate(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load template: %w", err)
	}
	t, err := ParseTemplate(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Render substitutes every occurrence of the placeholders.
// Placeholders appearing inside title or content are left alone.
func (t *Template) Render(title, content string) string {
	r := strings.NewReplacer(
		TitlePlaceholder, title,
		ContentPlaceholder, content,
	)
	return r.Replace(t.text)
}
