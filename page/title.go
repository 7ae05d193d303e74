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

// Package page turns a single Markdown source file into a complete HTML page.
package page

import (
	"errors"
	"strings"
)

// ErrNoTitle is returned by [ExtractTitle]
// when a document has no level-one heading.
var ErrNoTitle = errors.New("no level-one heading")

// ExtractTitle returns the text of the first line
// that starts with a single "#".
// Surrounding whitespace is trimmed from the result,
// so "#Title" and "# Title" both yield "Title".
func ExtractTitle(markdown string) (string, error) {
	for _, line := range strings.Split(markdown, "\n") {
		rest, ok := strings.CutPrefix(line, "#")
		if !ok || strings.HasPrefix(rest, "#") {
			continue
		}
		return strings.TrimSpace(rest), nil
	}
	return "", ErrNoTitle
}
