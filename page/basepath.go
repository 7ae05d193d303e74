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
	"strings"

	"go4.org/bytereplacer"
)

// A BasePathRewriter prefixes root-relative href and src attributes
// with a site's base path so that the site can be served from a subdirectory.
type BasePathRewriter struct {
	r *bytereplacer.Replacer
}

// NewBasePathRewriter returns a rewriter for base.
// The base path "/" (or "") leaves pages unchanged.
// A missing trailing slash is added.
func NewBasePathRewriter(base string) *BasePathRewriter {
	if base == "" || base == "/" {
		return &BasePathRewriter{}
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &BasePathRewriter{r: bytereplacer.New(
		`href="/`, `href="`+base,
		`src="/`, `src="`+base,
	)}
}

// Rewrite returns html with root-relative URLs moved under the base path.
// It may modify html in place.
func (bp *BasePathRewriter) Rewrite(html []byte) []byte {
	if bp == nil || bp.r == nil {
		return html
	}
	return bp.r.Replace(html)
}
